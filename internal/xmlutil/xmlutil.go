// Package xmlutil is a thin adapter over encoding/xml that exposes the
// minimal descriptor interface the xdf package needs: parse a sub-document
// and look up the text of a named direct child. It performs no schema
// validation; callers are responsible for interpreting field values.
package xmlutil

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Element is a node in a parsed XML document: a name, its attributes, its
// direct children (in document order), and any character data found
// directly inside it (concatenated, trimmed of surrounding whitespace).
type Element struct {
	Name     string
	Attrs    map[string]string
	Children []*Element
	Text     string
}

// Parse decodes a complete XML sub-document from content and returns its
// root Element.
func Parse(content []byte) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(string(content)))
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("xmlutil: no root element found")
			}
			return nil, fmt.Errorf("xmlutil: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return decodeElement(dec, start)
		}
	}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (*Element, error) {
	el := &Element{Name: start.Name.Local}
	if len(start.Attr) > 0 {
		el.Attrs = make(map[string]string, len(start.Attr))
		for _, a := range start.Attr {
			el.Attrs[a.Name.Local] = a.Value
		}
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("xmlutil: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			el.Text = strings.TrimSpace(text.String())
			return el, nil
		}
	}
}

// TextOfChild returns the text of the first direct child named name, and
// whether such a child exists. Lookup is case-sensitive; the xdf package
// does its own case-insensitive handling where the format requires it.
func (e *Element) TextOfChild(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, c := range e.Children {
		if c.Name == name {
			return c.Text, true
		}
	}
	return "", false
}
