package xdf

import (
	"strconv"

	"xdf/internal/xmlutil"
)

// FileHeaderChunk is the decoded content of the single FileHeader chunk.
type FileHeaderChunk struct {
	Version float32
	XML     *xmlutil.Element
}

// decodeFileHeader parses a FileHeader chunk's content, which is a single
// XML sub-document carrying a version number.
func decodeFileHeader(content []byte) (FileHeaderChunk, error) {
	root, err := xmlutil.Parse(content)
	if err != nil {
		return FileHeaderChunk{}, wrapErr(ParseChunk, nil, err)
	}

	versionText, ok := root.TextOfChild("version")
	if !ok {
		return FileHeaderChunk{}, newErr(BadXmlElement, "version")
	}
	version, err := strconv.ParseFloat(versionText, 32)
	if err != nil {
		return FileHeaderChunk{}, wrapErr(BadXmlElement, "version", err)
	}

	return FileHeaderChunk{Version: float32(version), XML: root}, nil
}
