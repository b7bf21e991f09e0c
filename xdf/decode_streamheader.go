package xdf

import (
	"encoding/binary"
	"strconv"
	"strings"

	"xdf/internal/xmlutil"
)

// StreamHeaderChunkInfo is the subset of a stream header's descriptor XML
// the decoder extracts opportunistically. channel_count and
// channel_format are required; the rest are best-effort.
type StreamHeaderChunkInfo struct {
	Name            string
	HasName         bool
	Type            string
	HasType         bool
	ChannelCount    uint32
	NominalSRate    float64
	HasNominalSRate bool
	ChannelFormat   Format
}

// StreamHeaderChunk is the decoded content of a StreamHeader chunk.
type StreamHeaderChunk struct {
	StreamID uint32
	Info     StreamHeaderChunkInfo
	XML      *xmlutil.Element
}

func formatFromToken(token string) (Format, bool) {
	switch strings.ToLower(token) {
	case "int8":
		return FormatInt8, true
	case "int16":
		return FormatInt16, true
	case "int32":
		return FormatInt32, true
	case "int64":
		return FormatInt64, true
	case "float32":
		return FormatFloat32, true
	case "double64":
		return FormatFloat64, true
	case "string":
		return FormatString, true
	default:
		return 0, false
	}
}

// decodeStreamHeader parses a StreamHeader chunk: a 4-byte little-endian
// stream id followed by the stream's descriptor XML.
func decodeStreamHeader(content []byte) (StreamHeaderChunk, error) {
	if len(content) < 4 {
		return StreamHeaderChunk{}, newErr(BadXmlElement, "stream_id")
	}
	streamID := binary.LittleEndian.Uint32(content[:4])

	root, err := xmlutil.Parse(content[4:])
	if err != nil {
		return StreamHeaderChunk{}, wrapErr(ParseChunk, streamID, err)
	}

	var info StreamHeaderChunkInfo

	countText, ok := root.TextOfChild("channel_count")
	if !ok {
		return StreamHeaderChunk{}, newErr(BadXmlElement, "channel_count")
	}
	count, err := strconv.ParseUint(countText, 10, 32)
	if err != nil {
		return StreamHeaderChunk{}, wrapErr(BadXmlElement, "channel_count", err)
	}
	info.ChannelCount = uint32(count)

	formatText, ok := root.TextOfChild("channel_format")
	if !ok {
		return StreamHeaderChunk{}, newErr(BadXmlElement, "channel_format")
	}
	format, ok := formatFromToken(formatText)
	if !ok {
		return StreamHeaderChunk{}, newErr(BadXmlElement, "channel_format")
	}
	info.ChannelFormat = format

	if srateText, ok := root.TextOfChild("nominal_srate"); ok {
		if srate, err := strconv.ParseFloat(srateText, 64); err == nil {
			info.NominalSRate = srate
			info.HasNominalSRate = true
		}
	}

	if name, ok := root.TextOfChild("name"); ok {
		info.Name = name
		info.HasName = true
	}
	if typ, ok := root.TextOfChild("type"); ok {
		info.Type = typ
		info.HasType = true
	}

	return StreamHeaderChunk{StreamID: streamID, Info: info, XML: root}, nil
}
