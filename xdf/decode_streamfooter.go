package xdf

import (
	"encoding/binary"
	"strconv"

	"xdf/internal/xmlutil"
)

// StreamFooterChunkInfo is the subset of a stream footer's descriptor XML
// this decoder extracts, when present. The original XDF ecosystem
// populates these fields as a trailing summary; they are best-effort here
// since spec.md treats footer XML as otherwise opaque.
type StreamFooterChunkInfo struct {
	FirstTimestamp    float64
	HasFirstTimestamp bool
	LastTimestamp     float64
	HasLastTimestamp  bool
	SampleCount       uint64
	HasSampleCount    bool
	MeasuredSRate     float64
	HasMeasuredSRate  bool
}

// StreamFooterChunk is the decoded content of a StreamFooter chunk.
type StreamFooterChunk struct {
	StreamID uint32
	Info     StreamFooterChunkInfo
	XML      *xmlutil.Element
}

func decodeStreamFooter(content []byte) (StreamFooterChunk, error) {
	if len(content) < 4 {
		return StreamFooterChunk{}, newErr(BadXmlElement, "stream_id")
	}
	streamID := binary.LittleEndian.Uint32(content[:4])

	root, err := xmlutil.Parse(content[4:])
	if err != nil {
		return StreamFooterChunk{}, wrapErr(ParseChunk, streamID, err)
	}

	var info StreamFooterChunkInfo
	if text, ok := root.TextOfChild("first_timestamp"); ok {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			info.FirstTimestamp, info.HasFirstTimestamp = v, true
		}
	}
	if text, ok := root.TextOfChild("last_timestamp"); ok {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			info.LastTimestamp, info.HasLastTimestamp = v, true
		}
	}
	if text, ok := root.TextOfChild("sample_count"); ok {
		if v, err := strconv.ParseUint(text, 10, 64); err == nil {
			info.SampleCount, info.HasSampleCount = v, true
		}
	}
	if text, ok := root.TextOfChild("measured_srate"); ok {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			info.MeasuredSRate, info.HasMeasuredSRate = v, true
		}
	}

	return StreamFooterChunk{StreamID: streamID, Info: info, XML: root}, nil
}
