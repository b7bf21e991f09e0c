package xdf

import (
	"encoding/binary"
	"math"
)

// ClockOffsetChunk is the decoded content of a ClockOffset chunk: an
// instant (collection_time) at which a correction (offset_value) to apply
// to this stream's clock was observed.
type ClockOffsetChunk struct {
	StreamID       uint32
	CollectionTime float64
	OffsetValue    float64
}

func decodeClockOffset(content []byte) (ClockOffsetChunk, error) {
	if len(content) < 20 {
		return ClockOffsetChunk{}, newErr(BadXmlElement, "clock_offset")
	}
	streamID := binary.LittleEndian.Uint32(content[0:4])
	collectionTime := math.Float64frombits(binary.LittleEndian.Uint64(content[4:12]))
	offsetValue := math.Float64frombits(binary.LittleEndian.Uint64(content[12:20]))

	return ClockOffsetChunk{
		StreamID:       streamID,
		CollectionTime: collectionTime,
		OffsetValue:    offsetValue,
	}, nil
}
