package xdf

import (
	"encoding/binary"
	"math"
)

// SamplesChunk is the decoded content of a Samples chunk: a stream id and
// the ordered samples it carries.
type SamplesChunk struct {
	StreamID uint32
	Samples  []Sample
}

// decodeSamples parses a Samples chunk's content per spec.md §4.2:
//
//	[0..4)   stream_id (u32 LE)
//	[4]      ncb  ∈ {1,4,8}
//	[5..)    num_samples (uint, width=ncb)
//	then num_samples records of (timestamp flag/value, values block)
//
// info is the declared StreamHeaderChunkInfo for stream_id, needed to know
// the channel count and format of the values block.
func decodeSamples(content []byte, streamID uint32, info StreamHeaderChunkInfo) (SamplesChunk, error) {
	if len(content) < 5 {
		return SamplesChunk{}, newErr(InvalidSample, nil)
	}
	ncb := int(content[4])
	switch ncb {
	case 1, 4, 8:
	default:
		return SamplesChunk{}, newErr(InvalidNumCountBytes, ncb)
	}

	if len(content) < 5+ncb {
		return SamplesChunk{}, newErr(InvalidSample, nil)
	}
	numSamples, ok := readUintLE(content[5:5+ncb], ncb)
	if !ok {
		return SamplesChunk{}, newErr(InvalidSample, nil)
	}

	offset := 5 + ncb
	samples := make([]Sample, 0, numSamples)

	width, fixed := info.ChannelFormat.byteWidth()

	for i := uint64(0); i < numSamples; i++ {
		ts, hasTS, n, err := extractTimestamp(content, offset)
		if err != nil {
			return SamplesChunk{}, err
		}
		offset = n

		var values Values
		if fixed {
			values, offset, err = decodeFixedValues(content, offset, info.ChannelFormat, width, int(info.ChannelCount))
		} else {
			values, offset, err = decodeStringValue(content, offset)
		}
		if err != nil {
			return SamplesChunk{}, err
		}

		if hasTS {
			samples = append(samples, NewSample(ts, values))
		} else {
			samples = append(samples, NewSampleNoTimestamp(values))
		}
	}

	return SamplesChunk{StreamID: streamID, Samples: samples}, nil
}

// extractTimestamp reads the per-sample timestamp flag byte at offset and,
// if present, the 8-byte LE f64 timestamp that follows. A flag of 0 means
// "no timestamp"; any value other than 0 or 8 is InvalidSample.
func extractTimestamp(content []byte, offset int) (ts float64, hasTS bool, next int, err error) {
	if offset >= len(content) {
		return 0, false, offset, newErr(InvalidSample, nil)
	}
	flag := content[offset]
	offset++

	switch flag {
	case 0:
		return 0, false, offset, nil
	case 8:
		if offset+8 > len(content) {
			return 0, false, offset, newErr(InvalidSample, nil)
		}
		bits := binary.LittleEndian.Uint64(content[offset : offset+8])
		return math.Float64frombits(bits), true, offset + 8, nil
	default:
		return 0, false, offset, newErr(InvalidSample, flag)
	}
}

// decodeFixedValues reads channelCount little-endian numeric elements of
// width bytes each, starting at offset. The source bytes may have no
// particular alignment, so elements are decoded one at a time via an
// endian-aware reader rather than reinterpreting the raw buffer in place;
// this avoids relying on unaligned typed loads (spec.md §9).
func decodeFixedValues(content []byte, offset int, format Format, width, channelCount int) (Values, int, error) {
	need := width * channelCount
	if offset+need > len(content) {
		return Values{}, offset, newErr(InvalidSample, nil)
	}
	block := content[offset : offset+need]

	v := Values{Format: format}
	switch format {
	case FormatInt8:
		v.Int8 = make([]int8, channelCount)
		for i := range v.Int8 {
			v.Int8[i] = int8(block[i])
		}
	case FormatInt16:
		v.Int16 = make([]int16, channelCount)
		for i := range v.Int16 {
			v.Int16[i] = int16(binary.LittleEndian.Uint16(block[i*2:]))
		}
	case FormatInt32:
		v.Int32 = make([]int32, channelCount)
		for i := range v.Int32 {
			v.Int32[i] = int32(binary.LittleEndian.Uint32(block[i*4:]))
		}
	case FormatInt64:
		v.Int64 = make([]int64, channelCount)
		for i := range v.Int64 {
			v.Int64[i] = int64(binary.LittleEndian.Uint64(block[i*8:]))
		}
	case FormatFloat32:
		v.Float32 = make([]float32, channelCount)
		for i := range v.Float32 {
			v.Float32[i] = math.Float32frombits(binary.LittleEndian.Uint32(block[i*4:]))
		}
	case FormatFloat64:
		v.Float64 = make([]float64, channelCount)
		for i := range v.Float64 {
			v.Float64[i] = math.Float64frombits(binary.LittleEndian.Uint64(block[i*8:]))
		}
	}
	return v, offset + need, nil
}

// decodeStringValue reads one String-format sample: a length-prefixed byte
// count (1/4/8-byte count-of-bytes prefix, itself preceded by a
// number-of-count-bytes selector), followed by that many UTF-8 bytes.
func decodeStringValue(content []byte, offset int) (Values, int, error) {
	if offset >= len(content) {
		return Values{}, offset, newErr(InvalidSample, nil)
	}
	lenNCB := int(content[offset])
	offset++

	switch lenNCB {
	case 1, 4, 8:
	default:
		return Values{}, offset, newErr(InvalidNumCountBytes, lenNCB)
	}

	if offset+lenNCB > len(content) {
		return Values{}, offset, newErr(InvalidSample, nil)
	}
	slen, ok := readUintLE(content[offset:offset+lenNCB], lenNCB)
	if !ok {
		return Values{}, offset, newErr(InvalidSample, nil)
	}
	offset += lenNCB

	if offset+int(slen) > len(content) {
		return Values{}, offset, newErr(InvalidSample, nil)
	}
	s := string(content[offset : offset+int(slen)])
	offset += int(slen)

	return Values{Format: FormatString, String: s}, offset, nil
}
