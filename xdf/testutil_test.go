package xdf

import (
	"encoding/binary"
	"math"
)

// buildChunk frames content under tag using a 1-byte length prefix, the
// width the real format always permits for content this small.
func buildChunk(tag Tag, content []byte) []byte {
	length := 2 + len(content)
	buf := make([]byte, 0, 2+2+len(content))
	buf = append(buf, 1, byte(length))
	tagBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(tagBytes, uint16(tag))
	buf = append(buf, tagBytes...)
	buf = append(buf, content...)
	return buf
}

func buildFile(chunks ...[]byte) []byte {
	data := append([]byte{}, magicNumber...)
	for _, c := range chunks {
		data = append(data, c...)
	}
	return data
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func f64le(v float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}

func f32le(v float32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	return b
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func fileHeaderContent(version string) []byte {
	return []byte("<info><version>" + version + "</version></info>")
}

func streamHeaderContent(streamID uint32, channelCount uint32, format string, nominalSRate string) []byte {
	xmlStr := "<info><channel_count>" + itoa(channelCount) + "</channel_count><channel_format>" + format + "</channel_format>"
	if nominalSRate != "" {
		xmlStr += "<nominal_srate>" + nominalSRate + "</nominal_srate>"
	}
	xmlStr += "</info>"
	return concatBytes(u32le(streamID), []byte(xmlStr))
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

// samplesContent builds a Samples chunk body for a stream of Float32
// channels: stream_id, ncb=1, num_samples, then per sample a timestamp flag
// (plus 8-byte timestamp if present) and the row's float32 values.
// channelCount is not used; each row's values are written as given.
func samplesContent(streamID uint32, channelCount int, rows []struct {
	ts     float64
	hasTS  bool
	values []float32
}) []byte {
	out := concatBytes(u32le(streamID), []byte{1, byte(len(rows))})
	for _, r := range rows {
		if r.hasTS {
			out = append(out, 8)
			out = append(out, f64le(r.ts)...)
		} else {
			out = append(out, 0)
		}
		for _, v := range r.values {
			out = append(out, f32le(v)...)
		}
	}
	_ = channelCount
	return out
}

func clockOffsetContent(streamID uint32, collectionTime, offsetValue float64) []byte {
	return concatBytes(u32le(streamID), f64le(collectionTime), f64le(offsetValue))
}
