package xdf

import (
	"encoding/binary"
	"math"
)

// Tag identifies the kind of a chunk, as laid out in the file format.
type Tag uint16

const (
	TagFileHeader   Tag = 1
	TagStreamHeader Tag = 2
	TagSamples      Tag = 3
	TagClockOffset  Tag = 4
	TagBoundary     Tag = 5
	TagStreamFooter Tag = 6
)

func (t Tag) String() string {
	switch t {
	case TagFileHeader:
		return "FileHeader"
	case TagStreamHeader:
		return "StreamHeader"
	case TagSamples:
		return "Samples"
	case TagClockOffset:
		return "ClockOffset"
	case TagBoundary:
		return "Boundary"
	case TagStreamFooter:
		return "StreamFooter"
	default:
		return "Unknown"
	}
}

// RawChunk is a chunk as framed from the byte stream, before tag-specific
// decoding: a tag plus the content bytes that followed it (i.e. everything
// after the 2-byte tag field, up to the chunk's declared length).
type RawChunk struct {
	Tag          Tag
	ContentBytes []byte
}

// Format is the closed enumeration of channel element types a stream can
// declare.
type Format int

const (
	FormatInt8 Format = iota
	FormatInt16
	FormatInt32
	FormatInt64
	FormatFloat32
	FormatFloat64
	FormatString
)

func (f Format) String() string {
	switch f {
	case FormatInt8:
		return "int8"
	case FormatInt16:
		return "int16"
	case FormatInt32:
		return "int32"
	case FormatInt64:
		return "int64"
	case FormatFloat32:
		return "float32"
	case FormatFloat64:
		return "float64"
	case FormatString:
		return "string"
	default:
		return "unknown"
	}
}

// byteWidth returns the fixed element width in bytes for numeric formats,
// and ok=false for String (which has no fixed element width).
func (f Format) byteWidth() (width int, ok bool) {
	switch f {
	case FormatInt8:
		return 1, true
	case FormatInt16:
		return 2, true
	case FormatInt32:
		return 4, true
	case FormatInt64:
		return 8, true
	case FormatFloat32:
		return 4, true
	case FormatFloat64:
		return 8, true
	default:
		return 0, false
	}
}

// Values carries exactly one vector of elements of a single Format. String
// values carry a single decoded string rather than a vector, per the
// format's definition: one sample of String format is one string.
type Values struct {
	Format  Format
	Int8    []int8
	Int16   []int16
	Int32   []int32
	Int64   []int64
	Float32 []float32
	Float64 []float64
	String  string
}

// Sample is one row of a stream: an optional explicit timestamp plus its
// values. A missing timestamp is represented as NaN internally and as
// (0, false) via Timestamp(); it is derived from the
// preceding timestamp and the stream's nominal rate during reconstruction.
type Sample struct {
	ts     float64 // math.NaN() means "no explicit timestamp"
	Values Values
}

// NewSample builds a Sample with an explicit timestamp.
func NewSample(ts float64, values Values) Sample {
	return Sample{ts: ts, Values: values}
}

// NewSampleNoTimestamp builds a Sample with no explicit timestamp.
func NewSampleNoTimestamp(values Values) Sample {
	return Sample{ts: math.NaN(), Values: values}
}

// Timestamp returns the sample's explicit timestamp and whether one is
// present. Only NaN counts as absent; an infinite timestamp is reported
// with ok=true.
func (s Sample) Timestamp() (float64, bool) {
	if math.IsNaN(s.ts) {
		return 0, false
	}
	return s.ts, true
}

// withTimestamp returns a copy of s with its timestamp replaced.
func (s Sample) withTimestamp(ts float64) Sample {
	s.ts = ts
	return s
}

// little-endian unsigned integer decode of width 1, 4, or 8 bytes, used for
// the variable-length count prefixes (chunk length, sample count, string
// length) that appear throughout the format.
func readUintLE(b []byte, ncb int) (uint64, bool) {
	if len(b) < ncb {
		return 0, false
	}
	switch ncb {
	case 1:
		return uint64(b[0]), true
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), true
	case 8:
		return binary.LittleEndian.Uint64(b), true
	default:
		return 0, false
	}
}
