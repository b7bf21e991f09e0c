package xdf

import (
	"log/slog"
	"sync"

	"xdf/internal/xmlutil"
)

// Stream is one reconstructed stream from an XDF file: its declared header
// information, its samples in timestamp order with clock offsets applied,
// and whatever footer summary was present.
type Stream struct {
	ID              uint32
	Name            string
	HasName         bool
	Type            string
	HasType         bool
	ChannelCount    uint32
	ChannelFormat   Format
	NominalSRate    float64
	HasNominalSRate bool

	Header *xmlutil.Element
	Footer *xmlutil.Element // nil if no StreamFooter chunk was present

	FooterInfo StreamFooterChunkInfo

	MeasuredSRate    float64
	HasMeasuredSRate bool

	Samples []Sample
}

// XDFFile is a fully parsed XDF recording.
type XDFFile struct {
	Version float32
	Header  *xmlutil.Element
	Streams []Stream
}

// ParseOptions configures Parse and ParseConcurrent.
type ParseOptions struct {
	// Logger receives warnings about recoverable irregularities: truncated
	// trailers, a duplicate FileHeader, orphaned stream headers or
	// footers. Defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// ParseOption mutates a ParseOptions.
type ParseOption func(*ParseOptions)

// WithLogger overrides the logger used for non-fatal warnings.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(o *ParseOptions) { o.Logger = logger }
}

func resolveOptions(opts []ParseOption) ParseOptions {
	o := ParseOptions{}
	for _, apply := range opts {
		apply(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Parse decodes a complete XDF file from bytes already read into memory.
func Parse(data []byte, opts ...ParseOption) (*XDFFile, error) {
	o := resolveOptions(opts)

	rawChunks, err := frameChunks(data, o.Logger)
	if err != nil {
		return nil, err
	}

	grouped, err := groupChunks(rawChunks, o.Logger)
	if err != nil {
		return nil, err
	}

	streams := make([]Stream, 0, len(grouped.streamOrder))
	for _, id := range grouped.streamOrder {
		streams = append(streams, buildStream(id, grouped))
	}

	return &XDFFile{
		Version: grouped.fileHeader.Version,
		Header:  grouped.fileHeader.XML,
		Streams: streams,
	}, nil
}

// buildStream reconstructs one stream's samples and assembles its Stream
// value from the header/footer/offsets the grouper collected for it.
func buildStream(id uint32, grouped groupedChunks) Stream {
	header := grouped.streamHeaders[id]
	footer, hasFooter := grouped.streamFooters[id]

	samples := reconstructStream(grouped.sampleChunks[id], grouped.clockOffsets[id], header.Info.HasNominalSRate, header.Info.NominalSRate)
	srate, hasSRate := measuredSRate(samples, header.Info.HasNominalSRate)

	s := Stream{
		ID:              id,
		Name:            header.Info.Name,
		HasName:         header.Info.HasName,
		Type:            header.Info.Type,
		HasType:         header.Info.HasType,
		ChannelCount:    header.Info.ChannelCount,
		ChannelFormat:   header.Info.ChannelFormat,
		NominalSRate:    header.Info.NominalSRate,
		HasNominalSRate: header.Info.HasNominalSRate,
		Header:           header.XML,
		MeasuredSRate:    srate,
		HasMeasuredSRate: hasSRate,
		Samples:          samples,
	}
	if hasFooter {
		s.Footer = footer.XML
		s.FooterInfo = footer.Info
	}
	return s
}

// ParseConcurrent is equivalent to Parse but reconstructs each stream on its
// own worker, bounded by workers concurrent goroutines. Output is
// byte-identical to Parse: results are re-assembled in the grouper's
// original stream-encounter order regardless of which worker finishes
// first.
func ParseConcurrent(data []byte, workers int, opts ...ParseOption) (*XDFFile, error) {
	if workers < 1 {
		workers = 1
	}
	o := resolveOptions(opts)

	rawChunks, err := frameChunks(data, o.Logger)
	if err != nil {
		return nil, err
	}

	grouped, err := groupChunks(rawChunks, o.Logger)
	if err != nil {
		return nil, err
	}

	type job struct {
		index int
		id    uint32
	}

	jobs := make(chan job, len(grouped.streamOrder))
	results := make([]Stream, len(grouped.streamOrder))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = buildStream(j.id, grouped)
			}
		}()
	}

	for i, id := range grouped.streamOrder {
		jobs <- job{index: i, id: id}
	}
	close(jobs)
	wg.Wait()

	return &XDFFile{
		Version: grouped.fileHeader.Version,
		Header:  grouped.fileHeader.XML,
		Streams: results,
	}, nil
}
