package xdf

import (
	"encoding/binary"
	"log/slog"
	"math"
)

// groupedChunks is the result of decoding and routing every RawChunk by tag
// and, where applicable, stream id.
type groupedChunks struct {
	fileHeader FileHeaderChunk

	streamOrder   []uint32 // first-seen order of StreamHeader ids, for deterministic output
	streamHeaders map[uint32]StreamHeaderChunk
	streamFooters map[uint32]StreamFooterChunk
	clockOffsets  map[uint32][]ClockOffsetChunk
	sampleChunks  map[uint32][]SamplesChunk // one entry per originating Samples chunk, arrival order
}

// groupChunks decodes every RawChunk and distributes it per spec.md §4.3.
func groupChunks(chunks []RawChunk, logger *slog.Logger) (groupedChunks, error) {
	g := groupedChunks{
		streamHeaders: make(map[uint32]StreamHeaderChunk),
		streamFooters: make(map[uint32]StreamFooterChunk),
		clockOffsets:  make(map[uint32][]ClockOffsetChunk),
		sampleChunks:  make(map[uint32][]SamplesChunk),
	}
	streamInfoMap := make(map[uint32]StreamHeaderChunkInfo)
	haveFileHeader := false

	for _, chunk := range chunks {
		switch chunk.Tag {
		case TagFileHeader:
			fh, err := decodeFileHeader(chunk.ContentBytes)
			if err != nil {
				return groupedChunks{}, err
			}
			g.fileHeader = fh
			haveFileHeader = true

		case TagStreamHeader:
			sh, err := decodeStreamHeader(chunk.ContentBytes)
			if err != nil {
				return groupedChunks{}, err
			}
			if _, exists := g.streamHeaders[sh.StreamID]; !exists {
				g.streamOrder = append(g.streamOrder, sh.StreamID)
			}
			g.streamHeaders[sh.StreamID] = sh
			streamInfoMap[sh.StreamID] = sh.Info

		case TagStreamFooter:
			sf, err := decodeStreamFooter(chunk.ContentBytes)
			if err != nil {
				return groupedChunks{}, err
			}
			g.streamFooters[sf.StreamID] = sf

		case TagSamples:
			if len(chunk.ContentBytes) < 4 {
				return groupedChunks{}, newErr(InvalidSample, nil)
			}
			streamID := binary.LittleEndian.Uint32(chunk.ContentBytes[:4])
			info, ok := streamInfoMap[streamID]
			if !ok {
				return groupedChunks{}, newErr(MissingStreamHeader, streamID)
			}
			sc, err := decodeSamples(chunk.ContentBytes, streamID, info)
			if err != nil {
				return groupedChunks{}, err
			}
			g.sampleChunks[streamID] = append(g.sampleChunks[streamID], sc)

		case TagClockOffset:
			co, err := decodeClockOffset(chunk.ContentBytes)
			if err != nil {
				return groupedChunks{}, err
			}
			g.clockOffsets[co.StreamID] = append(g.clockOffsets[co.StreamID], co)

		case TagBoundary:
			decodeBoundary(chunk.ContentBytes)
		}
	}

	if !haveFileHeader {
		return groupedChunks{}, newErr(MissingFileHeader, nil)
	}

	for id := range g.clockOffsets {
		filtered := make([]ClockOffsetChunk, 0, len(g.clockOffsets[id]))
		for _, co := range g.clockOffsets[id] {
			if math.IsNaN(co.CollectionTime) || math.IsInf(co.CollectionTime, 0) ||
				math.IsNaN(co.OffsetValue) || math.IsInf(co.OffsetValue, 0) {
				continue
			}
			filtered = append(filtered, co)
		}
		for i := 1; i < len(filtered); i++ {
			if filtered[i].CollectionTime < filtered[i-1].CollectionTime {
				return groupedChunks{}, newErr(InvalidClockOffset, id)
			}
		}
		g.clockOffsets[id] = filtered
	}

	for id := range g.streamHeaders {
		if _, ok := g.streamFooters[id]; !ok {
			logger.Warn("xdf: stream header without matching footer", "stream_id", id)
		}
	}
	for id := range g.streamFooters {
		if _, ok := g.streamHeaders[id]; !ok {
			logger.Warn("xdf: stream footer without matching header", "stream_id", id)
		}
	}

	return g, nil
}
