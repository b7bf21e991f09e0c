package xdf

import (
	"bytes"
	"encoding/binary"
	"log/slog"
)

// magicNumber is the required 4-byte preamble of every XDF file.
var magicNumber = []byte("XDF:")

// frameChunks walks the byte buffer and splits it into RawChunks, tolerating
// mid-chunk truncation and a second FileHeader as documented in spec.md
// §4.1 and §7: both end framing early (returning the chunks read so far)
// rather than failing the whole parse.
func frameChunks(data []byte, logger *slog.Logger) ([]RawChunk, error) {
	if len(data) < len(magicNumber) || !bytes.Equal(data[:len(magicNumber)], magicNumber) {
		return nil, newErr(NoMagicNumber, nil)
	}

	offset := len(magicNumber)
	var chunks []RawChunk
	fileHeaderFound := false

	for offset < len(data) {
		ncb := int(data[offset])
		offset++

		switch ncb {
		case 1, 4, 8:
			// ok
		default:
			return nil, newErr(InvalidNumCountBytes, ncb)
		}

		if offset+ncb > len(data) {
			logger.Warn("xdf: truncated length prefix, returning chunks read so far")
			return chunks, nil
		}
		length, ok := readUintLE(data[offset:offset+ncb], ncb)
		if !ok {
			logger.Warn("xdf: truncated length prefix, returning chunks read so far")
			return chunks, nil
		}
		offset += ncb

		if offset+2 > len(data) {
			logger.Warn("xdf: truncated tag field, returning chunks read so far")
			return chunks, nil
		}
		tagCode := binary.LittleEndian.Uint16(data[offset : offset+2])

		var tag Tag
		switch Tag(tagCode) {
		case TagFileHeader:
			if fileHeaderFound {
				logger.Warn("xdf: more than one FileHeader found, returning chunks read so far")
				return chunks, nil
			}
			fileHeaderFound = true
			tag = TagFileHeader
		case TagStreamHeader, TagSamples, TagClockOffset, TagBoundary, TagStreamFooter:
			tag = Tag(tagCode)
		default:
			return nil, newErr(InvalidTag, tagCode)
		}
		offset += 2

		if length < 2 {
			logger.Warn("xdf: chunk length too short to hold a tag, returning chunks read so far")
			return chunks, nil
		}
		contentLen := int(length - 2)
		if offset+contentLen > len(data) {
			logger.Warn("xdf: chunk content truncated, returning chunks read so far")
			return chunks, nil
		}

		content := data[offset : offset+contentLen]
		offset += contentLen

		chunks = append(chunks, RawChunk{Tag: tag, ContentBytes: content})
	}

	if !fileHeaderFound {
		return nil, newErr(MissingFileHeader, nil)
	}

	return chunks, nil
}
