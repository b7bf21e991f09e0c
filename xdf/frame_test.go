package xdf

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFrameChunksRejectsMissingMagic(t *testing.T) {
	_, err := frameChunks([]byte("nope"), discardLogger())
	if !errors.Is(err, &XDFError{Kind: NoMagicNumber}) {
		t.Fatalf("got %v, want NoMagicNumber", err)
	}
}

func TestFrameChunksRejectsBadNCB(t *testing.T) {
	data := append([]byte{}, magicNumber...)
	data = append(data, 3) // ncb must be 1, 4, or 8
	_, err := frameChunks(data, discardLogger())
	if !errors.Is(err, &XDFError{Kind: InvalidNumCountBytes}) {
		t.Fatalf("got %v, want InvalidNumCountBytes", err)
	}
}

func TestFrameChunksRejectsUnknownTag(t *testing.T) {
	data := append([]byte{}, magicNumber...)
	data = append(data, 1, 2, 99, 0) // length=2, tag=99
	_, err := frameChunks(data, discardLogger())
	if !errors.Is(err, &XDFError{Kind: InvalidTag}) {
		t.Fatalf("got %v, want InvalidTag", err)
	}
}

func TestFrameChunksHappyPath(t *testing.T) {
	fh := buildChunk(TagFileHeader, fileHeaderContent("1.0"))
	data := buildFile(fh)
	chunks, err := frameChunks(data, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 || chunks[0].Tag != TagFileHeader {
		t.Fatalf("got %+v, want one FileHeader chunk", chunks)
	}
}

func TestFrameChunksToleratesTruncation(t *testing.T) {
	fh := buildChunk(TagFileHeader, fileHeaderContent("1.0"))
	data := buildFile(fh)
	// Chop off the last few bytes, mid chunk-content.
	truncated := data[:len(data)-3]
	chunks, err := frameChunks(truncated, discardLogger())
	if err != nil {
		t.Fatalf("expected truncation to be tolerated, got error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected the truncated chunk to be dropped, got %d chunks", len(chunks))
	}
}

func TestFrameChunksMissingFileHeaderAtEOF(t *testing.T) {
	sh := buildChunk(TagStreamHeader, streamHeaderContent(1, 1, "float32", ""))
	data := buildFile(sh)
	_, err := frameChunks(data, discardLogger())
	if !errors.Is(err, &XDFError{Kind: MissingFileHeader}) {
		t.Fatalf("got %v, want MissingFileHeader", err)
	}
}

func TestFrameChunksToleratesDuplicateFileHeader(t *testing.T) {
	fh1 := buildChunk(TagFileHeader, fileHeaderContent("1.0"))
	fh2 := buildChunk(TagFileHeader, fileHeaderContent("1.0"))
	data := buildFile(fh1, fh2)
	chunks, err := frameChunks(data, discardLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected parsing to stop at the duplicate, got %d chunks", len(chunks))
	}
}
