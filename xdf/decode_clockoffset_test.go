package xdf

import "testing"

func TestDecodeClockOffset(t *testing.T) {
	content := clockOffsetContent(9, 12.5, -0.25)
	chunk, err := decodeClockOffset(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunk.StreamID != 9 {
		t.Errorf("got stream id %d, want 9", chunk.StreamID)
	}
	if chunk.CollectionTime != 12.5 {
		t.Errorf("got collection_time %v, want 12.5", chunk.CollectionTime)
	}
	if chunk.OffsetValue != -0.25 {
		t.Errorf("got offset_value %v, want -0.25", chunk.OffsetValue)
	}
}

func TestDecodeClockOffsetTooShort(t *testing.T) {
	_, err := decodeClockOffset([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected an error for truncated content")
	}
}
