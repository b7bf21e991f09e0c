package xdf

import "testing"

const epsilon = 1e-14

func closeEnough(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func TestInterpolateOffsetBeforeRange(t *testing.T) {
	offsets := []ClockOffsetChunk{
		{CollectionTime: 0.0, OffsetValue: -1.0},
		{CollectionTime: 1.0, OffsetValue: 1.0},
	}
	ts := offsets[0].CollectionTime - 1.0
	idx := 0
	got := interpolateOffset(ts, offsets, &idx)
	want := ts + offsets[0].OffsetValue
	if !closeEnough(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpolateOffsetAfterRange(t *testing.T) {
	offsets := []ClockOffsetChunk{
		{CollectionTime: 0.0, OffsetValue: -1.0},
		{CollectionTime: 1.0, OffsetValue: 1.0},
		{CollectionTime: 3.0, OffsetValue: 2.0},
	}
	last := offsets[len(offsets)-1]
	ts := last.CollectionTime + 1.0
	idx := 0
	got := interpolateOffset(ts, offsets, &idx)
	want := ts + last.OffsetValue
	if !closeEnough(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpolateOffsetInside(t *testing.T) {
	cases := []struct {
		t1, v1, t2, v2 float64
	}{
		{0.0, -1.0, 1.0, 1.0},
		{0.0, 0.0, 1.0, 1.0},
		{0.0, -1.0, 1.0, 5.0},
		{4.0, -1.0, 5.0, 2.0},
	}

	for _, c := range cases {
		offsets := []ClockOffsetChunk{
			{CollectionTime: c.t1, OffsetValue: c.v1},
			{CollectionTime: c.t2, OffsetValue: c.v2},
		}
		incline := (c.v2 - c.v1) / (c.t2 - c.t1)

		for i := 0; i < 100; i++ {
			ts := c.t1 + (c.t2-c.t1)*float64(i)/100.0
			idx := 0
			got := interpolateOffset(ts, offsets, &idx)
			want := ts + ((ts-c.t1)*incline + c.v1)
			if !closeEnough(got, want) {
				t.Errorf("ts=%v: got %v, want %v", ts, got, want)
			}
		}
	}
}

func TestInterpolateOffsetNone(t *testing.T) {
	idx := 0
	for i := -20; i <= 20; i++ {
		ts := float64(i) / 10.0
		got := interpolateOffset(ts, nil, &idx)
		if got != ts {
			t.Errorf("got %v, want unchanged %v", got, ts)
		}
	}
}

func TestInterpolateOffsetDuplicateCollectionTime(t *testing.T) {
	offsets := []ClockOffsetChunk{
		{CollectionTime: 0.0, OffsetValue: 1.0},
		{CollectionTime: 0.0, OffsetValue: 3.0},
	}
	idx := 0
	got := interpolateOffset(0.0, offsets, &idx)
	want := 0.0 + offsets[0].OffsetValue
	if !closeEnough(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpolateOffsetMonotoneCursor(t *testing.T) {
	offsets := []ClockOffsetChunk{
		{CollectionTime: 0.0, OffsetValue: 0.0},
		{CollectionTime: 1.0, OffsetValue: 2.0},
		{CollectionTime: 2.0, OffsetValue: 4.0},
	}
	idx := 0
	for _, ts := range []float64{0.5, 1.5, 1.9} {
		interpolateOffset(ts, offsets, &idx)
	}
	if idx < 1 {
		t.Errorf("cursor should have advanced past the first offset, got %d", idx)
	}
}
