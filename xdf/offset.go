package xdf

import "math"

// interpolateOffset maps a sample timestamp to a corrected one by piecewise
// linearly interpolating between the clock offsets bracketing it.
//
// offsetIndex is a cursor the caller keeps across a run of strictly
// increasing timestamps so each call resumes scanning where the last left
// off, making repeated calls over a sorted timestamp sequence amortized
// linear rather than quadratic in len(offsets).
func interpolateOffset(ts float64, offsets []ClockOffsetChunk, offsetIndex *int) float64 {
	if len(offsets) == 0 {
		return ts
	}

	timeOrNaN := func(i int) float64 {
		if i+1 >= len(offsets) {
			return math.NaN() // out of bounds: break the scan below rather than loop forever
		}
		return offsets[i+1].CollectionTime
	}

	if ts < offsets[0].CollectionTime {
		// Timestamp older than every offset: clamp to the first one.
		return ts + offsets[0].OffsetValue
	}

	for ts > timeOrNaN(*offsetIndex) {
		*offsetIndex++
	}

	prev := &offsets[clampIndex(*offsetIndex, len(offsets))]
	next := &offsets[clampIndex(*offsetIndex+1, len(offsets))]

	dt := next.CollectionTime - prev.CollectionTime
	var interpolated float64
	if dt > 0 {
		tn := (ts - prev.CollectionTime) / dt
		interpolated = prev.OffsetValue*(1-tn) + next.OffsetValue*tn
	} else {
		interpolated = prev.OffsetValue
	}

	return ts + interpolated
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	return i
}
