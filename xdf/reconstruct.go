package xdf

import (
	"math"
	"sort"
)

// peekableIter walks a single Samples chunk's samples with one-element
// lookahead, needed to inspect a chunk's first sample before deciding where
// it anchors in the merged sequence.
type peekableIter struct {
	samples []Sample
	pos     int
}

func newPeekableIter(samples []Sample) *peekableIter {
	return &peekableIter{samples: samples}
}

func (p *peekableIter) peek() (Sample, bool) {
	if p.pos >= len(p.samples) {
		return Sample{}, false
	}
	return p.samples[p.pos], true
}

func (p *peekableIter) next() (Sample, bool) {
	s, ok := p.peek()
	if ok {
		p.pos++
	}
	return s, ok
}

// anchorGroup is one run of chunk iterators that starts at anchor: either
// the finite timestamp of its leading sample, or 0.0 for the very first
// chunk if that sample carries no timestamp.
type anchorGroup struct {
	anchor float64
	iters  []*peekableIter
}

// reconstructStream merges the per-chunk sample iterators belonging to one
// stream into a single ordered sample sequence, synthesizes missing
// timestamps from the stream's nominal rate, and corrects timestamps with
// the stream's clock offsets.
//
// Chunks are first grouped by "anchor timestamp": a chunk whose first
// sample carries an explicit, finite timestamp starts a new group keyed by
// that timestamp; a chunk whose first sample has none is appended to the
// most recently started group. The very first chunk anchors at 0.0 if its
// leading sample has no timestamp, matching how the reference XDF readers
// treat an untimestamped recording start. Groups are then stably sorted by
// anchor and concatenated, which is what restores global sample order when
// a stream's samples arrive interleaved across chunks.
func reconstructStream(sampleChunks []SamplesChunk, offsets []ClockOffsetChunk, hasNominalSRate bool, nominalSRate float64) []Sample {
	iters := make([]*peekableIter, len(sampleChunks))
	for i, c := range sampleChunks {
		iters[i] = newPeekableIter(c.Samples)
	}
	if len(iters) == 0 {
		return nil
	}

	var groups []*anchorGroup

	first := iters[0]
	firstAnchor := 0.0
	if s, ok := first.peek(); ok {
		if ts, hasTS := s.Timestamp(); hasTS && !math.IsInf(ts, 0) {
			firstAnchor = ts
		}
	}
	groups = append(groups, &anchorGroup{anchor: firstAnchor, iters: []*peekableIter{first}})

	for _, it := range iters[1:] {
		s, ok := it.peek()
		if !ok {
			continue
		}
		if ts, hasTS := s.Timestamp(); hasTS && !math.IsInf(ts, 0) {
			groups = append(groups, &anchorGroup{anchor: ts, iters: []*peekableIter{it}})
		} else if len(groups) > 0 {
			last := groups[len(groups)-1]
			last.iters = append(last.iters, it)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].anchor < groups[j].anchor })

	var ordered []*peekableIter
	for _, g := range groups {
		for _, it := range g.iters {
			if _, ok := it.peek(); ok {
				ordered = append(ordered, it)
			}
		}
	}

	var merged []Sample
	for _, it := range ordered {
		for {
			s, ok := it.next()
			if !ok {
				break
			}
			merged = append(merged, s)
		}
	}

	if !hasNominalSRate {
		return merged
	}

	offsetIndex := 0
	mostRecentIndex := 0
	mostRecentTS := 0.0

	out := make([]Sample, len(merged))
	for i, s := range merged {
		var ts float64
		if explicit, hasTS := s.Timestamp(); hasTS {
			mostRecentIndex, mostRecentTS = i, explicit
			ts = explicit
		} else {
			samplesSince := i - mostRecentIndex
			ts = mostRecentTS + float64(samplesSince)/nominalSRate
		}
		corrected := interpolateOffset(ts, offsets, &offsetIndex)
		out[i] = s.withTimestamp(corrected)
	}
	return out
}

// measuredSRate estimates a stream's actual sampling rate from its
// reconstructed samples' span, when the stream declares a nominal rate at
// all (0 included, for declared-but-irregular streams). It is left unset
// when fewer than two timestamped samples are available or the span is
// non-positive, to avoid dividing by zero or reporting a rate that can't
// be trusted.
func measuredSRate(samples []Sample, hasNominalSRate bool) (float64, bool) {
	if !hasNominalSRate || len(samples) == 0 {
		return 0, false
	}
	first, hasFirst := samples[0].Timestamp()
	last, hasLast := samples[len(samples)-1].Timestamp()
	if !hasFirst || !hasLast {
		return 0, false
	}
	delta := last - first
	if delta <= 0 || math.IsInf(delta, 0) || math.IsNaN(delta) {
		return 0, false
	}
	return float64(len(samples)) / delta, true
}
