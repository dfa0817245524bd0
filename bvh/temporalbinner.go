package bvh

import (
	"github.com/achilleasa/mblurbvh/internal/mbmath"
	"github.com/achilleasa/mblurbvh/scene"
)

// temporalCandidate is one of the L candidate split times the temporal
// binner evaluates, snapped to a motion-sample boundary.
type temporalCandidate struct {
	center   float32
	dt0, dt1 mbmath.Interval
}

// temporalCandidates returns the (at most TemporalSplitLocations) candidate
// split times for a set spanning time and numSegments motion segments,
// discarding any candidate that snaps to (or past) an interval endpoint.
// Candidate b picks t_b = lerp(lo,hi,(b+1)/(L+1)) then snaps to the nearest
// multiple of 1/numSegments.
func temporalCandidates(t mbmath.Interval, numSegments uint32) []temporalCandidate {
	if numSegments == 0 {
		return nil
	}
	var out []temporalCandidate
	for b := 0; b < TemporalSplitLocations; b++ {
		f := float32(b+1) / float32(TemporalSplitLocations+1)
		raw := t.Lerp(f)
		center := roundToSegment(raw, numSegments)
		if !t.ContainsOpen(center) {
			continue
		}
		out = append(out, temporalCandidate{
			center: center,
			dt0:    mbmath.Interval{Lo: t.Lo, Hi: center},
			dt1:    mbmath.Interval{Lo: center, Hi: t.Hi},
		})
	}
	return out
}

func roundToSegment(t float32, numSegments uint32) float32 {
	n := float32(numSegments)
	return float32(int(t*n+0.5)) / n
}

// temporalBinInfo accumulates, for each candidate, the count and linear
// bounds union on both sides of the split.
type temporalBinInfo struct {
	count0, count1   []int
	bounds0, bounds1 []mbmath.LinearBox
}

func newTemporalBinInfo(numCandidates int) temporalBinInfo {
	tb := temporalBinInfo{
		count0:  make([]int, numCandidates),
		count1:  make([]int, numCandidates),
		bounds0: make([]mbmath.LinearBox, numCandidates),
		bounds1: make([]mbmath.LinearBox, numCandidates),
	}
	for i := range tb.bounds0 {
		tb.bounds0[i] = mbmath.EmptyLinearBox()
		tb.bounds1[i] = mbmath.EmptyLinearBox()
	}
	return tb
}

func (tb temporalBinInfo) merge(o temporalBinInfo) temporalBinInfo {
	out := tb
	for i := range out.count0 {
		out.count0[i] += o.count0[i]
		out.count1[i] += o.count1[i]
		out.bounds0[i] = out.bounds0[i].Union(o.bounds0[i])
		out.bounds1[i] = out.bounds1[i].Union(o.bounds1[i])
	}
	return out
}

func binTemporalRange(sc scene.Scene, prims []PrimRef, begin, end int, candidates []temporalCandidate) temporalBinInfo {
	tb := newTemporalBinInfo(len(candidates))
	for i := begin; i < end; i++ {
		r := prims[i]
		for c, cand := range candidates {
			lb0, segs0 := sc.LinearBounds(r.GeomID, r.PrimID, cand.dt0)
			lb1, segs1 := sc.LinearBounds(r.GeomID, r.PrimID, cand.dt1)
			tb.count0[c] += int(segs0)
			tb.count1[c] += int(segs1)
			tb.bounds0[c].Extend(lb0)
			tb.bounds1[c].Extend(lb1)
		}
	}
	return tb
}

// best picks the cheapest candidate and applies the temporal-split penalty.
func (tb temporalBinInfo) best(candidates []temporalCandidate, logBlockSize uint) Split {
	best := invalidSplit()
	for c, cand := range candidates {
		if tb.count0[c] == 0 || tb.count1[c] == 0 {
			continue
		}
		lBlocks := float32(quantizeBlock(tb.count0[c], logBlockSize))
		rBlocks := float32(quantizeBlock(tb.count1[c], logBlockSize))
		sah := tb.bounds0[c].ExpectedHalfArea()*lBlocks*cand.dt0.Size() +
			tb.bounds1[c].ExpectedHalfArea()*rBlocks*cand.dt1.Size()
		if sah < best.SAH {
			best = Split{Kind: SplitTemporal, SAH: sah, FPos: cand.center}
		}
	}
	if best.Valid() {
		best.SAH *= float32(TemporalSplitThreshold)
	}
	return best
}

// findTemporalSplit runs the temporal-binning pipeline over set, given the
// widest per-primitive motion segment count in it (numSegments, computed by
// the caller from pinfo.MaxSegments).
func findTemporalSplit(sc scene.Scene, set Set, numSegments uint32, logBlockSize uint) Split {
	candidates := temporalCandidates(set.Time, numSegments)
	if len(candidates) == 0 {
		return invalidSplit()
	}

	tb := parallelReduce(
		set.Begin, set.End,
		ParallelReduceBlockSize, ParallelThreshold,
		func(begin, end int) temporalBinInfo { return binTemporalRange(sc, set.Array, begin, end, candidates) },
		func(a, b temporalBinInfo) temporalBinInfo { return a.merge(b) },
	)

	return tb.best(candidates, logBlockSize)
}
