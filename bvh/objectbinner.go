package bvh

import "github.com/achilleasa/mblurbvh/internal/mbmath"

// binInfo accumulates, for each of the three axes independently, a
// histogram of primitive counts and bounds across NumBins bins. It is the
// object binner's reduction accumulator.
type binInfo struct {
	count  [3][NumBins]int
	bounds [3][NumBins]mbmath.Box
}

func newBinInfo() binInfo {
	bi := binInfo{}
	for axis := 0; axis < 3; axis++ {
		for b := 0; b < NumBins; b++ {
			bi.bounds[axis][b] = mbmath.EmptyBox()
		}
	}
	return bi
}

// add folds one primitive into every axis' histogram using mapping.
func (bi *binInfo) add(r PrimRef, mapping BinMapping) {
	c := r.Center()
	bounds := r.Bounds.Bounds()
	for axis := Axis(0); axis < 3; axis++ {
		b := mapping.Bin(c, axis)
		bi.count[axis][b]++
		bi.bounds[axis][b].Extend(bounds)
	}
}

// merge combines two histograms computed over disjoint primitive ranges.
// Addition and box union are both commutative and associative, so the
// result does not depend on how the input range was chunked.
func (bi binInfo) merge(o binInfo) binInfo {
	out := bi
	for axis := 0; axis < 3; axis++ {
		for b := 0; b < NumBins; b++ {
			out.count[axis][b] += o.count[axis][b]
			out.bounds[axis][b] = out.bounds[axis][b].Union(o.bounds[axis][b])
		}
	}
	return out
}

// binRange bins every primitive in prims[begin:end] sequentially.
func binRange(prims []PrimRef, begin, end int, mapping BinMapping) binInfo {
	bi := newBinInfo()
	for i := begin; i < end; i++ {
		bi.add(prims[i], mapping)
	}
	return bi
}

// bestObjectSplit evaluates SAH at every (axis, bin position) candidate and
// returns the cheapest one, or an invalid split if every candidate would
// leave one side empty.
func (bi binInfo) bestObjectSplit(mapping BinMapping, logBlockSize uint) Split {
	best := invalidSplit()

	for axis := Axis(0); axis < 3; axis++ {
		var lCount, rCount [NumBins]int
		var lBounds, rBounds [NumBins]mbmath.Box

		running := 0
		box := mbmath.EmptyBox()
		for b := 0; b < NumBins; b++ {
			running += bi.count[axis][b]
			box = box.Union(bi.bounds[axis][b])
			lCount[b] = running
			lBounds[b] = box
		}

		running = 0
		box = mbmath.EmptyBox()
		for b := NumBins - 1; b >= 0; b-- {
			running += bi.count[axis][b]
			box = box.Union(bi.bounds[axis][b])
			rCount[b] = running
			rBounds[b] = box
		}

		for pos := 1; pos < NumBins; pos++ {
			l, r := lCount[pos-1], rCount[pos]
			if l == 0 || r == 0 {
				continue
			}
			lBlocks := float32(quantizeBlock(l, logBlockSize))
			rBlocks := float32(quantizeBlock(r, logBlockSize))
			cost := lBounds[pos-1].HalfArea()*lBlocks + rBounds[pos].HalfArea()*rBlocks
			if cost < best.SAH {
				best = Split{
					Kind:    SplitObject,
					SAH:     cost,
					Axis:    axis,
					Pos:     pos,
					Mapping: mapping,
				}
			}
		}
	}

	return best
}

// findObjectSplit runs the full object-binning pipeline over set: build the
// bin mapping from pinfo's centroid bounds, bin every primitive (in
// parallel above ParallelThreshold), and score every candidate split. The
// returned SAH is scaled by the set's time-interval length so it can be
// compared directly against a temporal split's SAH.
func findObjectSplit(set Set, pinfo PrimInfo, logBlockSize uint) Split {
	mapping := NewBinMapping(pinfo.CentBounds, NumBins)

	bi := parallelReduce(
		set.Begin, set.End,
		ParallelReduceBlockSize, ParallelThreshold,
		func(begin, end int) binInfo { return binRange(set.Array, begin, end, mapping) },
		func(a, b binInfo) binInfo { return a.merge(b) },
	)

	split := bi.bestObjectSplit(mapping, logBlockSize)
	if split.Valid() {
		split.SAH *= pinfo.Time.Size()
	}
	return split
}
