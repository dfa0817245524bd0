package bvh

import (
	"sort"
	"sync"

	"github.com/achilleasa/mblurbvh/internal/mbmath"
	"github.com/achilleasa/mblurbvh/scene"
)

// partitionResult is a (Set, PrimInfo) pair, the shape every partitioning
// strategy below produces for each side of a split.
type partitionResult struct {
	Set  Set
	Info PrimInfo
}

// applySplit dispatches to the object, temporal, or fallback partitioner
// based on split.Kind.
func applySplit(sc scene.Scene, split Split, set Set, timeRange mbmath.Interval) (left, right partitionResult) {
	switch split.Kind {
	case SplitObject:
		return objectPartition(split, set, timeRange)
	case SplitTemporal:
		return temporalPartition(sc, split, set)
	default:
		orderDeterministically(set)
		return fallbackPartition(set, timeRange)
	}
}

// objectPartitionBlock is the per-block accumulator: which items in a block
// go left/right, in original order, plus their folded PrimInfo.
type objectPartitionBlock struct {
	left, right   []PrimRef
	leftI, rightI PrimInfo
}

// objectPartition permutes set.Array[set.Begin:set.End] in place so that
// every primitive classified "left" by split precedes every primitive
// classified "right", using a block-parallel classify-then-compact scheme:
// each block is classified independently and concurrently, then blocks are
// compacted into a scratch buffer in block order and copied back. This
// reaches a permutation of the range into two contiguous,
// deterministically-assigned halves without any cross-goroutine cursor
// coordination, since each block only ever writes its own scratch slice.
func objectPartition(split Split, set Set, timeRange mbmath.Interval) (left, right partitionResult) {
	begin, end := set.Begin, set.End
	empty := EmptyPrimInfo(timeRange)

	classify := func(lo, hi int) objectPartitionBlock {
		var blk objectPartitionBlock
		blk.leftI, blk.rightI = empty, empty
		for i := lo; i < hi; i++ {
			r := set.Array[i]
			if split.Mapping.Bin(r.Center(), split.Axis) < split.Pos {
				blk.left = append(blk.left, r)
				blk.leftI.AddPrimRef(r)
			} else {
				blk.right = append(blk.right, r)
				blk.rightI.AddPrimRef(r)
			}
		}
		return blk
	}

	var blocks []objectPartitionBlock
	if end-begin <= ParallelThreshold {
		blocks = []objectPartitionBlock{classify(begin, end)}
	} else {
		blockSize := ParallelPartitionBlockSize
		numBlocks := (end - begin + blockSize - 1) / blockSize
		blocks = make([]objectPartitionBlock, numBlocks)
		var wg sync.WaitGroup
		wg.Add(numBlocks)
		for b := 0; b < numBlocks; b++ {
			lo := begin + b*blockSize
			hi := lo + blockSize
			if hi > end {
				hi = end
			}
			go func(idx, lo, hi int) {
				defer wg.Done()
				blocks[idx] = classify(lo, hi)
			}(b, lo, hi)
		}
		wg.Wait()
	}

	leftInfo, rightInfo := empty, empty
	scratch := make([]PrimRef, 0, end-begin)
	for _, blk := range blocks {
		scratch = append(scratch, blk.left...)
		leftInfo = leftInfo.Merge(blk.leftI)
	}
	pivot := begin + len(scratch)
	for _, blk := range blocks {
		scratch = append(scratch, blk.right...)
		rightInfo = rightInfo.Merge(blk.rightI)
	}
	copy(set.Array[begin:end], scratch)

	leftSet := Set{Array: set.Array, Begin: begin, End: pivot, Time: timeRange}
	rightSet := Set{Array: set.Array, Begin: pivot, End: end, Time: timeRange}
	leftInfo.Time, rightInfo.Time = timeRange, timeRange
	return partitionResult{Set: leftSet, Info: leftInfo}, partitionResult{Set: rightSet, Info: rightInfo}
}

// temporalPartition produces the two sides of a temporal split. Unlike an
// object split, neither side is a subset of the parent's index range: every
// primitive in the parent set is re-derived on *both* sides, once against
// [Time.Lo,FPos] and once against [FPos,Time.Hi] -- a temporal split trades
// primitive duplication for tighter per-side bounds. Both sides are
// computed concurrently since neither has any dependency on the other.
func temporalPartition(sc scene.Scene, split Split, set Set) (left, right partitionResult) {
	dt0 := mbmath.Interval{Lo: set.Time.Lo, Hi: split.FPos}
	dt1 := mbmath.Interval{Lo: split.FPos, Hi: set.Time.Hi}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); left = temporalSide(sc, set, dt0) }()
	go func() { defer wg.Done(); right = temporalSide(sc, set, dt1) }()
	wg.Wait()
	return left, right
}

func temporalSide(sc scene.Scene, set Set, t mbmath.Interval) partitionResult {
	n := set.Size()
	arr := make([]PrimRef, n)
	info := parallelReduce(
		set.Begin, set.End,
		ParallelPartitionBlockSize, ParallelThreshold,
		func(begin, end int) PrimInfo {
			pinfo := EmptyPrimInfo(t)
			for i := begin; i < end; i++ {
				src := set.Array[i]
				lb, segs := sc.LinearBounds(src.GeomID, src.PrimID, t)
				r := PrimRef{GeomID: src.GeomID, PrimID: src.PrimID, Bounds: lb, Segments: segs}
				arr[i-set.Begin] = r
				pinfo.AddPrimRef(r)
			}
			return pinfo
		},
		func(a, b PrimInfo) PrimInfo { return a.Merge(b) },
	)
	info.Time = t
	return partitionResult{Set: Set{Array: arr, Begin: 0, End: n, Time: t}, Info: info}
}

// orderDeterministically re-sorts set's own range by (GeomID, PrimID). It is
// required before a fallback median split because the parallel object
// partition destroys the original primitive order.
func orderDeterministically(set Set) {
	sort.Slice(set.Array[set.Begin:set.End], func(i, j int) bool {
		return less(set.Array[set.Begin+i], set.Array[set.Begin+j])
	})
}

// fallbackPartition splits set at its median index, for use when the
// heuristic could not find any usable object or temporal candidate (an
// empty set, or every primitive sharing a centroid). Both children keep the
// parent's time range and share its array.
func fallbackPartition(set Set, timeRange mbmath.Interval) (left, right partitionResult) {
	begin, end := set.Begin, set.End
	mid := (begin + end) / 2

	leftInfo, rightInfo := EmptyPrimInfo(timeRange), EmptyPrimInfo(timeRange)
	for i := begin; i < mid; i++ {
		leftInfo.AddPrimRef(set.Array[i])
	}
	for i := mid; i < end; i++ {
		rightInfo.AddPrimRef(set.Array[i])
	}

	leftSet := Set{Array: set.Array, Begin: begin, End: mid, Time: timeRange}
	rightSet := Set{Array: set.Array, Begin: mid, End: end, Time: timeRange}
	return partitionResult{Set: leftSet, Info: leftInfo}, partitionResult{Set: rightSet, Info: rightInfo}
}
