package bvh

import "github.com/achilleasa/mblurbvh/internal/mbmath"

// PrimInfo summarizes a Set: how many primitives it holds, the bounding
// boxes needed to set up binning and to score leaves/splits, its time
// interval, and the widest per-primitive motion-segment count seen in it.
type PrimInfo struct {
	Count int

	// CentBounds bounds the centroids of every primitive in the set (used
	// to build the object binner's axis mappings).
	CentBounds mbmath.Box

	// GeomBounds bounds the union of every primitive's linear bounds.
	GeomBounds mbmath.Box

	Time mbmath.Interval

	// MaxSegments is the largest PrimRef.Segments value in the set.
	MaxSegments uint32
}

// EmptyPrimInfo returns the identity element for AddPrimRef/Merge.
func EmptyPrimInfo(t mbmath.Interval) PrimInfo {
	return PrimInfo{
		CentBounds: mbmath.EmptyBox(),
		GeomBounds: mbmath.EmptyBox(),
		Time:       t,
	}
}

// AddPrimRef folds one more primitive into the summary.
func (pi *PrimInfo) AddPrimRef(r PrimRef) {
	pi.Count++
	pi.CentBounds.Extend(mbmath.Box{Min: r.Center(), Max: r.Center()})
	pi.GeomBounds.Extend(r.Bounds.Bounds())
	if r.Segments > pi.MaxSegments {
		pi.MaxSegments = r.Segments
	}
}

// Merge combines two summaries computed over disjoint primitive sets that
// share the same time interval.
func (pi PrimInfo) Merge(o PrimInfo) PrimInfo {
	out := pi
	out.Count += o.Count
	out.CentBounds = out.CentBounds.Union(o.CentBounds)
	out.GeomBounds = out.GeomBounds.Union(o.GeomBounds)
	if o.MaxSegments > out.MaxSegments {
		out.MaxSegments = o.MaxSegments
	}
	return out
}

// HalfArea returns the half surface area of the set's geometric bounds.
func (pi PrimInfo) HalfArea() float32 {
	return pi.GeomBounds.HalfArea()
}

// LeafSAH returns the cost of turning this set into a single leaf: its
// count quantised up to a multiple of 2^logBlockSize primitives, weighted
// by the set's own half-area -- this is intCost's multiplicand in the
// recursion driver's leaf-vs-split comparison.
func (pi PrimInfo) LeafSAH(logBlockSize uint) float32 {
	return float32(quantizeBlock(pi.Count, logBlockSize)) * pi.HalfArea()
}

// quantizeBlock rounds n up to the nearest multiple of 2^logBlockSize.
func quantizeBlock(n int, logBlockSize uint) int {
	blockSize := 1 << logBlockSize
	return (n + blockSize - 1) &^ (blockSize - 1)
}
