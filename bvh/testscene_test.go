package bvh

import (
	"github.com/achilleasa/mblurbvh/internal/mbmath"
	"github.com/achilleasa/mblurbvh/scene"
)

// newStaticPrims registers each box as its own single-keyframe (static)
// primitive on a single geometry and returns the matching PrimRefs.
func newStaticPrims(sc *scene.InMemoryScene, boxes []mbmath.Box) []PrimRef {
	prims := make([]scene.MotionPrimitive, len(boxes))
	for i, b := range boxes {
		prims[i] = scene.MotionPrimitive{Keyframes: []scene.Keyframe{{Time: 0, Box: b}}}
	}
	geomID := sc.AddGeometry(prims)

	refs := make([]PrimRef, len(boxes))
	for i := range boxes {
		lb, segs := sc.LinearBounds(geomID, uint32(i), mbmath.UnitInterval)
		refs[i] = PrimRef{GeomID: geomID, PrimID: uint32(i), Bounds: lb, Segments: segs}
	}
	return refs
}

// newMovingPrims registers each pair of (start,end) boxes as a two-keyframe
// motion primitive on a single geometry, moving linearly across [0,1].
func newMovingPrims(sc *scene.InMemoryScene, starts, ends []mbmath.Box) []PrimRef {
	prims := make([]scene.MotionPrimitive, len(starts))
	for i := range starts {
		prims[i] = scene.MotionPrimitive{Keyframes: []scene.Keyframe{
			{Time: 0, Box: starts[i]},
			{Time: 1, Box: ends[i]},
		}}
	}
	geomID := sc.AddGeometry(prims)

	refs := make([]PrimRef, len(starts))
	for i := range starts {
		lb, segs := sc.LinearBounds(geomID, uint32(i), mbmath.UnitInterval)
		refs[i] = PrimRef{GeomID: geomID, PrimID: uint32(i), Bounds: lb, Segments: segs}
	}
	return refs
}

func rootPrimInfo(t mbmath.Interval, prims []PrimRef) PrimInfo {
	pinfo := EmptyPrimInfo(t)
	for _, r := range prims {
		pinfo.AddPrimRef(r)
	}
	return pinfo
}
