package bvh

import "github.com/achilleasa/mblurbvh/internal/mbmath"

// PrimRef is one primitive occurrence in the current build's time window: an
// opaque (GeomID, PrimID) handle into the external scene.Scene, its linear
// bounds over that window, and the number of motion segments it spans within
// it. PrimRefs are immutable value types; the operations that "change" one
// (temporal re-derivation, in-place object partitioning) replace or move the
// value, they never mutate one in place through a pointer shared by two
// live Sets.
type PrimRef struct {
	GeomID uint32
	PrimID uint32

	Bounds mbmath.LinearBox

	// Segments is the number of motion segments this primitive spans
	// within the PrimRef's own bounds interval (>= 1).
	Segments uint32
}

// Center returns the primitive's centroid, used for object-split binning.
func (r PrimRef) Center() mbmath.Vec3 {
	return r.Bounds.Center()
}

// less orders PrimRefs by (GeomID, PrimID); used to give the fallback
// median split a fully deterministic total order regardless of how the
// parallel object partition last permuted the array. See DESIGN.md for the
// choice of composite key over a bare primitive index.
func less(a, b PrimRef) bool {
	if a.GeomID != b.GeomID {
		return a.GeomID < b.GeomID
	}
	return a.PrimID < b.PrimID
}
