// Package scene defines the primitive store the motion-blur BVH builder
// consumes and provides one small in-memory implementation of it. The
// "real" scene -- the thing that actually owns mesh data, instancing, and
// material assignment -- is an external collaborator; this package only
// names its interface and gives the builder's tests and cmd/build.go demo
// something concrete to point the builder at.
package scene

import (
	"math"

	"github.com/achilleasa/mblurbvh/internal/mbmath"
)

// Scene is the read-only collaborator the builder queries for per-primitive
// bounds. It is read-only during a build: builders may call it concurrently
// from any number of goroutines.
type Scene interface {
	// NumTimeSegments returns the number of motion keyframes minus one for
	// the given geometry, i.e. the number of piecewise-linear motion
	// segments its primitives are defined over; a static geometry counts
	// as one segment.
	NumTimeSegments(geomID uint32) uint32

	// LinearBounds returns the linearly-interpolated bounding box of
	// primitive primID (belonging to geomID) over the time interval t,
	// plus the number of motion segments the primitive overlaps within
	// that interval.
	LinearBounds(geomID, primID uint32, t mbmath.Interval) (mbmath.LinearBox, uint32)
}

// OverlappingTimeSegments returns the number of a geometry's motion segments
// that intersect the time interval t. A small epsilon is applied before
// floor/ceil so that an interval whose endpoint lands exactly on a sample
// boundary doesn't spuriously report an extra overlapping segment. The
// result is always at least 1; a static geometry (no motion segments)
// counts as one.
func OverlappingTimeSegments(totalTimeSegments uint32, t mbmath.Interval) uint32 {
	if totalTimeSegments == 0 {
		return 1
	}
	lower := math.Floor(float64(1.0001 * t.Lo * float32(totalTimeSegments)))
	upper := math.Ceil(float64(0.9999 * t.Hi * float32(totalTimeSegments)))
	segs := upper - lower
	if segs < 1 {
		segs = 1
	}
	return uint32(segs)
}
