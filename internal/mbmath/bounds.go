package mbmath

import "math"

// Box is an axis-aligned bounding box: a min and a max corner. An empty box
// has Min set to +inf and Max to -inf on every axis, so that Union with any
// real box yields that box unchanged.
type Box struct {
	Min, Max Vec3
}

// EmptyBox returns a box that Union()s away to nothing.
func EmptyBox() Box {
	return Box{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{Min: MinVec3(b.Min, o.Min), Max: MaxVec3(b.Max, o.Max)}
}

// Extend grows b in place to also contain o, for use as a reduction
// accumulator.
func (b *Box) Extend(o Box) {
	b.Min = MinVec3(b.Min, o.Min)
	b.Max = MaxVec3(b.Max, o.Max)
}

// Center returns the box midpoint.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Side returns the box's extent along each axis. A degenerate (empty) box
// yields negative components; callers that only test for "too small" need
// no special-casing since a negative side length always fails those checks.
func (b Box) Side() Vec3 {
	return b.Max.Sub(b.Min)
}

// HalfArea returns half the surface area of the box, the quantity the
// surface-area heuristic actually uses (the factor of 2 cancels out of every
// SAH comparison, so it is dropped everywhere in this package).
func (b Box) HalfArea() float32 {
	s := b.Side()
	if s[0] < 0 || s[1] < 0 || s[2] < 0 {
		return 0
	}
	return s[0]*s[1] + s[1]*s[2] + s[0]*s[2]
}

// Valid reports whether the box actually contains at least one point.
func (b Box) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Interval is a closed sub-interval [Lo,Hi] of the unit build time range
// [0,1].
type Interval struct {
	Lo, Hi float32
}

// UnitInterval is the full [0,1] build time range.
var UnitInterval = Interval{Lo: 0, Hi: 1}

// Size returns Hi-Lo.
func (t Interval) Size() float32 {
	return t.Hi - t.Lo
}

// Lerp linearly interpolates a time value inside the interval; t=0 maps to
// Lo, t=1 maps to Hi.
func (t Interval) Lerp(f float32) float32 {
	return t.Lo + f*(t.Hi-t.Lo)
}

// ContainsOpen reports whether f lies strictly inside (Lo, Hi), the test used to
// discard degenerate temporal split candidates that snap to an interval
// endpoint.
func (t Interval) ContainsOpen(f float32) bool {
	return f > t.Lo && f < t.Hi
}

// LinearBox is the pair of boxes (B0, B1) bounding a primitive whose motion
// is linearly interpolated across a time interval: at time t the primitive
// lies within Lerp(B0, B1, t).
type LinearBox struct {
	B0, B1 Box
}

// EmptyLinearBox returns the identity element for Extend/Union.
func EmptyLinearBox() LinearBox {
	e := EmptyBox()
	return LinearBox{B0: e, B1: e}
}

// Extend grows lb in place to also contain o.
func (lb *LinearBox) Extend(o LinearBox) {
	lb.B0.Extend(o.B0)
	lb.B1.Extend(o.B1)
}

// Union returns the smallest linear box containing both lb and o.
func (lb LinearBox) Union(o LinearBox) LinearBox {
	out := lb
	out.Extend(o)
	return out
}

// Bounds returns the (non-linear) box bounding the primitive across the
// whole interval, i.e. the convex hull of B0 and B1.
func (lb LinearBox) Bounds() Box {
	return lb.B0.Union(lb.B1)
}

// Center returns the centroid of Bounds(), used by the object binner.
func (lb LinearBox) Center() Vec3 {
	return lb.Bounds().Center()
}

// ExpectedHalfArea returns the time-integral of HalfArea() across the
// interpolation from B0 to B1 over t in [0,1]. Each side length of the
// interpolated box is linear in t, so every axis-pair product integrates in
// closed form; the result equals the average of the two endpoint half-areas
// minus a correction for the linear cross terms. Boxes with negative side
// lengths (empty boxes) are not clamped to zero here.
func (lb LinearBox) ExpectedHalfArea() float32 {
	s0 := lb.B0.Side()
	s1 := lb.B1.Side()
	// integral_0^1 of half-area(lerp(s0,s1,t)) dt, expanded per axis pair.
	term := func(a0, b0, a1, b1 float32) float32 {
		// area contribution of one axis pair over the linear interpolation:
		// integral (a0+(a1-a0)t)*(b0+(b1-b0)t) dt for t in [0,1]
		da := a1 - a0
		db := b1 - b0
		return a0*b0 + 0.5*(a0*db+b0*da) + da*db/3
	}
	return term(s0[0], s0[1], s1[0], s1[1]) +
		term(s0[1], s0[2], s1[1], s1[2]) +
		term(s0[0], s0[2], s1[0], s1[2])
}
