package scene

import "github.com/achilleasa/mblurbvh/internal/mbmath"

// Keyframe is one sample of a primitive's bounding box at a fixed point in
// time. A primitive with a single keyframe is static; two or more keyframes
// make it motion blurred, spanning len(Keyframes)-1 motion segments.
type Keyframe struct {
	Time float32
	Box  mbmath.Box
}

// MotionPrimitive is one primitive's full motion description, keyed by the
// (GeomID, PrimID) pair used elsewhere in this module.
type MotionPrimitive struct {
	Keyframes []Keyframe
}

// bounds returns the box a linearly-interpolated primitive occupies at time
// t, found by locating the keyframe segment containing t and lerping its
// two corners.
func (p MotionPrimitive) bounds(t float32) mbmath.Box {
	if len(p.Keyframes) == 1 {
		return p.Keyframes[0].Box
	}
	for i := 0; i < len(p.Keyframes)-1; i++ {
		a, b := p.Keyframes[i], p.Keyframes[i+1]
		if t >= a.Time && t <= b.Time {
			f := float32(0)
			if b.Time > a.Time {
				f = (t - a.Time) / (b.Time - a.Time)
			}
			return mbmath.Box{
				Min: a.Box.Min.Lerp(b.Box.Min, f),
				Max: a.Box.Max.Lerp(b.Box.Max, f),
			}
		}
	}
	return p.Keyframes[len(p.Keyframes)-1].Box
}

// InMemoryScene is a small Scene implementation backed by per-geometry
// motion primitive slices, meant for tests and the cmd/build.go demo -- a
// production caller would back Scene with its real asset store instead.
type InMemoryScene struct {
	geoms [][]MotionPrimitive
}

// NewInMemoryScene creates an empty scene. Use AddGeometry to register
// per-geometry primitive lists.
func NewInMemoryScene() *InMemoryScene {
	return &InMemoryScene{}
}

// AddGeometry registers a new geometry made of the given motion primitives
// and returns its geomID.
func (s *InMemoryScene) AddGeometry(prims []MotionPrimitive) uint32 {
	s.geoms = append(s.geoms, prims)
	return uint32(len(s.geoms) - 1)
}

// NumTimeSegments implements Scene.
func (s *InMemoryScene) NumTimeSegments(geomID uint32) uint32 {
	prims := s.geoms[geomID]
	max := uint32(1)
	for _, p := range prims {
		if n := uint32(len(p.Keyframes) - 1); n > max {
			max = n
		}
	}
	return max
}

// LinearBounds implements Scene.
func (s *InMemoryScene) LinearBounds(geomID, primID uint32, t mbmath.Interval) (mbmath.LinearBox, uint32) {
	p := s.geoms[geomID][primID]
	lb := mbmath.LinearBox{B0: p.bounds(t.Lo), B1: p.bounds(t.Hi)}
	segs := OverlappingTimeSegments(uint32(len(p.Keyframes)-1), t)
	return lb, segs
}
