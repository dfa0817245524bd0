package bvh

import "github.com/achilleasa/mblurbvh/internal/mbmath"

// Set is the unit of work passed through the recursion: a shared primitive
// array, a half-open index range into it, and a time interval every PrimRef
// in that range is valid for.
//
// A Set produced by an object split shares its Array with its sibling --
// Array always refers to the same backing storage as its parent, and the
// two children merely disagree about which half of [Begin,End) is theirs.
// A Set produced by a temporal split instead always gets a freshly
// allocated Array (see partition.go), so no Set ever aliases storage that
// a still-live sibling is also writing to.
type Set struct {
	Array []PrimRef
	Begin, End int
	Time       mbmath.Interval
}

// NewRootSet wraps prims as the root Set for a build over the given time
// interval.
func NewRootSet(prims []PrimRef, t mbmath.Interval) Set {
	return Set{Array: prims, Begin: 0, End: len(prims), Time: t}
}

// Size returns the number of primitives in the set.
func (s Set) Size() int {
	return s.End - s.Begin
}

// Slice returns the set's own primitives, i.e. Array[Begin:End].
func (s Set) Slice() []PrimRef {
	return s.Array[s.Begin:s.End]
}
