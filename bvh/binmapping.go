package bvh

import "github.com/achilleasa/mblurbvh/internal/mbmath"

// BinMapping is the affine transform from a centroid coordinate to a bin
// index in {0,...,NumBins-1}, computed independently per axis from a Set's
// centroid bounds. It is captured at find-time and stored on an object
// Split so that partition.go can classify each primitive using exactly the
// same mapping the binner scored it with.
type BinMapping struct {
	lower mbmath.Vec3
	scale mbmath.Vec3
}

// NewBinMapping builds a mapping over centBounds for a binner using
// numBins bins per axis. Axes whose centroid extent is (numerically) zero
// get a scale of zero, so every primitive maps to bin 0 on that axis --
// harmless since the object binner's SAH search on a zero-extent axis can
// never find a candidate with two non-empty sides.
func NewBinMapping(centBounds mbmath.Box, numBins int) BinMapping {
	side := centBounds.Side()
	var scale mbmath.Vec3
	for axis := 0; axis < 3; axis++ {
		if side[axis] > 0 {
			scale[axis] = float32(numBins) / side[axis] * (1 - 1e-6)
		}
	}
	return BinMapping{lower: centBounds.Min, scale: scale}
}

// Bin returns the clamped bin index for pos along axis.
func (m BinMapping) Bin(pos mbmath.Vec3, axis Axis) int {
	bin := int((pos[axis] - m.lower[axis]) * m.scale[axis])
	if bin < 0 {
		bin = 0
	}
	if bin >= NumBins {
		bin = NumBins - 1
	}
	return bin
}
