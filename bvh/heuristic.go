package bvh

import "github.com/achilleasa/mblurbvh/scene"

// chooseSplit is the combined object-and-time binning heuristic: it always
// computes the object split, and additionally computes a temporal split
// whenever the set's time range is wide enough to contain a meaningful one,
// returning whichever scores lower.
//
// A few alternative gates are conceivable here -- gating on how much the
// object split's left/right bounds overlap, forcing a temporal split
// whenever the leaf SAH beats both split SAHs, or forcing one whenever the
// object split "wasn't very successful" -- but none is applied: the cheaper
// of the two evaluated splits always wins, with no side channel that could
// override that ranking.
func chooseSplit(sc scene.Scene, set Set, pinfo PrimInfo, logBlockSize uint) Split {
	objectSplit := findObjectSplit(set, pinfo, logBlockSize)

	if pinfo.MaxSegments == 0 {
		return objectSplit
	}

	// Temporal splits are only worth considering once the window spans
	// more than two motion segments; a narrower window means every
	// primitive's bounds are already re-derived over a single motion
	// interval, so a further temporal split cannot help.
	if set.Time.Size() <= 2/float32(pinfo.MaxSegments) {
		return objectSplit
	}

	temporalSplit := findTemporalSplit(sc, set, pinfo.MaxSegments, logBlockSize)
	if temporalSplit.Valid() && temporalSplit.SAH < objectSplit.SAH {
		return temporalSplit
	}
	return objectSplit
}
