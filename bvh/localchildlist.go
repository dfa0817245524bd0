package bvh

// LocalChildList is the growth buffer the recursion driver uses to build one
// node's children up to BranchingFactor: start with the node's own
// BuildRecord as the sole entry, then repeatedly pick the largest eligible
// child and replace it with the two sides of its chosen split, until either
// BranchingFactor children exist or no further split is worth applying.
//
// Every Set produced along the way either shares its Array with an existing
// sibling (an object split) or owns a freshly allocated one (a temporal
// split, see partition.go) -- never a range that some other still-live
// child is also reading -- so growing the list never invalidates an entry
// already stored in it.
type LocalChildList struct {
	records [MaxBranchingFactor]BuildRecord
	n       int
}

// newLocalChildList seeds the list with root as its only entry.
func newLocalChildList(root BuildRecord) *LocalChildList {
	l := &LocalChildList{}
	l.records[0] = root
	l.n = 1
	return l
}

// size returns the number of entries currently in the list.
func (l *LocalChildList) size() int {
	return l.n
}

// get returns the i'th entry.
func (l *LocalChildList) get(i int) BuildRecord {
	return l.records[i]
}

// full reports whether the list has grown as large as branchingFactor
// allows (or has hit the array's hard capacity, which callers should never
// request a branchingFactor beyond -- see NewBuildConfig).
func (l *LocalChildList) full(branchingFactor int) bool {
	return l.n >= branchingFactor || l.n >= MaxBranchingFactor
}

// best returns the index of the largest entry still worth splitting: among
// entries whose primitive count exceeds minLeafSize, the one with the
// greatest geometric half-area. An entry with an invalid Split is still
// eligible -- applySplit falls back to a deterministic median split for
// SplitInvalid, so growth only actually stalls once every entry has shrunk
// to minLeafSize or below. Returns -1 if no entry qualifies, which tells
// the caller to stop growing early.
func (l *LocalChildList) best(minLeafSize int) int {
	best := -1
	var bestArea float32
	for i := 0; i < l.n; i++ {
		r := l.records[i]
		if r.Info.Count <= minLeafSize {
			continue
		}
		area := r.Info.HalfArea()
		if best == -1 || area > bestArea {
			best = i
			bestArea = area
		}
	}
	return best
}

// split replaces the entry at i with left and appends right, growing the
// list by one. Callers must only call this after confirming !full().
func (l *LocalChildList) split(i int, left, right BuildRecord) {
	l.records[i] = left
	l.records[l.n] = right
	l.n++
}

// finalize returns the list's entries as a plain slice, in the order the
// caller should hand them to CreateNodeFunc.
func (l *LocalChildList) finalize() []BuildRecord {
	return append([]BuildRecord(nil), l.records[:l.n]...)
}
