package bvh

// BuildRecord is the unit of recursion: a Set together with its summary,
// its chosen split, and its depth in the tree being built. It is created by
// a parent's partitioning step and consumed by exactly one recursive call.
type BuildRecord struct {
	Set   Set
	Info  PrimInfo
	Split Split
	Depth int
}

// findSplit computes and stores this record's split, mutating nothing but
// the record itself.
func (r *BuildRecord) findSplit(b *Builder) {
	r.Split = chooseSplit(b.sc, r.Set, r.Info, b.config.LogBlockSize)
}
