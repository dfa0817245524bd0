package bvh

// Alloc is an opaque, thread-local allocator handle returned by
// CreateAllocFunc. This package never looks inside it; it exists purely to
// be threaded through to CreateNodeFunc/CreateLeafFunc so callers can back
// node/leaf storage with a per-goroutine arena.
type Alloc interface{}

// CreateAllocFunc produces a thread-local allocator handle. It is called
// once per goroutine the recursive builder spawns. An error return is
// treated as a fatal allocator failure and aborts the build.
type CreateAllocFunc func() (Alloc, error)

// CreateNodeFunc is given the parent BuildRecord and its N freshly split
// children and returns an opaque node handle. It is responsible for storing
// each child's bounds in whatever node layout the caller uses (static AABB,
// linear AABB, or a 4D AABB carrying a time interval).
type CreateNodeFunc func(parent BuildRecord, children []BuildRecord, alloc Alloc) any

// CreateLeafFunc turns a terminal BuildRecord into an opaque leaf handle.
type CreateLeafFunc func(record BuildRecord, alloc Alloc) any

// UpdateNodeFunc is called after every one of a node's children has been
// recursed into, receiving the node handle CreateNodeFunc returned, the
// parent's own primitive slice, and each child's result (in the same order
// children were passed to CreateNodeFunc). It returns whatever reduced
// value the caller wants recurse() to hand up to its own parent.
type UpdateNodeFunc func(node any, prims []PrimRef, childResults []any) any

// ProgressMonitorFunc is invoked whenever the builder starts processing a
// sub-tree of size <= SingleThreadedThreshold. It must not panic; the
// builder does not recover from it.
type ProgressMonitorFunc func(count int)
