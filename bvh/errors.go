package bvh

import "errors"

// The builder's error taxonomy. Degenerate sets and invalid splits are
// handled locally by the median fallback and never surface as errors; only
// configuration mistakes, depth exhaustion, and allocator failures are
// raised to the caller.
var (
	// ErrBranchingFactor is returned by NewBuildConfig when the requested
	// branching factor falls outside [2,MaxBranchingFactor].
	ErrBranchingFactor = errors.New("bvh: branching factor out of range")

	// ErrLeafSizeRange is returned by NewBuildConfig when minLeafSize
	// exceeds maxLeafSize.
	ErrLeafSizeRange = errors.New("bvh: minLeafSize must be <= maxLeafSize")

	// ErrCost is returned by NewBuildConfig when travCost or intCost is
	// not strictly positive.
	ErrCost = errors.New("bvh: travCost and intCost must be > 0")

	// ErrDepthExceeded is a fatal, builder-internal error: the recursion
	// exceeded maxDepth while still trying to construct a large leaf,
	// which the MinLargeLeafLevels safety margin should always prevent.
	// Its appearance indicates pathological input (e.g. many coincident
	// primitives forcing repeated median splits).
	ErrDepthExceeded = errors.New("bvh: depth limit reached")
)

// AllocError wraps a failure returned by the caller's CreateAllocFunc,
// propagated to Build's caller without retry.
type AllocError struct {
	Err error
}

func (e *AllocError) Error() string { return "bvh: allocator failed: " + e.Err.Error() }
func (e *AllocError) Unwrap() error { return e.Err }
