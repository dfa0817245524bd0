package bvh

// BuildConfig holds every tunable the recursive builder needs, validated up
// front by NewBuildConfig before a build ever starts, rather than failing
// partway through a recursion.
type BuildConfig struct {
	BranchingFactor int
	MaxDepth        int
	LogBlockSize    uint
	MinLeafSize     int
	MaxLeafSize     int
	TravCost        float32
	IntCost         float32
}

// NewBuildConfig validates its arguments and returns the first violated
// sentinel error (ErrBranchingFactor, ErrLeafSizeRange, ErrCost), if any.
func NewBuildConfig(branchingFactor, maxDepth int, logBlockSize uint, minLeafSize, maxLeafSize int, travCost, intCost float32) (BuildConfig, error) {
	cfg := BuildConfig{
		BranchingFactor: branchingFactor,
		MaxDepth:        maxDepth,
		LogBlockSize:    logBlockSize,
		MinLeafSize:     minLeafSize,
		MaxLeafSize:     maxLeafSize,
		TravCost:        travCost,
		IntCost:         intCost,
	}

	if branchingFactor < 2 || branchingFactor > MaxBranchingFactor {
		return BuildConfig{}, ErrBranchingFactor
	}
	if minLeafSize > maxLeafSize {
		return BuildConfig{}, ErrLeafSizeRange
	}
	if travCost <= 0 || intCost <= 0 {
		return BuildConfig{}, ErrCost
	}
	return cfg, nil
}
