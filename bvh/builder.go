package bvh

import (
	"time"

	"github.com/achilleasa/mblurbvh/internal/mbmath"
	"github.com/achilleasa/mblurbvh/log"
	"github.com/achilleasa/mblurbvh/scene"
)

// Builder drives the top-down recursive build: at each BuildRecord it either
// terminates in a leaf or grows a LocalChildList of up to
// config.BranchingFactor children and recurses into each of them.
type Builder struct {
	logger log.Logger

	sc     scene.Scene
	config BuildConfig

	createAlloc CreateAllocFunc
	createNode  CreateNodeFunc
	createLeaf  CreateLeafFunc
	updateNode  UpdateNodeFunc
	progress    ProgressMonitorFunc

	stats Stats
}

// NewBuilder wires together a Builder from its scene collaborator, config,
// and callbacks. progress may be nil.
func NewBuilder(sc scene.Scene, config BuildConfig, createAlloc CreateAllocFunc, createNode CreateNodeFunc, createLeaf CreateLeafFunc, updateNode UpdateNodeFunc, progress ProgressMonitorFunc) *Builder {
	if progress == nil {
		progress = func(int) {}
	}
	return &Builder{
		logger:      log.New("bvh"),
		sc:          sc,
		config:      config,
		createAlloc: createAlloc,
		createNode:  createNode,
		createLeaf:  createLeaf,
		updateNode:  updateNode,
		progress:    progress,
	}
}

// Build constructs a tree over prims and returns whatever value the
// top-level UpdateNodeFunc/CreateLeafFunc call produced, along with the
// stats gathered along the way.
func (b *Builder) Build(prims []PrimRef) (any, Stats, error) {
	start := time.Now()
	b.stats = Stats{}

	alloc, err := b.createAlloc()
	if err != nil {
		return nil, b.stats, &AllocError{Err: err}
	}

	root := NewRootSet(prims, mbmath.UnitInterval)
	pinfo := EmptyPrimInfo(mbmath.UnitInterval)
	for _, r := range prims {
		pinfo.AddPrimRef(r)
	}

	record := BuildRecord{Set: root, Info: pinfo, Depth: 0}
	record.findSplit(b)

	result, err := b.recurse(record, alloc, true)
	b.logger.Debugf(
		"build time: %d ms, maxDepth: %d, nodes: %d, leaves: %d, leaf prims: %d, object/temporal/fallback splits: %d/%d/%d",
		time.Since(start).Nanoseconds()/1e6,
		b.stats.MaxDepth, b.stats.Nodes, b.stats.Leaves, b.stats.PartitionedItems,
		b.stats.ObjectSplits, b.stats.TemporalSplits, b.stats.FallbackSplits,
	)
	return result, b.stats, err
}

// recurse turns record into either a leaf or an interior node with up to
// config.BranchingFactor children, recursing into each child in turn.
//
// toplevel marks the first call into a subtree small enough to fall below
// SingleThreadedThreshold -- either Build's own entry call, or a call
// freshly spawned by parallelForChildren. It is false for every further
// sequential call nested inside such a subtree's descent, so progress is
// reported once per subtree entered rather than once per node inside it.
func (b *Builder) recurse(record BuildRecord, alloc Alloc, toplevel bool) (any, error) {
	if toplevel && record.Set.Size() <= SingleThreadedThreshold {
		b.progress(record.Set.Size())
	}

	depthExhausted := record.Depth+MinLargeLeafLevels >= b.config.MaxDepth
	if depthExhausted || record.Set.Size() <= b.config.MinLeafSize {
		return b.createLargeLeaf(record, alloc)
	}

	if record.Set.Size() <= b.config.MaxLeafSize {
		leafCost := b.config.IntCost * record.Info.LeafSAH(b.config.LogBlockSize)
		splitCost := b.config.TravCost*record.Info.HalfArea() + b.config.IntCost*record.Split.SAH
		if leafCost <= splitCost {
			return b.makeLeaf(record, alloc)
		}
	}

	list := newLocalChildList(record)
	for !list.full(b.config.BranchingFactor) {
		i := list.best(b.config.MinLeafSize)
		if i < 0 {
			break
		}
		cur := list.get(i)

		leftRes, rightRes := applySplit(b.sc, cur.Split, cur.Set, cur.Set.Time)
		left := BuildRecord{Set: leftRes.Set, Info: leftRes.Info, Depth: cur.Depth + 1}
		right := BuildRecord{Set: rightRes.Set, Info: rightRes.Info, Depth: cur.Depth + 1}
		left.findSplit(b)
		right.findSplit(b)
		b.stats.recordSplit(cur.Split.Kind)

		list.split(i, left, right)
	}

	children := list.finalize()
	b.stats.recordNode(record.Depth)

	node := b.createNode(record, children, alloc)

	childResults := make([]any, len(children))
	if record.Set.Size() <= SingleThreadedThreshold {
		for i, c := range children {
			res, err := b.recurse(c, alloc, false)
			if err != nil {
				return nil, err
			}
			childResults[i] = res
		}
	} else {
		errs := make([]error, len(children))
		parallelForChildren(len(children), func(i int) {
			childAlloc, err := b.createAlloc()
			if err != nil {
				errs[i] = &AllocError{Err: err}
				return
			}
			res, err := b.recurse(children[i], childAlloc, true)
			childResults[i] = res
			errs[i] = err
		})
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}
	}

	return b.updateNode(node, record.Set.Slice(), childResults), nil
}

// makeLeaf converts record directly into a leaf via createLeaf, recording
// leaf stats.
func (b *Builder) makeLeaf(record BuildRecord, alloc Alloc) (any, error) {
	b.stats.recordLeaf(record.Set.Size())
	return b.createLeaf(record, alloc), nil
}

// createLargeLeaf is the escape valve for sets that either ran out of depth
// budget or shrank to MinLeafSize or below. If the set already fits within
// MaxLeafSize it becomes a leaf directly; otherwise it has no depth budget
// left to grow a normal node from, so it is halved by the same
// deterministic median fallback partition.go uses for SplitInvalid and each
// half recurses through createLargeLeaf again, until every resulting record
// fits. MinLargeLeafLevels levels of margin are reserved on top of MaxDepth
// specifically so this recursion always has room to finish; ErrDepthExceeded
// only fires if that margin was insufficient, which indicates pathological
// input rather than a builder bug.
func (b *Builder) createLargeLeaf(record BuildRecord, alloc Alloc) (any, error) {
	if record.Depth > b.config.MaxDepth {
		return nil, ErrDepthExceeded
	}
	if record.Set.Size() <= b.config.MaxLeafSize {
		return b.makeLeaf(record, alloc)
	}

	orderDeterministically(record.Set)
	leftRes, rightRes := fallbackPartition(record.Set, record.Set.Time)
	left := BuildRecord{Set: leftRes.Set, Info: leftRes.Info, Depth: record.Depth + 1}
	right := BuildRecord{Set: rightRes.Set, Info: rightRes.Info, Depth: record.Depth + 1}
	b.stats.recordSplit(SplitInvalid)
	b.stats.recordNode(record.Depth)

	node := b.createNode(record, []BuildRecord{left, right}, alloc)

	leftResult, err := b.createLargeLeaf(left, alloc)
	if err != nil {
		return nil, err
	}
	rightResult, err := b.createLargeLeaf(right, alloc)
	if err != nil {
		return nil, err
	}

	return b.updateNode(node, record.Set.Slice(), []any{leftResult, rightResult}), nil
}
