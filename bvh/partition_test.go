package bvh

import (
	"testing"

	"github.com/achilleasa/mblurbvh/internal/mbmath"
	"github.com/achilleasa/mblurbvh/scene"
)

func TestOrderDeterministicallyIsStableAcrossPermutations(t *testing.T) {
	sc := scene.NewInMemoryScene()
	boxes := []mbmath.Box{box(0), box(0), box(0), box(0)}
	prims := newStaticPrims(sc, boxes)

	// Shuffle prims into two different orders and confirm both sort to
	// the same final arrangement.
	a := append([]PrimRef(nil), prims...)
	b := []PrimRef{prims[3], prims[1], prims[0], prims[2]}

	setA := NewRootSet(a, mbmath.UnitInterval)
	setB := NewRootSet(b, mbmath.UnitInterval)
	orderDeterministically(setA)
	orderDeterministically(setB)

	for i := range a {
		if a[i].PrimID != b[i].PrimID {
			t.Fatalf("expected both permutations to converge to the same order at index %d; got %d vs %d", i, a[i].PrimID, b[i].PrimID)
		}
	}
}

func TestFallbackPartitionSplitsAtMedian(t *testing.T) {
	sc := scene.NewInMemoryScene()
	boxes := []mbmath.Box{box(0), box(0), box(0), box(0), box(0)}
	prims := newStaticPrims(sc, boxes)
	set := NewRootSet(prims, mbmath.UnitInterval)

	left, right := fallbackPartition(set, mbmath.UnitInterval)
	if left.Info.Count != 2 || right.Info.Count != 3 {
		t.Fatalf("expected a 2/3 median split of 5 items; got %d/%d", left.Info.Count, right.Info.Count)
	}
	if &left.Set.Array[0] != &right.Set.Array[0] {
		t.Fatal("expected both sides of a fallback split to share the parent's backing array")
	}
}

func TestApplySplitDispatchesInvalidToFallback(t *testing.T) {
	sc := scene.NewInMemoryScene()
	boxes := []mbmath.Box{box(0), box(0), box(1), box(1)}
	prims := newStaticPrims(sc, boxes)
	set := NewRootSet(prims, mbmath.UnitInterval)

	orderDeterministically(set)
	left, right := applySplit(sc, invalidSplit(), set, mbmath.UnitInterval)
	if left.Info.Count+right.Info.Count != 4 {
		t.Fatalf("expected the fallback path to account for every primitive; got %d+%d", left.Info.Count, right.Info.Count)
	}
}
