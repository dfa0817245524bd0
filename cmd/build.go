// Package cmd wires the bvh builder up to command-line entry points, one
// file per subcommand.
package cmd

import (
	"fmt"
	"math/rand"

	"github.com/achilleasa/mblurbvh/bvh"
	"github.com/achilleasa/mblurbvh/internal/mbmath"
	"github.com/achilleasa/mblurbvh/log"
	"github.com/achilleasa/mblurbvh/scene"
	"github.com/urfave/cli"
)

// BuildDemo is the Action for the "build" CLI subcommand: it generates a
// synthetic motion-blurred point cloud, runs it through bvh.Builder, and
// prints the resulting stats table.
func BuildDemo(c *cli.Context) error {
	logger := log.New("cmd")

	numPrims := c.Int("prims")
	numKeyframes := c.Int("keyframes")
	seed := int64(c.Int("seed"))
	branchingFactor := c.Int("branching-factor")
	maxLeafSize := c.Int("max-leaf-size")

	sc, prims := buildSyntheticScene(numPrims, numKeyframes, seed)
	logger.Infof("generated %d primitives across %d keyframes", numPrims, numKeyframes)

	cfg, err := bvh.NewBuildConfig(branchingFactor, 64, 0, 1, maxLeafSize, 1.0, 1.0)
	if err != nil {
		return err
	}

	var nodes []scene.Node
	createAlloc := func() (bvh.Alloc, error) { return nil, nil }
	createNode := func(parent bvh.BuildRecord, children []bvh.BuildRecord, alloc bvh.Alloc) any {
		var n scene.Node
		box := mbmath.EmptyBox()
		for _, ch := range children {
			box.Extend(ch.Info.GeomBounds)
		}
		n.SetBBox(box)
		nodes = append(nodes, n)
		return uint32(len(nodes) - 1)
	}
	createLeaf := func(record bvh.BuildRecord, alloc bvh.Alloc) any {
		var n scene.Node
		n.SetBBox(record.Info.GeomBounds)
		n.SetPrimitives(uint32(record.Set.Begin), uint32(record.Set.Size()))
		nodes = append(nodes, n)
		return uint32(len(nodes) - 1)
	}
	updateNode := func(node any, prims []bvh.PrimRef, childResults []any) any {
		idx := node.(uint32)
		if len(childResults) == 2 {
			l := childResults[0].(uint32)
			r := childResults[1].(uint32)
			nodes[idx].SetChildNodes(l, r)
		}
		return idx
	}

	builder := bvh.NewBuilder(sc, cfg, createAlloc, createNode, createLeaf, updateNode, nil)
	_, stats, err := builder.Build(prims)
	if err != nil {
		return err
	}

	fmt.Println(stats.Table())
	return nil
}

// buildSyntheticScene creates a deterministic (given seed) random cloud of
// motion primitives split across a handful of geometries, for the demo
// command.
func buildSyntheticScene(numPrims, numKeyframes int, seed int64) (*scene.InMemoryScene, []bvh.PrimRef) {
	rng := rand.New(rand.NewSource(seed))
	sc := scene.NewInMemoryScene()

	const numGeoms = 4
	perGeom := make([][]scene.MotionPrimitive, numGeoms)
	for i := 0; i < numPrims; i++ {
		g := i % numGeoms
		keyframes := make([]scene.Keyframe, numKeyframes)
		base := mbmath.Vec3{rng.Float32() * 10, rng.Float32() * 10, rng.Float32() * 10}
		for k := 0; k < numKeyframes; k++ {
			t := float32(k) / float32(numKeyframes-1)
			offset := mbmath.Vec3{rng.Float32(), rng.Float32(), rng.Float32()}
			min := base.Add(offset.Mul(t))
			max := min.Add(mbmath.Vec3{0.1, 0.1, 0.1})
			keyframes[k] = scene.Keyframe{Time: t, Box: mbmath.Box{Min: min, Max: max}}
		}
		perGeom[g] = append(perGeom[g], scene.MotionPrimitive{Keyframes: keyframes})
	}

	var prims []bvh.PrimRef
	for g := 0; g < numGeoms; g++ {
		geomID := sc.AddGeometry(perGeom[g])
		for primID := range perGeom[g] {
			lb, segs := sc.LinearBounds(geomID, uint32(primID), mbmath.UnitInterval)
			prims = append(prims, bvh.PrimRef{
				GeomID:   geomID,
				PrimID:   uint32(primID),
				Bounds:   lb,
				Segments: segs,
			})
		}
	}
	return sc, prims
}
