package scene

import "github.com/achilleasa/mblurbvh/internal/mbmath"

// Node is the opaque per-node payload the demo node-creator (see cmd/build.go)
// stores for each interior/leaf node the builder produces: two Vec3 corners
// plus a pair of multipurpose int32 fields whose meaning depends on whether
// the node is an interior node or a leaf.
//
// Real callers of this package's bvh.Builder are free to use any node
// representation they like -- the builder never looks inside the value
// returned by CreateNodeFunc. Node exists so the cmd/build.go demo and the
// package tests have something concrete to build and inspect.
type Node struct {
	Min   mbmath.Vec3
	LData int32

	Max   mbmath.Vec3
	RData int32

	// TimeRange is the time interval the node's bounds apply to. Nothing
	// in this package sets it, and the cmd/build.go demo leaves it at its
	// zero value.
	TimeRange mbmath.Interval
}

// SetBBox sets the node's bounding box.
func (n *Node) SetBBox(b mbmath.Box) {
	n.Min = b.Min
	n.Max = b.Max
}

// SetChildNodes marks n as an interior node pointing at left/right children.
// Child indices are always >0 in practice: index 0 is reserved for the root,
// which is never itself a child, so LData/RData>0 unambiguously means
// "interior node".
func (n *Node) SetChildNodes(left, right uint32) {
	n.LData = int32(left)
	n.RData = int32(right)
}

// ChildNodes returns the child indices set by SetChildNodes.
func (n *Node) ChildNodes() (left, right uint32) {
	return uint32(n.LData), uint32(n.RData)
}

// IsLeaf reports whether n was set up via SetPrimitives rather than
// SetChildNodes.
func (n *Node) IsLeaf() bool {
	return n.LData <= 0
}

// SetPrimitives marks n as a leaf spanning [firstPrimIndex, firstPrimIndex+count).
func (n *Node) SetPrimitives(firstPrimIndex, count uint32) {
	n.LData = -int32(firstPrimIndex)
	n.RData = int32(count)
}

// Primitives returns the leaf range set by SetPrimitives.
func (n *Node) Primitives() (firstPrimIndex, count uint32) {
	return uint32(-n.LData), uint32(n.RData)
}

// OffsetChildNodes shifts an interior node's child indices, used when
// several per-thread node arrays are concatenated into one contiguous list
// after the build completes.
func (n *Node) OffsetChildNodes(offset int32) {
	if n.IsLeaf() {
		return
	}
	n.LData += offset
	n.RData += offset
}
