package bvh

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Stats collects the build-time counters a caller typically wants after a
// build completes: node/leaf counts, tree depth, how many primitives ended
// up in leaves, and a breakdown of which split kind fired at each level.
type Stats struct {
	Nodes            int
	Leaves           int
	MaxDepth         int
	PartitionedItems int

	ObjectSplits   int
	TemporalSplits int
	FallbackSplits int
}

func (s *Stats) recordNode(depth int) {
	s.Nodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}

func (s *Stats) recordLeaf(count int) {
	s.Leaves++
	s.PartitionedItems += count
}

func (s *Stats) recordSplit(kind SplitKind) {
	switch kind {
	case SplitObject:
		s.ObjectSplits++
	case SplitTemporal:
		s.TemporalSplits++
	default:
		s.FallbackSplits++
	}
}

// Table renders the stats as an ASCII table.
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", s.Nodes)})
	table.Append([]string{"Leaves", fmt.Sprintf("%d", s.Leaves)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Leaf primitives", fmt.Sprintf("%d", s.PartitionedItems)})
	table.Append([]string{"Object splits", fmt.Sprintf("%d", s.ObjectSplits)})
	table.Append([]string{"Temporal splits", fmt.Sprintf("%d", s.TemporalSplits)})
	table.Append([]string{"Fallback splits", fmt.Sprintf("%d", s.FallbackSplits)})
	table.Render()
	return buf.String()
}
