package bvh

import "testing"

func TestNewBuildConfigValidatesConstraints(t *testing.T) {
	specs := []struct {
		name                              string
		branchingFactor, minLeaf, maxLeaf int
		travCost, intCost                 float32
		wantErr                           error
	}{
		{"valid", 2, 1, 4, 1, 1, nil},
		{"branching factor too small", 1, 1, 4, 1, 1, ErrBranchingFactor},
		{"branching factor too large", MaxBranchingFactor + 1, 1, 4, 1, 1, ErrBranchingFactor},
		{"inverted leaf range", 2, 5, 4, 1, 1, ErrLeafSizeRange},
		{"zero travCost", 2, 1, 4, 0, 1, ErrCost},
		{"negative intCost", 2, 1, 4, 1, -1, ErrCost},
	}

	for _, s := range specs {
		_, err := NewBuildConfig(s.branchingFactor, 32, 0, s.minLeaf, s.maxLeaf, s.travCost, s.intCost)
		if err != s.wantErr {
			t.Fatalf("[%s] expected error %v; got %v", s.name, s.wantErr, err)
		}
	}
}
