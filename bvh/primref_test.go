package bvh

import (
	"testing"

	"github.com/achilleasa/mblurbvh/internal/mbmath"
)

func TestPrimRefCenter(t *testing.T) {
	r := PrimRef{
		Bounds: mbmath.LinearBox{
			B0: mbmath.Box{Min: mbmath.Vec3{0, 0, 0}, Max: mbmath.Vec3{2, 2, 2}},
			B1: mbmath.Box{Min: mbmath.Vec3{0, 0, 0}, Max: mbmath.Vec3{2, 2, 2}},
		},
	}
	want := mbmath.Vec3{1, 1, 1}
	if got := r.Center(); got != want {
		t.Fatalf("expected center %v; got %v", want, got)
	}
}

func TestPrimRefLessOrdersByGeomThenPrim(t *testing.T) {
	a := PrimRef{GeomID: 0, PrimID: 5}
	b := PrimRef{GeomID: 1, PrimID: 0}
	c := PrimRef{GeomID: 0, PrimID: 6}

	if !less(a, b) {
		t.Fatal("expected lower GeomID to sort first regardless of PrimID")
	}
	if less(b, a) {
		t.Fatal("less should not be symmetric for distinct keys")
	}
	if !less(a, c) {
		t.Fatal("expected lower PrimID to sort first within the same GeomID")
	}
}
