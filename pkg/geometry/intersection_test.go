package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()
	i1 := NewIntersection(5, s)
	i2 := NewIntersection(7, s)
	i3 := NewIntersection(-3, s)
	i4 := NewIntersection(2, s)

	tests := []struct {
		name     string
		xs       Intersections
		expected Intersection
		found    bool
	}{
		{"all positive", Intersections{NewIntersection(1, s), NewIntersection(2, s)}, NewIntersection(1, s), true},
		{"some negative", Intersections{NewIntersection(-1, s), NewIntersection(1, s)}, NewIntersection(1, s), true},
		{"all negative", Intersections{NewIntersection(-2, s), NewIntersection(-1, s)}, Intersection{}, false},
		{"unordered", Intersections{i1, i2, i3, i4}, i4, true},
		{"zero is not a hit", Intersections{NewIntersection(0, s)}, Intersection{}, false},
		{"empty", nil, Intersection{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, found := tt.xs.Hit()
			if found != tt.found {
				t.Fatalf("Expected found=%t, got %t", tt.found, found)
			}
			if hit != tt.expected {
				t.Errorf("Expected hit %v, got %v", tt.expected, hit)
			}
		})
	}
}

func TestIntersections_Sort(t *testing.T) {
	s := NewSphere()
	xs := Intersections{NewIntersection(5, s), NewIntersection(-1, s), NewIntersection(2, s), NewIntersection(2, s)}
	xs.Sort()

	expected := []float64{-1, 2, 2, 5}
	for i, x := range xs {
		if x.T != expected[i] {
			t.Errorf("Position %d: expected t=%f, got t=%f", i, expected[i], x.T)
		}
	}
}

func TestPrepareComputations_Outside(t *testing.T) {
	ray := NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	shape := NewSphere()
	comps := PrepareComputations(NewIntersection(4, shape), ray)

	if comps.T != 4 || comps.Object != shape {
		t.Errorf("Expected t and object to be copied, got %+v", comps)
	}
	if !comps.Point.ApproxEqual(core.Point(0, 0, -1)) {
		t.Errorf("Expected point(0, 0, -1), got %v", comps.Point)
	}
	if !comps.EyeV.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected eye vector(0, 0, -1), got %v", comps.EyeV)
	}
	if !comps.NormalV.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected normal vector(0, 0, -1), got %v", comps.NormalV)
	}
	if comps.Inside {
		t.Error("Expected hit to be on the outside")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	ray := NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
	comps := PrepareComputations(NewIntersection(1, NewSphere()), ray)

	if !comps.Point.ApproxEqual(core.Point(0, 0, 1)) {
		t.Errorf("Expected point(0, 0, 1), got %v", comps.Point)
	}
	if !comps.EyeV.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected eye vector(0, 0, -1), got %v", comps.EyeV)
	}
	if !comps.Inside {
		t.Error("Expected hit to be on the inside")
	}
	// Normal is flipped to face the eye
	if !comps.NormalV.ApproxEqual(core.Vector(0, 0, -1)) {
		t.Errorf("Expected flipped normal vector(0, 0, -1), got %v", comps.NormalV)
	}
}

func TestPrepareComputations_UnitEyeVector(t *testing.T) {
	ray := NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 3))
	comps := PrepareComputations(NewIntersection(4.0/3.0, NewSphere()), ray)

	if math.Abs(comps.EyeV.Magnitude()-1) > 1e-9 {
		t.Errorf("Expected unit eye vector, got length %f", comps.EyeV.Magnitude())
	}
	if !comps.Point.ApproxEqual(core.Point(0, 0, -1)) {
		t.Errorf("Expected point(0, 0, -1), got %v", comps.Point)
	}
}
