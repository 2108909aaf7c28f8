package core

import (
	"math"
	"testing"
)

func TestTuple_PointAndVector(t *testing.T) {
	p := Point(4.3, -4.2, 3.1)
	if !p.IsPoint() || p.IsVector() {
		t.Errorf("Expected %v to be a point", p)
	}

	v := Vector(4.3, -4.2, 3.1)
	if !v.IsVector() || v.IsPoint() {
		t.Errorf("Expected %v to be a vector", v)
	}
}

func TestTuple_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Tuple
		expected Tuple
	}{
		{
			name:     "point plus vector is a point",
			result:   Point(3, -2, 5).Add(Vector(-2, 3, 1)),
			expected: Point(1, 1, 6),
		},
		{
			name:     "point minus point is a vector",
			result:   Point(3, 2, 1).Subtract(Point(5, 6, 7)),
			expected: Vector(-2, -4, -6),
		},
		{
			name:     "point minus vector is a point",
			result:   Point(3, 2, 1).Subtract(Vector(5, 6, 7)),
			expected: Point(-2, -4, -6),
		},
		{
			name:     "vector minus vector is a vector",
			result:   Vector(3, 2, 1).Subtract(Vector(5, 6, 7)),
			expected: Vector(-2, -4, -6),
		},
		{
			name:     "negate",
			result:   NewTuple(1, -2, 3, -4).Negate(),
			expected: NewTuple(-1, 2, -3, 4),
		},
		{
			name:     "scale",
			result:   NewTuple(1, -2, 3, -4).Multiply(0.5),
			expected: NewTuple(0.5, -1, 1.5, -2),
		},
		{
			name:     "cross",
			result:   Vector(1, 2, 3).Cross(Vector(2, 3, 4)),
			expected: Vector(-1, 2, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestTuple_MagnitudeAndNormalize(t *testing.T) {
	v := Vector(1, 2, 3)
	if math.Abs(v.Magnitude()-math.Sqrt(14)) > 1e-9 {
		t.Errorf("Expected magnitude sqrt(14), got %f", v.Magnitude())
	}

	n := v.Normalize()
	if math.Abs(n.Magnitude()-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", n.Magnitude())
	}
	expected := Vector(1/math.Sqrt(14), 2/math.Sqrt(14), 3/math.Sqrt(14))
	if !n.ApproxEqual(expected) {
		t.Errorf("Expected %v, got %v", expected, n)
	}

	zero := Vector(0, 0, 0).Normalize()
	if zero != Vector(0, 0, 0) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestTuple_Dot(t *testing.T) {
	if d := Vector(1, 2, 3).Dot(Vector(2, 3, 4)); d != 20 {
		t.Errorf("Expected dot product 20, got %f", d)
	}
}

func TestTuple_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Tuple
		normal   Tuple
		expected Tuple
	}{
		{"approaching at 45 degrees", Vector(1, -1, 0), Vector(0, 1, 0), Vector(1, 1, 0)},
		{"off a slanted surface", Vector(0, -1, 0), Vector(math.Sqrt2/2, math.Sqrt2/2, 0), Vector(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Reflect(tt.normal)
			if !result.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestColor_Operations(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.ApproxEqual(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Add: got %v", got)
	}
	if got := c1.Subtract(c2); !got.ApproxEqual(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := NewColor(0.2, 0.3, 0.4).Multiply(2); !got.ApproxEqual(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := NewColor(1, 0.2, 0.4).MultiplyColor(NewColor(0.9, 1, 0.1)); !got.ApproxEqual(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("MultiplyColor: got %v", got)
	}
}
