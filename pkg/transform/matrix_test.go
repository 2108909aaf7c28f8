package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestMatrix_NewAndAt(t *testing.T) {
	m := New([][]float64{
		{1, 2, 3, 4},
		{5.5, 6.5, 7.5, 8.5},
		{9, 10, 11, 12},
		{13.5, 14.5, 15.5, 16.5},
	})

	tests := []struct {
		r, c     int
		expected float64
	}{
		{0, 0, 1}, {0, 3, 4}, {1, 0, 5.5}, {1, 2, 7.5}, {2, 2, 11}, {3, 0, 13.5}, {3, 2, 15.5},
	}
	for _, tt := range tests {
		if got := m.At(tt.r, tt.c); got != tt.expected {
			t.Errorf("At(%d,%d): expected %f, got %f", tt.r, tt.c, tt.expected, got)
		}
	}

	if m.Rows() != 4 || m.Cols() != 4 {
		t.Errorf("Expected 4x4, got %dx%d", m.Rows(), m.Cols())
	}
}

func TestMatrix_Equal(t *testing.T) {
	a := New([][]float64{{1, 2}, {3, 4}})
	b := New([][]float64{{1, 2}, {3, 4}})
	c := New([][]float64{{1, 2}, {3, 5}})

	if !a.Equal(b) {
		t.Error("Expected identical matrices to be equal")
	}
	if a.Equal(c) {
		t.Error("Expected different matrices to differ")
	}
	if a.Equal(Identity(3)) {
		t.Error("Expected matrices of different size to differ")
	}
}

func TestMatrix_Multiply(t *testing.T) {
	a := New([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	})
	b := New([][]float64{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	})
	expected := New([][]float64{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	})

	if got := a.Multiply(b); !got.Equal(expected) {
		t.Errorf("Expected\n%v got\n%v", expected, got)
	}
}

func TestMatrix_IdentityIsNeutral(t *testing.T) {
	matrices := []Matrix{
		New([][]float64{{1, 2}, {3, 4}}),
		New([][]float64{{1, 2, 6}, {-5, 8, -4}, {2, 6, 4}}),
		New([][]float64{
			{0, 1, 2, 4},
			{1, 2, 4, 8},
			{2, 4, 8, 16},
			{4, 8, 16, 32},
		}),
	}

	for _, m := range matrices {
		id := Identity(m.Rows())
		if !m.Multiply(id).Equal(m) {
			t.Errorf("M * I != M for\n%v", m)
		}
		if !id.Multiply(m).Equal(m) {
			t.Errorf("I * M != M for\n%v", m)
		}
	}
}

func TestMatrix_Apply(t *testing.T) {
	a := New([][]float64{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	})
	got := a.Apply(core.NewTuple(1, 2, 3, 1))
	if expected := core.NewTuple(18, 24, 33, 1); got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	tuple := core.NewTuple(1, 2, 3, 4)
	if got := Identity(4).Apply(tuple); got != tuple {
		t.Errorf("Expected identity to leave %v unchanged, got %v", tuple, got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := New([][]float64{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	})
	expected := New([][]float64{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 5, 5},
		{0, 8, 3, 8},
	})

	if got := a.Transpose(); !got.Equal(expected) {
		t.Errorf("Expected\n%v got\n%v", expected, got)
	}
	if !a.Transpose().Transpose().Equal(a) {
		t.Error("Expected transposing twice to give back the original")
	}
	if !Identity(4).Transpose().Equal(Identity(4)) {
		t.Error("Expected transposed identity to be identity")
	}

	rect := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	if tr := rect.Transpose(); tr.Rows() != 3 || tr.Cols() != 2 || tr.At(2, 1) != 6 {
		t.Errorf("Unexpected transpose of non-square matrix\n%v", tr)
	}
}

func TestMatrix_Determinant(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix
		expected float64
	}{
		{"2x2", New([][]float64{{1, 5}, {-3, 2}}), 17},
		{"3x3", New([][]float64{{1, 2, 6}, {-5, 8, -4}, {2, 6, 4}}), -196},
		{"4x4", New([][]float64{
			{-2, -8, 3, 5},
			{-3, 1, 7, 3},
			{1, 2, -9, 6},
			{-6, 7, 7, -9},
		}), -4071},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected determinant %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := New([][]float64{
		{8, -5, 9, 2},
		{7, 5, 6, 1},
		{-6, 0, 9, 6},
		{-3, 0, -9, -4},
	})
	expected := New([][]float64{
		{-0.15385, -0.15385, -0.28205, -0.53846},
		{-0.07692, 0.12308, 0.02564, 0.03077},
		{0.35897, 0.35897, 0.43590, 0.92308},
		{-0.69231, -0.69231, -0.76923, -1.92308},
	})

	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !inv.ApproxEqual(expected) {
		t.Errorf("Expected\n%v got\n%v", expected, inv)
	}
}

func TestMatrix_InverseUndoesMultiply(t *testing.T) {
	a := New([][]float64{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	})
	b := New([][]float64{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	})

	inv, err := b.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := a.Multiply(b).Multiply(inv); !got.ApproxEqual(a) {
		t.Errorf("Expected C * inverse(B) to give back A, got\n%v", got)
	}
}

func TestMatrix_InverseSingular(t *testing.T) {
	m := New([][]float64{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	})

	if m.Invertible() {
		t.Error("Expected matrix with zero determinant to be non-invertible")
	}
	if _, err := m.Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Expected ErrSingular, got %v", err)
	}
	if _, err := Scaling(0, 1, 1).Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Expected ErrSingular for flattening scale, got %v", err)
	}
	if _, err := New([][]float64{{1, 2, 3}}).Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Expected ErrSingular for non-square matrix, got %v", err)
	}
}
