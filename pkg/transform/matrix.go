package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"gonum.org/v1/gonum/mat"
)

// ErrSingular is returned when inverting a matrix with no inverse
var ErrSingular = errors.New("matrix is not invertible")

// Matrix is an immutable row-major grid of float64 values.
// Every operation returns a new matrix.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a matrix from explicit rows. All rows must have the same length.
func New(rows [][]float64) Matrix {
	if len(rows) == 0 {
		return Matrix{}
	}
	m := Matrix{rows: len(rows), cols: len(rows[0])}
	m.data = make([]float64, 0, m.rows*m.cols)
	for i, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("transform: row %d has %d columns, expected %d", i, len(row), m.cols))
		}
		m.data = append(m.data, row...)
	}
	return m
}

// Identity returns the n×n identity matrix
func Identity(n int) Matrix {
	m := zero(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func zero(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m Matrix) Cols() int { return m.cols }

// At returns the element at row r, column c
func (m Matrix) At(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Multiply returns the matrix product m*other. Applied to a tuple, the
// result applies other first and then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("transform: cannot multiply %dx%d by %dx%d", m.rows, m.cols, other.rows, other.cols))
	}
	result := zero(m.rows, other.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < other.cols; c++ {
			sum := 0.0
			for k := 0; k < m.cols; k++ {
				sum += m.data[r*m.cols+k] * other.data[k*other.cols+c]
			}
			result.data[r*result.cols+c] = sum
		}
	}
	return result
}

// Apply multiplies a 4x4 matrix by the tuple read as a column
func (m Matrix) Apply(t core.Tuple) core.Tuple {
	if m.rows != 4 || m.cols != 4 {
		panic(fmt.Sprintf("transform: cannot apply %dx%d matrix to a tuple", m.rows, m.cols))
	}
	in := [4]float64{t.X, t.Y, t.Z, t.W}
	var out [4]float64
	for r := 0; r < 4; r++ {
		for k := 0; k < 4; k++ {
			out[r] += m.data[r*4+k] * in[k]
		}
	}
	return core.NewTuple(out[0], out[1], out[2], out[3])
}

// Transpose reflects the matrix across its main diagonal
func (m Matrix) Transpose() Matrix {
	result := zero(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			result.data[c*result.cols+r] = m.data[r*m.cols+c]
		}
	}
	return result
}

func (m Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, append([]float64(nil), m.data...))
}

// Determinant returns the determinant of a square matrix
func (m Matrix) Determinant() float64 {
	if m.rows != m.cols || m.rows == 0 {
		return 0
	}
	return mat.Det(m.dense())
}

// Invertible reports whether Inverse would succeed
func (m Matrix) Invertible() bool {
	_, err := m.Inverse()
	return err == nil
}

// Inverse returns the inverse matrix, or ErrSingular if there is none
func (m Matrix) Inverse() (Matrix, error) {
	if m.rows != m.cols || m.rows == 0 {
		return Matrix{}, fmt.Errorf("%w: %dx%d is not square", ErrSingular, m.rows, m.cols)
	}
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return Matrix{}, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	result := zero(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			result.data[r*m.cols+c] = inv.At(r, c)
		}
	}
	return result, nil
}

// Equal reports exact element-wise equality
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports element-wise equality within core.Epsilon
func (m Matrix) ApproxEqual(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !core.ApproxEqual(m.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.rows; r++ {
		sb.WriteString("|")
		for c := 0; c < m.cols; c++ {
			fmt.Fprintf(&sb, " %8.4f", m.At(r, c))
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
