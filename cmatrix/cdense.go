// Package cmatrix provides core linear algebra primitives for complex
// array-based computations. CDense is a concrete, row-major complex matrix,
// storing elements in a flat slice for performance and cache friendliness.
package cmatrix

import (
	"fmt"
)

// cdenseErrorf wraps an underlying error with CDense method context.
func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// CDense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type CDense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewCDense creates an r×c CDense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new CDense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewCDense(rows, cols int) (*CDense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]complex128, rows*cols)

	// Return initialized CDense
	return &CDense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *CDense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *CDense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *CDense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, cdenseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, cdenseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Stage 3 (Finalize): return value or wrapped error.
// Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Stage 3 (Finalize): return error or nil.
// Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the CDense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *CDense) Clone() *CDense {
	// Allocate new slice for data copy
	copyData := make([]complex128, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &CDense{r: m.r, c: m.c, data: copyData}
}

// Col returns a copy of column j as a length-r slice.
// Stage 1 (Validate): bounds check on j.
// Stage 2 (Execute): strided read into a fresh slice.
// Complexity: O(r) time and memory.
func (m *CDense) Col(j int) ([]complex128, error) {
	// Validate column index
	if j < 0 || j >= m.c {
		return nil, cdenseErrorf("Col", 0, j, ErrOutOfRange)
	}
	// Copy the column with stride c
	out := make([]complex128, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Row returns a copy of row i as a length-c slice.
// Complexity: O(c) time and memory.
func (m *CDense) Row(i int) ([]complex128, error) {
	// Validate row index
	if i < 0 || i >= m.r {
		return nil, cdenseErrorf("Row", i, 0, ErrOutOfRange)
	}
	// Copy the contiguous row
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *CDense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
