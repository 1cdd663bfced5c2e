package models

// ---------------------------

// Vector is an ordered sequence of real numbers. It is treated as immutable
// by everything in this repo, callers keep ownership of the backing slice.
type Vector []float64

// ---------------------------

// Matrix is a rectangular row-major 2D array of real numbers. All rows must
// have equal length.
type Matrix [][]float64

// Dims returns the number of rows and columns. An empty matrix has 0 columns.
func (m Matrix) Dims() (int, int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// IsRectangular reports whether every row has the same length.
func (m Matrix) IsRectangular() bool {
	if len(m) == 0 {
		return true
	}
	cols := len(m[0])
	for _, row := range m[1:] {
		if len(row) != cols {
			return false
		}
	}
	return true
}
