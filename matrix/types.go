// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface shared by Dense and validators.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at (row, col) or ErrIndexOutOfBounds.
	At(row, col int) (float64, error)

	// Set assigns v at (row, col) or returns ErrIndexOutOfBounds.
	Set(row, col int, v float64) error

	// Clone returns a deep copy.
	Clone() Matrix
}
