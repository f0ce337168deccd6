// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go — sentinel errors for the matrix package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Call sites attach context with %w (see denseErrorf / validatorErrorf).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates a nil Matrix argument or receiver.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare indicates a matrix that must be square is not.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry indicates |A[i,j] − A[j,i]| exceeded the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf indicates a NaN or Inf entry or tolerance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates a nil *core.Graph was supplied.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates a vertex ID that is not indexed by the matrix.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)
