// SPDX-License-Identifier: MIT
// Package: spin
//
// errors.go — sentinel errors for spin configurations.
// Callers branch with errors.Is; call sites add context with %w.

package spin

import "errors"

var (
	// ErrInvalidLength indicates a non-positive configuration length.
	ErrInvalidLength = errors.New("spin: length must be > 0")

	// ErrIndexOutOfRange indicates a site index outside [0, N).
	ErrIndexOutOfRange = errors.New("spin: site index out of range")

	// ErrDimensionMismatch indicates an input whose length differs from N.
	ErrDimensionMismatch = errors.New("spin: dimension mismatch")

	// ErrInvalidBit indicates a value other than 0 or 1 (or '0'/'1' when parsing).
	ErrInvalidBit = errors.New("spin: bit must be 0 or 1")
)
