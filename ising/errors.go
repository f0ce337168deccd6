// SPDX-License-Identifier: MIT
// Package: ising
//
// errors.go — sentinel errors for the Hamiltonian and the exact ensemble.
//
// ErrDimensionMismatch and ErrIndexOutOfRange wrap their spin counterparts,
// so errors.Is matches either package's sentinel.

package ising

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/isingraph/spin"
)

var (
	// ErrNilGraph indicates New was called with a nil graph.
	ErrNilGraph = errors.New("ising: graph is nil")

	// ErrEmptyGraph indicates a graph without sites.
	ErrEmptyGraph = errors.New("ising: graph has no sites")

	// ErrDimensionMismatch indicates a configuration or bias vector whose
	// length differs from the site count.
	ErrDimensionMismatch = fmt.Errorf("ising: %w", spin.ErrDimensionMismatch)

	// ErrIndexOutOfRange indicates a site index outside [0, N).
	ErrIndexOutOfRange = fmt.Errorf("ising: %w", spin.ErrIndexOutOfRange)

	// ErrInvalidTemperature indicates T ≤ 0, NaN or ±Inf.
	ErrInvalidTemperature = errors.New("ising: temperature must be finite and > 0")

	// ErrInvalidBias indicates a NaN or infinite bias value.
	ErrInvalidBias = errors.New("ising: bias must be finite")

	// ErrTooManySites indicates exact enumeration was requested for N > MaxExactSites.
	ErrTooManySites = errors.New("ising: too many sites for exact enumeration")

	// ErrInvalidTolerance indicates a NaN or infinite energy tolerance.
	ErrInvalidTolerance = errors.New("ising: tolerance must be finite")
)

// ValidateTemperature returns ErrInvalidTemperature unless T is finite and positive.
func ValidateTemperature(T float64) error {
	if !(T > 0) || math.IsInf(T, 1) {
		return fmt.Errorf("T=%g: %w", T, ErrInvalidTemperature)
	}

	return nil
}
