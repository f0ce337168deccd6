// SPDX-License-Identifier: MIT
// Package: montecarlo
//
// errors.go — sentinel errors for the sampler.
// ErrInvalidTemperature and ErrDimensionMismatch are the ising sentinels, so
// callers can branch on either package's name.

package montecarlo

import (
	"errors"

	"github.com/katalvlaran/isingraph/ising"
)

var (
	// ErrNilHamiltonian indicates NewMetropolis or RunChains got a nil Hamiltonian.
	ErrNilHamiltonian = errors.New("montecarlo: hamiltonian is nil")

	// ErrInvalidTemperature indicates T ≤ 0, NaN or ±Inf.
	ErrInvalidTemperature = ising.ErrInvalidTemperature

	// ErrDimensionMismatch indicates an initial configuration of the wrong length.
	ErrDimensionMismatch = ising.ErrDimensionMismatch

	// ErrInvalidSampleCount indicates a negative nSamples or nBurn.
	ErrInvalidSampleCount = errors.New("montecarlo: sample counts must be ≥ 0")

	// ErrInvalidChains indicates fewer than one chain was requested.
	ErrInvalidChains = errors.New("montecarlo: chain count must be ≥ 1")

	// ErrNoSamples indicates Summary was asked for an empty result.
	ErrNoSamples = errors.New("montecarlo: no recorded samples")
)
