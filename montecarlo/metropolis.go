// SPDX-License-Identifier: MIT
//
// File: metropolis.go
// Role: Single-chain Metropolis sampler.
// Determinism:
//   - Sites are visited 0..N−1 each sweep; with a seeded Source the whole
//     chain is reproducible.
// Concurrency:
//   - A Metropolis value is not safe for concurrent use. Use RunChains for
//     parallel independent chains.

package montecarlo

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/isingraph/ising"
	"github.com/katalvlaran/isingraph/spin"
)

// Metropolis samples configurations of one Hamiltonian.
type Metropolis struct {
	h       *ising.Hamiltonian
	src     Source
	initial *spin.Config // nil ⇒ all zeros
	conf    *spin.Config // state after the last run
}

// NewMetropolis binds a sampler to h.
//
// Errors: ErrNilHamiltonian; ErrDimensionMismatch when WithInitial's
// configuration length differs from h.SiteCount().
func NewMetropolis(h *ising.Hamiltonian, opts ...Option) (*Metropolis, error) {
	if h == nil {
		return nil, fmt.Errorf("NewMetropolis: %w", ErrNilHamiltonian)
	}
	cfg := samplerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = sourceFromSeed(defaultRNGSeed)
	}
	if cfg.initial != nil && cfg.initial.Len() != h.SiteCount() {
		return nil, fmt.Errorf("NewMetropolis: initial len=%d, N=%d: %w",
			cfg.initial.Len(), h.SiteCount(), ErrDimensionMismatch)
	}

	return &Metropolis{h: h, src: cfg.src, initial: cfg.initial}, nil
}

// Result is the chronological record of one run.
type Result struct {
	Energies       []float64 `json:"energies"`
	Magnetizations []int     `json:"magnetizations"`
	Proposed       int64     `json:"proposed"`
	Accepted       int64     `json:"accepted"`
}

// Run performs nSamples sweeps at temperature T and records the state after
// every sweep with index ≥ nBurn. Both sequences have length
// max(0, nSamples − nBurn); nBurn > nSamples is not an error.
//
// Implementation:
//   - Stage 1: Validate T (ErrInvalidTemperature) and counts (ErrInvalidSampleCount).
//   - Stage 2: Start from a fresh copy of the initial configuration (all zeros by default).
//   - Stage 3: For each sweep, check ctx, then propose site flips 0..N−1 using
//     the O(deg) energy delta. Every proposal consumes exactly one uniform draw.
//   - Stage 4: Record total energy and magnetization after burn-in sweeps.
//
// On cancellation Run returns ctx.Err() and no partial result.
// Complexity: O(nSamples · (N + E)).
func (m *Metropolis) Run(ctx context.Context, T float64, nSamples, nBurn int) (*Result, error) {
	if err := ising.ValidateTemperature(T); err != nil {
		return nil, fmt.Errorf("Metropolis.Run: %w", err)
	}
	if nSamples < 0 || nBurn < 0 {
		return nil, fmt.Errorf("Metropolis.Run: nSamples=%d, nBurn=%d: %w", nSamples, nBurn, ErrInvalidSampleCount)
	}

	n := m.h.SiteCount()
	conf, err := m.fresh()
	if err != nil {
		return nil, fmt.Errorf("Metropolis.Run: %w", err)
	}

	kept := nSamples - nBurn
	if kept < 0 {
		kept = 0
	}
	res := &Result{
		Energies:       make([]float64, 0, kept),
		Magnetizations: make([]int, 0, kept),
	}

	var (
		sweep, j int
		delta, u float64
		e        float64
		mag      int
	)
	for sweep = 0; sweep < nSamples; sweep++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("Metropolis.Run: sweep %d: %w", sweep, err)
		}
		for j = 0; j < n; j++ {
			if delta, err = m.h.DeltaEnergy(conf, j); err != nil {
				return nil, fmt.Errorf("Metropolis.Run: %w", err)
			}
			// Exactly one draw per proposal, accepted or not.
			u = m.src.Float64()
			res.Proposed++
			if delta <= 0 || math.Exp(-delta/T) > u {
				_ = conf.Flip(j) // j < n == conf.Len()
				res.Accepted++
			}
		}
		if sweep < nBurn {
			continue
		}
		if e, err = m.h.Energy(conf); err != nil {
			return nil, fmt.Errorf("Metropolis.Run: %w", err)
		}
		if mag, err = m.h.Magnetization(conf); err != nil {
			return nil, fmt.Errorf("Metropolis.Run: %w", err)
		}
		res.Energies = append(res.Energies, e)
		res.Magnetizations = append(res.Magnetizations, mag)
	}
	m.conf = conf

	return res, nil
}

// Config returns a copy of the configuration left by the last successful run,
// or nil before the first one.
func (m *Metropolis) Config() *spin.Config {
	if m.conf == nil {
		return nil
	}

	return m.conf.Clone()
}

func (m *Metropolis) fresh() (*spin.Config, error) {
	if m.initial != nil {
		return m.initial.Clone(), nil
	}

	return spin.New(m.h.SiteCount())
}
