// SPDX-License-Identifier: MIT
//
// File: spectrum.go
// Role: Density of states by exhaustive enumeration.
// Determinism:
//   - Labels are visited in ascending order, so each level keeps the first
//     energy it met as its representative and the smallest label as FirstState.

package ising

import (
	"context"
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/isingraph/spin"
)

// DefaultSpectrumTolerance merges energies that differ only by summation rounding.
const DefaultSpectrumTolerance = 1e-9

// Level is one distinct energy and the number of configurations at it.
type Level struct {
	Energy     float64 `json:"energy"`
	Degeneracy uint64  `json:"degeneracy"`
	FirstState uint64  `json:"first_state"` // smallest label with this energy
}

// Spectrum enumerates all 2^N configurations and groups them by energy.
// Energies within tol of an existing level join it (negative tol is used as
// |tol|). Levels are returned in ascending energy; degeneracies sum to 2^N.
//
// Implementation:
//   - Stage 1: Validate tol (ErrInvalidTolerance) and N (ErrTooManySites).
//   - Stage 2: Visit labels in order; look up the nearest level with the
//     tree's Floor/Ceiling and either bump it or insert a new one.
//   - Stage 3: In-order walk of the tree.
//
// Errors: ErrInvalidTolerance, ErrTooManySites, ctx.Err() on cancellation.
// Complexity: O(2^N · (N + E + log L)) time, O(L) space for L levels.
func (h *Hamiltonian) Spectrum(ctx context.Context, tol float64) ([]Level, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("Hamiltonian.Spectrum: tol=%g: %w", tol, ErrInvalidTolerance)
	}
	if h.n > MaxExactSites {
		return nil, fmt.Errorf("Hamiltonian.Spectrum: N=%d > %d: %w", h.n, MaxExactSites, ErrTooManySites)
	}
	tol = math.Abs(tol)

	c, err := spin.New(h.n)
	if err != nil {
		return nil, fmt.Errorf("Hamiltonian.Spectrum: %w", err)
	}
	bits := c.View()
	levels := redblacktree.NewWith(utils.Float64Comparator)

	total := uint64(1) << uint(h.n)
	for x := uint64(0); x < total; x++ {
		if x%cancelCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return nil, fmt.Errorf("Hamiltonian.Spectrum: %w", err)
			}
		}
		c.SetInteger(x)
		E := h.energy(bits)
		if lvl := nearestLevel(levels, E, tol); lvl != nil {
			lvl.Degeneracy++
			continue
		}
		levels.Put(E, &Level{Energy: E, Degeneracy: 1, FirstState: x})
	}

	out := make([]Level, 0, levels.Size())
	it := levels.Iterator()
	for it.Next() {
		out = append(out, *it.Value().(*Level))
	}

	return out, nil
}

// nearestLevel returns the level within tol of E, preferring the one below.
func nearestLevel(levels *redblacktree.Tree, E, tol float64) *Level {
	if node, ok := levels.Floor(E); ok && E-node.Key.(float64) <= tol {
		return node.Value.(*Level)
	}
	if node, ok := levels.Ceiling(E); ok && node.Key.(float64)-E <= tol {
		return node.Value.(*Level)
	}

	return nil
}
