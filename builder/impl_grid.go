// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D square lattice with 4-neighborhood and open boundaries.
//   • Vertex IDs use the fixed scheme "r,c" (row-major order), so site index
//     of (r,c) is r*cols + c. cfg.idFn is deliberately not consulted.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right (r,c+1) then Bottom (r+1,c)
//     where they exist.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isingraph/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols open-boundary lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		return emitLattice(methodGrid, g, cfg, rows, cols, false)
	}
}

// emitLattice adds the "r,c" sites row-major, then the Right/Bottom couplings.
// With periodic set, the last column wraps to the first and the last row to the first.
func emitLattice(method string, g *core.Graph, cfg builderConfig, rows, cols int, periodic bool) error {
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			id := gridID(r, c)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, ErrConstructFailed, err)
			}
		}
	}

	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u := gridID(r, c)
			switch {
			case c+1 < cols:
				if err := addCoupling(method, g, cfg, u, gridID(r, c+1)); err != nil {
					return err
				}
			case periodic:
				if err := addCoupling(method, g, cfg, u, gridID(r, 0)); err != nil {
					return err
				}
			}
			switch {
			case r+1 < rows:
				if err := addCoupling(method, g, cfg, u, gridID(r+1, c)); err != nil {
					return err
				}
			case periodic:
				if err := addCoupling(method, g, cfg, u, gridID(0, c)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
