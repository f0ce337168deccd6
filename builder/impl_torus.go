// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_torus.go — implementation of Torus(rows, cols) constructor.
//
// Canonical model:
//   • Grid with periodic boundaries: every site has exactly four neighbors.
//   • Same "r,c" IDs and row-major site order as Grid.
//
// Contract:
//   • rows ≥ 3 and cols ≥ 3 (else ErrTooFewVertices); smaller sides would
//     wrap onto an existing coupling or the site itself.
//   • Edge count is exactly 2*rows*cols.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isingraph/core"
)

const (
	methodTorus = "Torus"
	minTorusDim = 3
)

// Torus returns a Constructor that builds a rows×cols periodic lattice.
func Torus(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minTorusDim || cols < minTorusDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodTorus, rows, cols, minTorusDim, ErrTooFewVertices)
		}

		return emitLattice(methodTorus, g, cfg, rows, cols, true)
	}
}
