// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i — (i+1)%n for i=0..n-1.
//   • One cfg.weightFn draw per edge, in emission order.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isingraph/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-site ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}

		// For i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addCoupling(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
