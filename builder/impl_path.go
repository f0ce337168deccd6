// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order.
//   • Emits edges i — i+1 for i=0..n-2 (open boundary).

package builder

import (
	"fmt"

	"github.com/katalvlaran/isingraph/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds an open chain P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(methodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addCoupling(methodPath, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
