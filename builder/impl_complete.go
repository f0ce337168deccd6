// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 is a single free site.
//   • Emits unordered pairs {i,j}, i<j, with i ascending then j ascending.
//   • Combined with WithNormalWeight(0, 1/√n) this is the Sherrington–Kirkpatrick model.
//
// Complexity:
//   • Time: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isingraph/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the all-to-all graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := addCoupling(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
