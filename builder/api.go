// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs and site order.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Hints:
//   - Compose constructors in BuildGraph to place several lattices in one model;
//     sites are numbered in the order the constructors add them.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, random couplings).

package builder

import (
	"fmt"

	"github.com/katalvlaran/isingraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add vertices before edges so site order follows the documented scheme.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn (except the fixed "r,c" lattice IDs).
//   - Emit edges in a stable, documented order, one cfg.weightFn draw per edge.
//   - Return only sentinel errors; NEVER panic at runtime.

// Cycle builds an n-site ring C_n (n ≥ 3).
// Complexity: O(n).
//func Cycle(n int) Constructor

// Path builds an open chain P_n (n ≥ 2).
// Complexity: O(n).
//func Path(n int) Constructor

// Grid builds an R×C open-boundary square lattice with IDs "r,c" (row-major).
// Complexity: O(R*C).
//func Grid(rows, cols int) Constructor

// Torus builds an R×C periodic square lattice with IDs "r,c" (R,C ≥ 3).
// Complexity: O(R*C).
//func Torus(rows, cols int) Constructor

// Complete builds the all-to-all K_n (n ≥ 1).
// Complexity: O(n²).
//func Complete(n int) Constructor

// RandomSparse builds an Erdős–Rényi coupling graph.
// Requires cfg.rng != nil for 0 < p < 1.
// Complexity: O(n²) pair trials.
//func RandomSparse(n int, p float64) Constructor
