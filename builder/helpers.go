// Package builder provides internal helper functions used by Constructor
// implementations to add sites and couplings with uniform error context.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/isingraph/core"
)

// gridID renders the fixed "r,c" coordinate ID used by Grid and Torus.
func gridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// addIndexedVertices inserts cfg.idFn(0..n-1) into g in ascending order,
// which fixes their site indices.
// Complexity: O(n) time, O(1) extra space.
func addIndexedVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	var (
		i   int
		id  string
		err error
	)
	for i = 0; i < n; i++ {
		id = cfg.idFn(i)
		if err = g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addCoupling draws one coupling from cfg and adds the edge u—v.
// Core rejections (loops, repeated pairs) surface as ErrConstructFailed
// while keeping the core sentinel reachable through errors.Is.
func addCoupling(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.nextWeight()
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, J=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
