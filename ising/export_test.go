package ising

import "github.com/katalvlaran/isingraph/spin"

// EnergyDense exposes the O(N²) reference evaluation to external tests.
func (h *Hamiltonian) EnergyDense(c *spin.Config) float64 {
	return h.energyDense(c.View())
}
