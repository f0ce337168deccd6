// SPDX-License-Identifier: MIT
//
// File: hamiltonian.go
// Role: Hamiltonian construction, bias management, Energy/Magnetization/DeltaEnergy.
// Determinism:
//   - Energy sums bonds in (i asc, j asc, j>i) order, then the field term in i order,
//     so repeated calls agree bit-for-bit.
// Concurrency:
//   - Read-only methods are safe for concurrent use once the bias is set.
//     SetBias/SetUniformBias must not race with readers.

package ising

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isingraph/core"
	"github.com/katalvlaran/isingraph/matrix"
	"github.com/katalvlaran/isingraph/spin"
)

// Hamiltonian is the energy model of an Ising system on a fixed interaction graph.
type Hamiltonian struct {
	adj   *matrix.AdjacencyMatrix // dense J, site index, reverse lookup
	n     int                     // site count
	nbr   [][]int                 // nbr[i]: coupled sites of i, ascending
	nbrJ  [][]float64             // nbrJ[i][k] = J(i, nbr[i][k])
	bias  []float64               // h_i, default zeros
	edges int                     // number of non-zero couplings (unordered)
}

// New snapshots g into a Hamiltonian with zero bias.
//
// Implementation:
//   - Stage 1: Validate g (ErrNilGraph, ErrEmptyGraph).
//   - Stage 2: Build the dense site-indexed coupling matrix.
//   - Stage 3: Cache per-site sparse neighbor rows with their couplings.
//
// Complexity:
//   - Time O(V² + E), Space O(V² + E).
func New(g *core.Graph) (*Hamiltonian, error) {
	if g == nil {
		return nil, fmt.Errorf("ising.New: %w", ErrNilGraph)
	}
	if g.VertexCount() == 0 {
		return nil, fmt.Errorf("ising.New: %w", ErrEmptyGraph)
	}

	adj, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return nil, fmt.Errorf("ising.New: %w", err)
	}

	n := adj.VertexCount()
	h := &Hamiltonian{
		adj:  adj,
		n:    n,
		nbr:  make([][]int, n),
		nbrJ: make([][]float64, n),
		bias: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		row, _ := adj.Neighbors(i) // i < n by construction
		js := make([]float64, len(row))
		for k, j := range row {
			js[k], _ = adj.Weight(i, j)
			if j > i {
				h.edges++
			}
		}
		h.nbr[i] = row
		h.nbrJ[i] = js
	}

	return h, nil
}

// SiteCount returns N.
func (h *Hamiltonian) SiteCount() int {
	return h.n
}

// CouplingCount returns the number of coupled site pairs (J ≠ 0).
func (h *Hamiltonian) CouplingCount() int {
	return h.edges
}

// Sites returns the vertex IDs in site order.
func (h *Hamiltonian) Sites() []string {
	return h.adj.VertexIDs()
}

// Coupling returns J_ij (0 when i and j are not coupled).
// Errors: ErrIndexOutOfRange.
func (h *Hamiltonian) Coupling(i, j int) (float64, error) {
	if err := h.checkSite("Coupling", i); err != nil {
		return 0, err
	}
	if err := h.checkSite("Coupling", j); err != nil {
		return 0, err
	}

	return h.adj.Weight(i, j)
}

// Neighbors returns the sites coupled to i, ascending.
// Errors: ErrIndexOutOfRange.
func (h *Hamiltonian) Neighbors(i int) ([]int, error) {
	if err := h.checkSite("Neighbors", i); err != nil {
		return nil, err
	}
	out := make([]int, len(h.nbr[i]))
	copy(out, h.nbr[i])

	return out, nil
}

// Bias returns a copy of the bias vector.
func (h *Hamiltonian) Bias() []float64 {
	out := make([]float64, h.n)
	copy(out, h.bias)

	return out
}

// SetBias replaces the bias vector.
//
// Errors: ErrDimensionMismatch when len(values) != N, ErrInvalidBias for NaN/Inf.
// The previous bias is kept on error.
func (h *Hamiltonian) SetBias(values []float64) error {
	if len(values) != h.n {
		return fmt.Errorf("Hamiltonian.SetBias: len=%d, N=%d: %w", len(values), h.n, ErrDimensionMismatch)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Hamiltonian.SetBias: bias[%d]=%g: %w", i, v, ErrInvalidBias)
		}
	}
	copy(h.bias, values)

	return nil
}

// SetUniformBias sets h_i = v for every site.
// Errors: ErrInvalidBias.
func (h *Hamiltonian) SetUniformBias(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Hamiltonian.SetUniformBias(%g): %w", v, ErrInvalidBias)
	}
	for i := range h.bias {
		h.bias[i] = v
	}

	return nil
}

// Energy returns E(c) = Σ_{i<j} J_ij s_i s_j + Σ_i h_i (−s_i) using the sparse rows.
//
// Errors: ErrDimensionMismatch when c is nil or c.Len() != N.
// Complexity: O(N + E).
func (h *Hamiltonian) Energy(c *spin.Config) (float64, error) {
	if err := h.checkConfig("Energy", c); err != nil {
		return 0, err
	}

	return h.energy(c.View()), nil
}

// energy is Energy without validation; bits must have length N.
func (h *Hamiltonian) energy(bits []uint8) float64 {
	var bond, field float64
	var si float64
	for i := 0; i < h.n; i++ {
		si = spinOf(bits[i])
		for k, j := range h.nbr[i] {
			if j <= i {
				continue
			}
			bond += h.nbrJ[i][k] * si * spinOf(bits[j])
		}
	}
	for i := 0; i < h.n; i++ {
		field += h.bias[i] * -spinOf(bits[i])
	}

	return bond + field
}

// energyDense is the O(N²) reference evaluation over the dense coupling matrix.
func (h *Hamiltonian) energyDense(bits []uint8) float64 {
	var bond, field float64
	var si float64
	for i := 0; i < h.n; i++ {
		si = spinOf(bits[i])
		for j := i + 1; j < h.n; j++ {
			jij, _ := h.adj.Mat.At(i, j)
			if jij == 0 {
				continue
			}
			bond += jij * si * spinOf(bits[j])
		}
	}
	for i := 0; i < h.n; i++ {
		field += h.bias[i] * -spinOf(bits[i])
	}

	return bond + field
}

// Magnetization returns CountOn(c) − CountOff(c) = −Σ s_i, in [−N, N].
// Errors: ErrDimensionMismatch.
func (h *Hamiltonian) Magnetization(c *spin.Config) (int, error) {
	if err := h.checkConfig("Magnetization", c); err != nil {
		return 0, err
	}

	return magnetization(c.View()), nil
}

func magnetization(bits []uint8) int {
	m := -len(bits)
	for _, b := range bits {
		m += 2 * int(b)
	}

	return m
}

// DeltaEnergy returns the energy change flipping site i would cause,
//
//	Δ = −2·s_i·(Σ_{j∈nbr(i)} J_ij·s_j − h_i),
//
// which equals Energy(c with i flipped) − Energy(c). c is not modified.
//
// Errors: ErrDimensionMismatch, ErrIndexOutOfRange.
// Complexity: O(deg i).
func (h *Hamiltonian) DeltaEnergy(c *spin.Config, i int) (float64, error) {
	if err := h.checkConfig("DeltaEnergy", c); err != nil {
		return 0, err
	}
	if err := h.checkSite("DeltaEnergy", i); err != nil {
		return 0, err
	}

	return h.deltaEnergy(c.View(), i), nil
}

// deltaEnergy is DeltaEnergy without validation.
func (h *Hamiltonian) deltaEnergy(bits []uint8, i int) float64 {
	var local float64
	for k, j := range h.nbr[i] {
		local += h.nbrJ[i][k] * spinOf(bits[j])
	}

	return -2 * spinOf(bits[i]) * (local - h.bias[i])
}

func (h *Hamiltonian) checkConfig(method string, c *spin.Config) error {
	if c == nil {
		return fmt.Errorf("Hamiltonian.%s: nil configuration: %w", method, ErrDimensionMismatch)
	}
	if c.Len() != h.n {
		return fmt.Errorf("Hamiltonian.%s: len=%d, N=%d: %w", method, c.Len(), h.n, ErrDimensionMismatch)
	}

	return nil
}

func (h *Hamiltonian) checkSite(method string, i int) error {
	if i < 0 || i >= h.n {
		return fmt.Errorf("Hamiltonian.%s(%d): N=%d: %w", method, i, h.n, ErrIndexOutOfRange)
	}

	return nil
}

// spinOf maps bit 0 → +1, bit 1 → −1.
func spinOf(b uint8) float64 {
	return float64(1 - 2*int(b))
}
