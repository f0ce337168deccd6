// SPDX-License-Identifier: MIT
//
// File: ensemble.go
// Role: Exact thermal averages by enumerating all 2^N configurations.
// Determinism:
//   - Labels are visited in ascending integer order within each block and the
//     block partials are merged in block order, so a fixed worker count gives
//     bit-identical results. Different worker counts agree to rounding.
// Concurrency:
//   - Each block owns its spin.Config and accumulator; the Hamiltonian is read-only.

package ising

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isingraph/spin"
)

// MaxExactSites bounds exact enumeration (2^30 ≈ 1.07e9 configurations).
const MaxExactSites = 30

// cancelCheckEvery is how many configurations a block enumerates between context checks.
const cancelCheckEvery = 1 << 12

// Averages holds the exact Boltzmann averages at one temperature.
type Averages struct {
	Temperature float64 `json:"temperature"`

	// Energy is ⟨E⟩.
	Energy float64 `json:"energy"`

	// Magnetization is ⟨M⟩.
	Magnetization float64 `json:"magnetization"`

	// HeatCapacity is (⟨E²⟩ − ⟨E⟩²) / T².
	HeatCapacity float64 `json:"heat_capacity"`

	// Susceptibility is (⟨M²⟩ − ⟨M⟩²) / T.
	Susceptibility float64 `json:"susceptibility"`

	// LogPartition is ln Z, finite even where Z itself would overflow.
	LogPartition float64 `json:"log_partition"`

	// GroundEnergy is the lowest energy met during enumeration.
	GroundEnergy float64 `json:"ground_energy"`

	// GroundState is the smallest integer label with energy GroundEnergy.
	GroundState uint64 `json:"ground_state"`

	// Configurations is 2^N.
	Configurations uint64 `json:"configurations"`
}

// PartitionSum returns Z = exp(LogPartition). It is > 0 for every finite
// Hamiltonian and T, and may be +Inf when Z exceeds float64 range.
func (a Averages) PartitionSum() float64 {
	return math.Exp(a.LogPartition)
}

// EnsembleOption customizes Ensemble.
type EnsembleOption func(*ensembleConfig)

type ensembleConfig struct {
	workers int
}

// WithWorkers splits the label range into k contiguous blocks enumerated
// concurrently. Panics if k < 1.
func WithWorkers(k int) EnsembleOption {
	if k < 1 {
		panic(fmt.Sprintf("ising: WithWorkers(%d): must be ≥ 1", k))
	}
	return func(c *ensembleConfig) {
		c.workers = k
	}
}

// ComputeAverageValues enumerates every configuration on the calling goroutine.
// It is Ensemble(context.Background(), T).
func (h *Hamiltonian) ComputeAverageValues(T float64) (Averages, error) {
	return h.Ensemble(context.Background(), T)
}

// Ensemble computes exact averages at temperature T.
//
// Implementation:
//   - Stage 1: Validate T (ErrInvalidTemperature) and N (ErrTooManySites).
//   - Stage 2: Split [0, 2^N) into min(workers, 2^N) contiguous blocks.
//   - Stage 3: Enumerate each block with SetInteger + Energy, accumulating
//     shifted Boltzmann weights; one errgroup goroutine per block.
//   - Stage 4: Merge partials in block order and normalize.
//
// Errors: ErrInvalidTemperature, ErrTooManySites, ctx.Err() on cancellation.
// Complexity: O(2^N · (N + E)) time, O(workers · N) space.
func (h *Hamiltonian) Ensemble(ctx context.Context, T float64, opts ...EnsembleOption) (Averages, error) {
	if err := ValidateTemperature(T); err != nil {
		return Averages{}, fmt.Errorf("Hamiltonian.Ensemble: %w", err)
	}
	if h.n > MaxExactSites {
		return Averages{}, fmt.Errorf("Hamiltonian.Ensemble: N=%d > %d: %w", h.n, MaxExactSites, ErrTooManySites)
	}

	cfg := ensembleConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	total := uint64(1) << uint(h.n)
	blocks := uint64(cfg.workers)
	if blocks > total {
		blocks = total
	}
	partials := make([]accumulator, blocks)

	eg, egCtx := errgroup.WithContext(ctx)
	for b := uint64(0); b < blocks; b++ {
		b := b
		lo := total / blocks * b
		hi := total / blocks * (b + 1)
		if b == blocks-1 {
			hi = total
		}
		eg.Go(func() error {
			return h.enumerate(egCtx, T, lo, hi, &partials[b])
		})
	}
	if err := eg.Wait(); err != nil {
		return Averages{}, fmt.Errorf("Hamiltonian.Ensemble: %w", err)
	}

	var acc accumulator
	for i := range partials {
		acc.merge(&partials[i], T)
	}
	out := acc.averages(T)
	out.Configurations = total

	return out, nil
}

// enumerate visits labels [lo, hi) into acc.
func (h *Hamiltonian) enumerate(ctx context.Context, T float64, lo, hi uint64, acc *accumulator) error {
	c, err := spin.New(h.n)
	if err != nil {
		return err
	}
	bits := c.View()
	for x := lo; x < hi; x++ {
		if (x-lo)%cancelCheckEvery == 0 {
			if err = ctx.Err(); err != nil {
				return err
			}
		}
		c.SetInteger(x)
		acc.add(h.energy(bits), float64(magnetization(bits)), x, T)
	}

	return nil
}

// accumulator holds Boltzmann sums with weights exp(−(E − minE)/T).
// Rescaling on a new minimum keeps every weight in (0, 1].
type accumulator struct {
	seen     bool
	minE     float64
	minLabel uint64
	z        float64
	sumE     float64
	sumE2    float64
	sumM     float64
	sumM2    float64
}

func (a *accumulator) add(E, M float64, label uint64, T float64) {
	switch {
	case !a.seen:
		a.seen, a.minE, a.minLabel = true, E, label
	case E < a.minE:
		a.rescale(math.Exp(-(a.minE - E) / T))
		a.minE, a.minLabel = E, label
	}
	w := math.Exp(-(E - a.minE) / T)
	a.z += w
	a.sumE += E * w
	a.sumE2 += E * E * w
	a.sumM += M * w
	a.sumM2 += M * M * w
}

func (a *accumulator) rescale(f float64) {
	a.z *= f
	a.sumE *= f
	a.sumE2 *= f
	a.sumM *= f
	a.sumM2 *= f
}

// merge folds o into a. Ties on the minimum keep the smaller label.
func (a *accumulator) merge(o *accumulator, T float64) {
	if !o.seen {
		return
	}
	if !a.seen {
		*a = *o
		return
	}
	of := 1.0
	switch {
	case o.minE < a.minE:
		a.rescale(math.Exp(-(a.minE - o.minE) / T))
		a.minE, a.minLabel = o.minE, o.minLabel
	case o.minE > a.minE:
		of = math.Exp(-(o.minE - a.minE) / T)
	case o.minLabel < a.minLabel:
		a.minLabel = o.minLabel
	}
	a.z += o.z * of
	a.sumE += o.sumE * of
	a.sumE2 += o.sumE2 * of
	a.sumM += o.sumM * of
	a.sumM2 += o.sumM2 * of
}

func (a *accumulator) averages(T float64) Averages {
	e := a.sumE / a.z
	m := a.sumM / a.z

	return Averages{
		Temperature:    T,
		Energy:         e,
		Magnetization:  m,
		HeatCapacity:   (a.sumE2/a.z - e*e) / (T * T),
		Susceptibility: (a.sumM2/a.z - m*m) / T,
		LogPartition:   -a.minE/T + math.Log(a.z),
		GroundEnergy:   a.minE,
		GroundState:    a.minLabel,
	}
}
