// SPDX-License-Identifier: MIT
// Package montecarlo_test verifies the Metropolis chain against exact enumeration.

package montecarlo_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/builder"
	"github.com/katalvlaran/isingraph/core"
	"github.com/katalvlaran/isingraph/ising"
	"github.com/katalvlaran/isingraph/montecarlo"
	"github.com/katalvlaran/isingraph/spin"
)

// exactRingEnergy is ⟨E⟩ of the 6-site ring with J=2, zero bias, at T=1.
const exactRingEnergy = -11.95991923

func ring6(t *testing.T) *ising.Hamiltonian {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Cycle(6))
	require.NoError(t, err)
	h, err := ising.New(g)
	require.NoError(t, err)

	return h
}

// countingSource counts the draws it hands out.
type countingSource struct {
	montecarlo.Source
	draws int64
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.Source.Float64()
}

func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s / float64(len(xs))
}

func TestNewMetropolis_Errors(t *testing.T) {
	_, err := montecarlo.NewMetropolis(nil)
	require.ErrorIs(t, err, montecarlo.ErrNilHamiltonian)

	short, err := spin.New(3)
	require.NoError(t, err)
	_, err = montecarlo.NewMetropolis(ring6(t), montecarlo.WithInitial(short))
	require.ErrorIs(t, err, montecarlo.ErrDimensionMismatch)

	require.Panics(t, func() { montecarlo.WithSource(nil) })
	require.Panics(t, func() { montecarlo.WithInitial(nil) })
}

func TestRun_Validation(t *testing.T) {
	m, err := montecarlo.NewMetropolis(ring6(t))
	require.NoError(t, err)

	for _, T := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		_, err = m.Run(context.Background(), T, 10, 0)
		require.ErrorIs(t, err, montecarlo.ErrInvalidTemperature)
		require.ErrorIs(t, err, ising.ErrInvalidTemperature)
	}
	_, err = m.Run(context.Background(), 1, -1, 0)
	require.ErrorIs(t, err, montecarlo.ErrInvalidSampleCount)
	_, err = m.Run(context.Background(), 1, 10, -1)
	require.ErrorIs(t, err, montecarlo.ErrInvalidSampleCount)
	require.Nil(t, m.Config(), "failed runs leave no state")
}

func TestRun_Lengths(t *testing.T) {
	m, err := montecarlo.NewMetropolis(ring6(t), montecarlo.WithSeed(3))
	require.NoError(t, err)

	res, err := m.Run(context.Background(), 1, 50, 20)
	require.NoError(t, err)
	require.Len(t, res.Energies, 30)
	require.Len(t, res.Magnetizations, 30)
	require.Equal(t, int64(50*6), res.Proposed)
	require.LessOrEqual(t, res.Accepted, res.Proposed)

	res, err = m.Run(context.Background(), 1, 5, 9)
	require.NoError(t, err)
	require.Empty(t, res.Energies)
	require.Empty(t, res.Magnetizations)

	res, err = m.Run(context.Background(), 1, 0, 0)
	require.NoError(t, err)
	require.Empty(t, res.Energies)
	require.Zero(t, res.Proposed)
}

func TestRun_RecordsConsistentObservables(t *testing.T) {
	h := ring6(t)
	m, err := montecarlo.NewMetropolis(h, montecarlo.WithSeed(9))
	require.NoError(t, err)

	res, err := m.Run(context.Background(), 2.5, 200, 0)
	require.NoError(t, err)
	for i, e := range res.Energies {
		// Ring energies are 12 − 4a for an even number a of anti-aligned bonds.
		require.Contains(t, []float64{-12, -4, 4, 12}, e, "sample %d", i)
		mag := res.Magnetizations[i]
		require.GreaterOrEqual(t, mag, -6)
		require.LessOrEqual(t, mag, 6)
		require.Zero(t, mag%2)
	}

	last := m.Config()
	require.NotNil(t, last)
	e, err := h.Energy(last)
	require.NoError(t, err)
	require.Equal(t, res.Energies[len(res.Energies)-1], e)

	// Config hands out copies.
	require.NoError(t, last.Flip(0))
	require.False(t, last.Equal(m.Config()))
}

func TestRun_DeterministicPerSeed(t *testing.T) {
	h := ring6(t)
	run := func(opt montecarlo.Option) *montecarlo.Result {
		m, err := montecarlo.NewMetropolis(h, opt)
		require.NoError(t, err)
		res, err := m.Run(context.Background(), 1.5, 300, 50)
		require.NoError(t, err)

		return res
	}

	require.Equal(t, run(montecarlo.WithSeed(17)), run(montecarlo.WithSeed(17)))
	require.Equal(t,
		run(montecarlo.WithSource(montecarlo.NewMT19937(5))),
		run(montecarlo.WithSource(montecarlo.NewMT19937(5))))
}

func TestRun_OneDrawPerProposal(t *testing.T) {
	h := ring6(t)
	for _, T := range []float64{0.05, 1, 50} {
		src := &countingSource{Source: montecarlo.NewMT19937(7)}
		m, err := montecarlo.NewMetropolis(h, montecarlo.WithSource(src))
		require.NoError(t, err)

		res, err := m.Run(context.Background(), T, 100, 10)
		require.NoError(t, err)
		require.Equal(t, int64(600), res.Proposed, "T=%g", T)
		require.Equal(t, res.Proposed, src.draws, "T=%g", T)
	}
}

func TestRun_FreshConfigurationEachRun(t *testing.T) {
	m, err := montecarlo.NewMetropolis(ring6(t), montecarlo.WithSeed(4))
	require.NoError(t, err)

	// Cold sweep from all zeros: site 0 has Δ=−8, sites 1..4 have Δ=0, site 5 has Δ=+8.
	for run := 0; run < 2; run++ {
		res, err := m.Run(context.Background(), 0.01, 1, 0)
		require.NoError(t, err)
		require.Equal(t, "111110", m.Config().String(), "run %d", run)
		require.Equal(t, []float64{4}, res.Energies)
		require.Equal(t, int64(5), res.Accepted)
	}
}

func TestRun_InitialGroundStateIsStableWhenCold(t *testing.T) {
	h := ring6(t)
	ground, err := spin.Parse("010101")
	require.NoError(t, err)

	m, err := montecarlo.NewMetropolis(h, montecarlo.WithInitial(ground), montecarlo.WithSeed(2))
	require.NoError(t, err)
	require.NoError(t, ground.Flip(0)) // the sampler keeps its own snapshot

	res, err := m.Run(context.Background(), 0.05, 100, 0)
	require.NoError(t, err)
	for _, e := range res.Energies {
		require.Equal(t, -12.0, e)
	}
	require.Zero(t, res.Accepted)
}

func TestRun_Cancelled(t *testing.T) {
	m, err := montecarlo.NewMetropolis(ring6(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := m.Run(ctx, 1, 100, 0)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
}

func TestRun_ConvergesToExactEnergy(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	h := ring6(t)

	// Mean absolute error over several seeds shrinks as the run grows.
	seeds := []int64{12345, 7, 99, 2024, 31337, 8}
	var errs []float64
	for _, n := range []int{2200, 20000} {
		var sum float64
		for _, seed := range seeds {
			m, err := montecarlo.NewMetropolis(h, montecarlo.WithSeed(seed))
			require.NoError(t, err)
			res, err := m.Run(context.Background(), 1, n, 2000)
			require.NoError(t, err)
			sum += math.Abs(mean(res.Energies) - exactRingEnergy)
		}
		errs = append(errs, sum/float64(len(seeds)))
	}
	require.LessOrEqual(t, errs[1], errs[0]+0.02)
	require.Less(t, errs[1], 0.1)

	// The long run must land within a few standard errors of the exact value.
	m, err := montecarlo.NewMetropolis(h, montecarlo.WithSource(montecarlo.NewMT19937(0)))
	require.NoError(t, err)
	res, err := m.Run(context.Background(), 1, 20000, 2000)
	require.NoError(t, err)
	est, err := res.Summary(1)
	require.NoError(t, err)
	require.InDelta(t, exactRingEnergy, est.Energy, 0.5)
	require.InDelta(t, 0, est.Magnetization, 0.5)
}

func TestRun_BiasedFreeSitesMagnetization(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	h, err := ising.New(g)
	require.NoError(t, err)
	require.NoError(t, h.SetUniformBias(0.5))

	m, err := montecarlo.NewMetropolis(h, montecarlo.WithSeed(5))
	require.NoError(t, err)
	res, err := m.Run(context.Background(), 2, 20000, 1000)
	require.NoError(t, err)
	est, err := res.Summary(2)
	require.NoError(t, err)

	// Independent sites: M = −Σ s_i and ⟨s_i⟩ = tanh(h/T).
	require.InDelta(t, -3*math.Tanh(0.25), est.Magnetization, 0.1)
	require.InDelta(t, -1.5*math.Tanh(0.25), est.Energy, 0.1)
}
