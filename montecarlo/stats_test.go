package montecarlo_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/montecarlo"
)

func TestSummary(t *testing.T) {
	r := &montecarlo.Result{
		Energies:       []float64{-2, 0, 2, 4},
		Magnetizations: []int{2, 0, -2, 0},
		Proposed:       8,
		Accepted:       2,
	}
	est, err := r.Summary(2)
	require.NoError(t, err)

	require.Equal(t, 4, est.Samples)
	require.InDelta(t, 1.0, est.Energy, 1e-12)
	require.InDelta(t, 5.0/4.0, est.HeatCapacity, 1e-12) // Var(E)=5, T²=4
	require.InDelta(t, 0.0, est.Magnetization, 1e-12)
	require.InDelta(t, 1.0, est.Susceptibility, 1e-12) // Var(M)=2, T=2
	require.InDelta(t, math.Sqrt(5.0*4/3/4), est.EnergyStdErr, 1e-12)
	require.InDelta(t, 0.25, est.AcceptanceRate, 1e-12)

	_, err = (&montecarlo.Result{}).Summary(1)
	require.ErrorIs(t, err, montecarlo.ErrNoSamples)
	_, err = r.Summary(0)
	require.ErrorIs(t, err, montecarlo.ErrInvalidTemperature)
}

func TestMerge(t *testing.T) {
	a := &montecarlo.Result{Energies: []float64{1}, Magnetizations: []int{2}, Proposed: 6, Accepted: 1}
	b := &montecarlo.Result{Energies: []float64{3, 5}, Magnetizations: []int{0, -2}, Proposed: 12, Accepted: 4}

	got := montecarlo.Merge(a, nil, b)
	require.Equal(t, []float64{1, 3, 5}, got.Energies)
	require.Equal(t, []int{2, 0, -2}, got.Magnetizations)
	require.Equal(t, int64(18), got.Proposed)
	require.Equal(t, int64(5), got.Accepted)
}

func TestRunChains(t *testing.T) {
	h := ring6(t)

	_, err := montecarlo.RunChains(context.Background(), nil, 1, 10, 0, 2, 1)
	require.ErrorIs(t, err, montecarlo.ErrNilHamiltonian)
	_, err = montecarlo.RunChains(context.Background(), h, 1, 10, 0, 0, 1)
	require.ErrorIs(t, err, montecarlo.ErrInvalidChains)
	_, err = montecarlo.RunChains(context.Background(), h, -1, 10, 0, 2, 1)
	require.ErrorIs(t, err, montecarlo.ErrInvalidTemperature)

	a, err := montecarlo.RunChains(context.Background(), h, 1, 400, 100, 4, 99)
	require.NoError(t, err)
	b, err := montecarlo.RunChains(context.Background(), h, 1, 400, 100, 4, 99)
	require.NoError(t, err)
	require.Len(t, a, 4)
	require.Equal(t, a, b)
	for _, r := range a {
		require.Len(t, r.Energies, 300)
	}

	pooled := montecarlo.Merge(a...)
	require.Len(t, pooled.Energies, 1200)
	est, err := pooled.Summary(1)
	require.NoError(t, err)
	require.InDelta(t, exactRingEnergy, est.Energy, 0.5)
}
