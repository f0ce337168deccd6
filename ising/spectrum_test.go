package ising_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/ising"
)

func TestSpectrum_Ring(t *testing.T) {
	h := ring6(t)
	levels, err := h.Spectrum(context.Background(), ising.DefaultSpectrumTolerance)
	require.NoError(t, err)

	// E = 12 − 4k for k ∈ {0,2,4,6} domain walls, 2·C(6,k) configurations each.
	require.Len(t, levels, 4)
	wantE := []float64{-12, -4, 4, 12}
	wantG := []uint64{2, 30, 30, 2}
	for i, lvl := range levels {
		require.Equal(t, wantE[i], lvl.Energy)
		require.Equal(t, wantG[i], lvl.Degeneracy)
	}
	require.Equal(t, uint64(21), levels[0].FirstState)
	require.Equal(t, uint64(0), levels[3].FirstState)
}

func TestSpectrum_AgreesWithEnsemble(t *testing.T) {
	h := glass(t, 9, 5)
	levels, err := h.Spectrum(context.Background(), 0)
	require.NoError(t, err)

	var total uint64
	for i, lvl := range levels {
		total += lvl.Degeneracy
		if i > 0 {
			require.Greater(t, lvl.Energy, levels[i-1].Energy)
		}
	}
	require.Equal(t, uint64(1)<<9, total)

	const T = 1.3
	avg, err := h.ComputeAverageValues(T)
	require.NoError(t, err)
	require.Equal(t, avg.GroundEnergy, levels[0].Energy)
	require.Equal(t, avg.GroundState, levels[0].FirstState)

	// ln Z from the density of states, shifted by the ground energy.
	var z float64
	for _, lvl := range levels {
		z += float64(lvl.Degeneracy) * math.Exp(-(lvl.Energy-levels[0].Energy)/T)
	}
	require.InDelta(t, avg.LogPartition, -levels[0].Energy/T+math.Log(z), 1e-9)
}

func TestSpectrum_Errors(t *testing.T) {
	h := ring6(t)
	_, err := h.Spectrum(context.Background(), math.NaN())
	require.ErrorIs(t, err, ising.ErrInvalidTolerance)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.Spectrum(ctx, ising.DefaultSpectrumTolerance)
	require.ErrorIs(t, err, context.Canceled)
}
