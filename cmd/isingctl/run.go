// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isingraph/ising"
	"github.com/katalvlaran/isingraph/montecarlo"
)

func (a *app) runExact(cmd *cobra.Command, _ []string) error {
	m, h, err := a.loadModel(cmd)
	if err != nil {
		return err
	}
	rows, err := a.exactSweep(cmd.Context(), m, h)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), a.flags.format, a.newReport(h, rows, nil, nil))
}

func (a *app) runSample(cmd *cobra.Command, _ []string) error {
	m, h, err := a.loadModel(cmd)
	if err != nil {
		return err
	}
	rows, err := a.sampleSweep(cmd.Context(), m, h)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), a.flags.format, a.newReport(h, nil, rows, nil))
}

func (a *app) runCompare(cmd *cobra.Command, _ []string) error {
	m, h, err := a.loadModel(cmd)
	if err != nil {
		return err
	}
	exact, err := a.exactSweep(cmd.Context(), m, h)
	if err != nil {
		return err
	}
	sampled, err := a.sampleSweep(cmd.Context(), m, h)
	if err != nil {
		return err
	}

	cmp := make([]comparison, len(exact))
	for i := range exact {
		cmp[i] = compare(exact[i], sampled[i])
	}

	return writeReport(cmd.OutOrStdout(), a.flags.format, a.newReport(h, exact, sampled, cmp))
}

func (a *app) runSpectrum(cmd *cobra.Command, _ []string) error {
	_, h, err := a.loadModel(cmd)
	if err != nil {
		return err
	}
	start := time.Now()
	levels, err := h.Spectrum(cmd.Context(), a.flags.tol)
	if err != nil {
		return fmt.Errorf("spectrum: %w", err)
	}
	a.metrics.observe("spectrum", start)
	a.metrics.enumerated.Add(float64(uint64(1) << uint(h.SiteCount())))
	a.metrics.levels.Set(float64(len(levels)))
	a.logger.Info("spectrum done",
		slog.Int("levels", len(levels)),
		slog.Duration("elapsed", time.Since(start)))

	r := a.newReport(h, nil, nil, nil)
	for _, lvl := range levels {
		r.Spectrum = append(r.Spectrum, levelRow{Level: lvl, FirstBits: stateBits(h.SiteCount(), lvl.FirstState)})
	}

	return writeReport(cmd.OutOrStdout(), a.flags.format, r)
}

// exactSweep enumerates the ensemble once per temperature, in model order.
func (a *app) exactSweep(ctx context.Context, m *Model, h *ising.Hamiltonian) ([]ising.Averages, error) {
	if h.SiteCount() > ising.MaxExactSites {
		return nil, fmt.Errorf("exact: %d sites exceed the enumeration limit of %d: %w",
			h.SiteCount(), ising.MaxExactSites, ising.ErrTooManySites)
	}
	total := uint64(1) << uint(h.SiteCount())
	a.logger.Info("exact enumeration",
		slog.String("configurations", humanize.Comma(int64(total))),
		slog.Int("workers", m.Workers))

	out := make([]ising.Averages, 0, len(m.Temperatures))
	for _, T := range m.Temperatures {
		start := time.Now()
		avg, err := h.Ensemble(ctx, T, ising.WithWorkers(m.Workers))
		if err != nil {
			return nil, fmt.Errorf("exact at T=%g: %w", T, err)
		}
		a.metrics.observe("exact", start)
		a.metrics.enumerated.Add(float64(avg.Configurations))
		a.metrics.setEnergy("exact", T, avg.Energy)
		a.logger.Debug("temperature done",
			slog.Float64("T", T),
			slog.Float64("energy", avg.Energy),
			slog.Duration("elapsed", time.Since(start)))
		out = append(out, avg)
	}

	return out, nil
}

// sampleSweep runs the configured chains once per temperature and pools them.
func (a *app) sampleSweep(ctx context.Context, m *Model, h *ising.Hamiltonian) ([]montecarlo.Estimate, error) {
	mc := m.MonteCarlo
	a.logger.Info("metropolis sampling",
		slog.String("sweeps", humanize.Comma(int64(mc.Samples))),
		slog.Int("burn", *mc.Burn),
		slog.Int("chains", mc.Chains),
		slog.Int64("seed", mc.Seed))

	out := make([]montecarlo.Estimate, 0, len(m.Temperatures))
	for _, T := range m.Temperatures {
		start := time.Now()
		results, err := montecarlo.RunChains(ctx, h, T, mc.Samples, *mc.Burn, mc.Chains, mc.Seed)
		if err != nil {
			return nil, fmt.Errorf("sample at T=%g: %w", T, err)
		}
		pooled := montecarlo.Merge(results...)
		est, err := pooled.Summary(T)
		if err != nil {
			return nil, fmt.Errorf("sample at T=%g: %w", T, err)
		}
		a.metrics.observe("sample", start)
		a.metrics.proposed.Add(float64(pooled.Proposed))
		a.metrics.accepted.Add(float64(pooled.Accepted))
		a.metrics.setEnergy("metropolis", T, est.Energy)
		a.logger.Debug("temperature done",
			slog.Float64("T", T),
			slog.Float64("energy", est.Energy),
			slog.Float64("acceptance", est.AcceptanceRate),
			slog.Duration("elapsed", time.Since(start)))
		out = append(out, est)
	}

	return out, nil
}

// Observable names used in comparisons.
const (
	obsEnergy         = "energy"
	obsMagnetization  = "magnetization"
	obsHeatCapacity   = "heat_capacity"
	obsSusceptibility = "susceptibility"
)

// deviation is one observable measured both ways.
type deviation struct {
	Observable string  `json:"observable"`
	Exact      float64 `json:"exact"`
	Sampled    float64 `json:"sampled"`
	AbsError   float64 `json:"abs_error"`
}

// comparison lists the deviations at one temperature.
type comparison struct {
	Temperature float64     `json:"temperature"`
	Deviations  []deviation `json:"deviations"`
}

func compare(ex ising.Averages, mc montecarlo.Estimate) comparison {
	dev := func(name string, e, s float64) deviation {
		return deviation{Observable: name, Exact: e, Sampled: s, AbsError: math.Abs(s - e)}
	}

	return comparison{
		Temperature: ex.Temperature,
		Deviations: []deviation{
			dev(obsEnergy, ex.Energy, mc.Energy),
			dev(obsMagnetization, ex.Magnetization, mc.Magnetization),
			dev(obsHeatCapacity, ex.HeatCapacity, mc.HeatCapacity),
			dev(obsSusceptibility, ex.Susceptibility, mc.Susceptibility),
		},
	}
}
