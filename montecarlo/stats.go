// SPDX-License-Identifier: MIT
// Package: montecarlo
//
// stats.go — reductions of recorded samples to thermal estimates.

package montecarlo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/isingraph/ising"
)

// Estimate summarizes a Result at the temperature it was sampled at.
//
// Standard errors assume independent samples; consecutive sweeps are
// correlated, so treat them as lower bounds.
type Estimate struct {
	Temperature         float64 `json:"temperature"`
	Samples             int     `json:"samples"`
	Energy              float64 `json:"energy"`
	EnergyStdErr        float64 `json:"energy_stderr"`
	Magnetization       float64 `json:"magnetization"`
	MagnetizationStdErr float64 `json:"magnetization_stderr"`
	HeatCapacity        float64 `json:"heat_capacity"`
	Susceptibility      float64 `json:"susceptibility"`
	AcceptanceRate      float64 `json:"acceptance_rate"`
}

// Summary reduces r using the same estimators as the exact ensemble:
// HeatCapacity = Var(E)/T², Susceptibility = Var(M)/T (population variances).
//
// Errors: ErrInvalidTemperature, ErrNoSamples.
// Complexity: O(len(r.Energies)).
func (r *Result) Summary(T float64) (Estimate, error) {
	if err := ising.ValidateTemperature(T); err != nil {
		return Estimate{}, fmt.Errorf("Result.Summary: %w", err)
	}
	n := len(r.Energies)
	if n == 0 {
		return Estimate{}, fmt.Errorf("Result.Summary: %w", ErrNoSamples)
	}

	mags := make([]float64, len(r.Magnetizations))
	for i, m := range r.Magnetizations {
		mags[i] = float64(m)
	}
	eMean, eVar := meanVar(r.Energies)
	mMean, mVar := meanVar(mags)

	est := Estimate{
		Temperature:    T,
		Samples:        n,
		Energy:         eMean,
		Magnetization:  mMean,
		HeatCapacity:   eVar / (T * T),
		Susceptibility: mVar / T,
	}
	if n > 1 {
		// Unbiased sample variance over n for the standard error of the mean.
		corr := float64(n) / float64(n-1)
		est.EnergyStdErr = math.Sqrt(eVar * corr / float64(n))
		est.MagnetizationStdErr = math.Sqrt(mVar * corr / float64(n))
	}
	if r.Proposed > 0 {
		est.AcceptanceRate = float64(r.Accepted) / float64(r.Proposed)
	}

	return est, nil
}

// meanVar returns the mean and population variance with Welford's update.
func meanVar(xs []float64) (mean, variance float64) {
	var m2 float64
	for i, x := range xs {
		d := x - mean
		mean += d / float64(i+1)
		m2 += d * (x - mean)
	}
	if len(xs) > 0 {
		variance = m2 / float64(len(xs))
	}

	return mean, variance
}

// Merge pools several results in argument order. nil entries are skipped.
func Merge(results ...*Result) *Result {
	total := 0
	for _, r := range results {
		if r != nil {
			total += len(r.Energies)
		}
	}
	out := &Result{
		Energies:       make([]float64, 0, total),
		Magnetizations: make([]int, 0, total),
	}
	for _, r := range results {
		if r == nil {
			continue
		}
		out.Energies = append(out.Energies, r.Energies...)
		out.Magnetizations = append(out.Magnetizations, r.Magnetizations...)
		out.Proposed += r.Proposed
		out.Accepted += r.Accepted
	}

	return out
}
