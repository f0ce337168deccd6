// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/isingraph/ising"
	"github.com/katalvlaran/isingraph/montecarlo"
	"github.com/katalvlaran/isingraph/spin"
)

// report is everything one command prints. Empty sections are omitted.
type report struct {
	RunID     string                `json:"run_id"`
	Sites     int                   `json:"sites"`
	Couplings int                   `json:"couplings"`
	Clusters  int                   `json:"clusters"`
	Exact     []exactRow            `json:"exact,omitempty"`
	Sampled   []montecarlo.Estimate `json:"sampled,omitempty"`
	Compare   []comparison          `json:"compare,omitempty"`
	Spectrum  []levelRow            `json:"spectrum,omitempty"`
}

// exactRow adds the ground state as a bit string to the raw averages.
type exactRow struct {
	ising.Averages
	GroundBits string `json:"ground_bits"`
}

// levelRow adds the first state of a level as a bit string.
type levelRow struct {
	ising.Level
	FirstBits string `json:"first_bits"`
}

func (a *app) newReport(h *ising.Hamiltonian, exact []ising.Averages, sampled []montecarlo.Estimate, cmp []comparison) report {
	r := report{
		RunID:     a.runID,
		Sites:     h.SiteCount(),
		Couplings: h.CouplingCount(),
		Clusters:  a.clusters,
		Sampled:   sampled,
		Compare:   cmp,
	}
	for _, avg := range exact {
		r.Exact = append(r.Exact, exactRow{Averages: avg, GroundBits: stateBits(h.SiteCount(), avg.GroundState)})
	}

	return r
}

func stateBits(n int, label uint64) string {
	c, err := spin.New(n)
	if err != nil {
		return ""
	}
	c.SetInteger(label)

	return c.String()
}

func writeReport(w io.Writer, format string, r report) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "sites: %d\tcouplings: %d\tclusters: %d\n", r.Sites, r.Couplings, r.Clusters)

	if len(r.Exact) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "EXACT")
		fmt.Fprintln(tw, "T\t<E>\t<M>\tC\tchi\tln Z\tE0\tground\tconfigurations")
		for _, row := range r.Exact {
			fmt.Fprintf(tw, "%g\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%g\t%s\t%s\n",
				row.Temperature, row.Energy, row.Magnetization, row.HeatCapacity,
				row.Susceptibility, row.LogPartition, row.GroundEnergy, row.GroundBits,
				humanize.Comma(int64(row.Configurations)))
		}
	}

	if len(r.Sampled) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "METROPOLIS")
		fmt.Fprintln(tw, "T\tsamples\t<E>\t+/-\t<M>\t+/-\tC\tchi\taccepted")
		for _, est := range r.Sampled {
			fmt.Fprintf(tw, "%g\t%s\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.1f%%\n",
				est.Temperature, humanize.Comma(int64(est.Samples)),
				est.Energy, est.EnergyStdErr, est.Magnetization, est.MagnetizationStdErr,
				est.HeatCapacity, est.Susceptibility, 100*est.AcceptanceRate)
		}
	}

	if len(r.Compare) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "COMPARE")
		fmt.Fprintln(tw, "T\tobservable\texact\tsampled\t|diff|")
		for _, c := range r.Compare {
			for _, d := range c.Deviations {
				fmt.Fprintf(tw, "%g\t%s\t%.6f\t%.6f\t%.6f\n",
					c.Temperature, d.Observable, d.Exact, d.Sampled, d.AbsError)
			}
		}
	}

	if len(r.Spectrum) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "SPECTRUM")
		fmt.Fprintln(tw, "E\tdegeneracy\tfirst state")
		for _, lvl := range r.Spectrum {
			fmt.Fprintf(tw, "%g\t%s\t%s\n", lvl.Energy, humanize.Comma(int64(lvl.Degeneracy)), lvl.FirstBits)
		}
	}

	return tw.Flush()
}
