// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isingraph/bfs"
	"github.com/katalvlaran/isingraph/ising"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// flagValues holds every command-line flag. Fields shared by several
// subcommands bind the same variable.
type flagValues struct {
	modelPath string
	temps     []float64
	format    string
	logLevel  string
	logFormat string
	metrics   string

	workers int
	tol     float64
	samples int
	burn    int
	seed    int64
	chains  int
}

// app is the state shared by one command tree.
type app struct {
	flags    flagValues
	logger   *slog.Logger
	runID    string
	clusters int // connected components of the coupling graph
	metrics  *runMetrics
}

// newRootCmd builds a fresh command tree; tests build one per case.
func newRootCmd() *cobra.Command {
	a := &app{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newRunMetrics(),
	}

	rootCmd := &cobra.Command{
		Use:   "isingctl",
		Short: "Exact and Metropolis thermal averages of an Ising model",
		Long: `isingctl loads an Ising model (interaction graph, couplings and bias)
from a YAML file and computes thermal averages at one or more temperatures.

Examples:
  isingctl exact   --model ring.yaml --temps 0.5,1,2
  isingctl sample  --model ring.yaml --samples 20000 --chains 4
  isingctl compare --model ring.yaml --format json
  isingctl spectrum --model ring.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if a.flags.metrics == "" {
				return nil
			}
			if err := a.metrics.writeFile(a.flags.metrics); err != nil {
				return fmt.Errorf("--metrics-file: %w", err)
			}
			a.logger.Debug("metrics written", slog.String("path", a.flags.metrics))

			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.flags.modelPath, "model", "m", "", "path to the YAML model file")
	pf.Float64SliceVar(&a.flags.temps, "temps", nil, "temperatures, comma separated (overrides the model)")
	pf.StringVar(&a.flags.format, "format", formatText, "output format: text or json")
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&a.flags.logFormat, "log-format", formatText, "log format: text or json")
	pf.StringVar(&a.flags.metrics, "metrics-file", "", "write Prometheus text-format metrics to this file")
	_ = rootCmd.MarkPersistentFlagRequired("model")

	rootCmd.AddCommand(a.newExactCmd(), a.newSampleCmd(), a.newCompareCmd(), a.newSpectrumCmd())

	return rootCmd
}

func (a *app) newExactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exact",
		Short: "Enumerate all 2^N configurations and print exact averages",
		Args:  cobra.NoArgs,
		RunE:  a.runExact,
	}
	a.bindExactFlags(cmd)

	return cmd
}

func (a *app) newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Estimate averages with single-spin-flip Metropolis chains",
		Args:  cobra.NoArgs,
		RunE:  a.runSample,
	}
	a.bindSampleFlags(cmd)

	return cmd
}

func (a *app) newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run exact and Metropolis side by side and print |MC − exact|",
		Args:  cobra.NoArgs,
		RunE:  a.runCompare,
	}
	a.bindExactFlags(cmd)
	a.bindSampleFlags(cmd)

	return cmd
}

func (a *app) newSpectrumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spectrum",
		Short: "List the energy levels and their degeneracies",
		Args:  cobra.NoArgs,
		RunE:  a.runSpectrum,
	}
	cmd.Flags().Float64Var(&a.flags.tol, "tol", ising.DefaultSpectrumTolerance, "energies closer than this share a level")

	return cmd
}

func (a *app) bindExactFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&a.flags.workers, "workers", DefaultWorkers, "goroutines enumerating configurations")
}

func (a *app) bindSampleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&a.flags.samples, "samples", DefaultSamples, "sweeps per chain, burn-in included")
	f.IntVar(&a.flags.burn, "burn", DefaultBurn, "leading sweeps discarded per chain")
	f.Int64Var(&a.flags.seed, "seed", DefaultSeed, "base seed; chain k uses a seed derived from it")
	f.IntVar(&a.flags.chains, "chains", DefaultChains, "independent chains run in parallel")
}

// setup validates the output flags and installs the run logger.
func (a *app) setup(cmd *cobra.Command) error {
	switch a.flags.format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("--format: unknown value %q (want text or json)", a.flags.format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(a.flags.logLevel))); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	hopts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch a.flags.logFormat {
	case formatText:
		handler = slog.NewTextHandler(cmd.ErrOrStderr(), hopts)
	case formatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), hopts)
	default:
		return fmt.Errorf("--log-format: unknown value %q (want text or json)", a.flags.logFormat)
	}

	a.runID = uuid.NewString()
	a.logger = slog.New(handler).With(slog.String("run_id", a.runID))

	return nil
}

// loadModel reads the model file, applies flag overrides, validates and
// builds the Hamiltonian.
func (a *app) loadModel(cmd *cobra.Command) (*Model, *ising.Hamiltonian, error) {
	m, err := LoadModel(a.flags.modelPath)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("temps") {
		m.Temperatures = append([]float64(nil), a.flags.temps...)
	}
	if flags.Changed("workers") {
		m.Workers = a.flags.workers
	}
	if flags.Changed("samples") {
		m.MonteCarlo.Samples = a.flags.samples
	}
	if flags.Changed("burn") {
		burn := a.flags.burn
		m.MonteCarlo.Burn = &burn
	}
	if flags.Changed("seed") {
		m.MonteCarlo.Seed = a.flags.seed
	}
	if flags.Changed("chains") {
		m.MonteCarlo.Chains = a.flags.chains
	}

	if err = m.Validate(); err != nil {
		return nil, nil, err
	}
	g, err := m.Graph()
	if err != nil {
		return nil, nil, err
	}
	clusters, err := bfs.Clusters(g, bfs.WithContext(cmd.Context()))
	if err != nil {
		return nil, nil, err
	}
	a.clusters = len(clusters)
	h, err := m.hamiltonian(g)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Info("model loaded",
		slog.String("path", a.flags.modelPath),
		slog.Int("sites", h.SiteCount()),
		slog.Int("couplings", h.CouplingCount()),
		slog.Int("clusters", a.clusters),
		slog.Any("temperatures", m.Temperatures))

	return m, h, nil
}
