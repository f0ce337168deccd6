// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: model file schema, loading, defaults, validation, Hamiltonian assembly.
// Order of resolution:
//   1. YAML decode (unknown keys rejected).
//   2. applyDefaults fills zero values.
//   3. command-line flags override (commands.go).
//   4. Validate.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/isingraph/builder"
	"github.com/katalvlaran/isingraph/core"
	"github.com/katalvlaran/isingraph/ising"
)

// MaxModelFileSize caps the model file read from disk.
const MaxModelFileSize = 1 << 20

// Defaults applied to zero-valued model fields.
const (
	DefaultTemperature = 1.0
	DefaultSamples     = 10000
	DefaultBurn        = 1000
	DefaultSeed        = 1
	DefaultChains      = 1
	DefaultWorkers     = 1
	DefaultLatticeSeed = 1
)

// Lattice kinds.
const (
	KindCycle    = "cycle"
	KindPath     = "path"
	KindGrid     = "grid"
	KindTorus    = "torus"
	KindComplete = "complete"
	KindRandom   = "random"
)

// Coupling distributions for LatticeSpec.Weights.
const (
	DistConstant = "constant"
	DistUniform  = "uniform"
	DistNormal   = "normal"
	DistBimodal  = "bimodal"
)

var (
	// ErrModelTooLarge is returned when the model file exceeds MaxModelFileSize.
	ErrModelTooLarge = errors.New("isingctl: model file too large")

	// ErrEmptyModel is returned for a file with no YAML document.
	ErrEmptyModel = errors.New("isingctl: empty model file")

	// ErrInvalidModel is returned by Validate for any inconsistent field.
	ErrInvalidModel = errors.New("isingctl: invalid model")
)

// Model is the on-disk description of one Ising system and how to solve it.
type Model struct {
	Lattice      *LatticeSpec   `yaml:"lattice"`
	Edges        []EdgeSpec     `yaml:"edges"`
	Bias         []float64      `yaml:"bias"`
	Field        *float64       `yaml:"field"`
	Temperatures []float64      `yaml:"temperatures"`
	MonteCarlo   MonteCarloSpec `yaml:"montecarlo"`
	Workers      int            `yaml:"workers"`
}

// LatticeSpec selects a builder topology.
// Size is used by cycle, path, complete and random; Rows/Cols by grid and torus.
type LatticeSpec struct {
	Kind        string      `yaml:"kind"`
	Size        int         `yaml:"size"`
	Rows        int         `yaml:"rows"`
	Cols        int         `yaml:"cols"`
	Probability float64     `yaml:"probability"`
	Coupling    *float64    `yaml:"coupling"`
	Weights     *WeightSpec `yaml:"weights"`
	Seed        int64       `yaml:"seed"`
}

// WeightSpec draws random couplings. Only the fields of Dist are read.
type WeightSpec struct {
	Dist   string  `yaml:"dist"`
	Value  float64 `yaml:"value"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	J      float64 `yaml:"j"`
	P      float64 `yaml:"p"`
}

// EdgeSpec is one explicit coupling; vertices are sites in first-seen order.
type EdgeSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// MonteCarloSpec configures the Metropolis runs.
type MonteCarloSpec struct {
	Samples int   `yaml:"samples"`
	Burn    *int  `yaml:"burn"`
	Seed    int64 `yaml:"seed"`
	Chains  int   `yaml:"chains"`
}

// LoadModel reads, decodes and defaults the model at path. It does not
// validate; callers apply flag overrides first.
func LoadModel(path string) (*Model, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("LoadModel: %w", err)
	}
	if info.Size() > MaxModelFileSize {
		return nil, fmt.Errorf("LoadModel: %d bytes (max %d): %w", info.Size(), MaxModelFileSize, ErrModelTooLarge)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadModel: %w", err)
	}

	return ParseModel(data)
}

// ParseModel decodes one YAML document and applies defaults.
func ParseModel(data []byte) (*Model, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Model
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ParseModel: %w", ErrEmptyModel)
		}
		return nil, fmt.Errorf("ParseModel: %w", err)
	}
	m.applyDefaults()

	return &m, nil
}

func (m *Model) applyDefaults() {
	if len(m.Temperatures) == 0 {
		m.Temperatures = []float64{DefaultTemperature}
	}
	if m.MonteCarlo.Samples == 0 {
		m.MonteCarlo.Samples = DefaultSamples
	}
	if m.MonteCarlo.Burn == nil {
		burn := DefaultBurn
		m.MonteCarlo.Burn = &burn
	}
	if m.MonteCarlo.Seed == 0 {
		m.MonteCarlo.Seed = DefaultSeed
	}
	if m.MonteCarlo.Chains == 0 {
		m.MonteCarlo.Chains = DefaultChains
	}
	if m.Workers == 0 {
		m.Workers = DefaultWorkers
	}
	if m.Lattice != nil {
		m.Lattice.Kind = strings.ToLower(strings.TrimSpace(m.Lattice.Kind))
		if m.Lattice.Seed == 0 {
			m.Lattice.Seed = DefaultLatticeSeed
		}
		if m.Lattice.Weights != nil {
			m.Lattice.Weights.Dist = strings.ToLower(strings.TrimSpace(m.Lattice.Weights.Dist))
		}
	}
}

// Validate checks the fields that can be checked without building the graph.
// Bias length against the site count is checked by BuildHamiltonian.
func (m *Model) Validate() error {
	switch {
	case m.Lattice == nil && len(m.Edges) == 0:
		return invalidf("one of lattice or edges is required")
	case m.Lattice != nil && len(m.Edges) > 0:
		return invalidf("lattice and edges are mutually exclusive")
	case len(m.Bias) > 0 && m.Field != nil:
		return invalidf("bias and field are mutually exclusive")
	case m.Field != nil && !finite(*m.Field):
		return invalidf("field must be finite")
	case m.MonteCarlo.Samples < 1:
		return invalidf("montecarlo.samples=%d must be ≥ 1", m.MonteCarlo.Samples)
	case m.MonteCarlo.Burn != nil && *m.MonteCarlo.Burn < 0:
		return invalidf("montecarlo.burn=%d must be ≥ 0", *m.MonteCarlo.Burn)
	case m.MonteCarlo.Burn != nil && *m.MonteCarlo.Burn >= m.MonteCarlo.Samples:
		return invalidf("montecarlo.burn=%d leaves no samples out of %d", *m.MonteCarlo.Burn, m.MonteCarlo.Samples)
	case m.MonteCarlo.Chains < 1:
		return invalidf("montecarlo.chains=%d must be ≥ 1", m.MonteCarlo.Chains)
	case m.Workers < 1:
		return invalidf("workers=%d must be ≥ 1", m.Workers)
	}
	for _, T := range m.Temperatures {
		if err := ising.ValidateTemperature(T); err != nil {
			return fmt.Errorf("Model.Validate: temperature %v: %w", T, errors.Join(ErrInvalidModel, err))
		}
	}
	for i, b := range m.Bias {
		if !finite(b) {
			return invalidf("bias[%d] must be finite", i)
		}
	}
	if m.Lattice != nil {
		return m.Lattice.validate()
	}

	return nil
}

func (l *LatticeSpec) validate() error {
	switch l.Kind {
	case KindCycle, KindPath, KindComplete, KindRandom:
		if l.Size < 1 {
			return invalidf("lattice %s needs size ≥ 1", l.Kind)
		}
	case KindGrid, KindTorus:
		if l.Rows < 1 || l.Cols < 1 {
			return invalidf("lattice %s needs rows and cols ≥ 1", l.Kind)
		}
	default:
		return invalidf("unknown lattice kind %q", l.Kind)
	}
	if l.Coupling != nil && l.Weights != nil {
		return invalidf("lattice.coupling and lattice.weights are mutually exclusive")
	}
	if l.Coupling != nil && !finite(*l.Coupling) {
		return invalidf("lattice.coupling must be finite")
	}
	if l.Weights != nil {
		return l.Weights.validate()
	}

	return nil
}

// validate rejects the parameters the builder weight options panic on.
func (w *WeightSpec) validate() error {
	for _, x := range []float64{w.Value, w.Min, w.Max, w.Mean, w.StdDev, w.J, w.P} {
		if !finite(x) {
			return invalidf("weights parameters must be finite")
		}
	}
	switch w.Dist {
	case DistConstant:
	case DistUniform:
		if w.Max < w.Min {
			return invalidf("weights.max=%v < weights.min=%v", w.Max, w.Min)
		}
	case DistNormal:
		if w.StdDev < 0 {
			return invalidf("weights.stddev=%v must be ≥ 0", w.StdDev)
		}
	case DistBimodal:
		if w.P < 0 || w.P > 1 {
			return invalidf("weights.p=%v not in [0,1]", w.P)
		}
	default:
		return invalidf("unknown weights.dist %q", w.Dist)
	}

	return nil
}

// Graph builds the interaction graph from the lattice or the edge list.
func (m *Model) Graph() (*core.Graph, error) {
	var (
		g   *core.Graph
		err error
	)
	if m.Lattice != nil {
		g, err = m.Lattice.build()
	} else {
		g, err = m.edgeGraph()
	}
	if err != nil {
		return nil, fmt.Errorf("Model.Graph: %w", err)
	}

	return g, nil
}

// BuildHamiltonian assembles the graph, snapshots it and applies the bias.
func (m *Model) BuildHamiltonian() (*ising.Hamiltonian, error) {
	g, err := m.Graph()
	if err != nil {
		return nil, fmt.Errorf("BuildHamiltonian: %w", err)
	}

	return m.hamiltonian(g)
}

func (m *Model) hamiltonian(g *core.Graph) (*ising.Hamiltonian, error) {
	h, err := ising.New(g)
	if err != nil {
		return nil, fmt.Errorf("BuildHamiltonian: %w", err)
	}
	switch {
	case len(m.Bias) > 0:
		err = h.SetBias(m.Bias)
	case m.Field != nil:
		err = h.SetUniformBias(*m.Field)
	}
	if err != nil {
		return nil, fmt.Errorf("BuildHamiltonian: %w", err)
	}

	return h, nil
}

func (m *Model) edgeGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(m.Edges)))
	for i, e := range m.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edges[%d]: %w", i, err)
		}
	}

	return g, nil
}

func (l *LatticeSpec) build() (*core.Graph, error) {
	var cons builder.Constructor
	switch l.Kind {
	case KindCycle:
		cons = builder.Cycle(l.Size)
	case KindPath:
		cons = builder.Path(l.Size)
	case KindGrid:
		cons = builder.Grid(l.Rows, l.Cols)
	case KindTorus:
		cons = builder.Torus(l.Rows, l.Cols)
	case KindComplete:
		cons = builder.Complete(l.Size)
	case KindRandom:
		cons = builder.RandomSparse(l.Size, l.Probability)
	default:
		return nil, invalidf("unknown lattice kind %q", l.Kind)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(l.Seed)}
	switch {
	case l.Coupling != nil:
		bopts = append(bopts, builder.WithConstantWeight(*l.Coupling))
	case l.Weights != nil:
		bopts = append(bopts, l.Weights.option())
	}

	return builder.BuildGraph(nil, bopts, cons)
}

func (w *WeightSpec) option() builder.BuilderOption {
	switch w.Dist {
	case DistUniform:
		return builder.WithUniformWeight(w.Min, w.Max)
	case DistNormal:
		return builder.WithNormalWeight(w.Mean, w.StdDev)
	case DistBimodal:
		return builder.WithBimodalWeight(w.J, w.P)
	default:
		return builder.WithConstantWeight(w.Value)
	}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("Model.Validate: %s: %w", fmt.Sprintf(format, args...), ErrInvalidModel)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
