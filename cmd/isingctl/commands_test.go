package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/ising"
)

// Exact averages of the J=2 six-site ring at T=1.
const (
	ringEnergy         = -11.959919227
	ringHeatCapacity   = 0.319254716
	ringSusceptibility = 0.0120296076
	ringLogPartition   = 12.6981681817
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func decodeReport(t *testing.T, out string) report {
	t.Helper()
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))

	return r
}

func TestExact_JSON(t *testing.T) {
	path := writeModel(t, ringYAML)
	out, _, err := execute(t, "exact", "--model", path, "--format", "json")
	require.NoError(t, err)

	r := decodeReport(t, out)
	_, err = uuid.Parse(r.RunID)
	require.NoError(t, err)
	require.Equal(t, 6, r.Sites)
	require.Equal(t, 6, r.Couplings)
	require.Equal(t, 1, r.Clusters)
	require.Empty(t, r.Sampled)
	require.Len(t, r.Exact, 1)

	row := r.Exact[0]
	require.Equal(t, 1.0, row.Temperature)
	require.InDelta(t, ringEnergy, row.Energy, 1e-8)
	require.InDelta(t, 0, row.Magnetization, 1e-12)
	require.InDelta(t, ringHeatCapacity, row.HeatCapacity, 1e-8)
	require.InDelta(t, ringSusceptibility, row.Susceptibility, 1e-8)
	require.InDelta(t, ringLogPartition, row.LogPartition, 1e-8)
	require.Equal(t, -12.0, row.GroundEnergy)
	require.Equal(t, uint64(21), row.GroundState)
	require.Equal(t, "010101", row.GroundBits)
	require.Equal(t, uint64(64), row.Configurations)
}

func TestExact_TextWithOverrides(t *testing.T) {
	path := writeModel(t, ringYAML)
	out, _, err := execute(t, "exact", "-m", path, "--temps", "0.5,2", "--workers", "3")
	require.NoError(t, err)

	require.Contains(t, out, "EXACT")
	require.NotContains(t, out, "METROPOLIS")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(l, "0.5 ") || strings.HasPrefix(l, "2 ") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 2)
	for _, l := range rows {
		require.Contains(t, l, "010101")
		require.True(t, strings.HasSuffix(l, "64"), l)
	}
}

func TestExact_WorkersAgree(t *testing.T) {
	path := writeModel(t, "lattice: {kind: random, size: 10, probability: 0.6, seed: 3, weights: {dist: normal, stddev: 1}}\nfield: 0.3\ntemperatures: [0.7]\n")

	one, _, err := execute(t, "exact", "-m", path, "--format", "json", "--workers", "1")
	require.NoError(t, err)
	four, _, err := execute(t, "exact", "-m", path, "--format", "json", "--workers", "4")
	require.NoError(t, err)

	a, b := decodeReport(t, one).Exact[0], decodeReport(t, four).Exact[0]
	require.InDelta(t, a.Energy, b.Energy, 1e-9)
	require.InDelta(t, a.HeatCapacity, b.HeatCapacity, 1e-9)
	require.InDelta(t, a.LogPartition, b.LogPartition, 1e-9)
	require.Equal(t, a.GroundState, b.GroundState)
}

func TestSample_JSON(t *testing.T) {
	path := writeModel(t, ringYAML)
	out, _, err := execute(t, "sample", "-m", path, "--format", "json",
		"--samples", "3000", "--burn", "500", "--chains", "2", "--seed", "7")
	require.NoError(t, err)

	r := decodeReport(t, out)
	require.Empty(t, r.Exact)
	require.Len(t, r.Sampled, 1)
	est := r.Sampled[0]
	require.Equal(t, 5000, est.Samples)
	require.InDelta(t, ringEnergy, est.Energy, 0.25)
	require.Greater(t, est.AcceptanceRate, 0.0)
	require.LessOrEqual(t, est.AcceptanceRate, 1.0)

	again, _, err := execute(t, "sample", "-m", path, "--format", "json",
		"--samples", "3000", "--burn", "500", "--chains", "2", "--seed", "7")
	require.NoError(t, err)
	require.Equal(t, est, decodeReport(t, again).Sampled[0])
}

func TestCompare_Text(t *testing.T) {
	path := writeModel(t, ringYAML+"montecarlo: {samples: 2000, burn: 200}\n")
	out, _, err := execute(t, "compare", "-m", path)
	require.NoError(t, err)

	for _, want := range []string{"EXACT", "METROPOLIS", "COMPARE", obsEnergy, obsMagnetization, obsHeatCapacity, obsSusceptibility} {
		require.Contains(t, out, want)
	}
}

func TestCompare_JSON(t *testing.T) {
	path := writeModel(t, ringYAML)
	out, _, err := execute(t, "compare", "-m", path, "--format", "json", "--samples", "3000", "--burn", "300")
	require.NoError(t, err)

	r := decodeReport(t, out)
	require.Len(t, r.Compare, 1)
	require.Len(t, r.Compare[0].Deviations, 4)
	d := r.Compare[0].Deviations[0]
	require.Equal(t, obsEnergy, d.Observable)
	require.InDelta(t, ringEnergy, d.Exact, 1e-8)
	require.InDelta(t, 0, d.AbsError, 0.25)
}

func TestSpectrum_JSONAndText(t *testing.T) {
	path := writeModel(t, ringYAML)
	out, _, err := execute(t, "spectrum", "-m", path, "--format", "json")
	require.NoError(t, err)

	r := decodeReport(t, out)
	require.Len(t, r.Spectrum, 4)
	require.Equal(t, -12.0, r.Spectrum[0].Energy)
	require.Equal(t, uint64(2), r.Spectrum[0].Degeneracy)
	require.Equal(t, "010101", r.Spectrum[0].FirstBits)
	require.Equal(t, uint64(30), r.Spectrum[1].Degeneracy)

	out, _, err = execute(t, "spectrum", "-m", path)
	require.NoError(t, err)
	require.Contains(t, out, "SPECTRUM")
	require.Contains(t, out, "000000")

	_, _, err = execute(t, "spectrum", "-m", path, "--tol", "NaN")
	require.ErrorIs(t, err, ising.ErrInvalidTolerance)
}

func TestMetricsFile(t *testing.T) {
	path := writeModel(t, ringYAML)
	metricsPath := filepath.Join(t.TempDir(), "isingctl.prom")
	_, _, err := execute(t, "compare", "-m", path, "--samples", "1000", "--burn", "100",
		"--metrics-file", metricsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, "isingctl_configurations_enumerated_total 64")
	require.Contains(t, text, "isingctl_flips_proposed_total 6000")
	require.Contains(t, text, `isingctl_energy{method="exact",temperature="1"}`)
	require.Contains(t, text, `isingctl_energy{method="metropolis",temperature="1"}`)
	require.Contains(t, text, `isingctl_phase_duration_seconds_count{phase="sample"} 1`)
}

func TestLogging_JSONCarriesRunID(t *testing.T) {
	path := writeModel(t, ringYAML)
	out, logs, err := execute(t, "exact", "-m", path, "--format", "json",
		"--log-format", "json", "--log-level", "debug")
	require.NoError(t, err)
	r := decodeReport(t, out)

	var seen []string
	sc := bufio.NewScanner(strings.NewReader(logs))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		require.Equal(t, r.RunID, rec["run_id"])
		seen = append(seen, rec["msg"].(string))
	}
	require.Contains(t, seen, "model loaded")
	require.Contains(t, seen, "exact enumeration")
	require.Contains(t, seen, "temperature done")
}

func TestCommand_Errors(t *testing.T) {
	ring := writeModel(t, ringYAML)

	_, _, err := execute(t, "exact")
	require.ErrorContains(t, err, "model")

	_, _, err = execute(t, "exact", "-m", ring, "--format", "xml")
	require.ErrorContains(t, err, "--format")

	_, _, err = execute(t, "exact", "-m", ring, "--log-level", "loud")
	require.ErrorContains(t, err, "--log-level")

	_, _, err = execute(t, "exact", "-m", ring, "--log-format", "logfmt")
	require.ErrorContains(t, err, "--log-format")

	_, _, err = execute(t, "exact", "-m", ring, "--temps", "-1")
	require.ErrorIs(t, err, ising.ErrInvalidTemperature)

	_, _, err = execute(t, "sample", "-m", ring, "--samples", "10", "--burn", "10")
	require.ErrorIs(t, err, ErrInvalidModel)

	_, _, err = execute(t, "exact", "-m", ring, "surplus")
	require.Error(t, err)

	big := writeModel(t, "lattice: {kind: cycle, size: 31}\n")
	_, _, err = execute(t, "exact", "-m", big)
	require.ErrorIs(t, err, ising.ErrTooManySites)
}
