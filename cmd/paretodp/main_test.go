package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretodp/dp"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := execute(args, &out, &errOut)

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "four.txt", "4 1\n10 0 2 1\n")
	csv := filepath.Join(dir, "out", "four.csv")
	metricsFile := filepath.Join(dir, "metrics.prom")

	stdout, _, err := run(t, "solve", in, "-k", "2", "--verify", "--input-order",
		"--out", csv, "--metrics-file", metricsFile, "--show-table")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cost: 2.000000")
	assert.Contains(t, stdout, "cluster 1: [0, 2] (3 points)")
	assert.Contains(t, stdout, "verified cost: 2.000000")
	assert.Contains(t, stdout, "front: 69.000000 | 2.000000")
	assert.Contains(t, stdout, "[0, 1, 2, 69]")

	data, err := os.ReadFile(csv)
	require.NoError(t, err)
	assert.Equal(t, "point_id,x,y,cluster_id\n0,10.000000,,2\n1,0.000000,,1\n2,2.000000,,1\n3,1.000000,,1\n", string(data))

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `paretodp_solves_total{criterion="medoids",status="optimal"} 1`)
}

func TestSolveReport(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "four.txt", "4 1\n10 0 2 1\n")

	stdout, _, err := run(t, "solve", in, "-k", "2", "--verify", "--report", "json",
		"--out", filepath.Join(dir, "four.csv"))
	require.NoError(t, err)
	assert.Contains(t, stdout, `"status": "optimal"`)
	assert.Contains(t, stdout, `"verified": 2`)
	assert.NotContains(t, stdout, "cost: 2.000000")
	assert.FileExists(t, filepath.Join(dir, "four.csv"))

	stdout, _, err = run(t, "solve", in, "-k", "2", "--report", "yaml",
		"--out", filepath.Join(dir, "four.csv"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "status: optimal")
}

func TestSolveInfeasible(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "two.txt", "2 1\n0 4\n")

	stdout, _, err := run(t, "solve", in, "--criterion", "median", "--out", filepath.Join(dir, "x.csv"))
	require.ErrorIs(t, err, dp.ErrPartitionInfeasible)
	assert.Contains(t, stdout, "status: degenerate")
	assert.NoFileExists(t, filepath.Join(dir, "x.csv"))
}

func TestSolveInfeasibleWritesMetrics(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "two.txt", "2 1\n0 4\n")
	metricsFile := filepath.Join(dir, "metrics.prom")

	_, _, err := run(t, "solve", in, "-k", "3", "--metrics-file", metricsFile)
	require.ErrorIs(t, err, dp.ErrPartitionInfeasible)

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `paretodp_solves_total{criterion="medoids",status="degenerate"} 1`)
}

func TestSolveBadInput(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "bad.txt", "3 1\n1 2\n")

	_, _, err := run(t, "solve", in)
	require.ErrorIs(t, err, dp.ErrFormat)

	_, _, err = run(t, "solve", in, "--criterion", "kmeans")
	require.Error(t, err)
}

func TestFrontCommand(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "two.txt", "2 1\n0 4\n")
	csv := filepath.Join(dir, "front.csv")

	stdout, _, err := run(t, "front", in, "-k", "3", "--out", csv)
	require.NoError(t, err)
	assert.Equal(t, "k,cost\n1,16.000000\n2,0.000000\n3,inf\n", stdout)

	data, err := os.ReadFile(csv)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(data))
}

func TestBenchCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "6 1\n0 1 2 10 11 30\n")
	writeFile(t, dir, "b.txt", "5 2\n0 0 1 1 5 5 6 6 20 20\n")
	out := filepath.Join(dir, "res", "bench.csv")

	t.Setenv("PARETODP_CONCURRENCY", "2")
	stdout, _, err := run(t, "bench", dir, "-k", "2,3", "--out", out, "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "N=5 (2 results)")
	assert.Contains(t, stdout, "N=6 (2 results)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 5)

	_, _, err = run(t, "bench", t.TempDir())
	require.Error(t, err)
}
