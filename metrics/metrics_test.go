package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/paretodp/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// family returns the gathered family called name, or nil.
func family(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}

	return nil
}

// TestCollector_Records counts solves, cells and durations.
func TestCollector_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	c.ObserveSolve("medoids", "finalized", 0.01)
	c.ObserveSolve("medoids", "finalized", 0.02)
	c.ObserveSolve("median", "infeasible", 0.001)
	c.AddCells("medoids", 40)

	series, err := testutil.GatherAndCount(reg, "paretodp_solves_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)

	mf := family(t, reg, "paretodp_solve_duration_seconds")
	require.NotNil(t, mf)
	var samples uint64
	for _, m := range mf.GetMetric() {
		samples += m.GetHistogram().GetSampleCount()
	}
	assert.Equal(t, uint64(3), samples)

	cells := family(t, reg, "paretodp_cells_filled_total")
	require.NotNil(t, cells)
	assert.Equal(t, 40.0, cells.GetMetric()[0].GetCounter().GetValue())
}

// TestNewCollector_ReusesRegistered allows building two collectors on one registry.
func TestNewCollector_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	b, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	a.AddCells("median", 1)
	b.AddCells("median", 2)
	cells := family(t, reg, "paretodp_cells_filled_total")
	require.NotNil(t, cells)
	assert.Equal(t, 3.0, cells.GetMetric()[0].GetCounter().GetValue())
}

// TestWriteTextfile writes the exposition format.
func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)
	c.ObserveSolve("median", "finalized", 0.5)

	path := filepath.Join(t.TempDir(), "paretodp.prom")
	require.NoError(t, metrics.WriteTextfile(path, reg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `paretodp_solves_total{criterion="median",status="finalized"} 1`)
}

// TestNop is safe on nil.
func TestNop(t *testing.T) {
	r := metrics.OrNop(nil)
	r.ObserveSolve("x", "y", 1)
	r.AddCells("x", 1)
	assert.Equal(t, metrics.Nop{}, r)
}
