package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paretodp/config"
	"github.com/katalvlaran/paretodp/cost"
)

func TestDefaults(t *testing.T) {
	c, err := config.Load(config.New(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), c)
	assert.Equal(t, cost.Medoids, c.CriterionValue())
}

func TestPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "paretodp.yaml")
	require.NoError(t, os.WriteFile(file, []byte("criterion: median\nclusters: 4\nworkers: 2\nlog-level: debug\n"), 0o600))

	t.Setenv("PARETODP_WORKERS", "6")
	t.Setenv("PARETODP_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(config.KeyLogLevel, "info", "")
	flags.Int(config.KeyClusters, 0, "")
	require.NoError(t, flags.Parse([]string{"--log-level=error"}))

	c, err := config.Load(config.New(), file, flags)
	require.NoError(t, err)
	assert.Equal(t, "median", c.Criterion) // file
	assert.Equal(t, 4, c.Clusters)         // file beats an unset flag's default
	assert.Equal(t, 6, c.Workers)          // env beats file
	assert.Equal(t, "error", c.LogLevel)   // flag beats env
	assert.Equal(t, cost.Median, c.CriterionValue())
}

func TestValidate(t *testing.T) {
	bad := []func(*config.Config){
		func(c *config.Config) { c.Criterion = "kmeans" },
		func(c *config.Config) { c.Clusters = -1 },
		func(c *config.Config) { c.Workers = -2 },
		func(c *config.Config) { c.LogLevel = "loud" },
		func(c *config.Config) { c.LogFormat = "xml" },
		func(c *config.Config) { c.Report = "toml" },
	}
	for i, mutate := range bad {
		c := config.Defaults()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), config.ErrInvalid, "case %d", i)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}
