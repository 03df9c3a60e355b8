package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, int32(20), cfg.Pagination.DefaultLimit)
	assert.Equal(t, int32(100), cfg.Pagination.MaxLimit)
	assert.Empty(t, cfg.Metrics.Textfile)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("PAGINATION_DEFAULT_LIMIT", "50")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, int32(50), cfg.Pagination.DefaultLimit)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("LOGGER_LEVEL", "debug")
	t.Setenv("OUTPUT_FORMAT", "json")

	cfg, err := Load(newFlags(t, "--log-level=warn", "-o", "yaml", "--metrics-textfile=/tmp/m.prom"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "/tmp/m.prom", cfg.Metrics.Textfile)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commonctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logger_format: json\npagination_max_limit: 500\n"), 0o600))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, int32(500), cfg.Pagination.MaxLimit)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(newFlags(t, "-o", "xml"))
	assert.ErrorContains(t, err, "unsupported output format")

	t.Setenv("PAGINATION_DEFAULT_LIMIT", "0")
	_, err = Load(nil)
	assert.Error(t, err)

	_, err = Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorContains(t, err, "read config")
}
