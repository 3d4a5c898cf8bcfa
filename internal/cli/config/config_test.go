package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/countwise/count/internal/cli/config"
	"github.com/countwise/count/pkg/count"
)

// newFlagSet mirrors the flags root.go registers that config binds.
func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output-format", string(count.DefaultOutputFormat), "")
	return flags
}

// TestLoadAndValidateDefaults verifies the defaults when no config
// file, env or flag override is present.
func TestLoadAndValidateDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	opts, logger, err := config.LoadAndValidate("", "test-version", false, newFlagSet())
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, count.OutputFormatText, opts.OutputFormat)
	assert.False(t, opts.Verbose)
	assert.Equal(t, "test-version", opts.AppVersion)
	assert.NotNil(t, opts.Logger)
}

// TestLoadAndValidateConfigFile verifies values are read from an
// explicitly named YAML config file.
func TestLoadAndValidateConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "count.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("outputFormat: json\nverbose: true\n"), 0o644))

	opts, _, err := config.LoadAndValidate(cfgPath, "dev", false, newFlagSet())
	require.NoError(t, err)
	assert.Equal(t, count.OutputFormatJSON, opts.OutputFormat)
	assert.True(t, opts.Verbose)
	assert.Equal(t, cfgPath, opts.ConfigFilePath)
}

// TestLoadAndValidateMissingExplicitConfig verifies that a named but
// absent config file is an error, while absent default locations are
// not.
func TestLoadAndValidateMissingExplicitConfig(t *testing.T) {
	_, _, err := config.LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml"), "dev", false, newFlagSet())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

// TestLoadAndValidateFlagOverride verifies that a set flag wins over
// the default.
func TestLoadAndValidateFlagOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	flags := newFlagSet()
	require.NoError(t, flags.Set("output-format", "yaml"))

	opts, _, err := config.LoadAndValidate("", "dev", false, flags)
	require.NoError(t, err)
	assert.Equal(t, count.OutputFormatYAML, opts.OutputFormat)
}

// TestLoadAndValidateVerboseFlag verifies the --verbose switch forces
// debug logging regardless of config.
func TestLoadAndValidateVerboseFlag(t *testing.T) {
	t.Chdir(t.TempDir())

	opts, _, err := config.LoadAndValidate("", "dev", true, newFlagSet())
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
}

// TestLoadAndValidateEnvOverride verifies COUNT_* environment overrides.
func TestLoadAndValidateEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("COUNT_OUTPUTFORMAT", "json")

	opts, _, err := config.LoadAndValidate("", "dev", false, newFlagSet())
	require.NoError(t, err)
	assert.Equal(t, count.OutputFormatJSON, opts.OutputFormat)
}

// TestLoadAndValidateRejectsBadFormat verifies output format validation.
func TestLoadAndValidateRejectsBadFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	flags := newFlagSet()
	require.NoError(t, flags.Set("output-format", "xml"))

	_, _, err := config.LoadAndValidate("", "dev", false, flags)
	require.Error(t, err)
	assert.ErrorIs(t, err, count.ErrConfigValidation)
	assert.Contains(t, err.Error(), "xml")
}
