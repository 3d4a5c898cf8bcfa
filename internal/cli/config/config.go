// Package config loads and validates the CLI configuration from all
// sources: defaults, an optional config file, environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/countwise/count/pkg/count"
)

const (
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. COUNT_OUTPUTFORMAT).
	EnvPrefix = "COUNT"
	// DefaultConfigName is the base name of the config file searched for
	// in the standard locations.
	DefaultConfigName = "count"
)

// LoadAndValidate loads configuration from all sources (defaults, file,
// env, flags), validates the merged result and sets up the logger.
// Run parameters (command, target, mode) and dependency injection are the
// caller's responsibility; this only covers configurable behavior.
func LoadAndValidate(cfgFile, appVersion string, verbose bool, flags *pflag.FlagSet) (count.Options, *slog.Logger, error) {
	var opts count.Options
	v := viper.New()

	// Basic logger for errors raised before the final level is known.
	tempLogger := slog.New(newLogHandler(slog.LevelInfo))

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			tempLogger.Error("Failed to get user home directory", slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("failed to get user home directory: %w", err)
		}
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			// No config file is fine unless one was explicitly named.
			tempLogger.Debug("No configuration file found, using defaults/env/flags")
		} else {
			used := cfgFile
			if used == "" {
				used = fmt.Sprintf("searched locations for %s.yaml", DefaultConfigName)
			}
			tempLogger.Error("Error reading configuration file", slog.String("path", used), slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("error reading config file '%s': %w", used, err)
		}
	} else {
		opts.ConfigFilePath = v.ConfigFileUsed()
		tempLogger.Debug("Using configuration file", slog.String("path", opts.ConfigFilePath))
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("output-format"); f != nil {
			if err := v.BindPFlag("outputFormat", f); err != nil {
				return opts, tempLogger, fmt.Errorf("failed to bind output-format flag: %w", err)
			}
		}
	}
	if verbose {
		v.Set("verbose", true)
	}

	if err := v.Unmarshal(&opts); err != nil {
		tempLogger.Error("Failed to unmarshal configuration", slog.Any("error", err))
		return opts, tempLogger, fmt.Errorf("failed to parse configuration: %w", err)
	}
	opts.AppVersion = appVersion

	switch opts.OutputFormat {
	case count.OutputFormatText, count.OutputFormatJSON, count.OutputFormatYAML:
	default:
		err := fmt.Errorf("%w: invalid output format %q (expected \"text\", \"json\" or \"yaml\")",
			count.ErrConfigValidation, string(opts.OutputFormat))
		tempLogger.Error(err.Error())
		return opts, tempLogger, err
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(newLogHandler(level))
	opts.Logger = logger.Handler()

	logger.Debug("Configuration loaded",
		slog.String("outputFormat", string(opts.OutputFormat)),
		slog.Bool("verbose", opts.Verbose),
		slog.String("configFile", opts.ConfigFilePath))
	return opts, logger, nil
}

// setDefaults registers defaults for every configurable key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("outputFormat", string(count.DefaultOutputFormat))
	v.SetDefault("verbose", count.DefaultVerbose)
}

// newLogHandler builds the stderr log handler: human-readable text on a
// terminal, JSON when stderr is redirected.
func newLogHandler(level slog.Level) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	return slog.NewJSONHandler(os.Stderr, handlerOpts)
}
