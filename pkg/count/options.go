package count

import (
	"io"
	"log/slog"
	"time"
)

// Hooks defines callbacks for status updates during a measurement run.
// The engine is fully synchronous, so implementations are called from a
// single goroutine, in source order.
type Hooks interface {
	// OnFileDiscovered is called when a file is about to be loaded.
	OnFileDiscovered(path string) error
	// OnFileMeasured is called after a file has been measured, with the
	// resulting count.
	OnFileMeasured(path string, result uint64, duration time.Duration) error
	// OnRunComplete is called once with the final report.
	OnRunComplete(report Report) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks
// interface.
type NoOpHooks struct{}

// OnFileDiscovered implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileDiscovered(path string) error { return nil }

// OnFileMeasured implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileMeasured(path string, result uint64, duration time.Duration) error {
	return nil
}

// OnRunComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnRunComplete(report Report) error { return nil }

// Options holds all configuration for a measurement run.
type Options struct {
	// --- Run Parameters (from positional args/flags, not config) ---
	Command    Command  `mapstructure:"-"` // Required: metric to compute
	TargetPath string   `mapstructure:"-"` // Required: file (or manifest) to measure
	FileMode   FileMode `mapstructure:"-"` // Batch strategy; empty means ModeNormal

	// --- Application Info ---
	AppVersion     string `mapstructure:"-"` // Application version (e.g. "v1.0.0", "dev")
	ConfigFilePath string `mapstructure:"-"` // Path to the loaded config file (for reporting)

	// --- Behavior & Output ---
	Verbose      bool         `mapstructure:"verbose"`      // Enable debug logging
	OutputFormat OutputFormat `mapstructure:"outputFormat"` // ("text", "json", "yaml")

	// --- Injected Dependencies ---
	EventHooks Hooks        `mapstructure:"-"` // Required: callback interface (use NoOpHooks if unneeded)
	Logger     slog.Handler `mapstructure:"-"` // Required: logging backend
	FileReader FileReader   `mapstructure:"-"` // Optional: defaults to OSFileReader
	Stdout     io.Writer    `mapstructure:"-"` // Optional: result sink, defaults to os.Stdout
}
