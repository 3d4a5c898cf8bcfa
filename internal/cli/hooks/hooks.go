// Package hooks bridges count library events to the CLI's logger.
package hooks

import (
	"log/slog"
	"time"

	"github.com/countwise/count/pkg/count"
)

// SlogHooks implements the count.Hooks interface by logging every event
// through the CLI's structured logger. Result lines themselves are
// printed by the engine; these hooks only add observability on stderr.
type SlogHooks struct {
	logger *slog.Logger
}

// New creates SlogHooks backed by the given logger.
func New(logger *slog.Logger) *SlogHooks {
	return &SlogHooks{logger: logger.With(slog.String("component", "hooks"))}
}

// OnFileDiscovered implements count.Hooks.
func (h *SlogHooks) OnFileDiscovered(path string) error {
	h.logger.Debug("File discovered", slog.String("path", path))
	return nil
}

// OnFileMeasured implements count.Hooks.
func (h *SlogHooks) OnFileMeasured(path string, result uint64, duration time.Duration) error {
	h.logger.Debug("File measured",
		slog.String("path", path),
		slog.Uint64("count", result),
		slog.Duration("duration", duration))
	return nil
}

// OnRunComplete implements count.Hooks.
func (h *SlogHooks) OnRunComplete(report count.Report) error {
	h.logger.Debug("Run complete",
		slog.Int("files", report.Summary.FilesMeasured),
		slog.Uint64("total", report.Summary.TotalCount))
	return nil
}
