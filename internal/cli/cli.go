// Package cli orchestrates a measurement run after configuration loading:
// it constructs the engine, executes it and renders the final report.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/countwise/count/pkg/count"
)

// Run executes the main application logic with validated options. Errors
// are returned to the caller (cobra), which prints them and exits
// non-zero; this is the only place process exit semantics are decided.
func Run(ctx context.Context, opts count.Options, logger *slog.Logger) error {
	engine, err := count.NewEngine(&opts)
	if err != nil {
		logger.Error("Failed to construct engine", slog.Any("error", err))
		return err
	}

	report, err := engine.Run(ctx)
	if err != nil {
		logger.Error("Measurement run failed", slog.Any("error", err))
		return err
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	if err := renderReport(stdout, opts.OutputFormat, report); err != nil {
		logger.Error("Failed to render report", slog.Any("error", err))
		return err
	}
	return nil
}

// renderReport writes the report document for the structured output
// formats. In text format the engine has already printed the result
// lines, so there is nothing left to do.
func renderReport(w io.Writer, format count.OutputFormat, report count.Report) error {
	switch format {
	case count.OutputFormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case count.OutputFormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return nil
	}
}
