package count

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Engine drives one measurement run: it selects the batch strategy for
// the configured FileMode, feeds loaded text through the counting
// dispatcher and emits results. Execution is single-threaded and strictly
// source-ordered: in list mode each manifest entry is fully processed
// (load, measure, print) before the next one starts.
type Engine struct {
	opts    *Options
	logger  *slog.Logger
	hooks   Hooks
	loader  *Loader
	counter Counter
	stdout  io.Writer
}

// NewEngine validates the options and constructs an Engine. Validation
// failures are returned wrapped in ErrConfigValidation, except for an
// unknown command which is reported as ErrUnrecognizedCommand by the
// dispatcher.
func NewEngine(opts *Options) (*Engine, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("%w: Logger implementation cannot be nil", ErrConfigValidation)
	}
	logger := slog.New(opts.Logger).With(slog.String("component", "engine"))

	if opts.EventHooks == nil {
		return nil, fmt.Errorf("%w: EventHooks implementation cannot be nil (use NoOpHooks if needed)", ErrConfigValidation)
	}
	if opts.TargetPath == "" {
		err := fmt.Errorf("%w: target path cannot be empty", ErrConfigValidation)
		logger.Error(err.Error())
		return nil, err
	}
	if opts.FileMode == "" {
		opts.FileMode = ModeNormal
	}

	counter, err := CounterFor(opts.Command)
	if err != nil {
		logger.Error("No counting strategy for command", slog.String("command", string(opts.Command)))
		return nil, err
	}

	reader := opts.FileReader
	if reader == nil {
		logger.Debug("No FileReader provided, defaulting to OS filesystem")
		reader = OSFileReader{}
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &Engine{
		opts:    opts,
		logger:  logger,
		hooks:   opts.EventHooks,
		loader:  NewLoader(reader, opts.EventHooks, slog.New(opts.Logger)),
		counter: counter,
		stdout:  stdout,
	}, nil
}

// Run executes the measurement run and returns the final report. The
// first failure aborts the whole run: no retries, no partial results, no
// skipping to the next manifest entry.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	e.logger.Info("Starting measurement run",
		slog.String("command", e.counter.Name()),
		slog.String("mode", string(e.opts.FileMode)),
		slog.String("target", e.opts.TargetPath))

	var (
		results []FileResult
		err     error
	)
	switch e.opts.FileMode {
	case ModeNormal:
		results, err = e.runNormal()
	case ModeCsvList:
		results, err = e.runCsvList(ctx)
	case ModeCsvMerged:
		results, err = e.runCsvMerged()
	default:
		err = fmt.Errorf("%w: %q", ErrInvalidMode, string(e.opts.FileMode))
		e.logger.Error("File mode outside the closed set reached the engine",
			slog.String("mode", string(e.opts.FileMode)))
	}
	if err != nil {
		return Report{}, err
	}

	report := e.buildReport(results, start)
	if hookErr := e.hooks.OnRunComplete(report); hookErr != nil {
		e.logger.Warn("Error reported by OnRunComplete hook", slog.String("hookError", hookErr.Error()))
	}
	e.logger.Info("Measurement run finished",
		slog.Int("files", report.Summary.FilesMeasured),
		slog.Uint64("total", report.Summary.TotalCount),
		slog.Float64("seconds", report.Summary.DurationSeconds))
	return report, nil
}

// runNormal measures the one named file and prints the bare count.
func (e *Engine) runNormal() ([]FileResult, error) {
	result, err := e.measure(e.opts.TargetPath)
	if err != nil {
		return nil, err
	}
	e.emit("%d\n", result.Count)
	return []FileResult{result}, nil
}

// runCsvList loads the manifest and runs a full load-measure-print cycle
// per listed file, printing "<count> <filename>" in list order.
func (e *Engine) runCsvList(ctx context.Context) ([]FileResult, error) {
	manifest, err := e.loader.Load(e.opts.TargetPath)
	if err != nil {
		return nil, err
	}
	var results []FileResult
	err = ForEachField(manifest.Text(), func(filename string) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			e.logger.Info("Measurement run cancelled", slog.String("reason", ctxErr.Error()))
			return ctxErr
		}
		result, err := e.measure(filename)
		if err != nil {
			return err
		}
		e.emit("%d %s\n", result.Count, result.Filename)
		results = append(results, result)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// runCsvMerged loads the manifest, concatenates every listed file and
// measures the merged content once. The dispatcher only ever sees the
// merged buffer, never the per-file buffers.
func (e *Engine) runCsvMerged() ([]FileResult, error) {
	manifest, err := e.loader.Load(e.opts.TargetPath)
	if err != nil {
		return nil, err
	}
	merged, err := MergeFiles(e.loader, manifest.Text())
	if err != nil {
		return nil, err
	}
	measureStart := time.Now()
	n := e.counter.Count(merged)
	e.emit("%d\n", n)
	result := FileResult{Filename: e.opts.TargetPath, Count: n}
	if hookErr := e.hooks.OnFileMeasured(result.Filename, n, time.Since(measureStart)); hookErr != nil {
		e.logger.Warn("Error reported by OnFileMeasured hook", slog.String("hookError", hookErr.Error()))
	}
	return []FileResult{result}, nil
}

// measure runs one complete load-and-count cycle for a single file.
func (e *Engine) measure(path string) (FileResult, error) {
	start := time.Now()
	file, err := e.loader.Load(path)
	if err != nil {
		return FileResult{}, err
	}
	n := e.counter.Count(file.Text())
	if hookErr := e.hooks.OnFileMeasured(path, n, time.Since(start)); hookErr != nil {
		e.logger.Warn("Error reported by OnFileMeasured hook",
			slog.String("path", path), slog.String("hookError", hookErr.Error()))
	}
	return FileResult{Filename: path, Count: n}, nil
}

// emit writes a result line to standard output. Only the text format
// prints lines as the run progresses; json and yaml render the report
// document instead, once the run is complete.
func (e *Engine) emit(format string, args ...any) {
	if e.opts.OutputFormat != "" && e.opts.OutputFormat != OutputFormatText {
		return
	}
	fmt.Fprintf(e.stdout, format, args...)
}

func (e *Engine) buildReport(results []FileResult, start time.Time) Report {
	var total uint64
	for _, r := range results {
		total += r.Count
	}
	return Report{
		Summary: ReportSummary{
			Command:         e.counter.Name(),
			Mode:            string(e.opts.FileMode),
			TargetPath:      e.opts.TargetPath,
			ConfigFilePath:  e.opts.ConfigFilePath,
			FilesMeasured:   len(results),
			TotalCount:      total,
			DurationSeconds: time.Since(start).Seconds(),
			Timestamp:       time.Now(),
			SchemaVersion:   ReportSchemaVersion,
		},
		Results: results,
	}
}
