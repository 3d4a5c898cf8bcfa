package count

import "errors"

// Exported error variables. These represent the fatal error categories a
// measurement run can end with. Callers can check against them using
// errors.Is.

var (
	// ErrReadFailed indicates a failure to open or read a named file.
	// "Not found", permission and other I/O failures are reported under
	// this one category; the wrapped message names the offending path.
	// Always fatal: the first read failure aborts the whole run.
	ErrReadFailed = errors.New("failed to read file")

	// ErrUnrecognizedCommand indicates the dispatcher was given a command
	// with no counting strategy behind it. The wrapped message names the
	// command. Fatal, not retryable.
	ErrUnrecognizedCommand = errors.New("unrecognized command")

	// ErrInvalidMode indicates a FileMode outside the closed set reached
	// the engine. Valid parsed input cannot produce this; it signals an
	// internal wiring bug rather than a user error.
	ErrInvalidMode = errors.New("invalid file mode")

	// ErrConfigValidation indicates the provided Options failed the
	// validation checks performed when the engine is constructed.
	ErrConfigValidation = errors.New("invalid configuration options provided")
)
