package count

import "fmt"

// Command identifies the metric computed over loaded text, or the
// version command which never touches the filesystem.
type Command string

// Constants representing the defined commands.
const (
	CommandVersion    Command = "version"
	CommandBytes      Command = "bytes"
	CommandCharacters Command = "characters"
	CommandWords      Command = "words"
	CommandLines      Command = "lines"
	CommandGraphemes  Command = "graphemes"
)

// ParseCommand maps a raw command-line argument to a Command.
// Anything outside the closed set is an unrecognized-command error.
func ParseCommand(s string) (Command, error) {
	switch c := Command(s); c {
	case CommandVersion, CommandBytes, CommandCharacters, CommandWords, CommandLines, CommandGraphemes:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnrecognizedCommand, s)
	}
}

// FileMode selects the batch strategy the engine runs for a target file.
type FileMode string

const (
	// ModeNormal measures the one named file.
	ModeNormal FileMode = "normal"
	// ModeCsvList treats the named file as a CSV manifest and measures
	// each listed file individually, in list order.
	ModeCsvList FileMode = "csv-list"
	// ModeCsvMerged treats the named file as a CSV manifest, concatenates
	// every listed file's content and measures the result once.
	ModeCsvMerged FileMode = "csv-merged"
)

// OutputFormat defines the format of the run output on standard output.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
