package count

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Counter defines one text counting strategy.
type Counter interface {
	// Count returns the number of units (bytes, runes, words, ...) in text.
	Count(text string) uint64

	// Name returns a human-readable name for the strategy (for logging
	// and reports).
	Name() string
}

// CounterFor maps a command to its counting strategy. This is the single
// dispatch point for calculations: any command without a strategy behind
// it (including the version command, which never reaches the dispatcher
// in a valid run) is an unrecognized-command error.
func CounterFor(cmd Command) (Counter, error) {
	switch cmd {
	case CommandBytes:
		return byteCounter{}, nil
	case CommandCharacters:
		return runeCounter{}, nil
	case CommandWords:
		return wordCounter{}, nil
	case CommandLines:
		return lineCounter{}, nil
	case CommandGraphemes:
		return graphemeCounter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, string(cmd))
	}
}

// Compute dispatches the command and counts text in one step.
func Compute(cmd Command, text string) (uint64, error) {
	counter, err := CounterFor(cmd)
	if err != nil {
		return 0, err
	}
	return counter.Count(text), nil
}

// byteCounter counts raw bytes.
type byteCounter struct{}

func (byteCounter) Count(text string) uint64 { return uint64(len(text)) }
func (byteCounter) Name() string             { return string(CommandBytes) }

// runeCounter counts Unicode scalar values, so multi-byte characters
// (CJK, emoji, ...) count as one each.
type runeCounter struct{}

func (runeCounter) Count(text string) uint64 { return uint64(utf8.RuneCountInString(text)) }
func (runeCounter) Name() string             { return string(CommandCharacters) }

// wordCounter counts maximal runs of non-whitespace.
type wordCounter struct{}

func (wordCounter) Count(text string) uint64 { return uint64(len(strings.Fields(text))) }
func (wordCounter) Name() string             { return string(CommandWords) }

// lineCounter counts newline bytes, matching the wc convention: a final
// line without a trailing newline is not counted.
type lineCounter struct{}

func (lineCounter) Count(text string) uint64 { return uint64(strings.Count(text, "\n")) }
func (lineCounter) Name() string             { return string(CommandLines) }

// graphemeCounter counts user-perceived characters (grapheme clusters),
// so a combining sequence or a multi-rune emoji counts as one.
type graphemeCounter struct{}

func (graphemeCounter) Count(text string) uint64 {
	return uint64(uniseg.GraphemeClusterCount(text))
}
func (graphemeCounter) Name() string { return string(CommandGraphemes) }
