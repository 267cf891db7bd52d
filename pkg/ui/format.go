package ui

import (
	"os"
	"strings"

	"github.com/arthur-debert/extlinker/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are written.
type Format int

const (
	// FormatAuto picks terminal or text depending on the output stream
	FormatAuto Format = iota
	// FormatTerminal renders styled output with colors and tables
	FormatTerminal
	// FormatText renders plain lines, one per target
	FormatText
	// FormatJSON renders the report as a JSON document
	FormatJSON
)

// String returns the flag value of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a --format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("format", s)
	}
}

// DetectFormat returns FormatTerminal only for a color capable terminal
// with NO_COLOR unset.
func DetectFormat(output *os.File) Format {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// Check the color support of this stream, not of stdout
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	// Terminal supports colors
	return FormatTerminal
}
