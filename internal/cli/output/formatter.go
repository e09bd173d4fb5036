// Package output provides output formatting for kappa-cli.
package output

import (
	"fmt"
	"io"
)

// Format represents the output format.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates s as an output format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (text, table, json, yaml)", s)
}

// Structured reports whether the format is machine-readable. Structured
// formats render operation results instead of confirmation messages.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// Formatter formats data for output.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{}
	default:
		return &TextFormatter{}
	}
}
