// Package output provides output formatters for delivery outcomes.
package output

import (
	"fmt"
	"io"

	"github.com/taskping/taskping/internal/dispatch"
)

// Formatter formats a delivery outcome for output.
type Formatter interface {
	// Format writes the formatted outcome to the writer.
	Format(w io.Writer, outcome dispatch.Outcome) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatPlain, "":
		return &PlainFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}
