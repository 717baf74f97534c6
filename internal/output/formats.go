package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/taskping/taskping/internal/dispatch"
)

// JSONFormatter writes the outcome as indented JSON.
type JSONFormatter struct{}

// Format writes the outcome as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, outcome dispatch.Outcome) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(outcome)
}

// YAMLFormatter writes the outcome as YAML.
type YAMLFormatter struct{}

// Format writes the outcome as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, outcome dispatch.Outcome) error {
	data, err := yaml.Marshal(outcome)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// PlainFormatter writes a short human-readable summary.
type PlainFormatter struct{}

// Format writes the outcome as plain text lines.
func (f *PlainFormatter) Format(w io.Writer, outcome dispatch.Outcome) error {
	sound := "not delivered"
	if outcome.SoundDelivered() {
		sound = outcome.PlayedSound()
	}
	visual := "not delivered"
	if outcome.Visual {
		visual = "delivered via " + outcome.Method
	}

	_, err := fmt.Fprintf(w, "status: %s\nsound:  %s\nvisual: %s\n",
		outcome.Status, sound, visual)
	return err
}
