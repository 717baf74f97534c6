package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/taskping/taskping/internal/dispatch"
)

var sampleSound = "/System/Library/Sounds/Hero.aiff"

var sampleOutcome = dispatch.Outcome{
	ID:      "01ARZ3NDEKTSV4RRFFQ69G5FAV",
	Status:  dispatch.StatusSuccess,
	Message: "Build finished",
	Sound:   &sampleSound,
	Visual:  true,
	Method:  "osascript",
}

func TestNewFormatter(t *testing.T) {
	for _, ft := range []FormatType{FormatPlain, FormatJSON, FormatYAML, ""} {
		f, err := NewFormatter(ft)
		require.NoError(t, err)
		assert.NotNil(t, f)
	}

	_, err := NewFormatter("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	require.NoError(t, f.Format(&buf, sampleOutcome))

	var decoded dispatch.Outcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleOutcome, decoded)
}

func TestJSONFormatter_FailedSoundIsNull(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}
	require.NoError(t, f.Format(&buf, dispatch.Outcome{
		Status:  dispatch.StatusError,
		Message: "nope",
	}))

	// The sound key is always on the wire, null when nothing played.
	assert.Contains(t, buf.String(), `"sound": null`)
	assert.NotContains(t, buf.String(), `"method"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &YAMLFormatter{}
	require.NoError(t, f.Format(&buf, sampleOutcome))

	var decoded dispatch.Outcome
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleOutcome, decoded)
}

func TestPlainFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &PlainFormatter{}
	require.NoError(t, f.Format(&buf, sampleOutcome))

	out := buf.String()
	assert.Contains(t, out, "status: success")
	assert.Contains(t, out, "/System/Library/Sounds/Hero.aiff")
	assert.Contains(t, out, "delivered via osascript")
}

func TestPlainFormatter_Failures(t *testing.T) {
	var buf bytes.Buffer
	f := &PlainFormatter{}
	require.NoError(t, f.Format(&buf, dispatch.Outcome{
		Status:  dispatch.StatusError,
		Message: "nothing worked",
	}))

	assert.Contains(t, buf.String(), "status: error")
	assert.Contains(t, buf.String(), "not delivered")
}
