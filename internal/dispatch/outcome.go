package dispatch

// Outcome statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request is a single notification invocation.
type Request struct {
	// ID correlates log lines and the outcome; a ULID per invocation.
	ID      string
	Kind    Kind
	Message string
}

// Outcome is the structured delivery record returned to the caller.
// Status is "success" when either channel delivered: a partial win
// still informs the user. Sound carries the path that actually played
// and is null when sound delivery failed; the key is always present on
// the wire. Method names the visual delivery method that won and is
// empty when no banner was shown.
type Outcome struct {
	ID      string  `json:"id,omitempty" yaml:"id,omitempty"`
	Status  string  `json:"status" yaml:"status"`
	Message string  `json:"message" yaml:"message"`
	Sound   *string `json:"sound" yaml:"sound"`
	Visual  bool    `json:"visual" yaml:"visual"`
	Method  string  `json:"method,omitempty" yaml:"method,omitempty"`
}

// SoundDelivered reports whether the audio channel succeeded.
func (o Outcome) SoundDelivered() bool { return o.Sound != nil && *o.Sound != "" }

// PlayedSound returns the path that played, or empty when sound
// delivery failed.
func (o Outcome) PlayedSound() string {
	if o.Sound == nil {
		return ""
	}
	return *o.Sound
}

// Delivered reports whether the user was informed at all.
func (o Outcome) Delivered() bool { return o.Status == StatusSuccess }
