package dispatch

import (
	"strings"

	"github.com/taskping/taskping/internal/config"
)

// Kind is the semantic notification category.
type Kind string

const (
	// KindStart marks the beginning of assistant work.
	KindStart Kind = "start"
	// KindComplete marks the end of assistant work.
	KindComplete Kind = "complete"
)

// Title returns the fixed banner title for the kind.
func (k Kind) Title() string {
	if k == KindStart {
		return "Assistant is Processing"
	}
	return "Assistant Response Ready"
}

// Role maps the kind to its sound role.
func (k Kind) Role() config.SoundRole {
	if k == KindStart {
		return config.RoleStart
	}
	return config.RoleCompletion
}

// Classify derives the notification kind from free-form message text.
// A message containing "start" or "processing" (case-insensitive) is a
// start event; everything else is a completion.
//
// This substring heuristic is part of the external contract: callers
// send plain prose and rely on the current classification, including
// its known quirks ("Processing is not complete" classifies as a
// start). Do not tighten it without a contract change.
func Classify(message string) Kind {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "start") || strings.Contains(lower, "processing") {
		return KindStart
	}
	return KindComplete
}

// ParseKind converts a user-supplied kind string, reporting whether it
// named a known kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(s)) {
	case KindStart:
		return KindStart, true
	case KindComplete:
		return KindComplete, true
	default:
		return "", false
	}
}
