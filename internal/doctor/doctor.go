// Package doctor verifies that the host can actually deliver
// notifications: sound files resolve and decode, delivery methods are
// present, icons exist. Used by the doctor command and the server
// startup banner.
package doctor

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/taskping/taskping/internal/audio"
	"github.com/taskping/taskping/internal/config"
	"github.com/taskping/taskping/internal/visual"
)

// Severity of a check result.
type Severity int

const (
	// OK means the component works.
	OK Severity = iota
	// Info means the component is absent but delivery still works.
	Info
	// Warn means delivery may silently degrade.
	Warn
)

// Check is one verification result.
type Check struct {
	Name     string
	Severity Severity
	Detail   string
}

// Run verifies the resolved resources and the visual delivery chain.
func Run(resolver *config.Resolver, deliverer *visual.Deliverer) []Check {
	var checks []Check

	res := resolver.Resources()

	checks = append(checks,
		soundCheck("start sound", res.StartSound),
		soundCheck("completion sound", res.CompleteSound),
	)

	if res.Icon != "" {
		checks = append(checks, Check{
			Name:     "notification icon",
			Severity: OK,
			Detail:   res.Icon,
		})
	} else {
		checks = append(checks, Check{
			Name:     "notification icon",
			Severity: Info,
			Detail:   "none found; banners are sent without an icon",
		})
	}

	if !res.VisualEnabled {
		checks = append(checks, Check{
			Name:     "visual notifications",
			Severity: Info,
			Detail:   "disabled by configuration",
		})
		return checks
	}

	anyMethod := false
	for _, m := range deliverer.Methods() {
		if m.Available() {
			anyMethod = true
			checks = append(checks, Check{
				Name:     "method " + m.Name(),
				Severity: OK,
				Detail:   "available",
			})
		} else {
			checks = append(checks, Check{
				Name:     "method " + m.Name(),
				Severity: Info,
				Detail:   "not found on this host",
			})
		}
	}
	if !anyMethod {
		checks = append(checks, Check{
			Name:     "visual delivery",
			Severity: Warn,
			Detail:   "no delivery method available; banners will not be shown",
		})
	}

	return checks
}

// Healthy reports whether no check carries Warn severity.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if c.Severity == Warn {
			return false
		}
	}
	return true
}

// soundCheck verifies one resolved sound path, including a decode
// probe for formats we can parse, and reports its size for a quick
// sanity read ("is this the 4 byte file the download left behind").
func soundCheck(name, path string) Check {
	if err := audio.Verify(path); err != nil {
		return Check{Name: name, Severity: Warn, Detail: err.Error()}
	}

	detail := path
	if info, err := os.Stat(path); err == nil {
		detail = fmt.Sprintf("%s (%s)", path, humanize.Bytes(uint64(info.Size())))
	}
	return Check{Name: name, Severity: OK, Detail: detail}
}
