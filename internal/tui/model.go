// Package tui provides the BubbleTea-based interactive delivery
// tester: fire individual delivery methods or the whole pipeline and
// see what actually reaches the desktop.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskping/taskping/internal/dispatch"
	"github.com/taskping/taskping/internal/visual"
)

const testMessage = "Test notification from taskping"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// target is one fireable entry in the tester.
type target struct {
	name string
	desc string
	fire func(ctx context.Context) (bool, string)
}

// Model is the delivery tester TUI model.
type Model struct {
	targets []target
	cursor  int

	firing  bool
	spinner spinner.Model

	// Last result per target index.
	results map[int]result
}

type result struct {
	ok     bool
	detail string
}

type firedMsg struct {
	index  int
	ok     bool
	detail string
}

// New builds the tester around the live pipeline components.
func New(coordinator *dispatch.Coordinator, deliverer *visual.Deliverer, player dispatch.SoundPlayer, startSound, completeSound string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	targets := []target{
		{
			name: "full pipeline (start)",
			desc: "classify + sound + banner chain",
			fire: func(ctx context.Context) (bool, string) {
				out := coordinator.Notify(ctx, dispatch.KindStart, testMessage)
				return out.Delivered(), summarize(out)
			},
		},
		{
			name: "full pipeline (complete)",
			desc: "classify + sound + banner chain",
			fire: func(ctx context.Context) (bool, string) {
				out := coordinator.Notify(ctx, dispatch.KindComplete, testMessage)
				return out.Delivered(), summarize(out)
			},
		},
		{
			name: "start sound",
			desc: startSound,
			fire: func(ctx context.Context) (bool, string) {
				if player.Play(ctx, startSound) {
					return true, "played"
				}
				return false, "playback failed"
			},
		},
		{
			name: "completion sound",
			desc: completeSound,
			fire: func(ctx context.Context) (bool, string) {
				if player.Play(ctx, completeSound) {
					return true, "played"
				}
				return false, "playback failed"
			},
		},
	}

	for _, m := range deliverer.Methods() {
		method := m
		desc := "available"
		if !method.Available() {
			desc = "not found on this host"
		}
		targets = append(targets, target{
			name: "method " + method.Name(),
			desc: desc,
			fire: func(ctx context.Context) (bool, string) {
				if err := method.Attempt(ctx, "taskping", testMessage, ""); err != nil {
					return false, err.Error()
				}
				return true, "banner sent"
			},
		})
	}

	return Model{
		targets: targets,
		spinner: sp,
		results: make(map[int]result),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.targets)-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.firing {
				return m, nil
			}
			m.firing = true
			return m, tea.Batch(m.spinner.Tick, fireCmd(m.targets[m.cursor], m.cursor))
		}

	case firedMsg:
		m.firing = false
		m.results[msg.index] = result{ok: msg.ok, detail: msg.detail}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("taskping delivery tester"))
	b.WriteString("\n\n")

	for i, t := range m.targets {
		cursor := "  "
		name := t.name
		if i == m.cursor {
			cursor = "> "
			name = selectedStyle.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, name, helpStyle.Render(t.desc)))

		if r, ok := m.results[i]; ok {
			line := "    " + failStyle.Render("✗ "+r.detail)
			if r.ok {
				line = "    " + okStyle.Render("✓ "+r.detail)
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	if m.firing {
		b.WriteString(m.spinner.View() + " firing...\n")
	}
	b.WriteString(helpStyle.Render("enter: fire • j/k: move • q: quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the tester and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// fireCmd runs a target off the UI goroutine.
func fireCmd(t target, index int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ok, detail := t.fire(ctx)
		return firedMsg{index: index, ok: ok, detail: detail}
	}
}

// summarize renders a one-line outcome for the result row.
func summarize(out dispatch.Outcome) string {
	parts := []string{"status=" + out.Status}
	if out.SoundDelivered() {
		parts = append(parts, "sound="+out.PlayedSound())
	} else {
		parts = append(parts, "sound=failed")
	}
	if out.Visual {
		parts = append(parts, "visual="+out.Method)
	} else {
		parts = append(parts, "visual=failed")
	}
	return strings.Join(parts, " ")
}
