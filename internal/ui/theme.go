package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style
	BoxChecked, BoxUnchecked                      string
	SymDone, SymFail, SymPending                  string
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme selects the active theme. "mono" is plain ASCII with no styling,
// anything else is the classic colored theme.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Done: plain, Selected: plain, Help: plain,
			BoxChecked: "[x]", BoxUnchecked: "[ ]",
			SymDone: "x", SymFail: "!", SymPending: "-",
		}
	default: // classic
		current = Theme{
			Title:    lipgloss.NewStyle().Bold(true),
			Muted:    lipgloss.NewStyle().Faint(true),
			Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
			Help:     lipgloss.NewStyle().Faint(true),
			BoxChecked: "☑", BoxUnchecked: "☐",
			SymDone: "✔", SymFail: "✖", SymPending: "•",
		}
	}
}

// Current exposes what renderers need.
func Current() Theme { return current }
