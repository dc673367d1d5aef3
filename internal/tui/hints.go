package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint is one key/description pair shown in the help bar.
type Hint struct {
	Key  string
	Desc string
}

// hintsForMode returns the help bar content for the active mode.
func (a App) hintsForMode() []Hint {
	switch a.mode {
	case ModeFilter:
		return []Hint{
			{"enter", "apply"},
			{"esc", "clear"},
		}
	case ModeConfirmDelete:
		return []Hint{
			{"y", "delete"},
			{"n", "cancel"},
		}
	case ModeAddFruit, ModeEditFruit:
		return []Hint{
			{"tab", "next field"},
			{"shift+tab", "prev field"},
			{"enter", "confirm"},
			{"esc", "cancel"},
		}
	case ModeInitCatalogue:
		return []Hint{
			{"y/enter", "create"},
			{"n/esc", "skip"},
		}
	default:
		return []Hint{
			{"j/k", "navigate"},
			{"/", "filter"},
			{"a", "add"},
			{"e", "edit"},
			{"d", "delete"},
			{"Y", "copy"},
			{"ctrl+s", "save"},
			{"q", "quit"},
		}
	}
}

// renderHints renders the help bar for the active mode.
func (a App) renderHints() string {
	hints := a.hintsForMode()

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			a.styles.HintKey.Render(h.Key),
			a.styles.HintDesc.Render(" "+h.Desc),
		))
	}

	return a.styles.Help.Render(strings.Join(parts, "  •  "))
}
