package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janvogt/fcat/internal/tui/layout"
)

// View implements tea.Model.
func (a App) View() string {
	switch a.mode {
	case ModeInitCatalogue:
		return a.renderModalScreen(a.renderNegotiatorModal())
	case ModeAddFruit, ModeEditFruit:
		return a.renderModalScreen(a.renderFormModal())
	case ModeConfirmDelete:
		return a.renderModalScreen(a.renderConfirmModal())
	default:
		return a.renderMain()
	}
}

func (a App) renderMain() string {
	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	panes := layout.CalculatePaneWidth(a.width, a.layoutConfig.Pane)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.renderListPane(panes.ListWidth, paneHeight),
		a.renderDetailPane(panes.DetailWidth, paneHeight),
	)

	sections := []string{
		body,
		a.renderFilterLine(),
		a.renderMessageLine(),
		a.renderHints(),
	}

	return a.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (a App) renderListPane(width, height int) string {
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	title := a.styles.Title.Render(
		fmt.Sprintf("Fruits (%d/%d)", len(a.filtered), a.catalogue.Len()))

	lines := []string{title}

	if len(a.filtered) == 0 {
		if a.catalogue.Len() == 0 {
			lines = append(lines, a.styles.Empty.Render("No fruits yet. Press a to add one."))
		} else {
			lines = append(lines, a.styles.Empty.Render("No matches."))
		}
	} else {
		visible := layout.CalculateVisibleHeight(height, 1)
		offset := layout.CalculateViewportOffset(a.selected, len(a.filtered), visible)

		end := offset + visible
		if end > len(a.filtered) {
			end = len(a.filtered)
		}

		for pos := offset; pos < end; pos++ {
			fruit := a.catalogue.Get(a.filtered[pos])
			name, _ := layout.TruncateText(fruit.Name, itemWidth, a.layoutConfig.Text)

			style := a.styles.Item
			if pos == a.selected {
				style = a.styles.ItemSelected
			}
			lines = append(lines, style.Render(name))
		}
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (a App) renderDetailPane(width, height int) string {
	lines := []string{a.styles.Title.Render("Details")}

	if fruit := a.SelectedFruit(); fruit != nil {
		label := a.styles.Label
		lines = append(lines,
			label.Render("Name:   ")+a.styles.Detail.Render(fruit.Name),
			label.Render("Length: ")+a.styles.Detail.Render(fmt.Sprintf("%g", fruit.Length)),
			label.Render("Width:  ")+a.styles.Detail.Render(fmt.Sprintf("%g", fruit.Width)),
			label.Render("Height: ")+a.styles.Detail.Render(fmt.Sprintf("%g", fruit.Height)),
			"",
			label.Render("Volume: ")+a.styles.Detail.Render(fmt.Sprintf("%.2f", fruit.Volume())),
		)
	} else {
		lines = append(lines, a.styles.Empty.Render("No fruit selected"))
	}

	return a.styles.Pane.
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (a App) renderFilterLine() string {
	if a.mode == ModeFilter {
		return a.filterInput.View()
	}
	if q := a.filterInput.Value(); q != "" {
		return a.styles.Label.Render(fmt.Sprintf("Filter: %s", q))
	}
	return ""
}

func (a App) renderMessageLine() string {
	if a.message == "" {
		return ""
	}
	return a.styles.Error.Render(a.message)
}

func (a App) renderFormModal() string {
	width := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	title := "Add Fruit"
	if a.form.Editing() {
		title = "Edit Fruit"
	}

	lines := []string{a.styles.Title.Render(title), ""}

	for f := FieldName; f < fieldCount; f++ {
		label := a.styles.Label
		if f == a.form.Focused() {
			label = a.styles.LabelFocused
		}
		lines = append(lines,
			label.Render(f.Label()),
			a.form.InputView(f),
		)
	}

	if msg := a.form.ErrMsg(); msg != "" {
		lines = append(lines, "", a.styles.Error.Render(msg))
	}

	lines = append(lines, "", a.renderHints())

	return a.styles.Pane.
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (a App) renderConfirmModal() string {
	width := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	name := ""
	if fruit := a.SelectedFruit(); fruit != nil {
		name = fruit.Name
	}

	lines := []string{
		a.styles.Title.Render("Delete Fruit"),
		"",
		fmt.Sprintf("Delete %s?", name),
		"",
		a.renderHints(),
	}

	return a.styles.Pane.
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (a App) renderNegotiatorModal() string {
	width := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)

	lines := []string{
		a.styles.Title.Render("No catalogue found"),
		"",
		"Create a new catalogue with a default set of fruits?",
		"",
		a.styles.Label.Render("File name"),
		a.negotiator.InputView(),
	}

	if msg := a.negotiator.ErrMsg(); msg != "" {
		lines = append(lines, "", a.styles.Error.Render(msg))
	}

	lines = append(lines, "", a.renderHints())

	return a.styles.Pane.
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (a App) renderModalScreen(modal string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}
