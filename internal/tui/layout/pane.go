package layout

// PaneLayout holds calculated pane dimensions for the list/detail split.
type PaneLayout struct {
	ListWidth   int
	DetailWidth int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculatePaneWidth splits the terminal width between the list pane and
// the detail pane according to ListWidthPercent.
func CalculatePaneWidth(terminalWidth int, cfg PaneConfig) PaneLayout {
	usable := terminalWidth - cfg.WidthOffset

	listWidth := usable * cfg.ListWidthPercent / 100
	if listWidth < cfg.MinPaneWidth {
		listWidth = cfg.MinPaneWidth
	}

	detailWidth := usable - listWidth
	if detailWidth < cfg.MinPaneWidth {
		detailWidth = cfg.MinPaneWidth
	}

	return PaneLayout{
		ListWidth:   listWidth,
		DetailWidth: detailWidth,
	}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateVisibleHeight computes the visible item count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
