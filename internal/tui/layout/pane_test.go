package layout

import "testing"

func TestCalculatePaneHeight(t *testing.T) {
	cfg := DefaultConfig().Pane

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"standard terminal", 24, 17},
		{"tall terminal", 50, 43},
		{"tiny terminal clamps to min", 8, cfg.MinHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePaneHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculatePaneHeight(%d) = %d, want %d", tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculatePaneWidth_Split(t *testing.T) {
	cfg := DefaultConfig().Pane

	layout := CalculatePaneWidth(106, cfg)

	// usable = 100, list gets 60%, detail the rest
	if layout.ListWidth != 60 {
		t.Errorf("expected list width 60, got %d", layout.ListWidth)
	}
	if layout.DetailWidth != 40 {
		t.Errorf("expected detail width 40, got %d", layout.DetailWidth)
	}
}

func TestCalculatePaneWidth_MinWidth(t *testing.T) {
	cfg := DefaultConfig().Pane

	layout := CalculatePaneWidth(20, cfg)

	if layout.ListWidth < cfg.MinPaneWidth {
		t.Errorf("list width %d below minimum %d", layout.ListWidth, cfg.MinPaneWidth)
	}
	if layout.DetailWidth < cfg.MinPaneWidth {
		t.Errorf("detail width %d below minimum %d", layout.DetailWidth, cfg.MinPaneWidth)
	}
}

func TestCalculateItemWidth(t *testing.T) {
	cfg := DefaultConfig().Pane

	if got := CalculateItemWidth(40, cfg); got != 36 {
		t.Errorf("CalculateItemWidth(40) = %d, want 36", got)
	}
}

func TestCalculateVisibleHeight(t *testing.T) {
	if got := CalculateVisibleHeight(20, 2); got != 18 {
		t.Errorf("expected 18, got %d", got)
	}
	// Never below 1
	if got := CalculateVisibleHeight(2, 5); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name           string
		selected       int
		total          int
		viewportHeight int
		want           int
	}{
		{"all items fit", 3, 5, 10, 0},
		{"selection at top", 0, 20, 10, 0},
		{"selection centered", 10, 20, 10, 5},
		{"selection at bottom clamps", 19, 20, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.viewportHeight)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.viewportHeight, got, tt.want)
			}
		})
	}
}
