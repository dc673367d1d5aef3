package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		widthPercent  int
		want          int
	}{
		{"standard terminal clamps to min", 80, 40, cfg.MinWidth},
		{"wide terminal", 160, 40, 64},
		{"very wide terminal clamps to max", 300, 40, cfg.MaxWidth},
		{"narrow terminal limited by terminal", 40, 40, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, tt.widthPercent, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d, %d) = %d, want %d",
					tt.terminalWidth, tt.widthPercent, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name        string
		maxVisible  int
		selectedIdx int
		totalItems  int
		wantStart   int
		wantEnd     int
	}{
		{"all items fit", 10, 0, 5, 0, 5},
		{"selection within first window", 5, 2, 20, 0, 5},
		{"selection scrolls window", 5, 7, 20, 3, 8},
		{"selection at end", 5, 19, 20, 15, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.selectedIdx, tt.totalItems)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CalculateVisibleListItems(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.maxVisible, tt.selectedIdx, tt.totalItems, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
