package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + pane borders (2) + filter line (1) +
	// message line (1) + help bar (2) = 7
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// ListWidthPercent is the share of the terminal width given to the
	// list pane; the detail pane gets the rest.
	ListWidthPercent int

	// WidthOffset is subtracted from terminal width before splitting.
	// Accounts for borders and spacing between the two panes.
	WidthOffset int

	// MinPaneWidth is the minimum width for either pane.
	MinPaneWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit      int
	DimensionCharLimit int
	FilterCharLimit    int
	PathCharLimit      int

	// Display widths
	StandardWidth int // Used for form and negotiator inputs
	FilterWidth   int // Used for the filter input (narrower)
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:  7,
			MinHeight:        5,
			ListWidthPercent: 60,
			WidthOffset:      6,
			MinPaneWidth:     20,
			ContentPadding:   4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			MinWidth:            44,
			MaxWidth:            72,
		},
		Input: InputConfig{
			NameCharLimit:      100,
			DimensionCharLimit: 20,
			FilterCharLimit:    50,
			PathCharLimit:      200,
			StandardWidth:      36,
			FilterWidth:        30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
