package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janvogt/fcat/internal/filter"
	"github.com/janvogt/fcat/internal/model"
	"github.com/janvogt/fcat/internal/storage"
	"github.com/janvogt/fcat/internal/tui/layout"
)

// Mode is the interaction mode of the application. Exactly one mode is
// active at a time and decides how key input is interpreted.
type Mode int

const (
	// ModeNormal is the browse mode: navigation and command keys.
	ModeNormal Mode = iota
	// ModeFilter routes keys into the live filter query.
	ModeFilter
	// ModeConfirmDelete awaits y/n for the selected fruit.
	ModeConfirmDelete
	// ModeAddFruit shows the form modal with empty buffers.
	ModeAddFruit
	// ModeEditFruit shows the form modal pre-filled from a fruit.
	ModeEditFruit
	// ModeInitCatalogue is the startup dialog shown when no catalogue
	// exists yet.
	ModeInitCatalogue
)

// App is the root bubbletea model.
type App struct {
	catalogue *model.Catalogue
	store     storage.Storage

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode     Mode
	selected int   // position within filtered, not the catalogue
	filtered []int // catalogue indices matching the filter query

	filterInput textinput.Model
	form        *FormState
	negotiator  *NegotiatorState

	dirty   bool
	message string

	width  int
	height int
}

// AppParams configures a new App.
type AppParams struct {
	// Catalogue is the initial catalogue. Ignored when StartNegotiation
	// is set.
	Catalogue *model.Catalogue
	// Store persists the catalogue on ctrl+s.
	Store storage.Storage
	// StartNegotiation opens the app in the catalogue-creation dialog.
	StartNegotiation bool
	// LoadWarning is shown in the creation dialog when the existing
	// catalogue could not be read.
	LoadWarning string

	Keys         *KeyMap
	Styles       *Styles
	LayoutConfig *layout.LayoutConfig
}

// NewApp creates the application model.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}
	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}
	cfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		cfg = *params.LayoutConfig
	}

	fi := textinput.New()
	fi.Prompt = "/"
	fi.Width = cfg.Input.FilterWidth
	fi.CharLimit = cfg.Input.FilterCharLimit

	a := App{
		catalogue:    params.Catalogue,
		store:        params.Store,
		keys:         keys,
		styles:       styles,
		layoutConfig: cfg,
		filterInput:  fi,
		width:        80,
		height:       24,
	}

	if params.StartNegotiation {
		a.catalogue = model.NewCatalogue()
		a.mode = ModeInitCatalogue
		path := storage.DefaultCatalogueFile
		if a.store != nil {
			path = a.store.Path()
		}
		a.negotiator = NewNegotiatorState(cfg, path)
		if params.LoadWarning != "" {
			a.negotiator.SetError(params.LoadWarning)
		}
	}
	if a.catalogue == nil {
		a.catalogue = model.NewCatalogue()
	}

	a.refreshFilter()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Save) && a.mode != ModeInitCatalogue {
			a.save()
			return a, nil
		}

		switch a.mode {
		case ModeNormal:
			return a.updateNormal(msg)
		case ModeFilter:
			return a.updateFilter(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case ModeAddFruit, ModeEditFruit:
			return a.updateForm(msg)
		case ModeInitCatalogue:
			return a.updateNegotiator(msg)
		}
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		if a.message != "" {
			a.message = ""
			return a, nil
		}
		if a.dirty {
			a.message = "Unsaved changes! Press ctrl+s to save first"
			return a, nil
		}
		return a, tea.Quit

	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}

	case key.Matches(msg, a.keys.Down):
		if a.selected < len(a.filtered)-1 {
			a.selected++
		}

	case key.Matches(msg, a.keys.Top):
		a.selected = 0

	case key.Matches(msg, a.keys.Bottom):
		if len(a.filtered) > 0 {
			a.selected = len(a.filtered) - 1
		}

	case key.Matches(msg, a.keys.Filter):
		a.mode = ModeFilter
		a.message = ""
		a.filterInput.Reset()
		a.filterInput.Focus()
		a.refreshFilter()

	case key.Matches(msg, a.keys.Add):
		a.mode = ModeAddFruit
		a.message = ""
		a.form = NewFormState(a.layoutConfig)

	case key.Matches(msg, a.keys.Edit):
		idx, ok := a.selectedCatalogueIndex()
		if !ok {
			return a, nil
		}
		a.mode = ModeEditFruit
		a.message = ""
		a.form = NewEditFormState(a.layoutConfig, idx, *a.catalogue.Get(idx))

	case key.Matches(msg, a.keys.Delete):
		if _, ok := a.selectedCatalogueIndex(); !ok {
			return a, nil
		}
		a.mode = ModeConfirmDelete
		a.message = ""

	case key.Matches(msg, a.keys.Yank):
		a.yankSelected()
	}

	return a, nil
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Abandon the filter: clear the query and show everything.
		a.filterInput.Reset()
		a.filterInput.Blur()
		a.mode = ModeNormal
		a.refreshFilter()
		return a, nil

	case tea.KeyEnter:
		// Keep the query applied and return to browsing.
		a.filterInput.Blur()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.filterInput, cmd = a.filterInput.Update(msg)
	a.refreshFilter()
	return a, cmd
}

func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if idx, ok := a.selectedCatalogueIndex(); ok {
			if err := a.catalogue.Delete(idx); err == nil {
				a.dirty = true
			}
		}
		a.mode = ModeNormal
		a.refreshFilter()

	case "n", "N", "esc":
		a.mode = ModeNormal
	}

	return a, nil
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.form = nil
		a.mode = ModeNormal
		return a, nil

	case tea.KeyTab:
		a.form.NextField()
		return a, nil

	case tea.KeyShiftTab:
		a.form.PrevField()
		return a, nil

	case tea.KeyEnter:
		fruit, err := a.form.ValidateAndBuild()
		if err != nil {
			// The form shows the error; buffers and mode are untouched.
			return a, nil
		}

		if a.form.Editing() {
			if err := a.catalogue.Update(a.form.EditIndex(), fruit); err != nil {
				a.message = err.Error()
			} else {
				a.dirty = true
			}
		} else {
			a.catalogue.Add(fruit)
			a.dirty = true
		}

		a.form = nil
		a.mode = ModeNormal
		a.refreshFilter()
		return a, nil
	}

	return a, a.form.Update(msg)
}

func (a App) updateNegotiator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return a.acceptNegotiation()

	case tea.KeyEsc:
		return a.declineNegotiation()

	case tea.KeyRunes:
		// y/n answer the prompt and are not path characters here.
		if len(msg.Runes) == 1 {
			switch msg.Runes[0] {
			case 'y', 'Y':
				return a.acceptNegotiation()
			case 'n', 'N':
				return a.declineNegotiation()
			}
		}
	}

	return a, a.negotiator.Update(msg)
}

// acceptNegotiation creates the catalogue resource under the entered
// name, seeds it with the defaults, and enters Normal mode. On failure
// the dialog stays open showing the error.
func (a App) acceptNegotiation() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(a.negotiator.Path())
	if path == "" {
		a.negotiator.SetError("File name cannot be empty")
		return a, nil
	}

	st, err := storage.Open(path)
	if err != nil {
		a.negotiator.SetError(fmt.Sprintf("Failed to create catalogue: %v", err))
		return a, nil
	}

	cat := model.DefaultCatalogue()
	if err := st.Save(cat); err != nil {
		a.negotiator.SetError(fmt.Sprintf("Failed to create catalogue: %v", err))
		return a, nil
	}

	a.catalogue = cat
	a.store = st
	a.dirty = false
	a.negotiator = nil
	a.mode = ModeNormal
	a.refreshFilter()
	return a, nil
}

// declineNegotiation adopts the default catalogue in memory only.
// Nothing is written; a later ctrl+s still persists to the original
// store path.
func (a App) declineNegotiation() (tea.Model, tea.Cmd) {
	a.catalogue = model.DefaultCatalogue()
	a.dirty = false
	a.negotiator = nil
	a.mode = ModeNormal
	a.refreshFilter()
	return a, nil
}

func (a *App) save() {
	if a.store == nil {
		a.message = "No storage configured"
		return
	}
	if err := a.store.Save(a.catalogue); err != nil {
		a.message = fmt.Sprintf("Failed to save: %v", err)
		return
	}
	a.dirty = false
	a.message = ""
}

func (a *App) yankSelected() {
	idx, ok := a.selectedCatalogueIndex()
	if !ok {
		return
	}
	f := a.catalogue.Get(idx)
	summary := fmt.Sprintf("%s: %g × %g × %g (volume %.2f)",
		f.Name, f.Length, f.Width, f.Height, f.Volume())
	if err := clipboard.WriteAll(summary); err != nil {
		a.message = fmt.Sprintf("Failed to copy: %v", err)
		return
	}
	a.message = fmt.Sprintf("Copied %s to clipboard", f.Name)
}

// refreshFilter recomputes the filtered view and clamps the selection
// into it.
func (a *App) refreshFilter() {
	a.filtered = filter.Indices(a.catalogue, a.filterInput.Value())
	if len(a.filtered) == 0 {
		a.selected = 0
		return
	}
	if a.selected >= len(a.filtered) {
		a.selected = len(a.filtered) - 1
	}
	if a.selected < 0 {
		a.selected = 0
	}
}

// selectedCatalogueIndex resolves the selection to a catalogue index.
func (a *App) selectedCatalogueIndex() (int, bool) {
	if len(a.filtered) == 0 || a.selected < 0 || a.selected >= len(a.filtered) {
		return 0, false
	}
	return a.filtered[a.selected], true
}

// Mode returns the active interaction mode.
func (a App) Mode() Mode {
	return a.mode
}

// Selected returns the selection position within the filtered view.
func (a App) Selected() int {
	return a.selected
}

// SelectedFruit returns the fruit under the cursor, or nil.
func (a App) SelectedFruit() *model.Fruit {
	idx, ok := a.selectedCatalogueIndex()
	if !ok {
		return nil
	}
	return a.catalogue.Get(idx)
}

// Catalogue returns the live catalogue.
func (a App) Catalogue() *model.Catalogue {
	return a.catalogue
}

// FilteredIndices returns the catalogue indices of the current view.
func (a App) FilteredIndices() []int {
	return a.filtered
}

// FilterQuery returns the current filter query.
func (a App) FilterQuery() string {
	return a.filterInput.Value()
}

// Dirty reports whether there are unsaved changes.
func (a App) Dirty() bool {
	return a.dirty
}

// Message returns the transient status message, if any.
func (a App) Message() string {
	return a.message
}

// Form returns the active form state, or nil.
func (a App) Form() *FormState {
	return a.form
}

// Negotiator returns the startup dialog state, or nil.
func (a App) Negotiator() *NegotiatorState {
	return a.negotiator
}

// WithDimensions returns a copy sized to the given terminal dimensions.
// Useful in tests that never receive a WindowSizeMsg.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}
