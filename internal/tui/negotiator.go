package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janvogt/fcat/internal/tui/layout"
)

// NegotiatorState is the startup dialog shown when no catalogue file
// exists yet. It holds the proposed file name and the last failure
// message from an attempted creation.
type NegotiatorState struct {
	input  textinput.Model
	errMsg string
}

// NewNegotiatorState creates the dialog with the given path pre-filled.
func NewNegotiatorState(cfg layout.LayoutConfig, defaultPath string) *NegotiatorState {
	in := textinput.New()
	in.Prompt = ""
	in.Width = cfg.Input.StandardWidth
	in.CharLimit = cfg.Input.PathCharLimit
	in.SetValue(defaultPath)
	in.CursorEnd()
	in.Focus()

	return &NegotiatorState{input: in}
}

// Path returns the current buffer content.
func (n *NegotiatorState) Path() string {
	return n.input.Value()
}

// ErrMsg returns the last creation failure message, if any.
func (n *NegotiatorState) ErrMsg() string {
	return n.errMsg
}

// SetError records a creation failure for display.
func (n *NegotiatorState) SetError(msg string) {
	n.errMsg = msg
}

// Update forwards a key to the path input.
func (n *NegotiatorState) Update(msg tea.KeyMsg) tea.Cmd {
	n.errMsg = ""
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return cmd
}

// InputView renders the path input.
func (n *NegotiatorState) InputView() string {
	return n.input.View()
}
