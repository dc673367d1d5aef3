package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/janvogt/fcat/internal/model"
	"github.com/janvogt/fcat/internal/tui/layout"
)

// Field identifies one of the four form inputs.
type Field int

const (
	FieldName Field = iota
	FieldLength
	FieldWidth
	FieldHeight

	fieldCount
)

// Next returns the field after f, wrapping around.
func (f Field) Next() Field {
	return (f + 1) % fieldCount
}

// Prev returns the field before f, wrapping around.
func (f Field) Prev() Field {
	return (f + fieldCount - 1) % fieldCount
}

// Label returns the display label for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldLength:
		return "Length"
	case FieldWidth:
		return "Width"
	case FieldHeight:
		return "Height"
	default:
		return ""
	}
}

func (f Field) numeric() bool {
	return f != FieldName
}

// ValidationError describes why a form submission was rejected.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FormState holds the add/edit modal: one text input per field,
// the focused field, and the last validation error.
type FormState struct {
	inputs  [fieldCount]textinput.Model
	focused Field
	errMsg  string

	// editIndex is the catalogue index being edited, or -1 when adding.
	editIndex int
}

// NewFormState creates an empty form for adding a fruit.
func NewFormState(cfg layout.LayoutConfig) *FormState {
	s := &FormState{editIndex: -1}

	for f := FieldName; f < fieldCount; f++ {
		in := textinput.New()
		in.Prompt = ""
		in.Width = cfg.Input.StandardWidth
		if f.numeric() {
			in.CharLimit = cfg.Input.DimensionCharLimit
		} else {
			in.CharLimit = cfg.Input.NameCharLimit
		}
		s.inputs[f] = in
	}
	s.inputs[FieldName].Focus()

	return s
}

// NewEditFormState creates a form pre-filled from the fruit at the
// given catalogue index.
func NewEditFormState(cfg layout.LayoutConfig, index int, fruit model.Fruit) *FormState {
	s := NewFormState(cfg)
	s.editIndex = index

	s.inputs[FieldName].SetValue(fruit.Name)
	s.inputs[FieldLength].SetValue(formatDimension(fruit.Length))
	s.inputs[FieldWidth].SetValue(formatDimension(fruit.Width))
	s.inputs[FieldHeight].SetValue(formatDimension(fruit.Height))
	s.inputs[FieldName].CursorEnd()

	return s
}

func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Focused returns the currently focused field.
func (s *FormState) Focused() Field {
	return s.focused
}

// Editing reports whether the form targets an existing fruit.
func (s *FormState) Editing() bool {
	return s.editIndex >= 0
}

// EditIndex returns the catalogue index being edited, or -1.
func (s *FormState) EditIndex() int {
	return s.editIndex
}

// ErrMsg returns the message of the last failed submission, if any.
func (s *FormState) ErrMsg() string {
	return s.errMsg
}

// Value returns the current buffer content of a field.
func (s *FormState) Value(f Field) string {
	return s.inputs[f].Value()
}

// SetValue replaces the buffer content of a field.
func (s *FormState) SetValue(f Field, v string) {
	s.inputs[f].SetValue(v)
	s.inputs[f].CursorEnd()
}

// NextField moves focus to the next field, wrapping around.
func (s *FormState) NextField() {
	s.inputs[s.focused].Blur()
	s.focused = s.focused.Next()
	s.inputs[s.focused].Focus()
}

// PrevField moves focus to the previous field, wrapping around.
func (s *FormState) PrevField() {
	s.inputs[s.focused].Blur()
	s.focused = s.focused.Prev()
	s.inputs[s.focused].Focus()
}

// Update forwards a key to the focused input. Dimension fields only
// accept digits and a single decimal point; rejected runes are
// swallowed silently. Any accepted edit clears the error message.
func (s *FormState) Update(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyRunes && s.focused.numeric() {
		filtered := s.filterNumericRunes(msg.Runes)
		if len(filtered) == 0 {
			return nil
		}
		msg.Runes = filtered
	}

	s.errMsg = ""
	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return cmd
}

// filterNumericRunes keeps digits and at most one '.' across the
// existing buffer and the incoming runes.
func (s *FormState) filterNumericRunes(runes []rune) []rune {
	hasDot := strings.ContainsRune(s.inputs[s.focused].Value(), '.')

	var out []rune
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, r)
		case r == '.' && !hasDot:
			out = append(out, r)
			hasDot = true
		}
	}
	return out
}

// ValidateAndBuild checks all four buffers and assembles a fruit.
// Validation order: name first, then each dimension must parse, then
// each dimension must be positive. On failure the error is recorded
// for display and the buffers are left untouched.
func (s *FormState) ValidateAndBuild() (model.Fruit, error) {
	fail := func(f Field, msg string) (model.Fruit, error) {
		err := &ValidationError{Field: f, Message: msg}
		s.errMsg = err.Message
		return model.Fruit{}, err
	}

	name := strings.TrimSpace(s.inputs[FieldName].Value())
	if name == "" {
		return fail(FieldName, "Name cannot be empty")
	}

	dims := [3]float64{}
	for i, f := range []Field{FieldLength, FieldWidth, FieldHeight} {
		v, err := strconv.ParseFloat(strings.TrimSpace(s.inputs[f].Value()), 64)
		if err != nil {
			return fail(f, f.Label()+" must be a valid number")
		}
		dims[i] = v
	}

	for i, f := range []Field{FieldLength, FieldWidth, FieldHeight} {
		if dims[i] <= 0 {
			return fail(f, f.Label()+" must be positive")
		}
	}

	s.errMsg = ""
	return model.Fruit{
		Name:   name,
		Length: dims[0],
		Width:  dims[1],
		Height: dims[2],
	}, nil
}

// InputView renders the text input for a field.
func (s *FormState) InputView(f Field) string {
	return s.inputs[f].View()
}
