package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField describes one labelled input of an [inputForm].
type formField struct {
	label       string
	placeholder string
	charLimit   int
	secret      bool
}

// inputForm is a column of labelled text inputs with tab focus.
type inputForm struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newInputForm(fields ...formField) inputForm {
	f := inputForm{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.Width = 40
		if field.charLimit > 0 {
			in.CharLimit = field.charLimit
		}
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = field.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// update forwards msg to the focused input.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *inputForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// rawValue returns the input without trimming, for passwords.
func (f *inputForm) rawValue(i int) string {
	return f.inputs[i].Value()
}

func (f *inputForm) setValues(values ...string) {
	for i, v := range values {
		if i < len(f.inputs) {
			f.inputs[i].SetValue(v)
		}
	}
}

func (f *inputForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

func (f *inputForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *inputForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// view renders the form as a two-column field/value table.
func (f *inputForm) view() string {
	width := lipgloss.Width("Field")
	for _, l := range f.labels {
		width = max(width, lipgloss.Width(l))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", width, "Field"))
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼────────────────────────────────────────────\n")
	for i, in := range f.inputs {
		b.WriteString(fmt.Sprintf("%-*s │ [%s]\n", width, f.labels[i], in.View()))
	}
	return b.String()
}
