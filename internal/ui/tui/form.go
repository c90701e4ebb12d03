package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tazomatalax/lab-calculator/internal/app/resultlog"
	"github.com/tazomatalax/lab-calculator/internal/domain"
)

// stop is one position of the focus ring: a field or a section's calculate button.
type stop struct {
	section int
	input   int // index into tabForm.inputs; -1 for the button
}

func (s stop) isButton() bool { return s.input < 0 }

// tabForm is the editable state of one tab.
type tabForm struct {
	tab    domain.Tab
	fields []domain.Field
	inputs []textinput.Model
	stops  []stop
	focus  int

	// results is the pane content of replace-mode tabs.
	results string
	log     *resultlog.Log
}

func newTabForm(tab domain.Tab, cfg domain.Config) tabForm {
	f := tabForm{tab: tab}

	for si, s := range tab.Sections {
		for _, fld := range s.Fields {
			in := textinput.New()
			in.Prompt = ""
			in.CharLimit = 32
			in.Width = 16
			in.Placeholder = fld.Unit
			in.SetValue(fld.Default)

			f.stops = append(f.stops, stop{section: si, input: len(f.inputs)})
			f.fields = append(f.fields, fld)
			f.inputs = append(f.inputs, in)
		}
		f.stops = append(f.stops, stop{section: si, input: -1})
	}

	if tab.Results == domain.ResultsAppend {
		f.log = resultlog.New(
			resultlog.WithTimestampLayout(cfg.Results.TimestampLayout),
			resultlog.WithSeparator(cfg.Results.Separator),
		)
	}

	f.applyFocus()
	return f
}

func (f *tabForm) current() stop {
	return f.stops[f.focus]
}

// move advances the focus ring by delta, wrapping at both ends.
func (f *tabForm) move(delta int) {
	n := len(f.stops)
	if n == 0 {
		return
	}
	f.focus = ((f.focus+delta)%n + n) % n
	f.applyFocus()
}

func (f *tabForm) applyFocus() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if len(f.stops) == 0 {
		return
	}
	if s := f.current(); !s.isButton() {
		f.inputs[s.input].Focus()
	}
}

// blurAll is used when the tab loses focus to another tab.
func (f *tabForm) blurAll() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// calculation returns the calculation of the focused section.
func (f *tabForm) calculation() domain.Calculation {
	return f.tab.Sections[f.current().section].Calculation
}

func (f *tabForm) raw() map[string]string {
	out := make(map[string]string, len(f.inputs))
	for i, fld := range f.fields {
		out[fld.Key] = f.inputs[i].Value()
	}
	return out
}

func (f *tabForm) set(key, value string) {
	for i, fld := range f.fields {
		if fld.Key == key {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

func (f *tabForm) markAll(text string) {
	for i := range f.inputs {
		f.inputs[i].SetValue(text)
	}
}

// updateInput forwards a key to the focused text input, if any.
func (f *tabForm) updateInput(msg tea.Msg) tea.Cmd {
	if len(f.stops) == 0 {
		return nil
	}
	s := f.current()
	if s.isButton() {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[s.input], cmd = f.inputs[s.input].Update(msg)
	return cmd
}

// record shows text in the results pane according to the tab's result mode.
func (f *tabForm) record(text string) {
	if f.log != nil {
		f.log.Append(text)
		return
	}
	f.results = text
}

// reset restores default field text; replace-mode results are emptied,
// result logs are append-only and survive.
func (f *tabForm) reset() {
	for i, fld := range f.fields {
		f.inputs[i].SetValue(fld.Default)
	}
	f.results = ""
	f.focus = 0
	f.applyFocus()
}

func (f *tabForm) resultsText() string {
	if f.log != nil {
		return f.log.Render()
	}
	return f.results
}
