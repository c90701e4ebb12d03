package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const labelWidth = 44

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderTabBar(t Theme, forms []tabForm, active int) string {
	parts := make([]string, 0, len(forms))
	for i, f := range forms {
		style := t.TabInactive
		if i == active {
			style = t.TabActive
		}
		parts = append(parts, style.Render(f.tab.Title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderForm(t Theme, f *tabForm) string {
	var b strings.Builder
	label := t.Label.Width(labelWidth)

	for si, s := range f.tab.Sections {
		if si > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Section.Render(s.Title))
		b.WriteString("\n")

		for _, st := range f.stops {
			if st.section != si {
				continue
			}
			focused := f.stops[f.focus] == st

			if st.isButton() {
				btn := t.Button
				if focused {
					btn = t.ButtonFocused
				}
				b.WriteString(btn.Render(s.Calculation.Button))
				b.WriteString("\n")
				continue
			}

			fld := f.fields[st.input]
			marker := "  "
			if focused {
				marker = "› "
			}
			line := marker + label.Render(clampString(fld.Label, labelWidth-2)) + f.inputs[st.input].View()
			if fld.Unit != "" {
				line += " " + t.Unit.Render(fld.Unit)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formHeight estimates the rendered height of a form card.
func formHeight(f *tabForm) int {
	h := 4 // card padding and border
	for _, s := range f.tab.Sections {
		h += 2 + len(s.Fields) + 3
	}
	return h
}
