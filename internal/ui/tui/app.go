package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tazomatalax/lab-calculator/internal/domain"
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	forms  []tabForm
	active int

	results viewport.Model
	width   int
	height  int

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		log:     log,
		results: viewport.New(80, 10),
	}

	for _, tab := range deps.Calculator.Tabs() {
		m.forms = append(m.forms, newTabForm(tab, deps.Config))
	}
	for i := range m.forms {
		if m.forms[i].tab.ID == deps.Config.Defaults.Tab {
			m.active = i
		}
	}
	m.focusActive()

	log.Info("tui.started", "tabs", len(m.forms), "tab", string(m.form().tab.ID))
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) form() *tabForm {
	return &m.forms[m.active]
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.syncResults()
		return m, nil

	case calcDoneMsg:
		m.applyResult(msg)
		return m, nil

	case tea.KeyMsg:
		m.toast = ""

		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit

		case "ctrl+right":
			m.switchTab(1)
			return m, nil

		case "ctrl+left":
			m.switchTab(-1)
			return m, nil

		case "tab", "down":
			m.form().move(1)
			return m, nil

		case "shift+tab", "up":
			m.form().move(-1)
			return m, nil

		case "enter":
			f := m.form()
			calc := f.calculation()
			return m, cmdEvaluate(m.deps.Calculator, f.tab.ID, calc.ID, f.raw())

		case "ctrl+l":
			m.form().reset()
			m.syncResults()
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}

		return m, m.form().updateInput(msg)
	}

	return m, nil
}

func (m *model) switchTab(delta int) {
	n := len(m.forms)
	if n == 0 {
		return
	}
	m.form().blurAll()
	m.active = ((m.active+delta)%n + n) % n
	m.focusActive()
	m.resize()
	m.syncResults()
}

// resize fits the results pane below the active form. Forms differ in height.
func (m *model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.results.Width = max(m.width-8, 20)
	m.results.Height = max(m.height-formHeight(m.form())-12, 5)
}

func (m *model) focusActive() {
	if len(m.forms) == 0 {
		return
	}
	m.form().applyFocus()
}

func (m *model) applyResult(msg calcDoneMsg) {
	idx := -1
	for i := range m.forms {
		if m.forms[i].tab.ID == msg.tab {
			idx = i
		}
	}
	if idx < 0 {
		return
	}
	f := &m.forms[idx]

	if msg.err != nil {
		if f.tab.MarkFieldsOnError {
			f.markAll(errorMarker)
		}
		f.record(userMessage(f.tab, msg.err))
	} else {
		for key, v := range msg.report.Fill {
			f.set(key, v)
		}
		f.record(msg.report.Text)
	}

	if idx == m.active {
		m.syncResults()
	}
}

// syncResults copies the active tab's results into the viewport.
func (m *model) syncResults() {
	f := m.form()
	m.results.SetContent(f.resultsText())
	if f.tab.Results == domain.ResultsAppend {
		m.results.GotoBottom()
	} else {
		m.results.GotoTop()
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	f := m.form()

	header := m.theme.Title.Render("Lab Calculator") + "\n" +
		m.theme.Subtitle.Render("Bioprocess calculations for the lab bench") + "\n"

	body := renderTabBar(m.theme, m.forms, m.active) + "\n\n" +
		m.theme.Card.Render(renderForm(m.theme, f)) + "\n" +
		m.theme.Card.Render(m.theme.Section.Render("Results")+"\n\n"+m.results.View())

	out := header + "\n" + body + "\n"
	if m.toast != "" {
		out += m.theme.Toast.Render(m.toast) + "\n"
	}
	help := "ctrl+←/→ tabs • tab/↑/↓ focus • enter calculate • ctrl+l clear • pgup/pgdn scroll • esc quit"
	if m.deps.Debug {
		help += " • debug: " + m.logHint()
	}
	out += m.theme.Help.Render(help)
	return wrap.Render(out)
}

func (m model) logHint() string {
	if m.deps.LogPath == "" {
		return "logging on"
	}
	return m.deps.LogPath
}

// resetAfterPanic puts the model back into a usable state after a panic:
// the first tab with a valid index, its focus on the first stop.
func (m *model) resetAfterPanic() {
	if m.active < 0 || m.active >= len(m.forms) {
		m.active = 0
	}
	if len(m.forms) == 0 {
		return
	}
	f := m.form()
	f.focus = 0
	f.applyFocus()
}
