package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"github.com/tazomatalax/lab-calculator/internal/ports"
)

func cmdEvaluate(calc ports.Calculator, tab domain.TabID, calcID string, raw map[string]string) tea.Cmd {
	return func() tea.Msg {
		report, err := calc.Evaluate(context.Background(), tab, calcID, raw)
		return calcDoneMsg{tab: tab, calc: calcID, report: report, err: err}
	}
}
