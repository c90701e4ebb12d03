package tui

import "github.com/tazomatalax/lab-calculator/internal/domain"

type calcDoneMsg struct {
	tab    domain.TabID
	calc   string
	report domain.Report
	err    error
}
