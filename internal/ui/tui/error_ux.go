package tui

import (
	"github.com/tazomatalax/lab-calculator/internal/domain"
)

const errorMarker = "Error"

// userMessage renders a failed calculation for the results pane.
func userMessage(tab domain.Tab, err error) string {
	if err == nil {
		return ""
	}

	msg := "Error: " + domain.UserMessage(err)
	if tab.ID == domain.TabDilution && domain.IsKind(err, domain.KindParse) {
		msg += "\n\nPlease check your input values."
	}
	return msg
}
