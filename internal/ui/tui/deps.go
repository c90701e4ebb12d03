package tui

import (
	"log/slog"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"github.com/tazomatalax/lab-calculator/internal/ports"
)

type Deps struct {
	Calculator ports.Calculator
	Config     domain.Config

	Logger *slog.Logger
	// LogPath is shown in the help line when Debug is set.
	LogPath string
	Debug   bool
}
