package ports

import (
	"context"

	"github.com/tazomatalax/lab-calculator/internal/domain"
)

// Calculator evaluates the calculations of the tab catalog from raw field text.
type Calculator interface {
	Tabs() []domain.Tab
	Tab(id domain.TabID) (domain.Tab, bool)
	Evaluate(ctx context.Context, tab domain.TabID, calculation string, raw map[string]string) (domain.Report, error)
}
