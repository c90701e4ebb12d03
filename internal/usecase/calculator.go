package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"github.com/tazomatalax/lab-calculator/internal/ports"
)

// Calculator is the toolkit-independent form controller shared by the CLI and the TUI.
// It owns the tab catalog, parses field text at the boundary and formats results.
type Calculator struct {
	tabs []catalogTab
	log  *slog.Logger
}

type CalculatorOption func(*Calculator)

func WithLogger(l *slog.Logger) CalculatorOption {
	return func(c *Calculator) {
		if l != nil {
			c.log = l
		}
	}
}

func NewCalculator(cfg domain.Config, opts ...CalculatorOption) *Calculator {
	c := &Calculator{
		tabs: buildCatalog(formatter{cfg: cfg.Format}),
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Calculator = (*Calculator)(nil)

// Tabs returns the tabs in display order.
func (c *Calculator) Tabs() []domain.Tab {
	out := make([]domain.Tab, 0, len(c.tabs))
	for _, t := range c.tabs {
		out = append(out, t.tab)
	}
	return out
}

func (c *Calculator) Tab(id domain.TabID) (domain.Tab, bool) {
	ct, ok := c.find(id)
	return ct.tab, ok
}

// Evaluate parses the raw field text a calculation needs, runs its formula and formats the report.
// Fields absent from raw are treated as empty.
func (c *Calculator) Evaluate(ctx context.Context, tabID domain.TabID, calcID string, raw map[string]string) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	ct, ok := c.find(tabID)
	if !ok {
		return domain.Report{}, notFound("usecase.evaluate", fmt.Sprintf("unknown tab %q", tabID))
	}
	calc, ok := ct.tab.Calculation(calcID)
	eval, hasEval := ct.evals[calcID]
	if !ok || !hasEval {
		return domain.Report{}, notFound("usecase.evaluate", fmt.Sprintf("unknown calculation %q in tab %q", calcID, tabID))
	}

	in, err := parseInputs(ct.tab, calc, raw)
	if err != nil {
		c.logFailure(tabID, calcID, err)
		return domain.Report{}, err
	}

	report, err := eval(in)
	if err == nil {
		err = checkFinite(report)
	}
	if err != nil {
		c.logFailure(tabID, calcID, err)
		return domain.Report{}, err
	}
	report.Tab = tabID
	report.Calculation = calcID

	c.log.Debug("calc.ok", "tab", string(tabID), "calculation", calcID)
	return report, nil
}

// checkFinite rejects reports whose values overflowed or became NaN.
func checkFinite(r domain.Report) error {
	for _, q := range r.Values {
		if !domain.Present(q.Value).Finite() {
			return domain.InvalidInput("usecase.evaluate", q.Name, "Result is out of range.")
		}
	}
	return nil
}

func (c *Calculator) find(id domain.TabID) (catalogTab, bool) {
	for _, t := range c.tabs {
		if t.tab.ID == id {
			return t, true
		}
	}
	return catalogTab{}, false
}

func (c *Calculator) logFailure(tabID domain.TabID, calcID string, err error) {
	kind := "unknown"
	var oe *domain.OpError
	if errors.As(err, &oe) {
		kind = string(oe.Kind)
	}
	c.log.Info("calc.failed",
		"tab", string(tabID),
		"calculation", calcID,
		"kind", kind,
		"err", err,
	)
}

func notFound(op, msg string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Msg:  msg,
		Err:  domain.ErrNotFound,
	}
}
