package usecase

import (
	"strconv"

	"github.com/tazomatalax/lab-calculator/internal/domain"
)

type formatter struct {
	cfg domain.FormatConfig
}

func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func (f formatter) val(v float64) string   { return fixed(v, f.cfg.ValueDecimals) }
func (f formatter) vol(v float64) string   { return fixed(v, f.cfg.VolumeDecimals) }
func (f formatter) ratio(v float64) string { return fixed(v, f.cfg.RatioDecimals) }

func (f formatter) value(name, symbol, unit string, v float64) domain.Quantity {
	return domain.Quantity{Name: name, Symbol: symbol, Unit: unit, Value: v, Decimals: f.cfg.ValueDecimals}
}

func (f formatter) volume(name, symbol string, v float64) domain.Quantity {
	return domain.Quantity{Name: name, Symbol: symbol, Unit: "mL", Value: v, Decimals: f.cfg.VolumeDecimals}
}

func (f formatter) ratioValue(name, symbol string, v float64) domain.Quantity {
	return domain.Quantity{Name: name, Symbol: symbol, Value: v, Decimals: f.cfg.RatioDecimals}
}
