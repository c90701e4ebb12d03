// Package domain contains the core model shared by the labcalc formulas and shells.
//
// The domain is toolkit-agnostic: it does not depend on the terminal UI, cobra, YAML parsing,
// or the filesystem. Formula packages return these error types; shells render these reports.
package domain
