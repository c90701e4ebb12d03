package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/tazomatalax/lab-calculator/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("labcalc %s (commit=%s, date=%s)", Version, Commit, Date)
}
