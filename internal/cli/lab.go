package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"github.com/tazomatalax/lab-calculator/internal/infra/configfile"
)

type labCtx struct {
	// root is the directory holding labcalc.yaml; empty when none was found.
	root string
	cfg  domain.Config
}

func defaultConfig() domain.Config {
	return domain.DefaultConfig()
}

// loadLab resolves the configuration: an explicit --config path must exist,
// otherwise labcalc.yaml is searched upward and defaults apply when absent.
func loadLab(configFlag string) (*labCtx, error) {
	p := strings.TrimSpace(configFlag)
	if p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err := configfile.LoadConfig(abs)
		if err != nil {
			return nil, err
		}
		return &labCtx{root: filepath.Dir(abs), cfg: cfg}, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return &labCtx{cfg: defaultConfig()}, nil
	}

	root, err := configfile.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return &labCtx{cfg: defaultConfig()}, nil
		}
		return nil, err
	}

	cfg, err := configfile.LoadConfig(configfile.Path(root))
	if err != nil {
		return nil, err
	}
	return &labCtx{root: root, cfg: cfg}, nil
}
