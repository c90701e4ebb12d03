package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tazomatalax/lab-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Path returns the config file path under root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// LoadConfig loads a labcalc.yaml file and applies defaults.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	f := y.Labcalc.Format
	for _, d := range []struct {
		key string
		in  *int
		out *int
	}{
		{"format.value_decimals", f.ValueDecimals, &cfg.Format.ValueDecimals},
		{"format.volume_decimals", f.VolumeDecimals, &cfg.Format.VolumeDecimals},
		{"format.ratio_decimals", f.RatioDecimals, &cfg.Format.RatioDecimals},
	} {
		if d.in == nil {
			continue
		}
		if *d.in < 0 || *d.in > domain.MaxDecimals {
			return cfg, invalidKey(path, d.key, fmt.Sprintf("must be between 0 and %d, got %d", domain.MaxDecimals, *d.in))
		}
		*d.out = *d.in
	}

	if tab := strings.TrimSpace(y.Labcalc.Defaults.Tab); tab != "" {
		id := domain.TabID(strings.ToLower(tab))
		if !domain.KnownTab(id) {
			return cfg, invalidKey(path, "defaults.tab", fmt.Sprintf("unknown tab %q", tab))
		}
		cfg.Defaults.Tab = id
	}
	if y.Labcalc.Results.TimestampLayout != "" {
		cfg.Results.TimestampLayout = y.Labcalc.Results.TimestampLayout
	}
	if y.Labcalc.Results.Separator != "" {
		cfg.Results.Separator = y.Labcalc.Results.Separator
	}
	if y.Labcalc.Paths.LogsDir != "" {
		cfg.Paths.LogsDir = y.Labcalc.Paths.LogsDir
	}

	return cfg, nil
}

func invalidKey(path, key, msg string) error {
	return &domain.OpError{
		Op:    "configfile.loadconfig",
		Kind:  domain.KindInvalidConfig,
		Field: key,
		Path:  path,
		Err:   fmt.Errorf("%s: %s: %w", key, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Labcalc struct {
		Format struct {
			ValueDecimals  *int `yaml:"value_decimals"`
			VolumeDecimals *int `yaml:"volume_decimals"`
			RatioDecimals  *int `yaml:"ratio_decimals"`
		} `yaml:"format"`

		Defaults struct {
			Tab string `yaml:"tab"`
		} `yaml:"defaults"`

		Results struct {
			TimestampLayout string `yaml:"timestamp_layout"`
			Separator       string `yaml:"separator"`
		} `yaml:"results"`

		Paths struct {
			LogsDir string `yaml:"logs_dir"`
		} `yaml:"paths"`
	} `yaml:"labcalc"`
}
