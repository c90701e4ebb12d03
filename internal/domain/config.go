package domain

// Config represents the labcalc configuration loaded from labcalc.yaml.
type Config struct {
	Format   FormatConfig
	Defaults DefaultsConfig
	Results  ResultsConfig
	Paths    PathsConfig
}

type FormatConfig struct {
	// ValueDecimals applies to dimensionless and rate values.
	ValueDecimals  int
	VolumeDecimals int
	// RatioDecimals applies to "1:x" dilution ratios.
	RatioDecimals int
}

type DefaultsConfig struct {
	Tab TabID
}

type ResultsConfig struct {
	TimestampLayout string
	Separator       string
}

type PathsConfig struct {
	LogsDir string
}

// MaxDecimals bounds every FormatConfig field.
const MaxDecimals = 10

// DefaultConfig provides sane defaults if labcalc.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Format: FormatConfig{
			ValueDecimals:  4,
			VolumeDecimals: 2,
			RatioDecimals:  2,
		},
		Defaults: DefaultsConfig{
			Tab: TabDilution,
		},
		Results: ResultsConfig{
			TimestampLayout: "2006-01-02 15:04:05",
			Separator:       "----------------------------------------",
		},
		Paths: PathsConfig{
			LogsDir: ".labcalc/logs",
		},
	}
}
