package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ParamsPath   string   // 45-line simulation parameter file
	ExportTokens []string // raw export flags and their arguments
	SettingsPath string   // hcl file or directory, empty means built-in defaults
	OutputPrefix string   // overrides output.prefix from the settings

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	DryRun          bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ParamsPath == "" {
		return nil, errors.New("ParamsPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
