package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"companykata/internal/config"
)

// LoadConfig reads a YAML config file. Durations use Go syntax ("10s", "5m").
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	return &cfg, nil
}
