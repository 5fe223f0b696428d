package utils

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Section configs ────────────────────────────────────────────────────

type OutputConfig struct {
	Basename string `yaml:"basename"`
	Dir      string `yaml:"dir"`
}

type ExtractConfig struct {
	MemberPrefix         string `yaml:"member_prefix"`
	MinProcessedChildren int    `yaml:"min_processed_children"`
	References           bool   `yaml:"references"`
	SortBySample         bool   `yaml:"sort_by_sample"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the top-level structure of the optional YAML config file.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Extract ExtractConfig `yaml:"extract"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig mirrors the behaviour of a run without any config file.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Basename: "spectra",
			Dir:      ".",
		},
		Extract: ExtractConfig{
			MemberPrefix:         "ps_",
			MinProcessedChildren: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadConfig reads and parses a YAML config on top of DefaultConfig.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the extractor cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Output.Basename == "" {
		errs = append(errs, errors.New("output.basename is empty"))
	}
	if c.Extract.MemberPrefix == "" {
		errs = append(errs, errors.New("extract.member_prefix is empty"))
	}
	if c.Extract.MinProcessedChildren < 0 {
		errs = append(errs, fmt.Errorf("extract.min_processed_children must be >= 0, got %d", c.Extract.MinProcessedChildren))
	}
	if _, err := ParseLogLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	return errors.Join(errs...)
}
