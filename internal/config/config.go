package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cellbench/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Bench  BenchConfig  `yaml:"bench"`
	Cells  CellsConfig  `yaml:"cells"`
	Server ServerConfig `yaml:"server"`
}

// BenchConfig carries test-bench metadata echoed in reports.
type BenchConfig struct {
	Name  string `yaml:"name"`
	Group int    `yaml:"group"`
}

type CellsConfig struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
	// Chemistries maps a tag to its voltage envelope. Empty means the two
	// built-in chemistries (lfp, nmc).
	Chemistries map[string]ChemistryConfig `yaml:"chemistries"`
}

type ChemistryConfig struct {
	NominalVoltage float64 `yaml:"nominal_voltage"`
	MinVoltage     float64 `yaml:"min_voltage"`
	MaxVoltage     float64 `yaml:"max_voltage"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given: an 8-cell
// bank of the built-in chemistries.
func Default() *Config {
	return &Config{
		Bench:  BenchConfig{Group: 1},
		Cells:  CellsConfig{Count: 8, Seed: 1},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads, defaults and validates a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Cells.Count <= 0 {
		return fmt.Errorf("cells.count must be > 0, got %d", c.Cells.Count)
	}
	if c.Bench.Group < 1 {
		return fmt.Errorf("bench.group must be >= 1, got %d", c.Bench.Group)
	}
	// Validate chemistries by constructing a registry.
	if _, err := c.Registry(); err != nil {
		return fmt.Errorf("chemistry config invalid: %w", err)
	}
	return nil
}

// Registry builds the chemistry registry: the built-in envelopes when no
// chemistries are configured, otherwise exactly the configured set.
func (c *Config) Registry() (*model.Registry, error) {
	if len(c.Cells.Chemistries) == 0 {
		return model.DefaultRegistry(), nil
	}
	reg := model.NewRegistry()
	for tag, ch := range c.Cells.Chemistries {
		cfg := model.CellConfig{
			NominalVoltage: ch.NominalVoltage,
			MinVoltage:     ch.MinVoltage,
			MaxVoltage:     ch.MaxVoltage,
		}
		if err := reg.Register(tag, cfg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
