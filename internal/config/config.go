package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/moldyn/internal/chem"
	"github.com/san-kum/moldyn/internal/md"
)

const (
	DefaultDt         = 0.5
	DefaultTargetTemp = 300.0
	DefaultCutoff     = 10.0
	DefaultTau        = 0.1
	DefaultSteps      = 1000
)

// Config is the yaml-facing run description: which molecule to simulate
// and the simulation parameters. Invalid values are rejected by Validate
// before a run starts.
type Config struct {
	Molecule   string  `yaml:"molecule"`
	Dt         float64 `yaml:"dt"`          // fs
	TargetTemp float64 `yaml:"target_temp"` // K
	Cutoff     float64 `yaml:"cutoff"`      // Å
	Tau        float64 `yaml:"tau"`
	Thermostat string  `yaml:"thermostat"`
	Integrator string  `yaml:"integrator"`
	Seed       int64   `yaml:"seed"`
	Steps      int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Molecule:   "water-dimer",
		Dt:         DefaultDt,
		TargetTemp: DefaultTargetTemp,
		Cutoff:     DefaultCutoff,
		Tau:        DefaultTau,
		Thermostat: md.ThermostatBerendsen,
		Integrator: md.IntegratorVerlet,
		Steps:      DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the config into the engine's immutable parameter
// value.
func (c *Config) Params() md.Params {
	return md.Params{
		Dt:         c.Dt,
		TargetTemp: c.TargetTemp,
		Cutoff:     c.Cutoff,
		Tau:        c.Tau,
		Thermostat: c.Thermostat,
		Integrator: c.Integrator,
		Seed:       c.Seed,
	}
}

// ValidationError collects multiple validation issues.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid config: unknown validation error"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0]
	}
	return "config validation errors: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) Add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// Validate checks the whole run description. Simulation parameter
// violations (non-positive dt, cutoff, target temperature) are collected
// alongside config-level issues.
func (c *Config) Validate() error {
	err := &ValidationError{}

	if c.Molecule == "" {
		err.Add("molecule name is required")
	} else if _, berr := chem.Builtin(c.Molecule); berr != nil {
		err.Add(berr.Error())
	}

	if c.Steps <= 0 {
		err.Add("steps must be positive")
	}

	if perr := c.Params().Validate(); perr != nil {
		err.Add(perr.Error())
	}

	if err.HasIssues() {
		return err
	}
	return nil
}
