package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 100.0
	DefaultSize     = 1
	DefaultCurrent  = 10.0
)

// Config describes one simulation run: a neuron group driven by a
// constant current, optionally projected onto a second identical group
// through a synapse model.
type Config struct {
	Model      string             `yaml:"model"`
	Integrator string             `yaml:"integrator"`
	Size       int                `yaml:"size"`
	Dt         float64            `yaml:"dt"`
	Duration   float64            `yaml:"duration"`
	Seed       int64              `yaml:"seed"`
	Current    float64            `yaml:"current"`
	Params     map[string]float64 `yaml:"params"`
	Synapse    SynapseConfig      `yaml:"synapse"`
	Record     []string           `yaml:"record"`
}

// SynapseConfig configures the optional projection. An empty Model
// disables it. Weight 0 means the synapse model's default.
type SynapseConfig struct {
	Model       string  `yaml:"model"`
	Delay       float64 `yaml:"delay"`
	Weight      float64 `yaml:"weight"`
	Tau         float64 `yaml:"tau"`
	Conductance bool    `yaml:"conductance"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "hh",
		Integrator: "expeuler",
		Size:       DefaultSize,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Current:    DefaultCurrent,
		Record:     []string{"V", "spike"},
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
