package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultScenario = "external-cylinder"
	DefaultRe       = 6071.0
	DefaultPr       = 0.7
	DefaultGr       = 1e7
	DefaultSteps    = 60
)

type Config struct {
	Scenario string      `yaml:"scenario"`
	Method   string      `yaml:"method"`
	Inputs   InputConfig `yaml:"inputs"`
	Sweep    SweepConfig `yaml:"sweep"`
}

// InputConfig carries every numeric input any scenario can take; each
// scenario reads the fields it needs. Pointer fields are optional
// parameters left out of the computation when absent.
type InputConfig struct {
	Re       float64  `yaml:"re"`
	Pr       float64  `yaml:"pr"`
	Gr       float64  `yaml:"gr"`
	Prw      *float64 `yaml:"prw,omitempty"`
	Mu       *float64 `yaml:"mu,omitempty"`
	MuWall   *float64 `yaml:"mu_wall,omitempty"`
	L        *float64 `yaml:"l,omitempty"`
	D        *float64 `yaml:"d,omitempty"`
	Buoyancy bool     `yaml:"buoyancy"`
	Chevron  float64  `yaml:"chevron_angle"`
	RhoW     *float64 `yaml:"rho_w,omitempty"`
	RhoB     *float64 `yaml:"rho_b,omitempty"`
}

// SweepConfig describes a one-parameter sweep for plotting: which input
// to vary and over what range. Log spacing suits the Re and Gr ranges
// the correlations span.
type SweepConfig struct {
	Param string  `yaml:"param"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
	Log   bool    `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Scenario: DefaultScenario,
		Inputs: InputConfig{
			Re:       DefaultRe,
			Pr:       DefaultPr,
			Gr:       DefaultGr,
			Buoyancy: true,
			Chevron:  45,
		},
		Sweep: SweepConfig{
			Param: "re",
			From:  1e3,
			To:    1e6,
			Steps: DefaultSteps,
			Log:   true,
		},
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
