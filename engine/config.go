package engine

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the engine's construction-time configuration: table size,
// stack-depth cap, and which distribution mode an all-in hand resolves
// with.
type Config struct {
	NumSeats          int  `hcl:"num_seats,optional"`
	MaxLimit          int  `hcl:"max_limit,optional"`
	AllInEquityReward bool `hcl:"all_in_equity_reward,optional"`
	EquitySteps       int  `hcl:"equity_steps,optional"`
	AutoresetStacks   bool `hcl:"autoreset_stacks,optional"`
	Debug             bool `hcl:"debug,optional"`
}

// DefaultConfig mirrors the blind-stealing/heads-up scenarios in the
// testable-properties section: a 6-max table at the default blind level,
// no equity-reward shortcut. AutoresetStacks defaults to true, but the
// engine never reads it: stacks carry over from hand to hand.
func DefaultConfig() Config {
	return Config{
		NumSeats:          6,
		MaxLimit:          0,
		AllInEquityReward: false,
		EquitySteps:       1000,
		AutoresetStacks:   true,
		Debug:             false,
	}
}

// hclConfig is the file-level wrapper so the table config sits under a
// `config { ... }` block the way the reference server's HCL files do.
type hclConfig struct {
	Table Config `hcl:"config,block"`
}

// LoadConfig reads an HCL config file and applies it over DefaultConfig,
// the way the reference server's LoadServerConfig layers file values
// over its defaults.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("engine: parse %s: %s", filename, diags.Error())
	}

	var wrapper hclConfig
	wrapper.Table = cfg
	diags = gohcl.DecodeBody(file.Body, nil, &wrapper)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("engine: decode %s: %s", filename, diags.Error())
	}

	cfg = wrapper.Table
	if cfg.NumSeats == 0 {
		cfg.NumSeats = 6
	}
	if cfg.EquitySteps == 0 {
		cfg.EquitySteps = 1000
	}
	return cfg, nil
}

// Validate checks the config is usable for NewEngine.
func (c Config) Validate() error {
	if c.NumSeats < 2 || c.NumSeats > 10 {
		return fmt.Errorf("engine: num_seats must be 2..10, got %d", c.NumSeats)
	}
	if c.EquitySteps <= 0 {
		return fmt.Errorf("engine: equity_steps must be positive, got %d", c.EquitySteps)
	}
	return nil
}
