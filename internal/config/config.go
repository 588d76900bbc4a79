// Package config loads the camelcards HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/camelcards/camel"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "camelcards.hcl"

// Config represents the complete solver configuration
type Config struct {
	Solver  *SolverSettings  `hcl:"solver,block"`
	Logging *LoggingSettings `hcl:"logging,block"`
	Report  *ReportSettings  `hcl:"report,block"`
}

// SolverSettings selects the rules and the puzzle input
type SolverSettings struct {
	Rules string `hcl:"rules,optional"`
	Input string `hcl:"input,optional"`
}

// LoggingSettings controls the stderr logger
type LoggingSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// ReportSettings controls the optional TOML report. An empty path
// disables it.
type ReportSettings struct {
	Path string `hcl:"path,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Solver: &SolverSettings{
			Rules: "standard",
			Input: "-",
		},
		Logging: &LoggingSettings{
			Level:  "warn",
			Format: "text",
		},
		Report: &ReportSettings{},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Solver == nil {
		c.Solver = defaults.Solver
	}
	if c.Logging == nil {
		c.Logging = defaults.Logging
	}
	if c.Report == nil {
		c.Report = defaults.Report
	}

	if c.Solver.Rules == "" {
		c.Solver.Rules = defaults.Solver.Rules
	}
	if c.Solver.Input == "" {
		c.Solver.Input = defaults.Solver.Input
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := camel.RulesByName(c.Solver.Rules); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// Rules returns the configured rule set
func (c *Config) Rules() camel.Rules {
	rules, err := camel.RulesByName(c.Solver.Rules)
	if err != nil {
		return camel.Standard
	}
	return rules
}
