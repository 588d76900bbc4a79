package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/camelcards/cmd/camelcards/shared"
	"github.com/lox/camelcards/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	Config    string `short:"c" default:"${config}" help:"Path to HCL configuration file"`
	LogLevel  string `short:"l" help:"Log level: debug|info|warn|error (overrides config)"`
	LogFormat string `help:"Log format: text|json (overrides config)"`
}

// RulesFlag selects the rule set for a command.
type RulesFlag struct {
	Rules string `short:"r" help:"Rule set: standard|jokers (overrides config)"`
}

// setup loads the config file, applies flag overrides and builds the logger.
func (g *Globals) setup(rf RulesFlag, stderr io.Writer) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if g.LogLevel != "" {
		cfg.Logging.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Logging.Format = g.LogFormat
	}
	if rf.Rules != "" {
		cfg.Solver.Rules = rf.Rules
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := shared.SetupLogger(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded configuration", "file", g.Config, "rules", cfg.Solver.Rules)
	return cfg, logger, nil
}
