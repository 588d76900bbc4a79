package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/camelcards/internal/report"
	"github.com/lox/camelcards/internal/solve"
)

// SolveCmd prints the total winnings for an input file.
type SolveCmd struct {
	RulesFlag
	Input  string `arg:"" optional:"" help:"Input file, '-' for stdin (overrides config)"`
	Report string `help:"Write a TOML report to this path (overrides config)"`
}

func (c *SolveCmd) Run(g *Globals, out io.Writer) error {
	res, err := runSolver(g, c.RulesFlag, c.Input, c.Report)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Winnings)
	return nil
}

// runSolver resolves settings, ranks the input and writes the report if
// one is configured.
func runSolver(g *Globals, rf RulesFlag, input, reportPath string) (*solve.Result, error) {
	cfg, logger, err := g.setup(rf, os.Stderr)
	if err != nil {
		return nil, err
	}
	if input != "" {
		cfg.Solver.Input = input
	}
	if reportPath != "" {
		cfg.Report.Path = reportPath
	}

	solver := solve.New(cfg.Rules(), logger, quartz.NewReal())
	res, err := solver.SolveFile(cfg.Solver.Input)
	if err != nil {
		return nil, err
	}

	if cfg.Report.Path != "" {
		r := report.New(res.Rules, res.Input, res.Ranked)
		if err := report.WriteFile(cfg.Report.Path, r); err != nil {
			return nil, fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Wrote report", "path", cfg.Report.Path)
	}
	return res, nil
}
