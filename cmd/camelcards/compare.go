package main

import (
	"fmt"
	"io"
	"os"
)

// CompareCmd explains which of two hands is stronger.
type CompareCmd struct {
	RulesFlag
	A string `arg:"" help:"First hand"`
	B string `arg:"" help:"Second hand"`
}

func (c *CompareCmd) Run(g *Globals, out io.Writer) error {
	cfg, _, err := g.setup(c.RulesFlag, os.Stderr)
	if err != nil {
		return err
	}
	rules := cfg.Rules()

	a, err := rules.ParseHand(c.A)
	if err != nil {
		return err
	}
	b, err := rules.ParseHand(c.B)
	if err != nil {
		return err
	}

	_, why := a.CompareWithExplanation(b)
	fmt.Fprintln(out, why)
	return nil
}
