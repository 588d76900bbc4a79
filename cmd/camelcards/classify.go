package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/camelcards/camel"
)

// ClassifyCmd prints the category of each hand.
type ClassifyCmd struct {
	RulesFlag
	Hands []string `arg:"" help:"Hands to classify, e.g. KTJJT"`
}

func (c *ClassifyCmd) Run(g *Globals, out io.Writer) error {
	cfg, logger, err := g.setup(c.RulesFlag, os.Stderr)
	if err != nil {
		return err
	}
	rules := cfg.Rules()

	for _, s := range c.Hands {
		h, err := rules.ParseHand(s)
		if err != nil {
			return err
		}
		logger.Debug("Classified hand", "hand", h, "rules", rules, "category", h.Category())
		fmt.Fprintf(out, "%s %s [%s]\n", handStyle.Render(h.String()), categoryStyle.Render(h.Category().String()), formatGroups(h.Groups()))
	}
	return nil
}

// formatGroups renders a signature such as "T:2 J:2 K:1".
func formatGroups(groups []camel.Group) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = fmt.Sprintf("%s:%d", g.Card, g.Count)
	}
	return strings.Join(parts, " ")
}
