package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/camelcards/internal/bids"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// RankCmd prints every hand in ascending strength with its score.
type RankCmd struct {
	RulesFlag
	Input  string `arg:"" optional:"" help:"Input file, '-' for stdin (overrides config)"`
	Report string `help:"Write a TOML report to this path (overrides config)"`
}

func (c *RankCmd) Run(g *Globals, out io.Writer) error {
	res, err := runSolver(g, c.RulesFlag, c.Input, c.Report)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, rankTable(res.Ranked))
	fmt.Fprintln(out, totalStyle.Render(fmt.Sprintf("Total winnings (%s): %d", res.Rules, res.Winnings)))
	return nil
}

func rankTable(ranked []bids.Ranked) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Hand", "Category", "Bid", "Score").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 1:
				return handStyle.Padding(0, 1)
			case col == 2:
				return categoryStyle.Padding(0, 1)
			}
			return cellStyle
		})

	for _, r := range ranked {
		t.Row(
			strconv.Itoa(r.Rank),
			r.Hand.String(),
			r.Hand.Category().String(),
			strconv.FormatInt(r.Amount, 10),
			strconv.FormatInt(r.Score(), 10),
		)
	}
	return t.String()
}
