// Package solve runs a complete read, rank and sum pass over an input.
package solve

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/bids"
)

// Result is the outcome of one run.
type Result struct {
	Rules    camel.Rules
	Input    string
	Ranked   []bids.Ranked
	Winnings int64
	Elapsed  time.Duration
}

// Solver ranks bids under one rule set.
type Solver struct {
	rules  camel.Rules
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a solver. A nil clock uses the real clock.
func New(rules camel.Rules, logger *log.Logger, clock quartz.Clock) *Solver {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Solver{
		rules:  rules,
		logger: logger.WithPrefix("solve"),
		clock:  clock,
	}
}

// SolveFile reads bids from path ("-" for stdin) and ranks them.
func (s *Solver) SolveFile(path string) (*Result, error) {
	start := s.clock.Now()
	bs, err := bids.ReadFile(path, s.rules)
	if err != nil {
		return nil, err
	}
	return s.finish(path, bs, start), nil
}

// Solve reads bids from r and ranks them.
func (s *Solver) Solve(name string, r io.Reader) (*Result, error) {
	start := s.clock.Now()
	bs, err := bids.Read(r, s.rules)
	if err != nil {
		return nil, err
	}
	return s.finish(name, bs, start), nil
}

func (s *Solver) finish(input string, bs []bids.Bid, start time.Time) *Result {
	s.logger.Debug("Read bids", "input", input, "count", len(bs))
	counts := bids.CountByCategory(bs)
	for _, cat := range camel.Categories {
		if n := counts[cat]; n > 0 {
			s.logger.Debug("Category count", "category", cat.String(), "hands", n)
		}
	}

	ranked := bids.Rank(bs)
	for _, r := range ranked {
		s.logger.Debug("Ranked hand",
			"rank", r.Rank,
			"hand", r.Hand,
			"category", r.Hand.Category(),
			"bid", r.Amount)
	}

	res := &Result{
		Rules:    s.rules,
		Input:    input,
		Ranked:   ranked,
		Winnings: bids.Total(ranked),
		Elapsed:  s.clock.Since(start),
	}

	s.logger.Info("Computed winnings",
		"rules", s.rules,
		"bids", len(ranked),
		"winnings", res.Winnings,
		"elapsed", res.Elapsed)
	return res
}
