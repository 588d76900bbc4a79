// Package report writes ranked bids as a TOML document.
package report

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/bids"
	"github.com/lox/camelcards/internal/fileutil"
)

// Report summarises one ranking run.
type Report struct {
	Rules      string         `toml:"rules"`
	Input      string         `toml:"input,omitempty"`
	Bids       int            `toml:"bids"`
	Winnings   int64          `toml:"winnings"`
	Categories map[string]int `toml:"categories,omitempty"`
	Ranked     []Entry        `toml:"ranked"`
}

// Entry is one ranked bid.
type Entry struct {
	Rank     int    `toml:"rank"`
	Hand     string `toml:"hand"`
	Category string `toml:"category"`
	Bid      int64  `toml:"bid"`
	Score    int64  `toml:"score"`
	Line     int    `toml:"line,omitempty"`
}

// New builds a report from ranked bids.
func New(rules camel.Rules, input string, ranked []bids.Ranked) *Report {
	r := &Report{
		Rules:      rules.Name(),
		Input:      input,
		Bids:       len(ranked),
		Winnings:   bids.Total(ranked),
		Categories: make(map[string]int),
		Ranked:     make([]Entry, len(ranked)),
	}

	bs := make([]bids.Bid, len(ranked))
	for i, rb := range ranked {
		bs[i] = rb.Bid
		r.Ranked[i] = Entry{
			Rank:     rb.Rank,
			Hand:     rb.Hand.String(),
			Category: rb.Hand.Category().String(),
			Bid:      rb.Amount,
			Score:    rb.Score(),
			Line:     rb.Line,
		}
	}
	for cat, n := range bids.CountByCategory(bs) {
		r.Categories[cat.String()] = n
	}
	return r
}

// Encode writes the report to w in TOML format.
func Encode(w io.Writer, r *Report) error {
	if r == nil {
		return fmt.Errorf("report: nil report")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// Decode reads a report previously written by Encode.
func Decode(rd io.Reader) (*Report, error) {
	var r Report
	if _, err := toml.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &r, nil
}

// WriteFile encodes the report and replaces filename with it. Readers see
// either the previous file or the complete new one.
func WriteFile(filename string, r *Report) error {
	if r == nil {
		return fmt.Errorf("report: nil report")
	}
	return fileutil.WriteAtomic(filename, 0644, func(w io.Writer) error {
		return Encode(w, r)
	})
}
