package bids

import (
	"slices"

	"github.com/lox/camelcards/camel"
)

// Ranked is a bid with its 1-based rank among all bids, weakest first.
type Ranked struct {
	Bid
	Rank int
}

// Score returns the bid's contribution to the winnings.
func (r Ranked) Score() int64 {
	return int64(r.Rank) * r.Amount
}

// Rank orders bids by ascending hand strength. Equal hands keep their
// input order. The input slice is not modified.
func Rank(bids []Bid) []Ranked {
	sorted := slices.Clone(bids)
	slices.SortStableFunc(sorted, func(a, b Bid) int {
		return a.Hand.Compare(b.Hand)
	})

	ranked := make([]Ranked, len(sorted))
	for i, b := range sorted {
		ranked[i] = Ranked{Bid: b, Rank: i + 1}
	}
	return ranked
}

// Total sums the scores of ranked bids.
func Total(ranked []Ranked) int64 {
	var total int64
	for _, r := range ranked {
		total += r.Score()
	}
	return total
}

// Winnings ranks bids and returns the total winnings.
func Winnings(bids []Bid) int64 {
	return Total(Rank(bids))
}

// CountByCategory tallies how many bids fall in each category.
func CountByCategory(bids []Bid) map[camel.Category]int {
	counts := make(map[camel.Category]int)
	for _, b := range bids {
		counts[b.Hand.Category()]++
	}
	return counts
}
