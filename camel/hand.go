package camel

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// HandSize is the number of cards in every hand.
const HandSize = 5

// HandParseError reports input that is not exactly five valid cards.
type HandParseError struct {
	Input string
	Err   error
}

func (e *HandParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid hand %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid hand %q: want %d cards, got %d", e.Input, HandSize, utf8.RuneCountInString(e.Input))
}

func (e *HandParseError) Unwrap() error { return e.Err }

// Group is a run of identical cards within a hand.
type Group struct {
	Card  Card
	Count int
}

// Hand is five cards in dealt order, classified under one rule set.
type Hand struct {
	cards    [HandSize]Card
	rules    Rules
	category Category
}

// NewHand builds a hand from five cards. Every card must be one of the
// 13 ranks.
func (r Rules) NewHand(cards [HandSize]Card) (Hand, error) {
	for i, c := range cards {
		if !c.Valid() {
			return Hand{}, &HandParseError{
				Input: renderCards(cards),
				Err:   fmt.Errorf("card %d: invalid rank %d", i+1, uint8(c)),
			}
		}
	}
	return r.newHand(cards), nil
}

func (r Rules) newHand(cards [HandSize]Card) Hand {
	return Hand{
		cards:    cards,
		rules:    r,
		category: r.classify(cards),
	}
}

// ParseHand parses a five character hand such as "KTJJT".
func (r Rules) ParseHand(s string) (Hand, error) {
	if utf8.RuneCountInString(s) != HandSize {
		return Hand{}, &HandParseError{Input: s}
	}

	var cards [HandSize]Card
	i := 0
	for _, ch := range s {
		c, err := ParseCard(ch)
		if err != nil {
			return Hand{}, &HandParseError{Input: s, Err: err}
		}
		cards[i] = c
		i++
	}
	return r.newHand(cards), nil
}

// Cards returns the cards in dealt order.
func (h Hand) Cards() [HandSize]Card { return h.cards }

// Rules returns the rule set the hand was classified under.
func (h Hand) Rules() Rules { return h.rules }

// Category returns the hand's category.
func (h Hand) Category() Category { return h.category }

// Groups returns the multiplicity signature of the hand, largest group
// first and equal counts ordered by card strength.
func (h Hand) Groups() []Group {
	return groups(h.cards[:], h.rules)
}

func (h Hand) String() string {
	return renderCards(h.cards)
}

func renderCards(cards [HandSize]Card) string {
	var b [HandSize]byte
	for i, c := range cards {
		b[i] = c.Byte()
	}
	return string(b[:])
}

// classify groups the non-wild cards and folds the wildcards into the
// largest group.
func (r Rules) classify(cards [HandSize]Card) Category {
	natural := make([]Card, 0, HandSize)
	for _, c := range cards {
		if !r.IsWild(c) {
			natural = append(natural, c)
		}
	}

	wilds := HandSize - len(natural)
	if wilds == HandSize {
		return FiveOfAKind
	}

	gs := groups(natural, r)
	shape := make([]int, len(gs))
	for i, g := range gs {
		shape[i] = g.Count
	}
	shape[0] += wilds
	return categoryForShape(shape)
}

func groups(cards []Card, r Rules) []Group {
	var counts [Ace + 1]int
	for _, c := range cards {
		counts[c]++
	}

	var gs []Group
	for c := Two; c <= Ace; c++ {
		if counts[c] > 0 {
			gs = append(gs, Group{Card: c, Count: counts[c]})
		}
	}

	slices.SortFunc(gs, func(a, b Group) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return r.CompareCards(b.Card, a.Card)
	})
	return gs
}

// Compare returns -1 if h is weaker than other, 0 if equal, 1 if stronger.
// Ties within a category are broken card by card using h's rules.
func (h Hand) Compare(other Hand) int {
	if h.category != other.category {
		if h.category < other.category {
			return -1
		}
		return 1
	}
	_, cmp := h.firstDifference(other)
	return cmp
}

// Less reports whether h is weaker than other.
func (h Hand) Less(other Hand) bool { return h.Compare(other) < 0 }

// Equal reports whether h and other are equally strong.
func (h Hand) Equal(other Hand) bool { return h.Compare(other) == 0 }

func (h Hand) firstDifference(other Hand) (int, int) {
	for i := range h.cards {
		if cmp := h.rules.CompareCards(h.cards[i], other.cards[i]); cmp != 0 {
			return i, cmp
		}
	}
	return -1, 0
}

// CompareWithExplanation compares two hands and returns the result with an explanation
func (h Hand) CompareWithExplanation(other Hand) (int, string) {
	result := h.Compare(other)
	if result == 0 {
		return result, fmt.Sprintf("%s and %s tie", h, other)
	}

	winner, loser := h, other
	if result < 0 {
		winner, loser = other, h
	}

	explanation := fmt.Sprintf("%s beats %s", winner, loser)
	if winner.category != loser.category {
		return result, explanation + fmt.Sprintf(" (%s beats %s)", winner.category, loser.category)
	}

	pos, _ := winner.firstDifference(loser)
	return result, explanation + fmt.Sprintf(" with higher card at position %d (%s vs %s)",
		pos+1, winner.cards[pos], loser.cards[pos])
}
