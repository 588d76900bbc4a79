// Package camel implements the camel cards hand model: cards, hand
// categories, classification under a rule set and hand ordering.
package camel

import "fmt"

// Card is a single card rank. The zero value is not a valid card.
type Card uint8

const (
	Two Card = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const cardChars = "23456789TJQKA"

// CardParseError reports a character outside the rank alphabet.
type CardParseError struct {
	Char rune
}

func (e *CardParseError) Error() string {
	return fmt.Sprintf("invalid card %q", e.Char)
}

// ParseCard parses a single rank character such as 'T' or '7'.
func ParseCard(r rune) (Card, error) {
	switch r {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Card(r-'0'), nil
	case 'T':
		return Ten, nil
	case 'J':
		return Jack, nil
	case 'Q':
		return Queen, nil
	case 'K':
		return King, nil
	case 'A':
		return Ace, nil
	}
	return 0, &CardParseError{Char: r}
}

// Valid reports whether c is one of the 13 ranks.
func (c Card) Valid() bool {
	return c >= Two && c <= Ace
}

// Byte returns the canonical character for c, or '?' for invalid cards.
func (c Card) Byte() byte {
	if !c.Valid() {
		return '?'
	}
	return cardChars[c-Two]
}

func (c Card) String() string {
	return string(c.Byte())
}
