package camel

import "fmt"

// Rules selects how hands are classified and how cards break ties.
// The zero value is the standard rule set.
type Rules struct {
	name     string
	wildcard Card
}

var (
	// Standard has no wildcard; J sits between T and Q.
	Standard = Rules{name: "standard"}

	// Jokers treats J as a wildcard for classification and as the
	// weakest card for tie-breaks.
	Jokers = Rules{name: "jokers", wildcard: Jack}
)

// RulesByName returns the rule set called name.
func RulesByName(name string) (Rules, error) {
	switch name {
	case "standard", "":
		return Standard, nil
	case "jokers":
		return Jokers, nil
	}
	return Rules{}, fmt.Errorf("unknown rules %q (want standard or jokers)", name)
}

// Name returns the rule set name.
func (r Rules) Name() string {
	if r.name == "" {
		return Standard.name
	}
	return r.name
}

func (r Rules) String() string { return r.Name() }

// Wildcard returns the wildcard rank, if the rules have one.
func (r Rules) Wildcard() (Card, bool) {
	return r.wildcard, r.wildcard.Valid()
}

// IsWild reports whether c is the wildcard under r.
func (r Rules) IsWild(c Card) bool {
	return r.wildcard.Valid() && c == r.wildcard
}

// Strength returns the tie-break value of c: 2..14, with the wildcard
// demoted to 1.
func (r Rules) Strength(c Card) int {
	if r.IsWild(c) {
		return 1
	}
	return int(c)
}

// CompareCards returns -1 if a is weaker than b, 0 if equal, 1 if stronger.
func (r Rules) CompareCards(a, b Card) int {
	sa, sb := r.Strength(a), r.Strength(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	}
	return 0
}
