package camel

// Category is the strength tier of a hand, weakest first.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Categories lists every category from weakest to strongest.
var Categories = []Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, FullHouse, FourOfAKind, FiveOfAKind,
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}

// categoryForShape maps descending group sizes to a category.
func categoryForShape(shape []int) Category {
	switch {
	case len(shape) == 1:
		return FiveOfAKind
	case len(shape) == 2 && shape[0] == 4:
		return FourOfAKind
	case len(shape) == 2 && shape[0] == 3:
		return FullHouse
	case len(shape) == 3 && shape[0] == 3:
		return ThreeOfAKind
	case len(shape) == 3 && shape[0] == 2:
		return TwoPair
	case len(shape) == 4:
		return OnePair
	default:
		return HighCard
	}
}
