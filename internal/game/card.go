package game

import "fmt"

type Rank int

const (
	Two Rank = iota + 2
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

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var rankLongNames = map[Rank]string{
	Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("%d", int(r))
}

// Value is the rank's count with an Ace at 11.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	}
	return "Unknown"
}

type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) Value() int {
	return c.Rank.Value()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name renders the card as "Ace of Spades".
func (c Card) Name() string {
	rank, ok := rankLongNames[c.Rank]
	if !ok {
		rank = c.Rank.String()
	}
	return rank + " of " + c.Suit.Name()
}
