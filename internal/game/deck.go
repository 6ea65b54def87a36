package game

import "math/rand/v2"

const (
	cardsPerDeck = 52
	decksInShoe  = 2
)

// Deck is consumed from its end and never refilled.
type Deck struct {
	cards []Card
}

// NewDoubleDeck builds two standard 52-card sets in a fixed order.
func NewDoubleDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, cardsPerDeck*decksInShoe),
	}

	for i := 0; i < decksInShoe; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
			}
		}
	}

	return d
}

// NewStackedDeck returns a deck whose draws yield drawOrder front to back.
func NewStackedDeck(drawOrder ...Card) *Deck {
	d := &Deck{
		cards: make([]Card, len(drawOrder)),
	}
	for i, card := range drawOrder {
		d.cards[len(drawOrder)-1-i] = card
	}
	return d
}

func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}
