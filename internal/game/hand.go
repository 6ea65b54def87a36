package game

// Hand only grows. HasDrawnAfterAce is set the first time its holder hits
// while already holding an Ace and stays set until the hand is discarded.
type Hand struct {
	Cards            []Card
	HasDrawnAfterAce bool
}

func NewHand() *Hand {
	return &Hand{
		Cards: make([]Card, 0, 10),
	}
}

func (h *Hand) Add(card Card) {
	h.Cards = append(h.Cards, card)
}

func (h *Hand) HasAce() bool {
	for _, card := range h.Cards {
		if card.Rank == Ace {
			return true
		}
	}
	return false
}

func (h *Hand) Score() int {
	return Score(h.Cards, h.HasDrawnAfterAce)
}

func (h *Hand) Len() int {
	return len(h.Cards)
}

// snapshot copies the cards so results do not alias the live hand.
func (h *Hand) snapshot() []Card {
	out := make([]Card, len(h.Cards))
	copy(out, h.Cards)
	return out
}
