package game

const (
	Target         = 21
	DealerStandsOn = 17
)

// Score totals the cards with every Ace at 11, then brings Aces down to 1.
// Soft mode lowers one Ace at a time while the hand is over 21; with
// aceCountedLow every Ace is lowered whether or not the hand needs it.
func Score(cards []Card, aceCountedLow bool) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += card.Value()
		if card.Rank == Ace {
			aces++
		}
	}

	if aceCountedLow {
		return score - aces*10
	}

	for score > Target && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func IsBlackjack(cards []Card) bool {
	return len(cards) == 2 && Score(cards, false) == Target
}

func IsBust(total int) bool {
	return total > Target
}
