package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cards(ranks ...Rank) []Card {
	out := make([]Card, len(ranks))
	for i, r := range ranks {
		out[i] = Card{Rank: r, Suit: Suits[i%len(Suits)]}
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		soft int
		hard int
	}{
		{name: "empty hand", hand: nil, soft: 0, hard: 0},
		{name: "no aces", hand: cards(Seven, Nine, Two), soft: 18, hard: 18},
		{name: "face cards", hand: cards(King, Queen), soft: 20, hard: 20},
		{name: "ace and ten", hand: cards(Ace, Ten), soft: 21, hard: 11},
		{name: "ace and jack", hand: cards(Jack, Ace), soft: 21, hard: 11},
		{name: "two aces", hand: cards(Ace, Ace), soft: 12, hard: 2},
		{name: "four aces", hand: cards(Ace, Ace, Ace, Ace), soft: 14, hard: 4},
		{name: "ace drops on bust", hand: cards(Ace, Nine, Five), soft: 15, hard: 15},
		{name: "bust without aces", hand: cards(King, Queen, Five), soft: 25, hard: 25},
		{name: "ace cannot save hand", hand: cards(Ace, King, Queen, Five), soft: 26, hard: 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.soft, Score(tt.hand, false), "soft")
			assert.Equal(t, tt.hard, Score(tt.hand, true), "hard")
		})
	}
}

func TestScoreWithoutAcesIgnoresMode(t *testing.T) {
	for _, a := range Ranks[:len(Ranks)-1] {
		for _, b := range Ranks[:len(Ranks)-1] {
			hand := cards(a, b)
			sum := a.Value() + b.Value()
			assert.Equal(t, sum, Score(hand, false))
			assert.Equal(t, sum, Score(hand, true))
		}
	}
}

func TestScoreIsPure(t *testing.T) {
	hand := cards(Ace, Six, Ace)
	first := Score(hand, false)
	assert.Equal(t, first, Score(hand, false))
	assert.Equal(t, cards(Ace, Six, Ace), hand)
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, IsBlackjack(cards(Ace, Queen)))
	assert.True(t, IsBlackjack(cards(Ten, Ace)))
	assert.False(t, IsBlackjack(cards(Ace, Nine)))
	assert.False(t, IsBlackjack(cards(Seven, Seven, Seven)))
	assert.False(t, IsBlackjack(cards(Ace)))
}

func TestHandHardModeAfterFlag(t *testing.T) {
	h := NewHand()
	h.Add(Card{Rank: Ace, Suit: Spades})
	h.Add(Card{Rank: Five, Suit: Hearts})
	assert.True(t, h.HasAce())
	assert.Equal(t, 16, h.Score())

	h.HasDrawnAfterAce = true
	assert.Equal(t, 6, h.Score())
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "10♦", Card{Rank: Ten, Suit: Diamonds}.String())
	assert.Equal(t, "Queen of Hearts", Card{Rank: Queen, Suit: Hearts}.Name())
	assert.Equal(t, "7 of Clubs", Card{Rank: Seven, Suit: Clubs}.Name())
}
