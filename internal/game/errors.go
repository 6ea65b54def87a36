package game

import "errors"

var (
	ErrEmptyDeck       = errors.New("deck is empty")
	ErrInvalidDecision = errors.New("decision must be hit or stand")
	ErrInvalidBet      = errors.New("bet must be positive and within the table limit")
	ErrNotPlayerTurn   = errors.New("not the player's turn")
	ErrRoundSettled    = errors.New("round is already settled")
)
