package player

import (
	"testing"

	"blackjack/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New(100)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Balance)
	assert.Equal(t, 100, p.BuyIn)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.CanPlay())

	_, err = New(0)
	assert.ErrorIs(t, err, ErrInvalidBuyIn)
	_, err = New(-5)
	assert.ErrorIs(t, err, ErrInvalidBuyIn)
	_, err = New(game.MaxBet + 1)
	assert.ErrorIs(t, err, ErrInvalidBuyIn)

	p, err = New(game.MaxBet)
	require.NoError(t, err)
	assert.NoError(t, p.ValidateBet(game.MaxBet))
}

func TestValidateBet(t *testing.T) {
	p, err := New(50)
	require.NoError(t, err)

	assert.NoError(t, p.ValidateBet(1))
	assert.NoError(t, p.ValidateBet(50))
	assert.ErrorIs(t, p.ValidateBet(0), game.ErrInvalidBet)
	assert.ErrorIs(t, p.ValidateBet(-1), game.ErrInvalidBet)
	assert.ErrorIs(t, p.ValidateBet(51), ErrInsufficientFunds)

	p.CashedOut = true
	assert.ErrorIs(t, p.ValidateBet(10), ErrCashedOut)
	assert.False(t, p.CanPlay())
}

func TestValidateBetKeepsPayoutInRange(t *testing.T) {
	p, err := New(game.MaxBet)
	require.NoError(t, err)

	// grow the balance through wins until a blackjack on a large bet would wrap
	p.Settle(game.Result{Outcome: game.OutcomeWin, Bet: game.MaxBet, BalanceDelta: game.MaxBet})
	p.Settle(game.Result{Outcome: game.OutcomeWin, Bet: game.MaxBet, BalanceDelta: game.MaxBet})
	require.Equal(t, 3*game.MaxBet, p.Balance)

	assert.ErrorIs(t, p.ValidateBet(game.MaxBet), ErrBalanceLimit)
	assert.ErrorIs(t, p.ValidateBet(game.MaxBet+1), game.ErrInvalidBet)
	assert.NoError(t, p.ValidateBet(1000))

	p.Settle(game.Result{Outcome: game.OutcomeBlackjack, Bet: 1000, BalanceDelta: game.BlackjackPayout(1000)})
	assert.Positive(t, p.Balance)
}

func TestSettle(t *testing.T) {
	p, err := New(100)
	require.NoError(t, err)

	p.Settle(game.Result{Outcome: game.OutcomeBlackjack, Bet: 10, BalanceDelta: 25})
	p.Settle(game.Result{Outcome: game.OutcomeWin, Bet: 20, BalanceDelta: 20})
	p.Settle(game.Result{Outcome: game.OutcomeBust, Bet: 30, BalanceDelta: -30})
	p.Settle(game.Result{Outcome: game.OutcomeLoss, Bet: 5, BalanceDelta: -5})
	p.Settle(game.Result{Outcome: game.OutcomePush, Bet: 40})

	assert.Equal(t, 110, p.Balance)
	assert.Equal(t, 10, p.Net())
	assert.Equal(t, 5, p.Rounds)
	assert.Equal(t, 2, p.Wins)
	assert.Equal(t, 1, p.Blackjacks)
	assert.Equal(t, 2, p.Losses)
	assert.Equal(t, 1, p.Busts)
	assert.Equal(t, 1, p.Pushes)
	assert.Equal(t, 40, p.LastBet)
	assert.InDelta(t, 40.0, p.WinRate(), 0.001)
}

func TestCanPlayStopsAtZero(t *testing.T) {
	p, err := New(10)
	require.NoError(t, err)

	p.Settle(game.Result{Outcome: game.OutcomeLoss, Bet: 10, BalanceDelta: -10})
	assert.Equal(t, 0, p.Balance)
	assert.False(t, p.CanPlay())
}
