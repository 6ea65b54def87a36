package player

import (
	"errors"
	"fmt"
	"math"

	"blackjack/internal/game"

	"github.com/google/uuid"
)

var (
	ErrInvalidBuyIn      = errors.New("buy-in must be a positive amount")
	ErrInsufficientFunds = errors.New("bet exceeds balance")
	ErrCashedOut         = errors.New("player has cashed out")
	ErrBalanceLimit      = errors.New("a winning bet would overflow the balance")
)

// Player owns the balance for one sitting at the table. Balance only
// changes in Settle.
type Player struct {
	ID         string
	BuyIn      int
	Balance    int
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Busts      int
	LastBet    int
	CashedOut  bool
}

func New(buyIn int) (*Player, error) {
	if buyIn <= 0 || buyIn > game.MaxBet {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBuyIn, buyIn)
	}

	return &Player{
		ID:      uuid.NewString(),
		BuyIn:   buyIn,
		Balance: buyIn,
	}, nil
}

func (p *Player) ValidateBet(bet int) error {
	if p.CashedOut {
		return ErrCashedOut
	}
	if bet <= 0 || bet > game.MaxBet {
		return fmt.Errorf("%w: %d", game.ErrInvalidBet, bet)
	}
	if bet > p.Balance {
		return fmt.Errorf("%w: bet %d, balance %d", ErrInsufficientFunds, bet, p.Balance)
	}
	if p.Balance > math.MaxInt-game.BlackjackPayout(bet) {
		return fmt.Errorf("%w: bet %d, balance %d", ErrBalanceLimit, bet, p.Balance)
	}
	return nil
}

// Settle applies a finished round to the balance and the counters.
func (p *Player) Settle(res game.Result) {
	p.Balance += res.BalanceDelta
	p.LastBet = res.Bet
	p.Rounds++

	switch res.Outcome {
	case game.OutcomeWin:
		p.Wins++
	case game.OutcomeBlackjack:
		p.Wins++
		p.Blackjacks++
	case game.OutcomeLoss:
		p.Losses++
	case game.OutcomeBust:
		p.Losses++
		p.Busts++
	case game.OutcomePush:
		p.Pushes++
	}
}

func (p *Player) CanPlay() bool {
	return !p.CashedOut && p.Balance > 0
}

func (p *Player) Net() int {
	return p.Balance - p.BuyIn
}

func (p *Player) WinRate() float64 {
	if p.Rounds == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Rounds) * 100
}
