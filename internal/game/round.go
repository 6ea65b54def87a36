package game

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// BlackjackPays is the multiplier applied to the bet on a natural.
const BlackjackPays = 2.5

// MaxBet keeps a blackjack payout and the balance it lands on inside int.
const MaxBet = math.MaxInt / 4

type Phase int

const (
	PhaseDealt Phase = iota
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseDealt:
		return "dealt"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseDealerTurn:
		return "dealer_turn"
	case PhaseSettled:
		return "settled"
	}
	return "unknown"
}

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomePush
	OutcomeBlackjack
	OutcomeBust
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomePush:
		return "push"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeBust:
		return "bust"
	}
	return "none"
}

type Decision string

const (
	Hit   Decision = "hit"
	Stand Decision = "stand"
)

// ParseDecision accepts "hit", "stand" and the "stay" spelling, in any case.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit":
		return Hit, nil
	case "stand", "stay":
		return Stand, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidDecision, s)
}

// View is what a Decider gets to see; the dealer's hidden card is not drawn yet.
type View struct {
	PlayerCards  []Card
	PlayerTotal  int
	DealerUpCard Card
	Bet          int
}

// Decider blocks until the player picks a move. Returning ErrInvalidDecision
// makes the round ask again.
type Decider interface {
	Decide(v View) (Decision, error)
}

type DeciderFunc func(v View) (Decision, error)

func (f DeciderFunc) Decide(v View) (Decision, error) {
	return f(v)
}

type Result struct {
	Outcome      Outcome
	Bet          int
	BalanceDelta int
	PlayerCards  []Card
	DealerCards  []Card
	PlayerTotal  int
	DealerTotal  int
}

// Round is one bet played against the dealer on a deck it owns until settlement.
type Round struct {
	deck    *Deck
	bet     int
	phase   Phase
	outcome Outcome

	player *Hand
	dealer *Hand

	// last computed totals; settlement compares these
	playerTotal int
	dealerTotal int
}

// NewRound deals one card to the player and one to the dealer. A natural
// settles the round before any decision is taken.
func NewRound(deck *Deck, bet int) (*Round, error) {
	if bet <= 0 || bet > MaxBet {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBet, bet)
	}

	r := &Round{
		deck:   deck,
		bet:    bet,
		phase:  PhaseDealt,
		player: NewHand(),
		dealer: NewHand(),
	}

	for _, hand := range []*Hand{r.player, r.dealer} {
		card, err := deck.Draw()
		if err != nil {
			return nil, fmt.Errorf("deal: %w", err)
		}
		hand.Add(card)
	}

	r.playerTotal = r.player.Score()
	r.dealerTotal = r.dealer.Score()
	r.phase = PhasePlayerTurn

	if r.player.Len() == 2 && r.playerTotal == Target {
		r.settle(OutcomeBlackjack)
	}

	return r, nil
}

func (r *Round) checkPlayerTurn() error {
	switch r.phase {
	case PhasePlayerTurn:
		return nil
	case PhaseSettled:
		return ErrRoundSettled
	}
	return fmt.Errorf("%w: round is in %s", ErrNotPlayerTurn, r.phase)
}

// Hit draws one card for the player. The hit that first lands on a hand
// already holding an Ace is scored soft; every later hit is scored hard.
func (r *Round) Hit() (Card, error) {
	if err := r.checkPlayerTurn(); err != nil {
		return Card{}, err
	}

	heldAce := r.player.HasAce()

	card, err := r.deck.Draw()
	if err != nil {
		return Card{}, fmt.Errorf("hit: %w", err)
	}
	r.player.Add(card)
	r.playerTotal = r.player.Score()

	if heldAce {
		r.player.HasDrawnAfterAce = true
	}

	switch {
	case IsBust(r.playerTotal):
		r.settle(OutcomeBust)
	case r.playerTotal == Target:
		r.endPlayerTurn()
	}

	return card, nil
}

func (r *Round) Stand() error {
	if err := r.checkPlayerTurn(); err != nil {
		return err
	}
	r.endPlayerTurn()
	return nil
}

func (r *Round) Apply(d Decision) error {
	switch d {
	case Hit:
		_, err := r.Hit()
		return err
	case Stand:
		return r.Stand()
	}
	return fmt.Errorf("%w: got %q", ErrInvalidDecision, string(d))
}

func (r *Round) endPlayerTurn() {
	if r.player.Len() == 2 && r.playerTotal == Target {
		r.settle(OutcomeBlackjack)
		return
	}
	r.phase = PhaseDealerTurn
}

// PlayDealer reveals the dealer's hand and draws while it totals under 17.
func (r *Round) PlayDealer() error {
	if r.phase != PhaseDealerTurn {
		return fmt.Errorf("dealer cannot play in %s", r.phase)
	}

	r.dealerTotal = r.dealer.Score()
	for r.dealerTotal < DealerStandsOn {
		card, err := r.deck.Draw()
		if err != nil {
			return fmt.Errorf("dealer draw: %w", err)
		}
		r.dealer.Add(card)
		r.dealerTotal = r.dealer.Score()
	}

	switch {
	case IsBust(r.dealerTotal):
		r.settle(OutcomeWin)
	case r.playerTotal > r.dealerTotal:
		r.settle(OutcomeWin)
	case r.playerTotal < r.dealerTotal:
		r.settle(OutcomeLoss)
	default:
		r.settle(OutcomePush)
	}
	return nil
}

func (r *Round) settle(o Outcome) {
	r.outcome = o
	r.phase = PhaseSettled
}

// Play drives the round to settlement, asking d for every player decision.
func (r *Round) Play(d Decider) (Result, error) {
	for r.phase == PhasePlayerTurn {
		decision, err := d.Decide(r.View())
		if err == nil {
			err = r.Apply(decision)
		}
		if errors.Is(err, ErrInvalidDecision) {
			continue
		}
		if err != nil {
			return Result{}, err
		}
	}

	if r.phase == PhaseDealerTurn {
		if err := r.PlayDealer(); err != nil {
			return Result{}, err
		}
	}

	return r.Result()
}

func (r *Round) Result() (Result, error) {
	if r.phase != PhaseSettled {
		return Result{}, fmt.Errorf("round is in %s", r.phase)
	}

	res := Result{
		Outcome:     r.outcome,
		Bet:         r.bet,
		PlayerCards: r.player.snapshot(),
		DealerCards: r.dealer.snapshot(),
		PlayerTotal: r.playerTotal,
		DealerTotal: r.dealerTotal,
	}

	switch r.outcome {
	case OutcomeBlackjack:
		res.BalanceDelta = BlackjackPayout(r.bet)
	case OutcomeWin:
		res.BalanceDelta = r.bet
	case OutcomeLoss, OutcomeBust:
		res.BalanceDelta = -r.bet
	}

	return res, nil
}

// BlackjackPayout is floor(2.5 * bet) in integer arithmetic.
func BlackjackPayout(bet int) int {
	return bet*2 + bet/2
}

func (r *Round) View() View {
	return View{
		PlayerCards:  r.player.snapshot(),
		PlayerTotal:  r.playerTotal,
		DealerUpCard: r.dealer.Cards[0],
		Bet:          r.bet,
	}
}

func (r *Round) Phase() Phase {
	return r.phase
}

func (r *Round) Bet() int {
	return r.bet
}

func (r *Round) PlayerCards() []Card {
	return r.player.snapshot()
}

func (r *Round) DealerCards() []Card {
	return r.dealer.snapshot()
}

func (r *Round) PlayerTotal() int {
	return r.playerTotal
}

func (r *Round) DealerTotal() int {
	return r.dealerTotal
}
