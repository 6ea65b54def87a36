// Package session runs consecutive rounds for one player, carrying the
// balance from one settlement to the next.
package session

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"blackjack/internal/game"
	"blackjack/internal/player"
)

type Option func(*Controller)

// WithRand shuffles every deck with r.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = r
	}
}

// WithSeed makes the shuffles of the whole session reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithDeckFunc replaces the fresh shuffled double deck dealt each round.
func WithDeckFunc(fn func() *game.Deck) Option {
	return func(c *Controller) {
		c.newDeck = fn
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

type Summary struct {
	Player *player.Player
	Stats  player.Stats
	Best   []player.RoundRecord
}

// Controller is the session loop's state. Rounds run strictly one after another.
type Controller struct {
	player  *player.Player
	rounds  player.Repository
	rng     *rand.Rand
	newDeck func() *game.Deck
	log     *slog.Logger
}

func New(p *player.Player, repo player.Repository, opts ...Option) *Controller {
	c := &Controller{
		player: p,
		rounds: repo,
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(entropy(), entropy()))
	}
	if c.newDeck == nil {
		c.newDeck = c.shuffledDeck
	}

	c.log = c.log.With("session", p.ID)
	return c
}

func entropy() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

func (c *Controller) shuffledDeck() *game.Deck {
	d := game.NewDoubleDeck()
	d.Shuffle(c.rng)
	return d
}

func (c *Controller) Player() *player.Player {
	return c.player
}

func (c *Controller) Balance() int {
	return c.player.Balance
}

// Active reports whether another round may be played.
func (c *Controller) Active() bool {
	return c.player.CanPlay()
}

// PlayRound deals a new round on a fresh deck and settles it against the
// balance. A round that fails before settlement leaves the balance alone.
func (c *Controller) PlayRound(bet int, d game.Decider) (game.Result, error) {
	if err := c.player.ValidateBet(bet); err != nil {
		return game.Result{}, err
	}

	round, err := game.NewRound(c.newDeck(), bet)
	if err != nil {
		return game.Result{}, fmt.Errorf("start round: %w", err)
	}

	res, err := round.Play(d)
	if err != nil {
		return game.Result{}, fmt.Errorf("play round: %w", err)
	}

	c.player.Settle(res)

	c.log.Debug("round settled",
		"round", c.player.Rounds,
		"bet", res.Bet,
		"outcome", res.Outcome.String(),
		"delta", res.BalanceDelta,
		"balance", c.player.Balance,
	)

	if err := c.rounds.RecordRound(c.player, res); err != nil {
		c.log.Error("failed to record round", "round", c.player.Rounds, "error", err)
	}

	return res, nil
}

// CashOut ends the session and summarizes it from the ledger.
func (c *Controller) CashOut() (Summary, error) {
	c.player.CashedOut = true
	summary := Summary{Player: c.player}

	stats, err := c.rounds.Summary(c.player.ID)
	if err != nil {
		return summary, fmt.Errorf("summarize session: %w", err)
	}
	summary.Stats = stats

	best, err := c.rounds.BestRounds(c.player.ID, 3)
	if err != nil {
		return summary, fmt.Errorf("best rounds: %w", err)
	}
	summary.Best = best

	c.log.Info("cashed out", "balance", c.player.Balance, "net", c.player.Net(), "rounds", stats.Rounds)
	return summary, nil
}
