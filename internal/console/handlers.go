package console

import (
	"errors"
	"strconv"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/player"
	"blackjack/internal/session"
)

func (c *Console) askBuyIn() (*player.Player, error) {
	for {
		answer, err := c.ask(questionBuyIn)
		if err != nil {
			return nil, err
		}

		amount, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			c.warn("Please buy in with a whole number.")
			continue
		}

		p, err := player.New(amount)
		if errors.Is(err, player.ErrInvalidBuyIn) {
			c.warn("A buy-in has to be more than zero and at most %d.", game.MaxBet)
			continue
		}
		return p, err
	}
}

// askBet keeps asking until the answer is a bet the balance covers or the
// player cashes out.
func (c *Console) askBet(p *player.Player) (int, bool, error) {
	for {
		answer, err := c.ask(questionBet)
		if err != nil {
			return 0, false, err
		}
		answer = strings.TrimSpace(answer)

		if strings.EqualFold(answer, InputCashout) {
			return 0, true, nil
		}

		bet, err := strconv.Atoi(answer)
		if err != nil {
			c.warn("Invalid bet, enter a whole number.")
			continue
		}

		err = p.ValidateBet(bet)
		switch {
		case errors.Is(err, player.ErrBalanceLimit):
			c.warn("The house can't cover a win on that bet. Try a smaller one.")
			continue
		case err != nil:
			c.warn("Bet must be a positive number not exceeding your balance of %d.", p.Balance)
			continue
		}
		return bet, false, nil
	}
}

func (c *Console) playRound(ctrl *session.Controller, bet int) error {
	t := &turn{c: c}

	res, err := ctrl.PlayRound(bet, t)
	if err != nil {
		return err
	}

	c.renderResult(t, res)
	c.info("Round over. Your balance is %d.", ctrl.Balance())
	return nil
}

// turn is the hit/stay decision source for one round. It remembers how many
// player cards were already shown so each new card is announced once.
type turn struct {
	c    *Console
	seen int
}

func (t *turn) Decide(v game.View) (game.Decision, error) {
	t.show(v)

	answer, err := t.c.ask(questionDecision)
	if err != nil {
		return "", err
	}

	d, err := game.ParseDecision(answer)
	if err != nil {
		t.c.warn("Please choose either '%s' or '%s'.", InputHit, InputStay)
		return "", err
	}
	return d, nil
}

func (t *turn) show(v game.View) {
	switch {
	case t.seen == 0:
		t.c.print(formatOpening(v) + "\n")
	case len(v.PlayerCards) > t.seen:
		t.c.announce(v.PlayerCards[t.seen:], v.PlayerCards, v.PlayerTotal)
	}
	t.seen = len(v.PlayerCards)
}

func (c *Console) announce(dealt, hand []game.Card, total int) {
	for _, card := range dealt {
		c.info("You were dealt %s.", card.Name())
	}
	c.info("Your hand: %s (total %d)", formatHand(hand), total)
}

func (c *Console) renderResult(t *turn, res game.Result) {
	if t.seen > 0 && len(res.PlayerCards) > t.seen {
		c.announce(res.PlayerCards[t.seen:], res.PlayerCards, res.PlayerTotal)
	}

	switch res.Outcome {
	case game.OutcomeBust:
		c.fail("Bust! You went over %d and lose your bet of %d.", game.Target, res.Bet)
		return
	case game.OutcomeBlackjack:
		c.success("Blackjack! You win %d (%.1fx your bet).", res.BalanceDelta, game.BlackjackPays)
		return
	}

	if res.PlayerTotal == game.Target {
		c.success("You hit %d!", game.Target)
	}

	c.info("Dealer's turn. Starting hand: %s (total %d)",
		res.DealerCards[0].Name(), res.DealerCards[0].Value())
	for i := 1; i < len(res.DealerCards); i++ {
		c.info("Dealer draws %s (total %d)",
			res.DealerCards[i].Name(), game.Score(res.DealerCards[:i+1], false))
	}

	c.print(formatFinal(res) + "\n")

	switch {
	case res.Outcome == game.OutcomeWin && game.IsBust(res.DealerTotal):
		c.success("Dealer busts! You win %d.", res.BalanceDelta)
	case res.Outcome == game.OutcomeWin:
		c.success("You win %d!", res.BalanceDelta)
	case res.Outcome == game.OutcomeLoss:
		c.fail("Dealer wins. You lose %d.", -res.BalanceDelta)
	case res.Outcome == game.OutcomePush:
		c.info("Push. Your bet is returned.")
	}
}

func (c *Console) renderCashOut(s session.Summary) {
	c.success("Your cash out is %d. It was a pleasure dealing for you, come back soon!", s.Player.Balance)

	if s.Stats.Rounds == 0 {
		return
	}
	c.info("Your last bet was %d.", s.Player.LastBet)

	table, err := formatSummary(s.Stats)
	if err != nil {
		c.log.Error("failed to render summary", "error", err)
		return
	}
	c.print(table + "\n")

	if len(s.Best) == 0 {
		return
	}
	best, err := formatBestRounds(s.Best)
	if err != nil {
		c.log.Error("failed to render best rounds", "error", err)
		return
	}
	c.info("Best rounds")
	c.print(best + "\n")
}
