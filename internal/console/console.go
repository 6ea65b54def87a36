// Package console is the terminal front end: it reads buy-in, bets and
// hit/stay answers and prints what happened at the table.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"blackjack/internal/config"
	"blackjack/internal/player"
	"blackjack/internal/session"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

type Console struct {
	cfg         *config.Config
	rounds      player.Repository
	prompt      Prompter
	out         io.Writer
	log         *slog.Logger
	sessionOpts []session.Option
}

func New(cfg *config.Config, repo player.Repository, log *slog.Logger) *Console {
	opts := []session.Option{session.WithLogger(log)}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Seed))
	}

	return &Console{
		cfg:         cfg,
		rounds:      repo,
		prompt:      ptermPrompter{},
		out:         os.Stdout,
		log:         log,
		sessionOpts: opts,
	}
}

// Run plays one sitting: buy-in, rounds until cash-out or an empty balance,
// then the summary.
func (c *Console) Run() error {
	c.banner()

	p, err := c.askBuyIn()
	if err != nil {
		return err
	}

	ctrl := session.New(p, c.rounds, c.sessionOpts...)

	for ctrl.Active() {
		c.info("Your balance is %d.", ctrl.Balance())

		bet, cashout, err := c.askBet(p)
		if err != nil {
			return err
		}
		if cashout {
			break
		}

		if err := c.playRound(ctrl, bet); err != nil {
			return err
		}
	}

	if p.Balance <= 0 {
		c.warn("You're out of money.")
	}

	summary, err := ctrl.CashOut()
	if err != nil {
		c.log.Error("failed to build session summary", "error", err)
	}
	c.renderCashOut(summary)
	return nil
}

func (c *Console) banner() {
	if text, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgDarkGray.ToStyle()),
	).Srender(); err == nil {
		pterm.Fprint(c.out, text)
	}
	c.info("Welcome to Blackjack! I am %s, your dealer for today.", c.cfg.DealerName)
}

func (c *Console) print(s string) {
	pterm.Fprint(c.out, s)
}

func (c *Console) info(format string, a ...any) {
	c.print(pterm.Info.Sprintfln(format, a...))
}

func (c *Console) success(format string, a ...any) {
	c.print(pterm.Success.Sprintfln(format, a...))
}

func (c *Console) warn(format string, a ...any) {
	c.print(pterm.Warning.Sprintfln(format, a...))
}

func (c *Console) fail(format string, a ...any) {
	c.print(pterm.Error.Sprintfln(format, a...))
}

func (c *Console) ask(question string) (string, error) {
	answer, err := c.prompt.Ask(question)
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return answer, nil
}
