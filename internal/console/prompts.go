package console

import (
	"github.com/pterm/pterm"
)

const (
	InputHit     = "hit"
	InputStay    = "stay"
	InputCashout = "cashout"
)

const (
	questionBuyIn    = "How much would you like to buy in for?"
	questionBet      = "Place your bet (or type '" + InputCashout + "' to leave the table)"
	questionDecision = "Do you want to " + InputHit + " or " + InputStay + "?"
)

// Prompter asks the player a question and blocks for the typed answer.
type Prompter interface {
	Ask(question string) (string, error)
}

type ptermPrompter struct{}

func (ptermPrompter) Ask(question string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(question).Show()
}
