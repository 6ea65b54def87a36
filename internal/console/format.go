package console

import (
	"fmt"
	"strconv"
	"strings"

	"blackjack/internal/game"
	"blackjack/internal/player"

	"github.com/pterm/pterm"
)

func formatHand(cards []game.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.Name()
	}
	return strings.Join(parts, ", ")
}

func formatOpening(v game.View) string {
	return fmt.Sprintf("Dealer: %s and a hidden card (total %d)\nYou:    %s (total %d)",
		v.DealerUpCard.Name(), v.DealerUpCard.Value(),
		formatHand(v.PlayerCards), v.PlayerTotal)
}

func formatFinal(res game.Result) string {
	return pterm.DefaultBox.WithTitle("Final totals").Sprint(
		fmt.Sprintf("You:    %s (%d)\nDealer: %s (%d)",
			formatHand(res.PlayerCards), res.PlayerTotal,
			formatHand(res.DealerCards), res.DealerTotal))
}

func formatSummary(s player.Stats) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Rounds", "Wins", "Losses", "Pushes", "Blackjacks", "Busts", "Wagered", "Net", "Win rate"},
		{
			strconv.Itoa(s.Rounds),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Pushes),
			strconv.Itoa(s.Blackjacks),
			strconv.Itoa(s.Busts),
			strconv.Itoa(s.Wagered),
			fmt.Sprintf("%+d", s.Net),
			fmt.Sprintf("%.1f%%", s.WinRate),
		},
	}).Srender()
}

func formatBestRounds(records []player.RoundRecord) (string, error) {
	data := pterm.TableData{{"Round", "Outcome", "Bet", "Won", "Your hand", "Dealer"}}
	for _, r := range records {
		data = append(data, []string{
			strconv.Itoa(r.RoundNo),
			r.Outcome,
			strconv.Itoa(r.Bet),
			fmt.Sprintf("+%d", r.BalanceDelta),
			fmt.Sprintf("%s (%d)", r.PlayerCards, r.PlayerTotal),
			fmt.Sprintf("%s (%d)", r.DealerCards, r.DealerTotal),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
