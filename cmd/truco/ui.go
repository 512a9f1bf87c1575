package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"truco-lite/card"
	"truco-lite/truco"
)

// termDisplay renders engine events with pterm prefixes.
type termDisplay struct{}

func (termDisplay) Show(event truco.EventKind, payload any) {
	switch event {
	case truco.EventDealStarted:
		if p, ok := payload.(truco.PointsAward); ok {
			pterm.DefaultSection.Printfln("Deal %d", p.Points)
		}
	case truco.EventBetCalled:
		if b, ok := payload.(truco.BetAnnouncement); ok {
			pterm.Warning.Printfln("%s calls %s (worth %d)", b.Caller, strings.ToUpper(b.Bet), b.Stake)
		}
	case truco.EventBetAccepted:
		if b, ok := payload.(truco.BetAnnouncement); ok {
			pterm.Info.Printfln("%s accepts %s, stake is now %d", b.Caller, b.Bet, b.Stake)
		}
	case truco.EventBetDeclined:
		if b, ok := payload.(truco.BetAnnouncement); ok {
			pterm.Info.Printfln("%s declines %s and concedes %d", b.Caller, b.Bet, b.Stake)
		}
	case truco.EventEnvidoShowdown:
		if s, ok := payload.(truco.ShowdownInfo); ok {
			pterm.Info.Printfln("envido: %s %d vs %s %d", s.Player1, s.Points1, s.Player2, s.Points2)
			pterm.Success.Printfln("%s wins %d envido points", s.Winner, s.Stake)
		}
	case truco.EventFlorShowdown:
		if s, ok := payload.(truco.ShowdownInfo); ok {
			pterm.Info.Printfln("flor: %s %d vs %s %d", s.Player1, s.Points1, s.Player2, s.Points2)
			pterm.Success.Printfln("%s wins %d flor points", s.Winner, s.Stake)
		}
	case truco.EventTrickResolved:
		if p, ok := payload.(truco.PointsAward); ok {
			pterm.Info.Printfln("trick %d: %s", p.Points, p.Player)
		}
	case truco.EventPointsAwarded:
		if p, ok := payload.(truco.PointsAward); ok {
			pterm.Success.Printfln("%s +%d (%s)", p.Player, p.Points, p.Reason)
		}
	case truco.EventHandSettled:
		if p, ok := payload.(truco.PointsAward); ok {
			pterm.Success.Printfln("%s takes the hand, +%d", p.Player, p.Points)
		}
	case truco.EventFold:
		if p, ok := payload.(truco.PointsAward); ok {
			pterm.Warning.Printfln("%s goes to the deck, opponent +%d", p.Player, p.Points)
		}
	}
}

// termInput satisfies truco.InputSource with a pterm text prompt.
type termInput struct{}

func (termInput) Prompt(message string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(message).Show()
}

func renderScore(s truco.Snapshot) {
	rows := pterm.TableData{{"player", "score", "tricks", "mao"}}
	for _, p := range s.Players {
		mao := ""
		if p.Mao {
			mao = "*"
		}
		rows = append(rows, []string{p.Name, fmt.Sprintf("%d/%d", p.Score, s.TargetScore), fmt.Sprintf("%d", p.Tricks), mao})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func renderHand(name string, hand []card.Card) {
	labels := make([]string, len(hand))
	for i, c := range hand {
		labels[i] = c.String()
	}
	pterm.Info.Printfln("%s: %s", name, strings.Join(labels, " | "))
}

func cardLabels(hand []card.Card) []string {
	labels := make([]string, len(hand))
	for i, c := range hand {
		labels[i] = c.String()
	}
	return labels
}
