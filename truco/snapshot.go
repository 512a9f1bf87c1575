package truco

import "truco-lite/card"

type PlayerSnapshot struct {
	ID           int
	Name         string
	Robot        bool
	Score        int
	Tricks       int
	Mao          bool
	EnvidoPoints int
	HasFlor      bool
	Hand         []card.Card
}

type Snapshot struct {
	DealNumber  int
	LeadID      int
	TargetScore int

	TrucoStage TrucoStage
	TrucoStake int
	EnvidoKind EnvidoKind
	FlorStage  FlorStage
	ActiveBet  BetKind

	Tricks  []TrickResult
	Players []PlayerSnapshot
}

// Snapshot projects the mutable match state into plain values; the UI
// renders from this and never touches the engines directly.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		DealNumber:  g.dealNo,
		LeadID:      g.leadID,
		TargetScore: g.cfg.TargetScore,
		TrucoStage:  g.truco.Stage(),
		TrucoStake:  g.truco.Stake(),
		EnvidoKind:  g.envido.Current(),
		FlorStage:   g.flor.Stage(),
		ActiveBet:   g.arbiter.Active(),
		Tricks:      append([]TrickResult{}, g.tricks...),
	}
	for _, p := range []*Player{g.P1, g.P2} {
		s.Players = append(s.Players, PlayerSnapshot{
			ID:           p.ID,
			Name:         p.Name,
			Robot:        p.Robot,
			Score:        p.score,
			Tricks:       p.tricks,
			Mao:          p.mao,
			EnvidoPoints: p.envidoPoints,
			HasFlor:      p.hasFlor,
			Hand:         append([]card.Card{}, p.hand...),
		})
	}
	return s
}
