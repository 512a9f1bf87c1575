package truco

import (
	"errors"
	"testing"

	"truco-lite/card"
)

func newTestGame(t *testing.T, oracle Oracle) *Game {
	t.Helper()
	p1 := NewPlayer(1, "p1", false)
	p2 := NewPlayer(2, "p2", true)
	g, err := NewGame(Config{TargetScore: 12, Seed: 7}, p1, p2, Deps{Oracle: oracle})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestStartDeal_DealsAndAlternatesMao(t *testing.T) {
	g := newTestGame(t, nil)

	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}
	if len(g.P1.Hand()) != 3 || len(g.P2.Hand()) != 3 {
		t.Fatalf("expected 3+3 cards, got %d and %d", len(g.P1.Hand()), len(g.P2.Hand()))
	}
	if !g.P1.Mao() || g.P2.Mao() {
		t.Fatalf("player 1 must be mão on the first deal")
	}
	if g.LeadID() != g.P1.ID {
		t.Fatalf("mão leads the first trick, lead %d", g.LeadID())
	}

	seen := map[byte]bool{}
	for _, c := range append(append([]byte{}, bytesOf(g.P1.Hand())...), bytesOf(g.P2.Hand())...) {
		if seen[c] {
			t.Fatalf("card dealt twice: %x", c)
		}
		seen[c] = true
	}

	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}
	if g.P1.Mao() || !g.P2.Mao() {
		t.Fatalf("mão must flip on the second deal")
	}
	if g.LeadID() != g.P2.ID {
		t.Fatalf("expected lead %d, got %d", g.P2.ID, g.LeadID())
	}
}

func TestRecordTrick_LeadFollowsWinnerAndSkipsTies(t *testing.T) {
	g := newTestGame(t, nil)
	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}

	if err := g.RecordTrick(TrickPlayer2); err != nil {
		t.Fatalf("RecordTrick: %v", err)
	}
	if g.LeadID() != g.P2.ID {
		t.Fatalf("trick winner must lead next, lead %d", g.LeadID())
	}
	if err := g.RecordTrick(TrickTie); err != nil {
		t.Fatalf("RecordTrick: %v", err)
	}
	if g.LeadID() != g.P2.ID {
		t.Fatalf("a parda must not move the lead, lead %d", g.LeadID())
	}
	if g.P1.Tricks() != 0 || g.P2.Tricks() != 1 {
		t.Fatalf("tie counts for neither side: %d/%d", g.P1.Tricks(), g.P2.Tricks())
	}
}

func TestHandWinner_PardaRules(t *testing.T) {
	cases := []struct {
		name   string
		tricks []TrickResult
		winner int // 0 = undecided
	}{
		{"two straight wins", []TrickResult{TrickPlayer1, TrickPlayer1}, 1},
		{"split after two", []TrickResult{TrickPlayer1, TrickPlayer2}, 0},
		{"split then third decisive", []TrickResult{TrickPlayer1, TrickPlayer2, TrickPlayer2}, 2},
		{"first parda second decisive", []TrickResult{TrickTie, TrickPlayer2}, 2},
		{"first decisive second parda", []TrickResult{TrickPlayer1, TrickTie}, 1},
		{"two pardas third decisive", []TrickResult{TrickTie, TrickTie, TrickPlayer2}, 2},
		{"split then third parda", []TrickResult{TrickPlayer2, TrickPlayer1, TrickTie}, 2},
		{"three pardas mao wins", []TrickResult{TrickTie, TrickTie, TrickTie}, 1},
		{"one trick undecided", []TrickResult{TrickPlayer1}, 0},
	}
	for _, tc := range cases {
		g := newTestGame(t, nil)
		if err := g.StartDeal(); err != nil {
			t.Fatalf("%s: StartDeal: %v", tc.name, err)
		}
		for _, r := range tc.tricks {
			if err := g.RecordTrick(r); err != nil {
				t.Fatalf("%s: RecordTrick: %v", tc.name, err)
			}
		}
		w := g.HandWinner()
		switch {
		case tc.winner == 0 && w != nil:
			t.Fatalf("%s: expected undecided, got %s", tc.name, w.Name)
		case tc.winner != 0 && (w == nil || w.ID != tc.winner):
			t.Fatalf("%s: expected winner %d, got %+v", tc.name, tc.winner, w)
		}
	}
}

func TestSettleHand_CreditsTrucoStake(t *testing.T) {
	oracle := &scriptOracle{t: t, script: []int{DecisionAccept}}
	g := newTestGame(t, oracle)
	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}

	if out, err := g.Truco().Request(TrucoTruco, g.P1, g.P2); err != nil || out != OutcomeAccepted {
		t.Fatalf("truco request: out %d err %v", out, err)
	}
	if err := g.RecordTrick(TrickPlayer1); err != nil {
		t.Fatalf("RecordTrick: %v", err)
	}
	if err := g.RecordTrick(TrickPlayer1); err != nil {
		t.Fatalf("RecordTrick: %v", err)
	}

	w, err := g.SettleHand()
	if err != nil {
		t.Fatalf("SettleHand: %v", err)
	}
	if w.ID != g.P1.ID || g.P1.Score() != 2 {
		t.Fatalf("expected player 1 +2, got winner %d score %d", w.ID, g.P1.Score())
	}
}

func TestSettleHand_UndecidedIsInvalidState(t *testing.T) {
	g := newTestGame(t, nil)
	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}
	_, err := g.SettleHand()
	var ise InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidStateError, got %v", err)
	}
}

func TestFold_CreditsOpponentTheCurrentStake(t *testing.T) {
	oracle := &scriptOracle{t: t, script: []int{DecisionRaise, DecisionAccept}}
	g := newTestGame(t, oracle)
	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}
	g.P2.Robot = true
	g.P1.Robot = true
	if out, err := g.Truco().Request(TrucoTruco, g.P1, g.P2); err != nil || out != OutcomeAccepted {
		t.Fatalf("truco request: out %d err %v", out, err)
	}
	// Retruco accepted: folding now concedes 3.
	w, err := g.Fold(g.P1.ID)
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if w.ID != g.P2.ID || g.P2.Score() != 3 {
		t.Fatalf("expected player 2 +3 on fold, got winner %d score %d", w.ID, g.P2.Score())
	}
}

func TestMatchWinner_BlocksFurtherDeals(t *testing.T) {
	g := newTestGame(t, nil)
	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}
	g.P2.Credit(12)
	if w := g.MatchWinner(); w == nil || w.ID != g.P2.ID {
		t.Fatalf("expected player 2 as match winner, got %+v", w)
	}
	if err := g.StartDeal(); !errors.Is(err, ErrMatchOver) {
		t.Fatalf("expected ErrMatchOver, got %v", err)
	}
}

func TestSnapshot_ProjectsEngineState(t *testing.T) {
	oracle := &scriptOracle{t: t, script: []int{DecisionAccept}}
	g := newTestGame(t, oracle)
	if err := g.StartDeal(); err != nil {
		t.Fatalf("StartDeal: %v", err)
	}
	if out, err := g.Truco().Request(TrucoTruco, g.P1, g.P2); err != nil || out != OutcomeAccepted {
		t.Fatalf("truco request: out %d err %v", out, err)
	}
	if err := g.RecordTrick(TrickTie); err != nil {
		t.Fatalf("RecordTrick: %v", err)
	}

	s := g.Snapshot()
	if s.TrucoStage != TrucoTruco || s.TrucoStake != 2 {
		t.Fatalf("snapshot truco state wrong: %+v", s)
	}
	if len(s.Tricks) != 1 || s.Tricks[0] != TrickTie {
		t.Fatalf("snapshot tricks wrong: %+v", s.Tricks)
	}
	if len(s.Players) != 2 || len(s.Players[0].Hand) != 3 {
		t.Fatalf("snapshot players wrong: %+v", s.Players)
	}
	if s.ActiveBet != BetNone {
		t.Fatalf("no negotiation should be pending, got %d", s.ActiveBet)
	}
}

func bytesOf(cards []card.Card) []byte {
	out := make([]byte, len(cards))
	for i, c := range cards {
		out[i] = byte(c)
	}
	return out
}
