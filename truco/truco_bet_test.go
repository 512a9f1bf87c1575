package truco

import (
	"errors"
	"testing"
)

// scriptOracle replays a fixed decision sequence and records every query
// it was asked.
type scriptOracle struct {
	t       *testing.T
	script  []int
	queries []OracleQuery
}

func (o *scriptOracle) Decide(q OracleQuery) (int, error) {
	o.queries = append(o.queries, q)
	if len(o.script) == 0 {
		o.t.Fatalf("oracle queried with empty script: %+v", q)
	}
	dec := o.script[0]
	o.script = o.script[1:]
	return dec, nil
}

// scriptInput replays fixed human answers.
type scriptInput struct {
	t       *testing.T
	answers []string
}

func (s *scriptInput) Prompt(string) (string, error) {
	if len(s.answers) == 0 {
		s.t.Fatalf("input prompted with empty script")
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func dealtPlayers(t *testing.T, hand1, hand2 []string) (*Player, *Player) {
	t.Helper()
	p1 := NewPlayer(1, "p1", true)
	p2 := NewPlayer(2, "p2", true)
	p1.DealHand(mustHand(t, hand1...))
	p2.DealHand(mustHand(t, hand2...))
	p1.setMao(true)
	p2.setMao(false)
	return p1, p2
}

func TestTrucoRequest_Accepted(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	oracle := &scriptOracle{t: t, script: []int{DecisionAccept}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Oracle: oracle})

	out, err := tb.Request(TrucoTruco, p1, p2)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if out != OutcomeAccepted {
		t.Fatalf("expected accepted, got %d", out)
	}
	if tb.Stake() != 2 || tb.Stage() != TrucoTruco {
		t.Fatalf("expected stake 2 at truco, got %d at %d", tb.Stake(), tb.Stage())
	}
	if p1.Score() != 0 || p2.Score() != 0 {
		t.Fatalf("acceptance must not move points: %d/%d", p1.Score(), p2.Score())
	}
	if !p1.CalledTruco() {
		t.Fatalf("requester must be marked as having called truco")
	}
}

func TestTrucoRequest_Declined(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	oracle := &scriptOracle{t: t, script: []int{DecisionDecline}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Oracle: oracle})

	out, err := tb.Request(TrucoTruco, p1, p2)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if out != OutcomeDeclined {
		t.Fatalf("expected declined, got %d", out)
	}
	if p1.Score() != 1 || p2.Score() != 0 {
		t.Fatalf("decline must credit requester the pre-request stake: %d/%d", p1.Score(), p2.Score())
	}
	if tb.Stake() != 1 {
		t.Fatalf("declined request must leave the stake at 1, got %d", tb.Stake())
	}
	if tb.WonBy() != p1.ID {
		t.Fatalf("expected requester flagged as winner, got %d", tb.WonBy())
	}
}

func TestTrucoRequest_FullEscalationAccepted(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	// p2 raises retruco, p1 raises vale_quatro, p2 accepts.
	oracle := &scriptOracle{t: t, script: []int{DecisionRaise, DecisionRaise, DecisionAccept}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Oracle: oracle})

	out, err := tb.Request(TrucoTruco, p1, p2)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if out != OutcomeAccepted {
		t.Fatalf("expected accepted, got %d", out)
	}
	if tb.Stage() != TrucoValeQuatro || tb.Stake() != 4 {
		t.Fatalf("expected vale_quatro worth 4, got stage %d stake %d", tb.Stage(), tb.Stake())
	}
	if p1.Score() != 0 || p2.Score() != 0 {
		t.Fatalf("no points move until the hand settles: %d/%d", p1.Score(), p2.Score())
	}
}

func TestTrucoRequest_ValeQuatroDeclined(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	// p2 raises retruco, p1 raises vale_quatro, p2 refuses it.
	oracle := &scriptOracle{t: t, script: []int{DecisionRaise, DecisionRaise, DecisionDecline}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Oracle: oracle})

	out, err := tb.Request(TrucoTruco, p1, p2)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if out != OutcomeDeclined {
		t.Fatalf("expected declined, got %d", out)
	}
	// The refused rung pays the stake in effect before it: retruco's 3.
	if p1.Score() != 3 || p2.Score() != 0 {
		t.Fatalf("expected 3/0, got %d/%d", p1.Score(), p2.Score())
	}
}

func TestTrucoRequest_IllegalRequestsAreNoOps(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	oracle := &scriptOracle{t: t, script: []int{DecisionAccept}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Oracle: oracle})

	// Skipping a rung does nothing.
	if out, _ := tb.Request(TrucoRetruco, p1, p2); out != OutcomeNone {
		t.Fatalf("skipped rung must be a no-op, got %d", out)
	}

	if out, _ := tb.Request(TrucoTruco, p1, p2); out != OutcomeAccepted {
		t.Fatalf("expected accepted")
	}

	// The accepted requester is barred from raising again.
	if out, _ := tb.Request(TrucoRetruco, p1, p2); out != OutcomeNone {
		t.Fatalf("barred requester must be a no-op, got %d", out)
	}
	if len(oracle.queries) != 1 {
		t.Fatalf("no-ops must not consult the oracle, got %d queries", len(oracle.queries))
	}
}

func TestTrucoRequest_RefusedWhileEnvidoPending(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	oracle := &scriptOracle{t: t, script: []int{DecisionAccept}}
	arbiter := NewNegotiationArbiter()
	tb := NewTrucoBet(arbiter, Deps{Oracle: oracle})

	if !arbiter.TryBegin(BetEnvido) {
		t.Fatalf("arbiter claim failed")
	}
	if out, _ := tb.Request(TrucoTruco, p1, p2); out != OutcomeNone {
		t.Fatalf("truco during envido must be a no-op, got %d", out)
	}
	arbiter.End(BetEnvido)
	if out, _ := tb.Request(TrucoTruco, p1, p2); out != OutcomeAccepted {
		t.Fatalf("expected accepted after envido resolved, got %d", out)
	}
}

func TestTrucoRequest_HumanInvalidInput(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	p2.Robot = false
	in := &scriptInput{t: t, answers: []string{"banana"}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Input: in})

	_, err := tb.Request(TrucoTruco, p1, p2)
	var iie InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestTrucoReset_RestoresBaseState(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	oracle := &scriptOracle{t: t, script: []int{DecisionRaise, DecisionAccept}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Oracle: oracle})

	if out, _ := tb.Request(TrucoTruco, p1, p2); out != OutcomeAccepted {
		t.Fatalf("expected accepted")
	}
	tb.Reset()
	if tb.Stage() != TrucoNone || tb.Stake() != 1 || tb.WonBy() != 0 || tb.LastRaiser() != 0 {
		t.Fatalf("reset must restore base state: %+v", tb)
	}
}

func TestTrucoRequest_OpponentCardPlayLiftsRaiseBar(t *testing.T) {
	p1, p2 := dealtPlayers(t, []string{"1e", "3c", "4o"}, []string{"2b", "5c", "6o"})
	oracle := &scriptOracle{t: t, script: []int{DecisionAccept, DecisionAccept}}
	tb := NewTrucoBet(NewNegotiationArbiter(), Deps{Oracle: oracle})

	if out, _ := tb.Request(TrucoTruco, p1, p2); out != OutcomeAccepted {
		t.Fatalf("expected accepted")
	}
	// The accepted caller cannot raise again right away.
	if out, _ := tb.Request(TrucoRetruco, p1, p2); out != OutcomeNone {
		t.Fatalf("retruco before the opponent acts must be a no-op, got %d", out)
	}
	// The barred player's own card does not count as the opponent acting.
	tb.NoteCardPlayed(p1.ID)
	if out, _ := tb.Request(TrucoRetruco, p1, p2); out != OutcomeNone {
		t.Fatalf("own card must not lift the bar, got %d", out)
	}

	tb.NoteCardPlayed(p2.ID)
	out, err := tb.Request(TrucoRetruco, p1, p2)
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if out != OutcomeAccepted {
		t.Fatalf("retruco after the opponent played must go through, got %d", out)
	}
	if tb.Stage() != TrucoRetruco || tb.Stake() != 3 {
		t.Fatalf("expected stake 3 at retruco, got %d at %d", tb.Stake(), tb.Stage())
	}
}
