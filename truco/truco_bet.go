package truco

import "fmt"

// TrucoBet is the state machine for the trick-value escalation ladder:
// none -> truco -> retruco -> vale_quatro, stakes 1/2/3/4. Each rung is
// reachable only from its predecessor and the player who last had a raise
// accepted is barred from raising again until the other side acts.
type TrucoBet struct {
	stage      TrucoStage
	stake      int
	lastRaiser int
	barred     int
	wonBy      int

	arbiter *NegotiationArbiter
	deps    Deps
}

func NewTrucoBet(arbiter *NegotiationArbiter, deps Deps) *TrucoBet {
	return &TrucoBet{stake: 1, arbiter: arbiter, deps: deps}
}

func (t *TrucoBet) Stage() TrucoStage { return t.stage }
func (t *TrucoBet) Stake() int { return t.stake }
func (t *TrucoBet) WonBy() int { return t.wonBy }
func (t *TrucoBet) LastRaiser() int { return t.lastRaiser }

// NoteCardPlayed lifts the raise bar once the other side has acted by
// playing a card. A raise by the barred player stays blocked until then.
func (t *TrucoBet) NoteCardPlayed(playerID int) {
	if t.barred != 0 && playerID != t.barred {
		t.barred = 0
	}
}

// Reset restores the base stake and clears all negotiation flags. Called
// between deals.
func (t *TrucoBet) Reset() {
	t.stage = TrucoNone
	t.stake = 1
	t.lastRaiser = 0
	t.barred = 0
	t.wonBy = 0
}

// Request escalates to level on behalf of requester. Illegal requests
// (terminal stage, out-of-ladder level, barred requester, or another bet
// kind pending) are silent no-ops per the negotiation contract.
//
// OutcomeDeclined means the responder refused and the requester has
// already been credited the pre-request stake; the hand is over and the
// orchestrator must not play it out.
func (t *TrucoBet) Request(level TrucoStage, requester, responder *Player) (Outcome, error) {
	if t.stage == TrucoValeQuatro {
		return OutcomeNone, nil
	}
	if level != t.stage+1 {
		return OutcomeNone, nil
	}
	if t.barred == requester.ID {
		return OutcomeNone, nil
	}
	if !t.arbiter.TryBegin(BetTruco) {
		return OutcomeNone, nil
	}
	defer t.arbiter.End(BetTruco)

	return t.negotiate(level, requester, responder)
}

func (t *TrucoBet) negotiate(level TrucoStage, requester, responder *Player) (Outcome, error) {
	requester.markCalledTruco()
	t.deps.display().Show(EventBetCalled, BetAnnouncement{
		Caller: requester.Name,
		Bet:    TrucoStageDictionary[level],
		Stake:  trucoStakeValue(level),
	})

	dec, err := t.decision(level, requester, responder)
	if err != nil {
		return OutcomeNone, err
	}

	switch dec {
	case DecisionDecline:
		// The decliner concedes the stake that was in effect before
		// this request, i.e. the previous rung.
		requester.Credit(t.stake)
		t.wonBy = requester.ID
		t.stage = level
		t.deps.display().Show(EventBetDeclined, BetAnnouncement{
			Caller: responder.Name,
			Bet:    TrucoStageDictionary[level],
			Stake:  t.stake,
		})
		return OutcomeDeclined, nil

	case DecisionAccept:
		t.stage = level
		t.stake = trucoStakeValue(level)
		t.lastRaiser = requester.ID
		t.barred = requester.ID
		t.deps.display().Show(EventBetAccepted, BetAnnouncement{
			Caller: responder.Name,
			Bet:    TrucoStageDictionary[level],
			Stake:  t.stake,
		})
		return OutcomeAccepted, nil

	case DecisionRaise:
		// Raising implies accepting the current rung first; the
		// responder then becomes the requester of the next one.
		t.stage = level
		t.stake = trucoStakeValue(level)
		t.lastRaiser = requester.ID
		t.barred = requester.ID
		return t.negotiate(level+1, responder, requester)
	}
	return OutcomeNone, ErrInvalidState(fmt.Sprintf("unknown truco decision %d", dec))
}

func (t *TrucoBet) decision(level TrucoStage, requester, responder *Player) (int, error) {
	if responder.Robot {
		dec, err := t.deps.Oracle.Decide(OracleQuery{
			Kind:     BetTruco,
			Level:    int(level),
			WhoAsked: requester.ID,
			Strength: HandQuality(responder.Hand()),
			Flag:     responder.Score() < requester.Score(),
		})
		if err != nil {
			return 0, err
		}
		// Only accept/decline are legal at the top rung.
		if level == TrucoValeQuatro && dec == DecisionRaise {
			dec = DecisionAccept
		}
		return dec, nil
	}

	msg := fmt.Sprintf("%s called %s. 0=decline 1=accept", requester.Name, TrucoStageDictionary[level])
	if level < TrucoValeQuatro {
		msg += fmt.Sprintf(" 2=%s", TrucoStageDictionary[level+1])
		return promptDecision(t.deps.Input, msg, DecisionDecline, DecisionAccept, DecisionRaise)
	}
	return promptDecision(t.deps.Input, msg, DecisionDecline, DecisionAccept)
}
