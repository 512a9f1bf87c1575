package truco

import "fmt"

// Flor is the state machine for the flor ladder: flor(3) ->
// contraflor(6) -> contraflor_resto(rest of the game). Flor trumps
// envido: once announced, envido requests for the deal are dead, and the
// two-flor case escalates straight into contraflor.
type Flor struct {
	announced bool
	announcer int
	stage     FlorStage
	stake     int
	wonBy     int
	fled      int

	target  int
	arbiter *NegotiationArbiter
	deps    Deps
}

func NewFlor(target int, arbiter *NegotiationArbiter, deps Deps) *Flor {
	return &Flor{target: target, arbiter: arbiter, deps: deps}
}

func (f *Flor) Announced() bool { return f.announced }
func (f *Flor) Announcer() int { return f.announcer }
func (f *Flor) Stage() FlorStage { return f.stage }
func (f *Flor) Stake() int { return f.stake }
func (f *Flor) WonBy() int { return f.wonBy }
func (f *Flor) Fled() int { return f.fled }

func (f *Flor) Reset() {
	f.announced = false
	f.announcer = 0
	f.stage = FlorNone
	f.stake = 0
	f.wonBy = 0
	f.fled = 0
}

func (f *Flor) stakeValue(stage FlorStage, p1, p2 *Player) int {
	switch stage {
	case FlorFlor:
		return 3
	case FlorContra:
		return 6
	case FlorResto:
		lower := p1.Score()
		if p2.Score() < lower {
			lower = p2.Score()
		}
		return f.target - lower
	}
	return 0
}

// restoEligible reports whether decider may escalate to
// contraflor-e-resto: only when trailing the opponent badly enough.
func restoEligible(decider, opponent *Player) bool {
	return float64(decider.Score()) < float64(opponent.Score())/1.5
}

// Announce declares flor for the player with requesterID. Illegal
// announcements are silent no-ops. An announcement without flor in hand
// still closes the envido window but moves no points.
func (f *Flor) Announce(requesterID int, p1, p2 *Player) (Outcome, error) {
	if f.announced {
		return OutcomeNone, nil
	}
	if len(p1.Hand()) < 3 || len(p2.Hand()) < 3 {
		return OutcomeNone, nil
	}
	if !f.arbiter.TryBegin(BetFlor) {
		return OutcomeNone, nil
	}
	defer f.arbiter.End(BetFlor)

	requester, responder := p1, p2
	if requesterID == p2.ID {
		requester, responder = p2, p1
	}

	f.announced = true
	f.announcer = requesterID
	f.stage = FlorFlor
	f.deps.display().Show(EventBetCalled, BetAnnouncement{
		Caller: requester.Name,
		Bet:    FlorStageDictionary[FlorFlor],
		Stake:  3,
	})

	if !requester.HasFlor() {
		return OutcomeAccepted, nil
	}
	if !responder.HasFlor() {
		// Unanswerable flor pays out immediately.
		f.stake = 3
		requester.Credit(3)
		f.wonBy = requester.ID
		f.deps.display().Show(EventPointsAwarded, PointsAward{
			Player: requester.Name,
			Points: 3,
			Reason: "flor",
		})
		return OutcomeAccepted, nil
	}
	return f.negotiate(FlorContra, responder.ID, p1, p2)
}

func (f *Flor) negotiate(stage FlorStage, requesterID int, p1, p2 *Player) (Outcome, error) {
	requester, responder := p1, p2
	if requesterID == p2.ID {
		requester, responder = p2, p1
	}

	f.stage = stage
	f.deps.display().Show(EventBetCalled, BetAnnouncement{
		Caller: requester.Name,
		Bet:    FlorStageDictionary[stage],
		Stake:  f.stakeValue(stage, p1, p2),
	})

	dec, err := f.decision(stage, requester, responder)
	if err != nil {
		return OutcomeNone, err
	}

	switch dec {
	case DecisionDecline:
		// Conceding against a counter-flor pays the rung below.
		prev := f.stakeValue(stage-1, p1, p2)
		requester.Credit(prev)
		f.stake = prev
		f.fled = responder.ID
		f.deps.display().Show(EventBetDeclined, BetAnnouncement{
			Caller: responder.Name,
			Bet:    FlorStageDictionary[stage],
			Stake:  prev,
		})
		return OutcomeDeclined, nil

	case DecisionAccept:
		f.stake = f.stakeValue(stage, p1, p2)
		winner := f.resolve(p1, p2)
		winner.Credit(f.stake)
		f.wonBy = winner.ID
		f.deps.display().Show(EventFlorShowdown, ShowdownInfo{
			Winner:  winner.Name,
			Player1: p1.Name,
			Points1: p1.EnvidoPoints(),
			Player2: p2.Name,
			Points2: p2.EnvidoPoints(),
			Stake:   f.stake,
		})
		return OutcomeAccepted, nil

	case DecisionRaise:
		return f.negotiate(stage+1, responder.ID, p1, p2)
	}
	return OutcomeNone, ErrInvalidState(fmt.Sprintf("unknown flor decision %d", dec))
}

// resolve compares the hands' envido points, not their flor points; the
// "mão" player wins ties.
func (f *Flor) resolve(p1, p2 *Player) *Player {
	switch {
	case p1.EnvidoPoints() > p2.EnvidoPoints():
		return p1
	case p2.EnvidoPoints() > p1.EnvidoPoints():
		return p2
	case p1.Mao():
		return p1
	}
	return p2
}

func (f *Flor) decision(stage FlorStage, requester, responder *Player) (int, error) {
	canRaise := stage < FlorResto && restoEligible(responder, requester)

	if responder.Robot {
		dec, err := f.deps.Oracle.Decide(OracleQuery{
			Kind:     BetFlor,
			Level:    int(stage),
			WhoAsked: requester.ID,
			Strength: float64(FlorPoints(responder.Hand())),
			Flag:     responder.Score() < requester.Score(),
		})
		if err != nil {
			return 0, err
		}
		if dec == DecisionRaise && !canRaise {
			dec = DecisionAccept
		}
		return dec, nil
	}

	msg := fmt.Sprintf("%s called %s. 0=decline 1=accept", requester.Name, FlorStageDictionary[stage])
	allowed := []int{DecisionDecline, DecisionAccept}
	if canRaise {
		msg += fmt.Sprintf(" 2=%s", FlorStageDictionary[stage+1])
		allowed = append(allowed, DecisionRaise)
	}
	return promptDecision(f.deps.Input, msg, allowed...)
}
