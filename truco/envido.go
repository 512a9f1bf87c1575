package truco

import "fmt"

// Envido is the state machine for the envido ladder: envido(6) ->
// real_envido(7) -> falta_envido(8). Stakes: 2, 3, and "the rest of the
// game" (target minus the lower of the two scores) respectively.
//
// Envido is only legal before the first trick is shown and is always
// preempted by flor: a request while either side has an announced flor is
// refused, and a responder holding flor counters with it instead of
// answering.
type Envido struct {
	current    EnvidoKind
	stake      int
	asker      int
	lastRaiser int
	barred     int
	wonBy      int
	fled       int

	target  int
	arbiter *NegotiationArbiter
	flor    *Flor
	deps    Deps
}

func NewEnvido(target int, arbiter *NegotiationArbiter, flor *Flor, deps Deps) *Envido {
	return &Envido{stake: 2, target: target, arbiter: arbiter, flor: flor, deps: deps}
}

func (e *Envido) Current() EnvidoKind { return e.current }
func (e *Envido) Stake() int { return e.stake }
func (e *Envido) Asker() int { return e.asker }
func (e *Envido) WonBy() int { return e.wonBy }
func (e *Envido) Fled() int { return e.fled }

func (e *Envido) Reset() {
	e.current = EnvidoNone
	e.stake = 2
	e.asker = 0
	e.lastRaiser = 0
	e.barred = 0
	e.wonBy = 0
	e.fled = 0
}

// stakeValue is the points awarded to the winner once kind is accepted.
// Falta envido is worth whatever the trailing player still needs.
func (e *Envido) stakeValue(kind EnvidoKind, p1, p2 *Player) int {
	switch kind {
	case EnvidoCall:
		return 2
	case EnvidoReal:
		return 3
	case EnvidoFalta:
		lower := p1.Score()
		if p2.Score() < lower {
			lower = p2.Score()
		}
		return e.target - lower
	}
	return 2
}

// Request opens or escalates the envido negotiation on behalf of the
// player with requesterID. Illegal requests are silent no-ops.
// OutcomeFlor means the responder countered with flor; the caller must
// run the flor negotiation instead, envido is void.
func (e *Envido) Request(kind EnvidoKind, requesterID int, p1, p2 *Player) (Outcome, error) {
	if kind < EnvidoCall || kind > EnvidoFalta {
		return OutcomeNone, nil
	}
	if e.current != EnvidoNone && kind <= e.current {
		return OutcomeNone, nil
	}
	if e.barred == requesterID {
		return OutcomeNone, nil
	}
	if e.flor != nil && e.flor.Announced() {
		return OutcomeNone, nil
	}
	if len(p1.Hand()) < 3 || len(p2.Hand()) < 3 {
		// A card has already been shown; envido window is closed.
		return OutcomeNone, nil
	}
	if !e.arbiter.TryBegin(BetEnvido) {
		return OutcomeNone, nil
	}
	defer e.arbiter.End(BetEnvido)

	if e.asker == 0 {
		e.asker = requesterID
	}
	return e.negotiate(kind, requesterID, p1, p2)
}

func (e *Envido) negotiate(kind EnvidoKind, requesterID int, p1, p2 *Player) (Outcome, error) {
	requester, responder := p1, p2
	if requesterID == p2.ID {
		requester, responder = p2, p1
	}

	e.current = kind
	e.deps.display().Show(EventBetCalled, BetAnnouncement{
		Caller: requester.Name,
		Bet:    EnvidoKindDictionary[kind],
		Stake:  e.stakeValue(kind, p1, p2),
	})

	dec, err := e.decision(kind, requester, responder)
	if err != nil {
		return OutcomeNone, err
	}

	switch dec {
	case DecisionFlor:
		// Flor always takes precedence: the envido is void and no
		// points change hands here.
		return OutcomeFlor, nil

	case DecisionDecline:
		// A refused envido is worth a flat point, whatever the rung.
		requester.Credit(1)
		e.fled = responder.ID
		e.deps.display().Show(EventBetDeclined, BetAnnouncement{
			Caller: responder.Name,
			Bet:    EnvidoKindDictionary[kind],
			Stake:  1,
		})
		return OutcomeDeclined, nil

	case DecisionAccept:
		e.stake = e.stakeValue(kind, p1, p2)
		winner := e.resolve(p1, p2)
		winner.Credit(e.stake)
		e.wonBy = winner.ID
		e.deps.display().Show(EventEnvidoShowdown, ShowdownInfo{
			Winner:  winner.Name,
			Player1: p1.Name,
			Points1: p1.EnvidoPoints(),
			Player2: p2.Name,
			Points2: p2.EnvidoPoints(),
			Stake:   e.stake,
		})
		return OutcomeAccepted, nil

	case DecisionRaise:
		e.barred = requesterID
		e.lastRaiser = responder.ID
		return e.negotiate(kind+1, responder.ID, p1, p2)
	}
	return OutcomeNone, ErrInvalidState(fmt.Sprintf("unknown envido decision %d", dec))
}

// resolve compares cached envido points; the "mão" player wins ties.
func (e *Envido) resolve(p1, p2 *Player) *Player {
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

func (e *Envido) decision(kind EnvidoKind, requester, responder *Player) (int, error) {
	if responder.Robot {
		if responder.HasFlor() {
			// Classic precedence: a bot holding flor declares it
			// rather than answering the envido.
			return DecisionFlor, nil
		}
		dec, err := e.deps.Oracle.Decide(OracleQuery{
			Kind:     BetEnvido,
			Level:    int(kind),
			WhoAsked: requester.ID,
			Strength: float64(responder.EnvidoPoints()),
			Flag:     responder.Score() < requester.Score(),
		})
		if err != nil {
			return 0, err
		}
		if kind == EnvidoFalta && dec == DecisionRaise {
			dec = DecisionAccept
		}
		return dec, nil
	}

	msg := fmt.Sprintf("%s called %s. 0=decline 1=accept", requester.Name, EnvidoKindDictionary[kind])
	allowed := []int{DecisionDecline, DecisionAccept}
	if kind < EnvidoFalta {
		msg += fmt.Sprintf(" 2=%s", EnvidoKindDictionary[kind+1])
		allowed = append(allowed, DecisionRaise)
	}
	if responder.HasFlor() {
		msg += " 3=flor"
		allowed = append(allowed, DecisionFlor)
	}
	return promptDecision(e.deps.Input, msg, allowed...)
}
