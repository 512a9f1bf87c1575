package truco

// NegotiationArbiter owns the single "active negotiation" tag. Only one of
// truco, envido and flor may be in progress at a time; every engine
// consults the arbiter before proceeding and releases it when resolved.
// The game is strictly single-threaded, so a plain field suffices.
type NegotiationArbiter struct {
	active BetKind
}

func NewNegotiationArbiter() *NegotiationArbiter {
	return &NegotiationArbiter{}
}

func (a *NegotiationArbiter) Active() BetKind { return a.active }

// TryBegin claims the arbiter for kind. It fails when a different
// negotiation is already in progress.
func (a *NegotiationArbiter) TryBegin(kind BetKind) bool {
	if a.active != BetNone && a.active != kind {
		return false
	}
	a.active = kind
	return true
}

// End releases the arbiter if kind currently holds it.
func (a *NegotiationArbiter) End(kind BetKind) {
	if a.active == kind {
		a.active = BetNone
	}
}

func (a *NegotiationArbiter) Reset() { a.active = BetNone }
