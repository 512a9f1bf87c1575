package npc

import (
	"math/rand"

	"truco-lite/truco"
)

// RuleBrain answers oracle queries from fixed thresholds modulated by a
// Persona. It needs no history and is the fallback when the case store
// is empty.
type RuleBrain struct {
	persona Persona
	rng     *rand.Rand
}

func NewRuleBrain(persona Persona, seed int64) *RuleBrain {
	return &RuleBrain{
		persona: persona,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

func (b *RuleBrain) Name() string { return b.persona.Name }

// Decide implements truco.Oracle.
func (b *RuleBrain) Decide(q truco.OracleQuery) (int, error) {
	p := b.persona

	// Noise the personality parameters per decision.
	aggression := clamp01(p.Aggression + (b.rng.Float64()-0.5)*p.Randomness*0.4)
	caution := clamp01(p.Caution + (b.rng.Float64()-0.5)*p.Randomness*0.3)

	strength := normalizeStrength(q)
	depth := float64(rungDepth(q))

	// Deeper rungs demand proportionally stronger holdings.
	acceptAt := 0.40 - aggression*0.15 + caution*0.15 + depth*0.08
	raiseAt := 0.65 - aggression*0.20 + caution*0.10 + depth*0.10
	if q.Flag {
		// Trailing the match: little left to protect.
		acceptAt -= 0.05
		raiseAt -= 0.05
	}

	switch {
	case strength >= raiseAt:
		return truco.DecisionRaise, nil
	case strength >= acceptAt:
		return truco.DecisionAccept, nil
	}
	if b.rng.Float64() < p.Bluffing*0.3 {
		return truco.DecisionAccept, nil
	}
	return truco.DecisionDecline, nil
}

// ShouldOpenTruco reports whether the bot should call the next truco rung
// on its own initiative.
func (b *RuleBrain) ShouldOpenTruco(quality float64, alreadyCalled bool) bool {
	if alreadyCalled {
		return false
	}
	threshold := 0.55 - b.persona.Aggression*0.2 + b.persona.Caution*0.1
	if quality/maxHandQuality >= threshold {
		return true
	}
	return b.rng.Float64() < b.persona.Bluffing*0.2
}

// ShouldOpenEnvido picks the envido rung the bot opens with, if any.
func (b *RuleBrain) ShouldOpenEnvido(points int) (truco.EnvidoKind, bool) {
	switch {
	case points >= 31:
		return truco.EnvidoFalta, true
	case points >= 28:
		return truco.EnvidoReal, true
	case points >= 24-int(b.persona.Aggression*4):
		return truco.EnvidoCall, true
	}
	if b.rng.Float64() < b.persona.Bluffing*0.15 {
		return truco.EnvidoCall, true
	}
	return truco.EnvidoNone, false
}

// maxHandQuality is the power sum of the three manilhas above the
// strongest, 13+12+11.
const maxHandQuality = 36.0

// normalizeStrength maps the query's strength signal onto 0..1 per kind:
// truco carries a power sum, envido points 0..33, flor points 20..38.
func normalizeStrength(q truco.OracleQuery) float64 {
	switch q.Kind {
	case truco.BetTruco:
		return clamp01(q.Strength / maxHandQuality)
	case truco.BetEnvido:
		return clamp01(q.Strength / 33.0)
	case truco.BetFlor:
		return clamp01((q.Strength - 20.0) / 18.0)
	}
	return 0
}

// rungDepth is 0 for the ladder's opening rung, up to 2 at the top.
func rungDepth(q truco.OracleQuery) int {
	level := q.Level
	if q.Kind == truco.BetEnvido {
		level -= int(truco.EnvidoCall)
	} else {
		level--
	}
	if level < 0 {
		return 0
	}
	if level > 2 {
		return 2
	}
	return level
}
