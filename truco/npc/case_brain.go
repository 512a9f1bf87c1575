package npc

import (
	"math"
	"sort"

	"truco-lite/history"
	"truco-lite/truco"
)

// CaseBrain answers oracle queries by nearest-neighbor lookup over
// settled deals: find the k most similar past situations the bot was in
// and act on how often it came out ahead. With too few cases of the
// right kind it defers to a RuleBrain.
//
// The history convention puts the bot in seat 2; winner columns equal to
// 2 count as favorable outcomes.
type CaseBrain struct {
	k        int
	fallback *RuleBrain

	trucoCases  []caseEntry
	envidoCases []caseEntry
	florCases   []caseEntry
}

type caseEntry struct {
	strength float64
	level    float64
	won      bool
}

func NewCaseBrain(k int, records []history.HandRecord, fallback *RuleBrain) *CaseBrain {
	if k <= 0 {
		k = 5
	}
	b := &CaseBrain{k: k, fallback: fallback}
	for _, rec := range records {
		if rec.TrucoStage > 0 {
			b.trucoCases = append(b.trucoCases, caseEntry{
				strength: rec.Quality2,
				level:    float64(rec.TrucoStage),
				won:      rec.TrucoWinner == 2 || (rec.TrucoWinner == 0 && rec.HandWinner == 2),
			})
		}
		if rec.EnvidoKind > 0 {
			b.envidoCases = append(b.envidoCases, caseEntry{
				strength: float64(rec.Envido2),
				level:    float64(rec.EnvidoKind),
				won:      rec.EnvidoWinner == 2,
			})
		}
		if rec.FlorStage > 0 {
			// Cached envido points track flor strength closely enough
			// for neighbor distance.
			b.florCases = append(b.florCases, caseEntry{
				strength: float64(rec.Envido2),
				level:    float64(rec.FlorStage),
				won:      rec.FlorWinner == 2,
			})
		}
	}
	return b
}

func (b *CaseBrain) Name() string { return "case/" + b.fallback.Name() }

// Decide implements truco.Oracle.
func (b *CaseBrain) Decide(q truco.OracleQuery) (int, error) {
	var cases []caseEntry
	switch q.Kind {
	case truco.BetTruco:
		cases = b.trucoCases
	case truco.BetEnvido:
		cases = b.envidoCases
	case truco.BetFlor:
		cases = b.florCases
	}
	if len(cases) < b.k {
		return b.fallback.Decide(q)
	}

	neighbors := b.nearest(cases, q)
	wins := 0
	for _, c := range neighbors {
		if c.won {
			wins++
		}
	}
	rate := float64(wins) / float64(len(neighbors))

	switch {
	case rate >= 0.66:
		return truco.DecisionRaise, nil
	case rate >= 0.40:
		return truco.DecisionAccept, nil
	}
	return truco.DecisionDecline, nil
}

func (b *CaseBrain) nearest(cases []caseEntry, q truco.OracleQuery) []caseEntry {
	sorted := append([]caseEntry(nil), cases...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return caseDistance(sorted[i], q) < caseDistance(sorted[j], q)
	})
	return sorted[:b.k]
}

func caseDistance(c caseEntry, q truco.OracleQuery) float64 {
	// Ladder rungs are few; weight them up so "same rung" matters about
	// as much as a handful of strength points.
	const levelWeight = 4.0
	return math.Hypot(c.strength-q.Strength, levelWeight*(c.level-float64(q.Level)))
}
