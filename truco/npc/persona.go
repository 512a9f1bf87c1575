package npc

// Persona defines the tunable parameters for a RuleBrain.
type Persona struct {
	Name       string  `json:"name"`
	Aggression float64 `json:"aggression"` // 0.0-1.0: lowers accept/raise thresholds
	Caution    float64 `json:"caution"`    // 0.0-1.0: raises them back up
	Bluffing   float64 `json:"bluffing"`   // 0.0-1.0: frequency of strength-blind accepts
	Randomness float64 `json:"randomness"` // 0.0-1.0: decision noise
}

// DefaultPersona is a balanced table opponent.
func DefaultPersona() Persona {
	return Persona{
		Name:       "Ramiro",
		Aggression: 0.5,
		Caution:    0.4,
		Bluffing:   0.2,
		Randomness: 0.15,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
