package truco

import "fmt"

type Config struct {
	// First player to reach TargetScore wins the match.
	TargetScore int

	// RNG seed (0 => time-based)
	Seed int64
}

const DefaultTargetScore = 12

func (c Config) validate() error {
	if c.TargetScore <= 0 {
		return fmt.Errorf("TargetScore must be > 0")
	}
	return nil
}
