package npc

import (
	"truco-lite/card"
	"truco-lite/truco"
)

// ChooseCard picks the index of the card the bot plays. Leading a trick
// it plays its strongest card; answering it plays the cheapest card that
// wins, then the cheapest that ties, then its weakest card.
// Pass card.CardInvalid as opponent when leading.
func ChooseCard(hand []card.Card, opponent card.Card) (int, error) {
	if len(hand) == 0 {
		return 0, truco.ErrInvalidInput("choosing from an empty hand")
	}

	powers := make([]int, len(hand))
	for i, c := range hand {
		p, err := truco.Power(c)
		if err != nil {
			return 0, err
		}
		powers[i] = p
	}

	if opponent == card.CardInvalid {
		best := 0
		for i, p := range powers {
			if p > powers[best] {
				best = i
			}
		}
		return best, nil
	}

	target, err := truco.Power(opponent)
	if err != nil {
		return 0, err
	}

	winIdx, tieIdx, lowIdx := -1, -1, 0
	for i, p := range powers {
		if p > target && (winIdx < 0 || p < powers[winIdx]) {
			winIdx = i
		}
		if p == target && (tieIdx < 0 || p < powers[tieIdx]) {
			tieIdx = i
		}
		if p < powers[lowIdx] {
			lowIdx = i
		}
	}
	if winIdx >= 0 {
		return winIdx, nil
	}
	if tieIdx >= 0 {
		return tieIdx, nil
	}
	return lowIdx, nil
}
