package truco

import "truco-lite/card"

// EnvidoPoints computes the envido value of a hand. Figures count zero,
// ranks 1-7 count face value. The best same-suit pair sums its two cards
// plus 20; without a suited pair the single highest face value counts.
//
// Short hands: an empty hand is worth 0 and a single card its face value.
func EnvidoPoints(hand []card.Card) int {
	bySuit := make(map[card.Suit][]int, 4)
	highest := 0
	for _, c := range hand {
		v := c.FaceValue()
		bySuit[c.Suit()] = append(bySuit[c.Suit()], v)
		if v > highest {
			highest = v
		}
	}

	best := 0
	for _, values := range bySuit {
		if len(values) < 2 {
			continue
		}
		top, second := 0, 0
		for _, v := range values {
			if v > top {
				top, second = v, top
			} else if v > second {
				second = v
			}
		}
		if pts := top + second + 20; pts > best {
			best = pts
		}
	}

	if best > 0 {
		return best
	}
	return highest
}

// HasFlor reports whether the hand is exactly three cards of one suit.
func HasFlor(hand []card.Card) bool {
	if len(hand) != 3 {
		return false
	}
	return hand[0].Suit() == hand[1].Suit() && hand[1].Suit() == hand[2].Suit()
}

// FlorPoints is 20 plus the face values of all three cards.
func FlorPoints(hand []card.Card) int {
	pts := 20
	for _, c := range hand {
		pts += c.FaceValue()
	}
	return pts
}

// HandQuality is the bot's truco strength signal: the sum of the ranking
// powers of the cards still in hand. Cards outside the deck domain count
// nothing rather than failing; quality is advisory, not rule-bearing.
func HandQuality(hand []card.Card) float64 {
	total := 0.0
	for _, c := range hand {
		p, err := Power(c)
		if err != nil {
			continue
		}
		total += float64(p)
	}
	return total
}
