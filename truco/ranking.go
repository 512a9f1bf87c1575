package truco

import "truco-lite/card"

// Power returns the position of a card in the trick total order. The four
// manilhas outrank everything in fixed order, then 3 > 2 > 1 > 12 > 11 >
// 10 > 7 > 6 > 5 > 4. Cards outside the 40-card domain fail.
func Power(c card.Card) (int, error) {
	if !c.Valid() {
		return 0, InvalidCardError(c.String())
	}

	switch {
	case c == card.CardEspada1:
		return 13, nil
	case c == card.CardBasto1:
		return 12, nil
	case c == card.CardEspada7:
		return 11, nil
	case c == card.CardOro7:
		return 10, nil
	}

	switch c.Rank() {
	case 3:
		return 9, nil
	case 2:
		return 8, nil
	case 1:
		return 7, nil
	case 12:
		return 6, nil
	case 11:
		return 5, nil
	case 10:
		return 4, nil
	case 7:
		return 3, nil
	case 6:
		return 2, nil
	case 5:
		return 1, nil
	case 4:
		return 0, nil
	}
	return 0, InvalidCardError(c.String())
}

// CompareCards ranks player 1's card against player 2's. Equal power is a
// tie ("parda") and is reported as such, never resolved arbitrarily: the
// orchestrator needs the distinct outcome to apply the parda rules.
func CompareCards(c1, c2 card.Card) (TrickResult, error) {
	p1, err := Power(c1)
	if err != nil {
		return TrickNone, err
	}
	p2, err := Power(c2)
	if err != nil {
		return TrickNone, err
	}
	switch {
	case p1 > p2:
		return TrickPlayer1, nil
	case p2 > p1:
		return TrickPlayer2, nil
	}
	return TrickTie, nil
}
