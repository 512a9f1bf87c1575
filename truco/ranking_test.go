package truco

import (
	"errors"
	"testing"

	"truco-lite/card"
)

func TestPower_ManilhaOrder(t *testing.T) {
	// 1-Espada > 1-Basto > 7-Espada > 7-Oro > best non-trump.
	order := []card.Card{card.CardEspada1, card.CardBasto1, card.CardEspada7, card.CardOro7, card.CardCopa3}
	for i := 0; i < len(order)-1; i++ {
		hi, err := Power(order[i])
		if err != nil {
			t.Fatalf("Power(%v): %v", order[i], err)
		}
		lo, err := Power(order[i+1])
		if err != nil {
			t.Fatalf("Power(%v): %v", order[i+1], err)
		}
		if hi <= lo {
			t.Fatalf("expected %v to outrank %v: %d <= %d", order[i], order[i+1], hi, lo)
		}
	}
}

func TestPower_NonTrumpLadder(t *testing.T) {
	// 3 > 2 > 1 > 12 > 11 > 10 > 7 > 6 > 5 > 4 off-trump.
	ladder := []card.Card{
		card.CardCopa3, card.CardCopa2, card.CardCopa1, card.CardCopa12, card.CardCopa11,
		card.CardCopa10, card.CardCopa7, card.CardCopa6, card.CardCopa5, card.CardCopa4,
	}
	prev := 1 << 30
	for _, c := range ladder {
		p, err := Power(c)
		if err != nil {
			t.Fatalf("Power(%v): %v", c, err)
		}
		if p >= prev {
			t.Fatalf("ladder not strictly descending at %v: %d >= %d", c, p, prev)
		}
		prev = p
	}
}

func TestCompareCards_EqualRankOffTrumpTiesForAllSuitPairs(t *testing.T) {
	suits := []string{"e", "b", "c", "o"}
	for _, s1 := range suits {
		for _, s2 := range suits {
			if s1 == s2 {
				continue
			}
			// rank 4 is never a manilha in any suit
			c1 := mustHand(t, "4"+s1)[0]
			c2 := mustHand(t, "4"+s2)[0]
			res, err := CompareCards(c1, c2)
			if err != nil {
				t.Fatalf("CompareCards(%v, %v): %v", c1, c2, err)
			}
			if res != TrickTie {
				t.Fatalf("expected parda for %v vs %v, got %v", c1, c2, TrickResultDictionary[res])
			}
		}
	}
}

func TestCompareCards_ManilhaBreaksRankTie(t *testing.T) {
	res, err := CompareCards(card.CardEspada7, card.CardCopa7)
	if err != nil {
		t.Fatalf("CompareCards: %v", err)
	}
	if res != TrickPlayer1 {
		t.Fatalf("7-espada must beat off-trump 7, got %v", TrickResultDictionary[res])
	}

	res, err = CompareCards(card.CardCopa1, card.CardBasto1)
	if err != nil {
		t.Fatalf("CompareCards: %v", err)
	}
	if res != TrickPlayer2 {
		t.Fatalf("1-basto must beat off-trump 1, got %v", TrickResultDictionary[res])
	}
}

func TestCompareCards_InvalidCardFails(t *testing.T) {
	_, err := CompareCards(card.CardInvalid, card.CardEspada1)
	var ice InvalidCardError
	if !errors.As(err, &ice) {
		t.Fatalf("expected InvalidCardError, got %v", err)
	}
	_, err = CompareCards(card.CardEspada1, card.Card(0x08))
	if !errors.As(err, &ice) {
		t.Fatalf("expected InvalidCardError for stripped rank, got %v", err)
	}
}
