package card

import (
	"fmt"
	"strings"
)

// Card encoding:
// - high nibble: suit (0:Espada, 1:Basto, 2:Copa, 3:Oro)
// - low nibble: rank (1..7, 10:T, 11:J, 12:Q)
//
// Ranks 8 and 9 do not exist in the 40-card Spanish deck.
type Card byte

func (c Card) String() string {
	if c == CardInvalid {
		return "Invalid"
	}
	return fmt.Sprintf("%d de %s", c.Rank(), c.Suit())
}

// Rank returns the printed rank, 1-7 or 10-12.
func (c Card) Rank() byte {
	if c == CardInvalid {
		return 0
	}
	return byte(c & 0x0F)
}

func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

// FaceValue is the rank as counted for envido and flor:
// figures (10, 11, 12) are worth 0, everything else its rank.
func (c Card) FaceValue() int {
	r := int(c & 0x0F)
	if r >= 10 {
		return 0
	}
	return r
}

// Valid reports whether c encodes one of the 40 deck cards.
func (c Card) Valid() bool {
	r := c.Rank()
	if r < 1 || r == 8 || r == 9 || r > 12 {
		return false
	}
	return c.Suit() <= Oro
}

// Parse converts a string such as "7o", "1E" or "12c" to a Card constant.
// The suit is the last character: e/b/c/o.
func Parse(s string) (Card, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid card string: %s", s)
	}

	var suitBase Card
	switch s[len(s)-1] {
	case 'e', 'E':
		suitBase = 0x00
	case 'b', 'B':
		suitBase = 0x10
	case 'c', 'C':
		suitBase = 0x20
	case 'o', 'O':
		suitBase = 0x30
	default:
		return 0, fmt.Errorf("invalid suit: %c", s[len(s)-1])
	}

	var rankVal Card
	switch strings.ToUpper(s[:len(s)-1]) {
	case "1":
		rankVal = 0x01
	case "2":
		rankVal = 0x02
	case "3":
		rankVal = 0x03
	case "4":
		rankVal = 0x04
	case "5":
		rankVal = 0x05
	case "6":
		rankVal = 0x06
	case "7":
		rankVal = 0x07
	case "T", "10":
		rankVal = 0x0A
	case "J", "11":
		rankVal = 0x0B
	case "Q", "12":
		rankVal = 0x0C
	default:
		return 0, fmt.Errorf("invalid rank: %s", s[:len(s)-1])
	}

	return suitBase + rankVal, nil
}
