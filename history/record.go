package history

import "time"

// HandRecord is one settled deal, flattened for storage and for the
// case-based oracle's neighbor search. Player 1 is the human seat and
// player 2 the bot seat; winner and asker columns hold player IDs, 0
// meaning "nobody".
type HandRecord struct {
	ID      int64
	MatchID string
	DealNo  int
	MaoID   int

	EnvidoKind   int
	EnvidoAsker  int
	EnvidoWinner int
	EnvidoStake  int
	Envido1      int // player 1's envido points
	Envido2      int

	FlorStage  int
	FlorWinner int
	FlorStake  int

	TrucoStage  int
	TrucoAsker  int
	TrucoStake  int
	TrucoWinner int

	Trick1 int
	Trick2 int
	Trick3 int

	HandWinner int
	Quality1   float64 // sum of card powers dealt to player 1
	Quality2   float64

	Score1 int // cumulative scores after the deal settled
	Score2 int

	PlayedAt time.Time
}
