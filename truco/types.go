package truco

import "truco-lite/card"

// TrickResult is the outcome of comparing the two cards of one trick.
type TrickResult byte

const (
	TrickNone    TrickResult = 0
	TrickPlayer1 TrickResult = 1
	TrickPlayer2 TrickResult = 2
	TrickTie     TrickResult = 3
)

var TrickResultDictionary = map[TrickResult]string{
	TrickNone:    "none",
	TrickPlayer1: "player1",
	TrickPlayer2: "player2",
	TrickTie:     "parda",
}

// BetKind identifies which of the three negotiations is active.
type BetKind byte

const (
	BetNone   BetKind = 0
	BetTruco  BetKind = 1
	BetEnvido BetKind = 2
	BetFlor   BetKind = 3
)

var BetKindDictionary = map[BetKind]string{
	BetNone:   "none",
	BetTruco:  "truco",
	BetEnvido: "envido",
	BetFlor:   "flor",
}

// TrucoStage is a rung on the truco escalation ladder.
type TrucoStage byte

const (
	TrucoNone       TrucoStage = 0
	TrucoTruco      TrucoStage = 1
	TrucoRetruco    TrucoStage = 2
	TrucoValeQuatro TrucoStage = 3
)

var TrucoStageDictionary = map[TrucoStage]string{
	TrucoNone:       "none",
	TrucoTruco:      "truco",
	TrucoRetruco:    "retruco",
	TrucoValeQuatro: "vale_quatro",
}

// trucoStakeValue is the hand stake once the given rung is accepted.
func trucoStakeValue(s TrucoStage) int {
	switch s {
	case TrucoTruco:
		return 2
	case TrucoRetruco:
		return 3
	case TrucoValeQuatro:
		return 4
	}
	return 1
}

// EnvidoKind tags the envido ladder. The numeric values match the type
// codes callers pass around (and the historical case records).
type EnvidoKind byte

const (
	EnvidoNone  EnvidoKind = 0
	EnvidoCall  EnvidoKind = 6
	EnvidoReal  EnvidoKind = 7
	EnvidoFalta EnvidoKind = 8
)

var EnvidoKindDictionary = map[EnvidoKind]string{
	EnvidoNone:  "none",
	EnvidoCall:  "envido",
	EnvidoReal:  "real_envido",
	EnvidoFalta: "falta_envido",
}

// FlorStage is a rung on the flor escalation ladder.
type FlorStage byte

const (
	FlorNone   FlorStage = 0
	FlorFlor   FlorStage = 1
	FlorContra FlorStage = 2
	FlorResto  FlorStage = 3
)

var FlorStageDictionary = map[FlorStage]string{
	FlorNone:   "none",
	FlorFlor:   "flor",
	FlorContra: "contraflor",
	FlorResto:  "contraflor_resto",
}

// Decision codes shared by the oracle contract and the human prompts.
const (
	DecisionDecline = 0
	DecisionAccept  = 1
	DecisionRaise   = 2
	DecisionFlor    = 3
)

// Outcome is what a negotiation request produced. OutcomeNone means the
// request was illegal in the current state and had no effect; callers rely
// on checking for it, so it is never surfaced as an error.
type Outcome byte

const (
	OutcomeNone     Outcome = 0
	OutcomeDeclined Outcome = 1
	OutcomeAccepted Outcome = 2
	OutcomeFlor     Outcome = 3
)

// TrucoDeck is the 40-card Spanish deck: ranks 1-7 and 10-12, four suits.
var TrucoDeck = []card.Card{
	card.CardEspada1, card.CardEspada2, card.CardEspada3, card.CardEspada4, card.CardEspada5,
	card.CardEspada6, card.CardEspada7, card.CardEspada10, card.CardEspada11, card.CardEspada12,
	card.CardBasto1, card.CardBasto2, card.CardBasto3, card.CardBasto4, card.CardBasto5,
	card.CardBasto6, card.CardBasto7, card.CardBasto10, card.CardBasto11, card.CardBasto12,
	card.CardCopa1, card.CardCopa2, card.CardCopa3, card.CardCopa4, card.CardCopa5,
	card.CardCopa6, card.CardCopa7, card.CardCopa10, card.CardCopa11, card.CardCopa12,
	card.CardOro1, card.CardOro2, card.CardOro3, card.CardOro4, card.CardOro5,
	card.CardOro6, card.CardOro7, card.CardOro10, card.CardOro11, card.CardOro12,
}
