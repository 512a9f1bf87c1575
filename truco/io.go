package truco

import (
	"strconv"
	"strings"
)

// EventKind names a display event. The display sink is fire-and-forget:
// it returns nothing and must never block the engine.
type EventKind string

const (
	EventDealStarted    EventKind = "deal_started"
	EventCardPlayed     EventKind = "card_played"
	EventTrickResolved  EventKind = "trick_resolved"
	EventBetCalled      EventKind = "bet_called"
	EventBetAccepted    EventKind = "bet_accepted"
	EventBetDeclined    EventKind = "bet_declined"
	EventPointsAwarded  EventKind = "points_awarded"
	EventEnvidoShowdown EventKind = "envido_showdown"
	EventFlorShowdown   EventKind = "flor_showdown"
	EventHandSettled    EventKind = "hand_settled"
	EventFold           EventKind = "fold"
)

// BetAnnouncement accompanies EventBetCalled/Accepted/Declined.
type BetAnnouncement struct {
	Caller string
	Bet    string
	Stake  int
}

// PointsAward accompanies EventPointsAwarded, EventHandSettled, EventFold.
type PointsAward struct {
	Player string
	Points int
	Reason string
}

// ShowdownInfo accompanies EventEnvidoShowdown and EventFlorShowdown.
type ShowdownInfo struct {
	Winner  string
	Player1 string
	Points1 int
	Player2 string
	Points2 int
	Stake   int
}

// Display is the terminal rendering sink.
type Display interface {
	Show(event EventKind, payload any)
}

// InputSource is the blocking human choice source. Parsing the returned
// string is the engine's responsibility.
type InputSource interface {
	Prompt(message string) (string, error)
}

// OracleQuery is a situation descriptor handed to the bot's decision
// oracle: which negotiation, who asked, a numeric strength signal and one
// boolean context flag (typically "bot is losing the match").
type OracleQuery struct {
	Kind     BetKind
	Level    int
	WhoAsked int
	Strength float64
	Flag     bool
}

// Oracle decides for the bot side of a negotiation. It is pure per query:
// one call per decision point, no retries. An oracle error is fatal for
// the negotiation and propagates to the caller.
type Oracle interface {
	Decide(q OracleQuery) (int, error)
}

// Deps bundles the injected collaborators every negotiation engine needs.
type Deps struct {
	Oracle  Oracle
	Input   InputSource
	Display Display
}

func (d Deps) display() Display {
	if d.Display == nil {
		return noopDisplay{}
	}
	return d.Display
}

type noopDisplay struct{}

func (noopDisplay) Show(EventKind, any) {}

// promptDecision asks the human for one of the allowed decision codes.
// Anything non-numeric or outside allowed fails with InvalidInputError.
func promptDecision(in InputSource, message string, allowed ...int) (int, error) {
	raw, err := in.Prompt(message)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidInput("not a number: " + raw)
	}
	for _, a := range allowed {
		if n == a {
			return n, nil
		}
	}
	return 0, ErrInvalidInput("option out of range: " + raw)
}
