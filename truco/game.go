package truco

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"truco-lite/card"
)

// Game sequences deals and tricks for a two-player match and owns the
// three negotiation engines plus the arbiter that keeps them mutually
// exclusive. All play is single-threaded; nothing here is safe for
// concurrent use.
type Game struct {
	ID uuid.UUID

	P1 *Player
	P2 *Player

	cfg  Config
	rng  *rand.Rand
	deck card.CardList

	arbiter *NegotiationArbiter
	truco   *TrucoBet
	envido  *Envido
	flor    *Flor

	deps Deps

	dealNo int
	leadID int
	tricks []TrickResult
}

func NewGame(cfg Config, p1, p2 *Player, deps Deps) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	arbiter := NewNegotiationArbiter()
	flor := NewFlor(cfg.TargetScore, arbiter, deps)
	return &Game{
		ID:      uuid.New(),
		P1:      p1,
		P2:      p2,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		arbiter: arbiter,
		truco:   NewTrucoBet(arbiter, deps),
		envido:  NewEnvido(cfg.TargetScore, arbiter, flor, deps),
		flor:    flor,
		deps:    deps,
	}, nil
}

func (g *Game) Truco() *TrucoBet { return g.truco }
func (g *Game) Envido() *Envido { return g.envido }
func (g *Game) Flor() *Flor { return g.flor }
func (g *Game) DealNumber() int { return g.dealNo }
func (g *Game) LeadID() int { return g.leadID }
func (g *Game) TargetScore() int { return g.cfg.TargetScore }

func (g *Game) TrickResults() []TrickResult {
	return append([]TrickResult(nil), g.tricks...)
}

// StartDeal shuffles a fresh deck, deals 3 cards to each player, resets
// every negotiation engine and flips which player is mão.
func (g *Game) StartDeal() error {
	if g.MatchWinner() != nil {
		return ErrMatchOver
	}

	g.dealNo++
	g.tricks = nil
	g.P1.ResetForNewDeal()
	g.P2.ResetForNewDeal()
	g.arbiter.Reset()
	g.truco.Reset()
	g.envido.Reset()
	g.flor.Reset()

	g.deck.Init(TrucoDeck)
	g.deck.Shuffle(g.rng)
	h1, ok := g.deck.PopCards(3)
	if !ok {
		return ErrInvalidState("deck exhausted dealing player 1")
	}
	h2, ok := g.deck.PopCards(3)
	if !ok {
		return ErrInvalidState("deck exhausted dealing player 2")
	}
	g.P1.DealHand(h1)
	g.P2.DealHand(h2)

	// Mão alternates every deal; mão leads the first trick.
	p1Mao := g.dealNo%2 == 1
	g.P1.setMao(p1Mao)
	g.P2.setMao(!p1Mao)
	if p1Mao {
		g.leadID = g.P1.ID
	} else {
		g.leadID = g.P2.ID
	}

	g.deps.display().Show(EventDealStarted, PointsAward{Points: g.dealNo})
	return nil
}

// NoteCardPlayed tells the negotiation machines a card hit the table.
// Playing a card lifts the opponent's truco raise bar.
func (g *Game) NoteCardPlayed(playerID int) {
	g.truco.NoteCardPlayed(playerID)
}

// RankTrick compares the two cards of a trick, player 1's card first.
func (g *Game) RankTrick(c1, c2 card.Card) (TrickResult, error) {
	return CompareCards(c1, c2)
}

// RecordTrick books a resolved trick. A tied trick counts for neither
// player and leaves the lead unchanged; a won trick hands its winner the
// lead for the next one.
func (g *Game) RecordTrick(result TrickResult) error {
	switch result {
	case TrickPlayer1:
		g.P1.addTrick()
		g.leadID = g.P1.ID
	case TrickPlayer2:
		g.P2.addTrick()
		g.leadID = g.P2.ID
	case TrickTie:
	default:
		return ErrInvalidState(fmt.Sprintf("unrecordable trick result %d", result))
	}
	g.tricks = append(g.tricks, result)
	g.deps.display().Show(EventTrickResolved, PointsAward{
		Player: TrickResultDictionary[result],
		Points: len(g.tricks),
	})
	return nil
}

// HandWinner applies the parda rules in strict trick order and returns
// the hand's winner, or nil while the hand is still undecided.
func (g *Game) HandWinner() *Player {
	if g.P1.Tricks() >= 2 {
		return g.P1
	}
	if g.P2.Tricks() >= 2 {
		return g.P2
	}
	r := g.tricks
	if len(r) >= 2 {
		if r[0] == TrickTie && r[1] != TrickTie {
			return g.playerFor(r[1])
		}
		if r[0] != TrickTie && r[1] == TrickTie {
			return g.playerFor(r[0])
		}
	}
	if len(r) == 3 {
		if r[2] != TrickTie {
			return g.playerFor(r[2])
		}
		if r[0] != TrickTie {
			// 1-1 with a tied third trick: the first trick decides.
			return g.playerFor(r[0])
		}
		return g.maoPlayer()
	}
	return nil
}

// SettleHand credits the current truco stake to the hand's winner. It is
// the caller's job to only settle once HandWinner is non-nil; settling
// an undecided hand is an invalid state.
func (g *Game) SettleHand() (*Player, error) {
	winner := g.HandWinner()
	if winner == nil {
		return nil, ErrInvalidState("settling an undecided hand")
	}
	winner.Credit(g.truco.Stake())
	g.deps.display().Show(EventHandSettled, PointsAward{
		Player: winner.Name,
		Points: g.truco.Stake(),
		Reason: "hand",
	})
	return winner, nil
}

// Fold ends the hand with the folding player conceding the current truco
// stake to the opponent ("ir ao monte").
func (g *Game) Fold(folderID int) (*Player, error) {
	var folder, opponent *Player
	switch folderID {
	case g.P1.ID:
		folder, opponent = g.P1, g.P2
	case g.P2.ID:
		folder, opponent = g.P2, g.P1
	default:
		return nil, ErrInvalidInput(fmt.Sprintf("unknown player id %d", folderID))
	}
	opponent.Credit(g.truco.Stake())
	g.deps.display().Show(EventFold, PointsAward{
		Player: folder.Name,
		Points: g.truco.Stake(),
		Reason: "fold",
	})
	return opponent, nil
}

// MatchWinner returns the first player at or past the target score, or
// nil while the match is still running.
func (g *Game) MatchWinner() *Player {
	if g.P1.Score() >= g.cfg.TargetScore {
		return g.P1
	}
	if g.P2.Score() >= g.cfg.TargetScore {
		return g.P2
	}
	return nil
}

func (g *Game) playerFor(r TrickResult) *Player {
	switch r {
	case TrickPlayer1:
		return g.P1
	case TrickPlayer2:
		return g.P2
	}
	return nil
}

func (g *Game) maoPlayer() *Player {
	if g.P1.Mao() {
		return g.P1
	}
	return g.P2
}
