package truco

import "truco-lite/card"

// Player is shared by reference between the orchestrator and all three
// negotiation engines; scores are only ever mutated through Credit.
type Player struct {
	ID    int // 1 or 2
	Name  string
	Robot bool

	hand   card.CardList
	score  int
	tricks int

	mao  bool // first to act this deal, wins ties
	last bool // last to act this deal

	envidoPoints int
	hasFlor      bool
	calledTruco  bool
}

func NewPlayer(id int, name string, robot bool) *Player {
	return &Player{ID: id, Name: name, Robot: robot}
}

func (p *Player) Score() int { return p.score }
func (p *Player) Tricks() int { return p.tricks }
func (p *Player) Mao() bool { return p.mao }
func (p *Player) Last() bool { return p.last }

func (p *Player) Hand() []card.Card { return p.hand }

func (p *Player) EnvidoPoints() int { return p.envidoPoints }
func (p *Player) HasFlor() bool { return p.hasFlor }

func (p *Player) CalledTruco() bool { return p.calledTruco }
func (p *Player) markCalledTruco() { p.calledTruco = true }

// Credit adds points to the cumulative score. Scores only grow; a
// non-positive amount is ignored.
func (p *Player) Credit(points int) {
	if points <= 0 {
		return
	}
	p.score += points
}

func (p *Player) addTrick() { p.tricks++ }

func (p *Player) setMao(v bool) {
	p.mao = v
	p.last = !v
}

// DealHand hands the player a fresh 3-card hand and caches the derived
// envido points and flor eligibility for the rest of the deal.
func (p *Player) DealHand(cards []card.Card) {
	p.hand = append(card.CardList(nil), cards...)
	p.tricks = 0
	p.calledTruco = false
	p.envidoPoints = EnvidoPoints(p.hand)
	p.hasFlor = HasFlor(p.hand)
}

// PlayCard removes and returns the card at idx (deal order).
func (p *Player) PlayCard(idx int) (card.Card, error) {
	if idx < 0 || idx >= len(p.hand) {
		return card.CardInvalid, ErrInvalidInput("no such card in hand")
	}
	c := p.hand[idx]
	p.hand = append(p.hand[:idx], p.hand[idx+1:]...)
	return c, nil
}

func (p *Player) ResetForNewDeal() {
	p.hand = nil
	p.tricks = 0
	p.calledTruco = false
	p.envidoPoints = 0
	p.hasFlor = false
}
