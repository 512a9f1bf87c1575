package card

type Suit byte

const (
	Espada Suit = iota // swords
	Basto              // clubs
	Copa               // cups
	Oro                // coins
)

func (s Suit) String() string {
	switch s {
	case Espada:
		return "Espadas"
	case Basto:
		return "Bastos"
	case Copa:
		return "Copas"
	case Oro:
		return "Ouros"
	}
	return "?"
}
