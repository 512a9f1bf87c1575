package card

const CardInvalid Card = 0

// Espadas
const (
	CardEspada1  Card = 0x01
	CardEspada2  Card = 0x02
	CardEspada3  Card = 0x03
	CardEspada4  Card = 0x04
	CardEspada5  Card = 0x05
	CardEspada6  Card = 0x06
	CardEspada7  Card = 0x07
	CardEspada10 Card = 0x0A
	CardEspada11 Card = 0x0B
	CardEspada12 Card = 0x0C
)

// Bastos
const (
	CardBasto1  Card = 0x11
	CardBasto2  Card = 0x12
	CardBasto3  Card = 0x13
	CardBasto4  Card = 0x14
	CardBasto5  Card = 0x15
	CardBasto6  Card = 0x16
	CardBasto7  Card = 0x17
	CardBasto10 Card = 0x1A
	CardBasto11 Card = 0x1B
	CardBasto12 Card = 0x1C
)

// Copas
const (
	CardCopa1  Card = 0x21
	CardCopa2  Card = 0x22
	CardCopa3  Card = 0x23
	CardCopa4  Card = 0x24
	CardCopa5  Card = 0x25
	CardCopa6  Card = 0x26
	CardCopa7  Card = 0x27
	CardCopa10 Card = 0x2A
	CardCopa11 Card = 0x2B
	CardCopa12 Card = 0x2C
)

// Ouros
const (
	CardOro1  Card = 0x31
	CardOro2  Card = 0x32
	CardOro3  Card = 0x33
	CardOro4  Card = 0x34
	CardOro5  Card = 0x35
	CardOro6  Card = 0x36
	CardOro7  Card = 0x37
	CardOro10 Card = 0x3A
	CardOro11 Card = 0x3B
	CardOro12 Card = 0x3C
)
