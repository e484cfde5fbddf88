package game

import "carlettos_chess/shared"

// Mana never goes below zero; Sub saturates.
type Mana int

func (m Mana) Add(n Mana) Mana { return m + n }

func (m Mana) Sub(n Mana) Mana {
	if n >= m {
		return 0
	}
	return m - n
}

// Movements is how many movements a player spends per turn.
type Movements int

type Player struct {
	ID          int            `json:"id"`
	Color       shared.Color   `json:"color"`
	Movements   Movements      `json:"movements"`
	Mana        Mana           `json:"mana"`
	Hand        Cards          `json:"hand"`
	Deck        Cards          `json:"deck"`
	DiscardPile Cards          `json:"discard_pile"`
}

func NewPlayer(color shared.Color, id int, deck Cards) Player {
	return Player{
		ID:        id,
		Color:     color,
		Movements: 1,
		Deck:      deck,
	}
}

// TakeFromDeck moves the top deck card into the hand.
func (p *Player) TakeFromDeck() error {
	card, ok := p.Deck.Take()
	if !ok {
		return ErrEmptyDeck
	}
	p.Hand.Add(card)
	return nil
}

// Tick regenerates one mana on round ticks and ages every card zone.
func (p *Player) Tick(tick shared.Tick) {
	if tick == shared.TickRound {
		p.Mana = p.Mana.Add(1)
	}
	p.DiscardPile.Tick(tick, PlaceDiscardPile)
	p.Deck.Tick(tick, PlaceDeck)
	p.Hand.Tick(tick, PlaceHand)
}
