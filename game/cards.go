package game

import (
	"fmt"

	"carlettos_chess/shared"
)

type Card uint8

const (
	// Summons
	CardKnight Card = iota
	CardRook
	CardWarlock
	// Board state
	CardIce
	CardFire
	CardAttackDemonic
	CardInvulnerability
	CardRevive
	// Utility
	CardAddMovement
)

func (c Card) Cost() Mana {
	switch c {
	case CardKnight:
		return 2
	case CardRook:
		return 0
	case CardWarlock:
		return 5
	case CardIce, CardFire, CardAttackDemonic:
		return 3
	case CardInvulnerability:
		return 5
	case CardRevive:
		return 4
	case CardAddMovement:
		return 1
	default:
		return 0
	}
}

func (c Card) String() string {
	switch c {
	case CardKnight:
		return "knight"
	case CardRook:
		return "rook"
	case CardWarlock:
		return "warlock"
	case CardIce:
		return "ice"
	case CardFire:
		return "fire"
	case CardAttackDemonic:
		return "attack_demonic"
	case CardInvulnerability:
		return "invulnerability"
	case CardRevive:
		return "revive"
	case CardAddMovement:
		return "add_movement"
	default:
		return fmt.Sprintf("card(%d)", c)
	}
}

func ParseCard(s string) (Card, bool) {
	switch s {
	case "knight":
		return CardKnight, true
	case "rook":
		return CardRook, true
	case "warlock":
		return CardWarlock, true
	case "ice":
		return CardIce, true
	case "fire":
		return CardFire, true
	case "attack_demonic":
		return CardAttackDemonic, true
	case "invulnerability":
		return CardInvulnerability, true
	case "revive":
		return CardRevive, true
	case "add_movement":
		return CardAddMovement, true
	default:
		return CardKnight, false
	}
}

func (c Card) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Card) UnmarshalText(text []byte) error {
	parsed, ok := ParseCard(string(text))
	if !ok {
		return fmt.Errorf("invalid card %q", string(text))
	}
	*c = parsed
	return nil
}

// CardPlace names the zone a card pile lives in.
type CardPlace uint8

const (
	PlaceDeck CardPlace = iota
	PlaceHand
	PlaceDiscardPile
	PlaceOnBoard
)

func (p CardPlace) String() string {
	switch p {
	case PlaceDeck:
		return "deck"
	case PlaceHand:
		return "hand"
	case PlaceDiscardPile:
		return "discard_pile"
	case PlaceOnBoard:
		return "on_board"
	default:
		return fmt.Sprintf("place(%d)", p)
	}
}

// Cards is an ordered pile. Take pops from the top (the end).
type Cards []Card

func (cs *Cards) Add(card Card) {
	*cs = append(*cs, card)
}

// Remove drops the first matching card, reporting whether one was
// found.
func (cs *Cards) Remove(card Card) bool {
	for i, c := range *cs {
		if c == card {
			*cs = append((*cs)[:i], (*cs)[i+1:]...)
			return true
		}
	}
	return false
}

func (cs *Cards) Take() (Card, bool) {
	if len(*cs) == 0 {
		return 0, false
	}
	card := (*cs)[len(*cs)-1]
	*cs = (*cs)[:len(*cs)-1]
	return card, true
}

func (cs Cards) IsEmpty() bool { return len(cs) == 0 }

func (cs Cards) Len() int { return len(cs) }

func (cs Cards) Contains(card Card) bool {
	for _, c := range cs {
		if c == card {
			return true
		}
	}
	return false
}

func (cs Cards) ContainsAny(cards ...Card) bool {
	for _, c := range cards {
		if cs.Contains(c) {
			return true
		}
	}
	return false
}

// Shuffle rearranges the pile with a Fisher-Yates walk over the given
// generator. Board state is the only entropy source, so a serialized
// game reshuffles identically.
func (cs Cards) Shuffle(rng *RandomNumberGenerator) {
	for i := len(cs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cs[i], cs[j] = cs[j], cs[i]
	}
}

// Tick is the aging hook for card zones. No card ages yet; the hook
// keeps zone ticking uniform with tiles and events.
func (cs Cards) Tick(tick shared.Tick, place CardPlace) {
	_ = tick
	_ = place
}
