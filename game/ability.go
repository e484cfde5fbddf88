package game

import "carlettos_chess/shared"

// AbilityData is the static cost of an ability: the cooldown stamped
// on the piece after use and the mana charged to its owner.
type AbilityData struct {
	Cooldown shared.Time
	Cost     Mana
}

// Ability is the active power of a piece kind. CanUse answers whether
// the ability could fire right now with the given payload; Use
// performs it. Use reports ErrWrongInfo for payloads of the wrong kind
// and ErrCannotUse when the board state refuses the action.
type Ability interface {
	Data() AbilityData
	CanUse(b *Board, from shared.Pos, info *Info) bool
	Use(b *Board, from shared.Pos, info *Info) error
}

func infoKind(info *Info) InfoKind {
	if info == nil {
		return InfoNone
	}
	return info.Kind
}
