package game

import "carlettos_chess/shared"

// Abilities of the custom piece kinds.

// builderAbility raises walls on the three tiles facing a direction.
// Occupied tiles are skipped.
type builderAbility struct{}

func (builderAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(10)}
}

func (builderAbility) CanUse(_ *Board, _ shared.Pos, info *Info) bool {
	return infoKind(info) == InfoDirection
}

func (builderAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoDirection {
		return ErrWrongInfo
	}
	data := b.Data(from)
	if data == nil {
		return ErrEmptyTile
	}
	for _, sd := range info.Direction.RelatedSubDirections() {
		pos, ok := from.SubDirectionShift(sd)
		if !ok {
			continue
		}
		if tile := b.Get(pos); tile != nil && tile.IsEmpty() {
			tile.Replace(NewWall(data.Color))
		}
	}
	return nil
}

// catapultAbility hurls an adjacent transportable piece a number of
// tiles in a cardinal direction.
type catapultAbility struct{}

func (catapultAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(2)}
}

func (catapultAbility) CanUse(b *Board, from shared.Pos, info *Info) bool {
	if infoKind(info) != InfoCatapult {
		return false
	}
	piecePos, ok := from.SubDirectionShift(info.SubDirection)
	if !ok {
		return false
	}
	tile := b.Get(piecePos)
	if tile == nil || !tile.Piece.IsTransportable(5) {
		return false
	}
	dx, dy := info.Direction.Offset()
	to, ok := from.Shift(dx*info.Distance, dy*info.Distance)
	return ok && b.IsEmpty(to)
}

func (catapultAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoCatapult {
		return ErrWrongInfo
	}
	if !(catapultAbility{}).CanUse(b, from, info) {
		return ErrCannotUse
	}
	piecePos, _ := from.SubDirectionShift(info.SubDirection)
	dx, dy := info.Direction.Offset()
	to, _ := from.Shift(dx*info.Distance, dy*info.Distance)
	return b.MovePiece(piecePos, to)
}

// crazyPawnAbility queues an event that draws two cards and reshuffles
// the current player's deck.
type crazyPawnAbility struct{}

func (crazyPawnAbility) Data() AbilityData {
	return AbilityData{}
}

func (crazyPawnAbility) CanUse(_ *Board, _ shared.Pos, _ *Info) bool {
	return true
}

func (crazyPawnAbility) Use(b *Board, _ shared.Pos, _ *Info) error {
	current := b.CurrentPlayer()
	if current == nil {
		return ErrPlayerNotFound
	}
	b.AddEvent(NewEvent("Crazy Pawn Cards!",
		TakeCard(current.ID),
		TakeCard(current.ID),
		ShuffleDeck(current.ID),
	))
	return nil
}

// magicianAbility burns or freezes everything within four tiles,
// depending on which elemental cards are in play.
type magicianAbility struct{}

func (magicianAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(6), Cost: 2}
}

func (magicianAbility) CanUse(b *Board, _ shared.Pos, _ *Info) bool {
	return b.HasAnyCardOnBoard(CardIce, CardFire)
}

func (magicianAbility) Use(b *Board, from shared.Pos, _ *Info) error {
	hasIce := b.HasCardOnBoard(CardIce)
	hasFire := b.HasCardOnBoard(CardFire)
	if !hasIce && !hasFire {
		return ErrCannotUse
	}
	for _, tile := range b.TilesFromPattern(from, func(from, to shared.Pos) bool {
		return squareRange(from, to, 4)
	}) {
		if tile.Piece.Data == nil {
			continue
		}
		if hasFire {
			tile.Piece.Data.AddEffect(Fire())
		}
		if hasIce {
			tile.Piece.Data.AddEffect(Ice())
		}
	}
	return nil
}

// paladinAbility is three card-bound powers: smite an enemy, shield an
// ally, or revive the last fallen piece of its color.
type paladinAbility struct{}

func (paladinAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(8), Cost: 2}
}

func (paladinAbility) CanUse(b *Board, from shared.Pos, info *Info) bool {
	if infoKind(info) != InfoPaladin {
		return false
	}
	data := b.Data(from)
	if data == nil {
		return false
	}
	to := info.Paladin.To
	switch info.Paladin.Mode {
	case PaladinAttack:
		return b.HasCardOnBoard(CardAttackDemonic) && b.HasPiece(to) && !b.SameColor(from, to)
	case PaladinInvulnerability:
		return b.HasCardOnBoard(CardInvulnerability) && b.HasPiece(to) && b.SameColor(from, to)
	case PaladinRevive:
		return b.HasCardOnBoard(CardRevive) && b.IsEmpty(to) && b.LastDeadWithColor(data.Color) != nil
	default:
		return false
	}
}

func (paladinAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoPaladin {
		return ErrWrongInfo
	}
	if !(paladinAbility{}).CanUse(b, from, info) {
		return ErrCannotUse
	}
	to := info.Paladin.To
	switch info.Paladin.Mode {
	case PaladinAttack:
		return b.AttackPiece(from, to)
	case PaladinInvulnerability:
		b.Data(to).AddEffect(Effect{Kind: EffectInvulnerability, Duration: shared.Rounds(5)})
		return nil
	case PaladinRevive:
		data := b.Data(from)
		revived := b.RemoveLastDeadWithColor(data.Color)
		if revived.IsNone() {
			return ErrCannotUse
		}
		b.Get(to).Replace(revived)
		return nil
	default:
		return ErrWrongInfo
	}
}

// ramAbility charges in a direction, trampling pieces until its
// momentum runs out or an impenetrable piece stops it.
type ramAbility struct{}

func (ramAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Turns(4)}
}

func (ramAbility) CanUse(_ *Board, _ shared.Pos, info *Info) bool {
	return infoKind(info) == InfoDirection
}

func (ramAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoDirection {
		return ErrWrongInfo
	}
	data := b.Data(from)
	if data == nil {
		return ErrEmptyTile
	}
	strength := data.Strength()
	dx, dy := info.Direction.Offset()
	rc := b.RayCast(from, 0, dx, dy, (*Tile).HasPiece)

	if rc.Collision == nil {
		// Free run to the edge of the board.
		if last := rc.Last(); last != nil {
			return b.MovePiece(from, *last)
		}
		return nil
	}

	// One tile of trampling momentum per five tiles of run-up.
	charge := rc.Len()/5 + 1
	if b.Get(*rc.Collision).Piece.IsImpenetrable(strength) {
		if last := rc.Last(); last != nil {
			return b.MovePiece(from, *last)
		}
		return nil
	}

	ram := b.Get(from).Remove()
	to := *rc.Collision
	if err := b.AttackPiece(from, to); err != nil {
		return err
	}
	for i := 0; i < charge; i++ {
		prev := to
		next, ok := to.DirectionShift(info.Direction)
		if !ok || b.Get(next) == nil {
			// Edge of the board ends the charge.
			b.Get(prev).Replace(ram)
			return nil
		}
		to = next
		if b.Get(to).Piece.IsImpenetrable(strength) {
			b.Get(prev).Replace(ram)
			return nil
		}
		if err := b.AttackPiece(from, to); err != nil {
			return err
		}
		if i == charge-1 {
			b.Get(to).Replace(ram)
			return nil
		}
	}
	return nil
}

// shieldBearerAbility hardens every piece around it, itself included.
type shieldBearerAbility struct{}

func (shieldBearerAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(15)}
}

func (shieldBearerAbility) CanUse(_ *Board, _ shared.Pos, _ *Info) bool {
	return true
}

func (shieldBearerAbility) Use(b *Board, from shared.Pos, _ *Info) error {
	for i := range b.Tiles {
		if kingMove(from, b.Tiles[i].Pos) {
			b.Tiles[i].Piece.AddType(Impenetrable(1))
		}
	}
	return nil
}

// shipAbility fires a broadside at every tile on both flanks.
type shipAbility struct{}

func (shipAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(12)}
}

func (shipAbility) CanUse(_ *Board, _ shared.Pos, _ *Info) bool {
	return true
}

func (shipAbility) Use(b *Board, from shared.Pos, _ *Info) error {
	for _, dir := range []shared.Direction{shared.DirE, shared.DirW} {
		for _, sd := range dir.RelatedSubDirections() {
			target, ok := from.SubDirectionShift(sd)
			if !ok || b.Get(target) == nil {
				continue
			}
			if err := b.AttackPiece(from, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// superPawnAbility permanently hardens the super pawn itself.
type superPawnAbility struct{}

func (superPawnAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(10)}
}

func (superPawnAbility) CanUse(b *Board, from shared.Pos, _ *Info) bool {
	piece := b.PieceAt(from)
	return piece != nil && !piece.IsImmune() && !piece.IsImpenetrable(10)
}

func (superPawnAbility) Use(b *Board, from shared.Pos, _ *Info) error {
	tile := b.Get(from)
	if tile == nil {
		return ErrOutOfBoard
	}
	tile.Piece.AddType(Immune())
	tile.Piece.AddType(Impenetrable(10))
	return nil
}

// teslaTowerAbility schedules a pulse that deactivates enemy
// structures within three tiles, two turns from now.
type teslaTowerAbility struct{}

func (teslaTowerAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(10), Cost: 1}
}

func (teslaTowerAbility) CanUse(_ *Board, _ shared.Pos, _ *Info) bool {
	return true
}

func (teslaTowerAbility) Use(b *Board, from shared.Pos, _ *Info) error {
	data := b.Data(from)
	if data == nil {
		return ErrEmptyTile
	}
	b.AddEvent(FullEvent("Tesla Tower Ability", shared.Turns(2), from,
		ApplyEffect(Deactivate(), from, TrioFilter(
			SquareFilter(3),
			IsTypeFilter(Structure()),
			IsNotColorFilter(data.Color),
		)),
	))
	return nil
}

// warlockAbility opens portals on the nearby empty magic tiles.
type warlockAbility struct{}

func (warlockAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(5), Cost: 3}
}

func (warlockAbility) CanUse(b *Board, from shared.Pos, _ *Info) bool {
	for _, tile := range b.TilesFromPattern(from, kingMove) {
		if tile.IsEmpty() && tile.Buildable && tile.Magic {
			return true
		}
	}
	return false
}

func (warlockAbility) Use(b *Board, from shared.Pos, _ *Info) error {
	data := b.Data(from)
	if data == nil {
		return ErrEmptyTile
	}
	for _, tile := range b.TilesFromPattern(from, kingMove) {
		if tile.IsEmpty() && tile.Buildable && tile.Magic {
			tile.Replace(NewPortal(data.Color))
		}
	}
	return nil
}

// portalAbility is reserved for the necromancer expansion.
type portalAbility struct{}

func (portalAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Turns(1)}
}

func (portalAbility) CanUse(_ *Board, _ shared.Pos, _ *Info) bool {
	return true
}

func (portalAbility) Use(_ *Board, _ shared.Pos, _ *Info) error {
	return ErrNotImplemented
}
