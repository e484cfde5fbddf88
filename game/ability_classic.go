package game

import (
	"sort"

	"carlettos_chess/shared"
)

// Abilities of the six classic piece kinds.

// pawnAbility promotes the pawn on the far rank into the piece carried
// by the payload.
type pawnAbility struct{}

func (pawnAbility) Data() AbilityData {
	return AbilityData{}
}

func (pawnAbility) CanUse(b *Board, from shared.Pos, _ *Info) bool {
	data := b.Data(from)
	if data == nil {
		return false
	}
	if data.Color == shared.White {
		return b.Get(from.North()) == nil
	}
	return from.Y == 0
}

func (pawnAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoPiece {
		return ErrWrongInfo
	}
	tile := b.Get(from)
	if tile == nil {
		return ErrOutOfBoard
	}
	tile.Replace(info.Piece)
	return nil
}

// knightAbility raises a pawn on each flank.
type knightAbility struct{}

func (knightAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(10), Cost: 1}
}

func (knightAbility) CanUse(b *Board, from shared.Pos, _ *Info) bool {
	west, ok := from.West()
	if !ok {
		return false
	}
	return b.IsEmpty(from.East()) && b.IsEmpty(west)
}

func (knightAbility) Use(b *Board, from shared.Pos, _ *Info) error {
	data := b.Data(from)
	if data == nil {
		return ErrEmptyTile
	}
	west, ok := from.West()
	if !ok {
		return ErrCannotUse
	}
	east := b.Get(from.East())
	if east == nil || b.Get(west) == nil {
		return ErrCannotUse
	}
	east.Replace(NewPawn(data.Color))
	b.Get(west).Replace(NewPawn(data.Color))
	return nil
}

// bishopAbility sidesteps one tile in any cardinal direction.
type bishopAbility struct{}

func (bishopAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(2)}
}

func (bishopAbility) CanUse(b *Board, from shared.Pos, info *Info) bool {
	if infoKind(info) != InfoDirection {
		return false
	}
	to, ok := from.DirectionShift(info.Direction)
	return ok && b.IsEmpty(to)
}

func (bishopAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoDirection {
		return ErrWrongInfo
	}
	to, ok := from.DirectionShift(info.Direction)
	if !ok || b.Get(to) == nil {
		return ErrCannotUse
	}
	return b.MovePiece(from, to)
}

// rookAbility throws the whole connected group of friendly rooks in
// one direction. Each rook slides until it hits something, edge-most
// rooks first.
type rookAbility struct{}

func (rookAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(10)}
}

func (rookAbility) CanUse(_ *Board, _ shared.Pos, info *Info) bool {
	return infoKind(info) == InfoDirection
}

func (rookAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoDirection {
		return ErrWrongInfo
	}
	data := b.Data(from)
	if data == nil {
		return ErrEmptyTile
	}
	color := data.Color

	// Transitive closure of orthogonally connected rooks of the same
	// color, seeded by the thrower's neighbors. The thrower itself
	// only flies when it is part of the connected group.
	group := map[shared.Pos]bool{}
	var positions []shared.Pos
	queue := []shared.Pos{from}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, tile := range b.NearbyTiles(pos) {
			if tile.Piece.Kind != Rook || !tile.IsControlledBy(color) || group[tile.Pos] {
				continue
			}
			group[tile.Pos] = true
			positions = append(positions, tile.Pos)
			queue = append(queue, tile.Pos)
		}
	}
	direction := info.Direction
	sort.SliceStable(positions, func(i, j int) bool {
		switch direction {
		case shared.DirN:
			return positions[i].Y > positions[j].Y
		case shared.DirE:
			return positions[i].X > positions[j].X
		case shared.DirS:
			return positions[i].Y < positions[j].Y
		default:
			return positions[i].X < positions[j].X
		}
	})

	dx, dy := direction.Offset()
	for _, pos := range positions {
		rc := b.RayCastEmpty(pos, 0, dx, dy)
		if last := rc.Last(); last != nil {
			if err := b.MovePiece(pos, *last); err != nil {
				return err
			}
		}
	}
	return nil
}

// queenAbility jumps like a knight onto an empty tile.
type queenAbility struct{}

func (queenAbility) Data() AbilityData {
	return AbilityData{Cooldown: shared.Rounds(5)}
}

func (queenAbility) CanUse(b *Board, from shared.Pos, info *Info) bool {
	return infoKind(info) == InfoPos && knightMove(from, info.Pos) && b.IsEmpty(info.Pos)
}

func (queenAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoPos {
		return ErrWrongInfo
	}
	if !knightMove(from, info.Pos) || !b.IsEmpty(info.Pos) {
		return ErrCannotUse
	}
	return b.MovePiece(from, info.Pos)
}

// kingAbility teleports up to five tiles onto an empty square, once
// per game.
type kingAbility struct{}

func (kingAbility) Data() AbilityData {
	return AbilityData{Cost: 2}
}

func (kingAbility) CanUse(b *Board, from shared.Pos, info *Info) bool {
	return infoKind(info) == InfoPos && squareRange(from, info.Pos, 5) && b.IsEmpty(info.Pos)
}

func (kingAbility) Use(b *Board, from shared.Pos, info *Info) error {
	if infoKind(info) != InfoPos {
		return ErrWrongInfo
	}
	if !squareRange(from, info.Pos, 5) || !b.IsEmpty(info.Pos) {
		return ErrCannotUse
	}
	return b.MovePiece(from, info.Pos)
}
