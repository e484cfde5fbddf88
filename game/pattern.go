package game

import "carlettos_chess/shared"

// Movement patterns. Each predicate answers whether a piece standing
// on from may reach to, geometry only; occupancy rules for the target
// tile belong to the caller.

func forwardSign(color shared.Color) int {
	if color == shared.White {
		return 1
	}
	return -1
}

func pawnMove(b *Board, color shared.Color, from, to shared.Pos) bool {
	sign := forwardSign(color)
	next, ok := from.Shift(0, sign)
	if ok && to == next {
		return true
	}
	next2, ok2 := from.Shift(0, 2*sign)
	return ok2 && to == next2 && ok && b.IsEmpty(next)
}

func pawnTake(_ *Board, color shared.Color, from, to shared.Pos) bool {
	sign := forwardSign(color)
	if left, ok := from.Shift(-1, sign); ok && to == left {
		return true
	}
	right, ok := from.Shift(1, sign)
	return ok && to == right
}

func knightMove(from, to shared.Pos) bool {
	d := from.AbsDiff(to)
	return (d.X == 2 && d.Y == 1) || (d.X == 1 && d.Y == 2)
}

func kingMove(from, to shared.Pos) bool {
	d := from.AbsDiff(to)
	return d.X < 2 && d.Y < 2
}

func lineSign(from, to int) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	default:
		return 0
	}
}

func bishopMove(b *Board, from, to shared.Pos) bool {
	d := from.AbsDiff(to)
	if d.X != d.Y {
		return false
	}
	signX := 1
	if to.X < from.X {
		signX = -1
	}
	signY := 1
	if to.Y < from.Y {
		signY = -1
	}
	return b.RayCastEmpty(from, 0, signX, signY).Contains(to)
}

func rookMove(b *Board, from, to shared.Pos) bool {
	d := from.AbsDiff(to)
	if d.X != 0 && d.Y != 0 {
		return false
	}
	return b.RayCastEmpty(from, 0, lineSign(from.X, to.X), lineSign(from.Y, to.Y)).Contains(to)
}

func queenMove(b *Board, from, to shared.Pos) bool {
	return bishopMove(b, from, to) || rookMove(b, from, to)
}

func squareRange(from, to shared.Pos, r int) bool {
	d := from.AbsDiff(to)
	return d.X <= r && d.Y <= r
}

func crossRange(from, to shared.Pos, r int) bool {
	d := from.AbsDiff(to)
	return (d.X == 0 || d.Y == 0) && d.X+d.Y <= r
}

// blockeableCross is a cross pattern stopped by enemy impenetrable
// pieces of at least the given strength.
func blockeableCross(b *Board, color shared.Color, from, to shared.Pos, r, strength int) bool {
	d := from.AbsDiff(to)
	if d.X != 0 && d.Y != 0 {
		return false
	}
	if d.X+d.Y > r {
		return false
	}
	rc := b.RayCast(from, r, lineSign(from.X, to.X), lineSign(from.Y, to.Y), func(t *Tile) bool {
		return t.Piece.IsImpenetrable(strength) && !t.IsControlledBy(color)
	})
	return rc.Contains(to)
}

func archerMove(from, to shared.Pos) bool {
	return magicianMove(from, to) || kingMove(from, to)
}

func magicianMove(from, to shared.Pos) bool {
	d := from.AbsDiff(to)
	return d.X == d.Y && d.X <= 2
}

func structureMove(from, to shared.Pos) bool {
	d := from.AbsDiff(to)
	return (d.X == 0 && d.Y == 1) || (d.X == 1 && d.Y == 0)
}

// crazyPawnMove picks a subdirection from the movement RNG stream; the
// pawn may step one or two tiles that way. The stream only advances on
// ticks, so all queries within a movement agree.
func crazyPawnMove(b *Board, from, to shared.Pos) bool {
	sd := shared.SubDirection(int(b.Rng.Movement.Float64() * 8))
	step, ok := from.SubDirectionShift(sd)
	if !ok {
		return false
	}
	if to == step {
		return true
	}
	step2, ok := step.SubDirectionShift(sd)
	return ok && to == step2
}

func superPawnMove(b *Board, color shared.Color, from, to shared.Pos) bool {
	sign := forwardSign(color)
	for _, dx := range []int{-1, 0, 1} {
		next, ok := from.Shift(dx, sign)
		if ok && to == next {
			return true
		}
		next2, ok2 := from.Shift(dx, 2*sign)
		if ok2 && to == next2 && ok && b.IsEmpty(next) {
			return true
		}
	}
	return false
}

func superPawnTake(_ *Board, color shared.Color, from, to shared.Pos) bool {
	sign := forwardSign(color)
	for _, dx := range []int{-1, 0, 1} {
		if next, ok := from.Shift(dx, sign); ok && to == next {
			return true
		}
	}
	return false
}
