package game

import "carlettos_chess/shared"

// RayCastInfo is the result of walking the board from a starting tile
// in a fixed step. Start is nil when the walk never began (origin off
// board), Mid holds the tiles passed before stopping and Collision is
// the first tile the stop predicate accepted, if any.
type RayCastInfo struct {
	Start     *shared.Pos
	Mid       []shared.Pos
	Collision *shared.Pos
}

func (rc RayCastInfo) IsEmpty() bool {
	return rc.Start == nil && rc.Mid == nil && rc.Collision == nil
}

// Len counts every position the ray touched, origin and collision
// included.
func (rc RayCastInfo) Len() int {
	n := len(rc.Mid)
	if rc.Start != nil {
		n++
	}
	if rc.Collision != nil {
		n++
	}
	return n
}

func (rc RayCastInfo) Contains(pos shared.Pos) bool {
	if rc.Start != nil && *rc.Start == pos {
		return true
	}
	if rc.ContainsMid(pos) {
		return true
	}
	return rc.Collision != nil && *rc.Collision == pos
}

func (rc RayCastInfo) ContainsMid(pos shared.Pos) bool {
	for _, p := range rc.Mid {
		if p == pos {
			return true
		}
	}
	return false
}

func (rc RayCastInfo) First() *shared.Pos {
	if len(rc.Mid) == 0 {
		return nil
	}
	return &rc.Mid[0]
}

func (rc RayCastInfo) Last() *shared.Pos {
	if len(rc.Mid) == 0 {
		return nil
	}
	return &rc.Mid[len(rc.Mid)-1]
}

// RayCast walks from the origin by (dx, dy) until limit positions were
// passed, the board edge was reached or stop accepted a tile. A limit
// of zero or less means unlimited. The origin itself is never tested
// against stop.
func (b *Board) RayCast(from shared.Pos, limit, dx, dy int, stop func(*Tile) bool) RayCastInfo {
	if !b.Contains(from) {
		return RayCastInfo{}
	}
	start := from
	next, ok := from.Shift(dx, dy)
	if !ok {
		return RayCastInfo{Start: &start}
	}
	var mid []shared.Pos
	for {
		if limit > 0 && len(mid) == limit {
			break
		}
		if !b.Contains(next) {
			break
		}
		if stop(b.Get(next)) {
			collision := next
			return RayCastInfo{Start: &start, Mid: mid, Collision: &collision}
		}
		mid = append(mid, next)
		next, ok = next.Shift(dx, dy)
		if !ok {
			break
		}
	}
	return RayCastInfo{Start: &start, Mid: mid}
}

// RayCastEmpty stops at the first occupied tile.
func (b *Board) RayCastEmpty(from shared.Pos, limit, dx, dy int) RayCastInfo {
	return b.RayCast(from, limit, dx, dy, func(t *Tile) bool { return t.HasPiece() })
}
