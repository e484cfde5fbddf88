package game

import "carlettos_chess/shared"

// Square is an axis-aligned rectangle of tiles. Anchor is the
// south-west corner; the square spans [west, east) x [south, north).
type Square struct {
	Anchor shared.Pos `json:"anchor"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

func (s Square) North() int { return s.Anchor.Y + s.Height }
func (s Square) East() int  { return s.Anchor.X + s.Width }
func (s Square) South() int { return s.Anchor.Y }
func (s Square) West() int  { return s.Anchor.X }

func (s Square) NEPoint() shared.Pos { return s.Anchor.Add(shared.NewPos(s.Width, s.Height)) }
func (s Square) SEPoint() shared.Pos { return s.Anchor.Add(shared.NewPos(s.Width, 0)) }
func (s Square) SWPoint() shared.Pos { return s.Anchor }
func (s Square) NWPoint() shared.Pos { return s.Anchor.Add(shared.NewPos(0, s.Height)) }

func (s Square) Contains(pos shared.Pos) bool {
	return pos.X >= s.West() && pos.X < s.East() && pos.Y >= s.South() && pos.Y < s.North()
}

// Points enumerates every position in the square, column by column,
// south to north. The order is part of the board contract: tiles are
// stored in enumeration order.
func (s Square) Points() []shared.Pos {
	points := make([]shared.Pos, 0, s.Width*s.Height)
	for x := s.West(); x < s.East(); x++ {
		for y := s.South(); y < s.North(); y++ {
			points = append(points, shared.NewPos(x, y))
		}
	}
	return points
}

// Shape is the union of its squares. Squares may overlap; Points keeps
// the first occurrence of a position.
type Shape struct {
	Squares []Square `json:"squares"`
}

func NewShape(squares ...Square) Shape { return Shape{Squares: squares} }

func CChessboardShape() Shape {
	return NewShape(Square{Anchor: shared.NewPos(0, 0), Width: 16, Height: 17})
}

func DefaultChessboardShape() Shape {
	return NewShape(Square{Anchor: shared.NewPos(0, 0), Width: 8, Height: 8})
}

func CrossShape() Shape {
	return NewShape(
		Square{Anchor: shared.NewPos(2, 0), Width: 4, Height: 2},
		Square{Anchor: shared.NewPos(0, 2), Width: 2, Height: 4},
		Square{Anchor: shared.NewPos(2, 2), Width: 4, Height: 4},
		Square{Anchor: shared.NewPos(2, 6), Width: 4, Height: 2},
		Square{Anchor: shared.NewPos(6, 2), Width: 2, Height: 4},
	)
}

func (s Shape) Contains(pos shared.Pos) bool {
	for _, square := range s.Squares {
		if square.Contains(pos) {
			return true
		}
	}
	return false
}

func (s Shape) Points() []shared.Pos {
	var points []shared.Pos
	seen := make(map[shared.Pos]struct{})
	for _, square := range s.Squares {
		for _, pos := range square.Points() {
			if _, ok := seen[pos]; ok {
				continue
			}
			seen[pos] = struct{}{}
			points = append(points, pos)
		}
	}
	return points
}

func (s Shape) Height() int {
	height := 0
	for _, square := range s.Squares {
		if square.North() > height {
			height = square.North()
		}
	}
	return height
}
