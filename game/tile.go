package game

import "carlettos_chess/shared"

// Tile is one cell of the board. Buildable defaults to true; magic
// tiles are the only places a warlock can open portals.
type Tile struct {
	Magic     bool       `json:"magic"`
	Buildable bool       `json:"buildable"`
	Piece     Piece      `json:"piece"`
	Pos       shared.Pos `json:"pos"`
}

func NewTile(pos shared.Pos) Tile {
	return Tile{Buildable: true, Pos: pos}
}

func (t *Tile) Color() (shared.Color, bool) {
	return t.Piece.Color()
}

func (t *Tile) IsControlledBy(color shared.Color) bool {
	c, ok := t.Piece.Color()
	return ok && c == color
}

func (t *Tile) IsEmpty() bool { return t.Piece.IsNone() }

func (t *Tile) HasPiece() bool { return !t.IsEmpty() }

// Replace puts a piece on the tile and returns the previous occupant.
func (t *Tile) Replace(piece Piece) Piece {
	prev := t.Piece
	t.Piece = piece
	return prev
}

func (t *Tile) Remove() Piece { return t.Replace(Piece{}) }

func (t *Tile) Tick(tick shared.Tick) {
	t.Piece.Tick(tick)
}
