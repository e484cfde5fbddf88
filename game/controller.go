package game

import (
	"carlettos_chess/internal/logging"
	"carlettos_chess/shared"
)

// CChess is the click-driven front end over a board. The first click
// selects a piece and computes its legal targets; the second click
// performs the chosen action and clears the selection.
type CChess struct {
	Board     *Board       `json:"board"`
	Selected  *shared.Pos  `json:"selected,omitempty"`
	Moves     []shared.Pos `json:"moves"`
	Takes     []shared.Pos `json:"takes"`
	Attacks   []shared.Pos `json:"attacks"`
	Abilities []shared.Pos `json:"abilities"`
}

// NewCChess wraps a prebuilt board.
func NewCChess(board *Board) *CChess {
	return &CChess{Board: board}
}

// DefaultChessboardGame starts a classic game.
func DefaultChessboardGame() *CChess {
	return NewCChess(DefaultChessboard())
}

// CChessboardGame starts a full game.
func CChessboardGame() *CChess {
	return NewCChess(CChessboard())
}

// DefaultDisplay is a two-row showcase board with one piece of each
// classic kind per color.
func DefaultDisplay() *CChess {
	board := WithShape(NewShape(Square{Anchor: shared.NewPos(0, 0), Width: 30, Height: 2}))
	kinds := []func(shared.Color) Piece{
		NewPawn, NewKnight, NewBishop, NewRook, NewQueen, NewKing, NewArcher, NewBallista,
	}
	for x, constructor := range kinds {
		board.Get(shared.NewPos(x, 0)).Replace(constructor(shared.White))
		board.Get(shared.NewPos(x, 1)).Replace(constructor(shared.Black))
	}
	return NewCChess(board)
}

// Click handles a click at pos. Reports whether the click changed the
// selection state; clicks outside the board change nothing.
func (c *CChess) Click(pos shared.Pos) bool {
	tile := c.Board.Get(pos)
	if tile == nil {
		return false
	}

	if c.Selected == nil {
		c.computeTargets(pos, tile.Piece)
		selected := pos
		c.Selected = &selected
		return true
	}

	from := *c.Selected
	var err error
	switch {
	case c.HasAttack(pos):
		err = c.Board.Make(AttackAction(from, pos))
	case c.HasTake(pos):
		err = c.Board.Make(TakeAction(from, pos))
	case c.HasMove(pos):
		err = c.Board.Make(MoveAction(from, pos))
	case c.HasAbility(pos):
		err = c.Board.Make(AbilityAction(from, PosInfo(pos)))
	}
	if err != nil {
		logging.Error("action failed", err, logging.Fields{
			"from": from.String(), "to": pos.String(),
		})
	}
	c.Clear()
	return true
}

// computeTargets fills the candidate lists for the piece at from.
// Ability targets only cover abilities aimed at a position; payloads
// like directions or promotions need a richer front end than a click.
func (c *CChess) computeTargets(from shared.Pos, piece Piece) {
	for _, other := range c.Board.PosVec() {
		if other == from {
			continue
		}
		if piece.CanDo(c.Board, MoveAction(from, other)) && c.Board.IsEmpty(other) {
			c.Moves = append(c.Moves, other)
		}
		if target := c.Board.PieceAt(other); target != nil &&
			c.Board.HasPiece(other) && !c.Board.SameColor(from, other) {
			if piece.CanDo(c.Board, TakeAction(from, other)) && target.CanBe(TakeAction(from, other)) {
				c.Takes = append(c.Takes, other)
			}
			if piece.CanDo(c.Board, AttackAction(from, other)) && target.CanBe(AttackAction(from, other)) {
				c.Attacks = append(c.Attacks, other)
			}
		}
		if piece.CanDo(c.Board, AbilityAction(from, PosInfo(other))) {
			c.Abilities = append(c.Abilities, other)
		}
	}
}

// Clear drops the selection and every candidate list.
func (c *CChess) Clear() {
	c.Selected = nil
	c.Moves = nil
	c.Takes = nil
	c.Attacks = nil
	c.Abilities = nil
}

// ActionsAt lists the actions the current selection could perform on
// pos. Empty without a selection.
func (c *CChess) ActionsAt(pos shared.Pos) []Action {
	if c.Selected == nil || c.Board.Get(pos) == nil {
		return nil
	}
	from := *c.Selected
	actions := make([]Action, 0, 4)
	if c.HasMove(pos) {
		actions = append(actions, MoveAction(from, pos))
	}
	if c.HasTake(pos) {
		actions = append(actions, TakeAction(from, pos))
	}
	if c.HasAttack(pos) {
		actions = append(actions, AttackAction(from, pos))
	}
	if c.HasAbility(pos) {
		actions = append(actions, AbilityAction(from, PosInfo(pos)))
	}
	return actions
}

func (c *CChess) HasMove(pos shared.Pos) bool { return containsPos(c.Moves, pos) }

func (c *CChess) HasTake(pos shared.Pos) bool { return containsPos(c.Takes, pos) }

func (c *CChess) HasAttack(pos shared.Pos) bool { return containsPos(c.Attacks, pos) }

func (c *CChess) HasAbility(pos shared.Pos) bool { return containsPos(c.Abilities, pos) }

func (c *CChess) Height() int { return c.Board.Height() }

func (c *CChess) RowTiles(row int) []*Tile { return c.Board.RowTiles(row) }

func containsPos(positions []shared.Pos, pos shared.Pos) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}
