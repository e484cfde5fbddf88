package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carlettos_chess/shared"
)

func TestClickSelectsPiece(t *testing.T) {
	c := DefaultChessboardGame()
	from := shared.NewPos(4, 1)

	require.True(t, c.Click(from))
	require.NotNil(t, c.Selected)
	assert.Equal(t, from, *c.Selected)
	assert.True(t, c.HasMove(shared.NewPos(4, 2)))
	assert.True(t, c.HasMove(shared.NewPos(4, 3)))
	assert.Empty(t, c.Takes)
	assert.Empty(t, c.Attacks)
}

func TestClickOutsideBoard(t *testing.T) {
	c := DefaultChessboardGame()
	assert.False(t, c.Click(shared.NewPos(20, 20)))
	assert.Nil(t, c.Selected)
}

func TestSecondClickMoves(t *testing.T) {
	c := DefaultChessboardGame()
	from := shared.NewPos(4, 1)
	to := shared.NewPos(4, 3)

	require.True(t, c.Click(from))
	require.True(t, c.Click(to))

	assert.Nil(t, c.Selected)
	assert.Empty(t, c.Moves)
	assert.True(t, c.Board.IsEmpty(from))
	assert.Equal(t, Pawn, c.Board.PieceAt(to).Kind)
}

func TestSecondClickOnNonTargetClears(t *testing.T) {
	c := DefaultChessboardGame()
	from := shared.NewPos(4, 1)

	require.True(t, c.Click(from))
	require.True(t, c.Click(shared.NewPos(7, 7)))

	assert.Nil(t, c.Selected)
	assert.Equal(t, Pawn, c.Board.PieceAt(from).Kind)
}

func TestClickComputesTakes(t *testing.T) {
	c := NewCChess(WithShape(DefaultChessboardShape()))
	from := shared.NewPos(4, 4)
	victim := shared.NewPos(5, 5)
	c.Board.Get(from).Replace(NewPawn(shared.White))
	c.Board.Get(victim).Replace(NewKnight(shared.Black))

	require.True(t, c.Click(from))
	assert.True(t, c.HasTake(victim))
	// Forward move is blocked only by occupancy; (4,5) is free.
	assert.True(t, c.HasMove(shared.NewPos(4, 5)))

	require.True(t, c.Click(victim))
	assert.Equal(t, Pawn, c.Board.PieceAt(victim).Kind)
	assert.Len(t, c.Board.DeadPieces, 1)
}

func TestClickComputesAttacks(t *testing.T) {
	c := NewCChess(WithShape(DefaultChessboardShape()))
	from := shared.NewPos(4, 4)
	target := shared.NewPos(6, 6)
	c.Board.Get(from).Replace(NewArcher(shared.White))
	c.Board.Get(target).Replace(NewPawn(shared.Black))

	require.True(t, c.Click(from))
	assert.True(t, c.HasAttack(target))

	require.True(t, c.Click(target))
	// Attacks kill without moving the attacker.
	assert.Equal(t, Archer, c.Board.PieceAt(from).Kind)
	assert.True(t, c.Board.IsEmpty(target))
}

func TestAttackRespectsHeroic(t *testing.T) {
	c := NewCChess(WithShape(DefaultChessboardShape()))
	from := shared.NewPos(4, 4)
	target := shared.NewPos(6, 6)
	c.Board.Get(from).Replace(NewArcher(shared.White))
	c.Board.Get(target).Replace(NewQueen(shared.Black))

	require.True(t, c.Click(from))
	assert.False(t, c.HasAttack(target))
}

func TestClickComputesAbilityTargets(t *testing.T) {
	c := NewCChess(WithShape(DefaultChessboardShape()))
	from := shared.NewPos(4, 4)
	c.Board.Get(from).Replace(NewQueen(shared.White))

	require.True(t, c.Click(from))
	jump := shared.NewPos(5, 6)
	assert.True(t, c.HasAbility(jump))

	require.True(t, c.Click(jump))
	assert.Equal(t, Queen, c.Board.PieceAt(jump).Kind)
	assert.True(t, c.Board.IsEmpty(from))
}

func TestActionsAt(t *testing.T) {
	c := DefaultChessboardGame()
	from := shared.NewPos(4, 1)

	assert.Empty(t, c.ActionsAt(shared.NewPos(4, 2)))

	require.True(t, c.Click(from))
	actions := c.ActionsAt(shared.NewPos(4, 2))
	require.Len(t, actions, 1)
	assert.True(t, actions[0].IsMove())
	assert.Empty(t, c.ActionsAt(shared.NewPos(0, 4)))
}

func TestDefaultDisplay(t *testing.T) {
	c := DefaultDisplay()
	assert.Equal(t, 2, c.Height())
	assert.Len(t, c.RowTiles(0), 30)
	assert.Equal(t, Pawn, c.Board.PieceAt(shared.NewPos(0, 0)).Kind)
	assert.Equal(t, Ballista, c.Board.PieceAt(shared.NewPos(7, 1)).Kind)
}
