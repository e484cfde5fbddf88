package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carlettos_chess/shared"
)

func TestDefaultChessboardLayout(t *testing.T) {
	b := DefaultChessboard()
	require.Len(t, b.Tiles, 64)

	back := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, kind := range back {
		white := b.PieceAt(shared.NewPos(x, 0))
		require.NotNil(t, white)
		assert.Equal(t, kind, white.Kind)
		assert.Equal(t, shared.White, white.Data.Color)

		black := b.PieceAt(shared.NewPos(x, 7))
		assert.Equal(t, kind, black.Kind)
		assert.Equal(t, shared.Black, black.Data.Color)

		assert.Equal(t, Pawn, b.PieceAt(shared.NewPos(x, 1)).Kind)
		assert.Equal(t, Pawn, b.PieceAt(shared.NewPos(x, 6)).Kind)
	}
	for y := 2; y <= 5; y++ {
		for x := 0; x < 8; x++ {
			assert.True(t, b.IsEmpty(shared.NewPos(x, y)))
		}
	}
}

func TestCChessboardLayout(t *testing.T) {
	b := CChessboard()
	require.Len(t, b.Tiles, 16*17)

	for _, pos := range []shared.Pos{
		shared.NewPos(0, 7), shared.NewPos(0, 9),
		shared.NewPos(15, 7), shared.NewPos(15, 9),
	} {
		assert.True(t, b.Get(pos).Magic, pos.String())
	}
	assert.False(t, b.Get(shared.NewPos(7, 8)).Magic)

	// Back rank, white side.
	assert.Equal(t, Cannon, b.PieceAt(shared.NewPos(0, 0)).Kind)
	assert.Equal(t, Cannon, b.PieceAt(shared.NewPos(15, 0)).Kind)
	assert.Equal(t, Rook, b.PieceAt(shared.NewPos(1, 0)).Kind)
	assert.Equal(t, Catapult, b.PieceAt(shared.NewPos(13, 0)).Kind)
	assert.Equal(t, Knight, b.PieceAt(shared.NewPos(3, 0)).Kind)
	assert.Equal(t, Warlock, b.PieceAt(shared.NewPos(11, 0)).Kind)
	assert.Equal(t, Bishop, b.PieceAt(shared.NewPos(10, 0)).Kind)
	assert.Equal(t, Magician, b.PieceAt(shared.NewPos(6, 0)).Kind)
	assert.Equal(t, Queen, b.PieceAt(shared.NewPos(7, 0)).Kind)
	assert.Equal(t, King, b.PieceAt(shared.NewPos(8, 0)).Kind)
	assert.Equal(t, Paladin, b.PieceAt(shared.NewPos(9, 0)).Kind)

	// Second rank.
	assert.Equal(t, Ship, b.PieceAt(shared.NewPos(0, 1)).Kind)
	assert.Equal(t, TeslaTower, b.PieceAt(shared.NewPos(14, 1)).Kind)
	assert.Equal(t, Ram, b.PieceAt(shared.NewPos(2, 1)).Kind)
	assert.Equal(t, Builder, b.PieceAt(shared.NewPos(12, 1)).Kind)
	assert.Equal(t, CrazyPawn, b.PieceAt(shared.NewPos(6, 1)).Kind)
	assert.Equal(t, SuperPawn, b.PieceAt(shared.NewPos(8, 1)).Kind)

	// Third and fourth ranks.
	assert.Equal(t, Ballista, b.PieceAt(shared.NewPos(0, 2)).Kind)
	assert.Equal(t, Archer, b.PieceAt(shared.NewPos(1, 2)).Kind)
	assert.Equal(t, ShieldBearer, b.PieceAt(shared.NewPos(12, 2)).Kind)
	assert.Equal(t, Pawn, b.PieceAt(shared.NewPos(0, 3)).Kind)
	assert.Equal(t, CrazyPawn, b.PieceAt(shared.NewPos(14, 3)).Kind)
	assert.Equal(t, Pawn, b.PieceAt(shared.NewPos(13, 3)).Kind)

	// The black half mirrors across the middle row.
	assert.Equal(t, King, b.PieceAt(shared.NewPos(8, 16)).Kind)
	assert.Equal(t, shared.Black, b.PieceAt(shared.NewPos(8, 16)).Data.Color)
	assert.Equal(t, Ship, b.PieceAt(shared.NewPos(15, 15)).Kind)
	assert.Equal(t, Ballista, b.PieceAt(shared.NewPos(15, 14)).Kind)
	assert.Equal(t, Pawn, b.PieceAt(shared.NewPos(15, 13)).Kind)
}

func TestCChessboardPlayers(t *testing.T) {
	b := CChessboard()
	require.Len(t, b.Players, 2)

	for _, player := range b.Players {
		assert.Equal(t, Mana(5), player.Mana)
		assert.Equal(t, Movements(1), player.Movements)
		assert.Equal(t, Cards{CardAddMovement, CardAddMovement, CardAddMovement}, player.Deck)
		assert.Equal(t, Cards{CardAddMovement}, player.Hand)
	}
	assert.Equal(t, shared.White, b.Players[0].Color)
	assert.Equal(t, 0, b.Players[0].ID)
	assert.Equal(t, shared.Black, b.Players[1].Color)
	assert.Equal(t, 1, b.Players[1].ID)
}
