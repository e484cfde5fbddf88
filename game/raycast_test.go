package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carlettos_chess/shared"
)

func emptyBoard() *Board {
	return WithShape(DefaultChessboardShape())
}

func TestRayCastToEdge(t *testing.T) {
	b := emptyBoard()

	rc := b.RayCastEmpty(shared.NewPos(3, 3), 0, 0, 1)
	require.NotNil(t, rc.Start)
	assert.Nil(t, rc.Collision)
	assert.Equal(t, []shared.Pos{
		shared.NewPos(3, 4), shared.NewPos(3, 5), shared.NewPos(3, 6), shared.NewPos(3, 7),
	}, rc.Mid)
	assert.Equal(t, shared.NewPos(3, 4), *rc.First())
	assert.Equal(t, shared.NewPos(3, 7), *rc.Last())
	assert.Equal(t, 5, rc.Len())
}

func TestRayCastStopsAtPiece(t *testing.T) {
	b := emptyBoard()
	b.Get(shared.NewPos(3, 6)).Replace(NewPawn(shared.Black))

	rc := b.RayCastEmpty(shared.NewPos(3, 3), 0, 0, 1)
	require.NotNil(t, rc.Collision)
	assert.Equal(t, shared.NewPos(3, 6), *rc.Collision)
	assert.Equal(t, []shared.Pos{shared.NewPos(3, 4), shared.NewPos(3, 5)}, rc.Mid)
	assert.True(t, rc.Contains(shared.NewPos(3, 6)))
	assert.False(t, rc.ContainsMid(shared.NewPos(3, 6)))
}

func TestRayCastHonorsLimit(t *testing.T) {
	b := emptyBoard()

	rc := b.RayCastEmpty(shared.NewPos(0, 0), 2, 1, 1)
	assert.Nil(t, rc.Collision)
	assert.Equal(t, []shared.Pos{shared.NewPos(1, 1), shared.NewPos(2, 2)}, rc.Mid)
}

func TestRayCastOriginNeverTested(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	b.Get(from).Replace(NewRook(shared.White))

	rc := b.RayCastEmpty(from, 0, 1, 0)
	assert.Nil(t, rc.Collision)
	assert.Len(t, rc.Mid, 3)
}

func TestRayCastOffBoardOrigin(t *testing.T) {
	b := emptyBoard()

	rc := b.RayCastEmpty(shared.NewPos(20, 20), 0, 0, 1)
	assert.True(t, rc.IsEmpty())
}

func TestRayCastAtEdgeGoingOut(t *testing.T) {
	b := emptyBoard()

	rc := b.RayCastEmpty(shared.NewPos(0, 0), 0, -1, 0)
	require.NotNil(t, rc.Start)
	assert.Empty(t, rc.Mid)
	assert.Nil(t, rc.Collision)
}
