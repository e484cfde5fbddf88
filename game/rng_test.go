package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRNGReducesSeed(t *testing.T) {
	rng := NewRNG(32768 + 7)
	assert.Equal(t, uint64(7), rng.Seed)
	assert.Equal(t, uint64(32768), rng.M)
}

func TestRNGSequenceIsDeterministic(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(1)
	for i := 0; i < 10; i++ {
		a.Next()
		b.Next()
		require.Equal(t, a.Seed, b.Seed)
	}
}

func TestRNGNextMatchesLCGFormula(t *testing.T) {
	rng := NewRNG(1)
	rng.Next()
	assert.Equal(t, uint64((1103515245+12345)%32768), rng.Seed)
}

func TestRNGFloat64Range(t *testing.T) {
	rng := NewRNG(42)
	for i := 0; i < 100; i++ {
		f := rng.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
		rng.Next()
	}
}

func TestRNGIntNBounds(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 100; i++ {
		n := rng.IntN(6)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 6)
	}
}

func TestBoardRngStreamsAreIndependent(t *testing.T) {
	rng := NewBoardRng(1, 1, 1)
	rng.NextMovement()
	rng.NextMovement()
	rng.NextTurn()

	single := NewRNG(1)
	single.Next()
	assert.Equal(t, single.Seed, rng.Turn.Seed)
	assert.Equal(t, NewRNG(1).Seed, rng.Round.Seed)
	assert.NotEqual(t, rng.Movement.Seed, rng.Turn.Seed)
}
