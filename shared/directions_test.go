package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOffsets(t *testing.T) {
	cases := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirN, 0, 1},
		{DirE, 1, 0},
		{DirS, 0, -1},
		{DirW, -1, 0},
	}
	for _, tc := range cases {
		dx, dy := tc.dir.Offset()
		assert.Equal(t, tc.dx, dx, tc.dir.String())
		assert.Equal(t, tc.dy, dy, tc.dir.String())
	}
}

func TestRelatedSubDirections(t *testing.T) {
	assert.Equal(t, [3]SubDirection{SubNW, SubN, SubNE}, DirN.RelatedSubDirections())
	assert.Equal(t, [3]SubDirection{SubNE, SubE, SubSE}, DirE.RelatedSubDirections())
	assert.Equal(t, [3]SubDirection{SubSE, SubS, SubSW}, DirS.RelatedSubDirections())
	assert.Equal(t, [3]SubDirection{SubSW, SubW, SubNW}, DirW.RelatedSubDirections())
}

func TestSubDirectionOffsetsAreUnitSteps(t *testing.T) {
	seen := map[[2]int]bool{}
	for sd := SubN; sd <= SubNW; sd++ {
		dx, dy := sd.Offset()
		assert.True(t, dx >= -1 && dx <= 1)
		assert.True(t, dy >= -1 && dy <= 1)
		assert.False(t, dx == 0 && dy == 0)
		seen[[2]int{dx, dy}] = true
	}
	assert.Len(t, seen, 8)
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("S")
	require.True(t, ok)
	assert.Equal(t, DirS, d)

	_, ok = ParseDirection("X")
	assert.False(t, ok)

	sd, ok := ParseSubDirection("NW")
	require.True(t, ok)
	assert.Equal(t, SubNW, sd)
}
