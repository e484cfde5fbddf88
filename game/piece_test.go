package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carlettos_chess/shared"
)

func TestPieceKindTextRoundTrip(t *testing.T) {
	data, err := json.Marshal(ShieldBearer)
	require.NoError(t, err)
	assert.Equal(t, `"shield_bearer"`, string(data))

	var k PieceKind
	require.NoError(t, json.Unmarshal(data, &k))
	assert.Equal(t, ShieldBearer, k)

	assert.Error(t, json.Unmarshal([]byte(`"dragon"`), &k))
}

func TestPieceConstructorsCarryTypes(t *testing.T) {
	pawn := NewPawn(shared.White)
	assert.True(t, pawn.IsBiologic())
	assert.True(t, pawn.IsTransportable(2))
	assert.False(t, pawn.IsTransportable(1))

	rook := NewRook(shared.Black)
	assert.True(t, rook.IsStructure())
	assert.False(t, rook.IsBiologic())

	king := NewKing(shared.White)
	assert.True(t, king.IsHeroic())
	assert.True(t, king.IsImmune())
	assert.False(t, king.Data.Properties.HasUsedAbility())

	wall := NewWall(shared.White)
	assert.True(t, wall.IsImpenetrable(2))
	assert.False(t, wall.IsImpenetrable(3))

	warlock := NewWarlock(shared.Black)
	assert.True(t, warlock.IsDemonic())
	assert.True(t, warlock.IsImmune())
	assert.False(t, warlock.IsBiologic())

	ballista := NewBallista(shared.White)
	assert.Equal(t, 3, ballista.Data.Strength())
}

func TestEmptyPiece(t *testing.T) {
	var p Piece
	assert.True(t, p.IsNone())
	_, ok := p.Color()
	assert.False(t, ok)
	assert.False(t, p.CanDo(emptyBoard(), MoveAction(shared.NewPos(0, 0), shared.NewPos(0, 1))))
	assert.True(t, p.CanBe(AttackAction(shared.NewPos(0, 0), shared.NewPos(0, 1))))
}

func TestCanDoUsesMovementPattern(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	knight := NewKnight(shared.White)
	b.Get(from).Replace(knight)

	assert.True(t, knight.CanDo(b, MoveAction(from, shared.NewPos(6, 5))))
	assert.False(t, knight.CanDo(b, MoveAction(from, shared.NewPos(5, 5))))
	assert.True(t, knight.CanDo(b, TakeAction(from, shared.NewPos(6, 5))))
	// Knights have no attack.
	assert.False(t, knight.CanDo(b, AttackAction(from, shared.NewPos(6, 5))))
}

func TestWallCanDoNothing(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	wall := NewWall(shared.White)
	b.Get(from).Replace(wall)

	assert.False(t, wall.CanDo(b, MoveAction(from, shared.NewPos(4, 5))))
	assert.False(t, wall.CanDo(b, TakeAction(from, shared.NewPos(4, 5))))
	assert.False(t, wall.CanDo(b, AttackAction(from, shared.NewPos(4, 5))))
	assert.False(t, wall.CanDo(b, AbilityAction(from, NoInfo())))
}

func TestIceAndDeactivateBlockActing(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	rook := NewRook(shared.White)
	b.Get(from).Replace(rook)

	move := MoveAction(from, shared.NewPos(4, 7))
	assert.True(t, rook.CanDo(b, move))

	rook.Data.AddEffect(Ice())
	assert.False(t, rook.CanDo(b, move))

	bishop := NewBishop(shared.White)
	bishop.Data.AddEffect(Deactivate())
	b.Get(shared.NewPos(0, 0)).Replace(bishop)
	assert.False(t, bishop.CanDo(b, MoveAction(shared.NewPos(0, 0), shared.NewPos(2, 2))))
}

func TestCanBeVetoes(t *testing.T) {
	from := shared.NewPos(0, 0)
	to := shared.NewPos(0, 1)

	queen := NewQueen(shared.Black)
	assert.False(t, queen.CanBe(AttackAction(from, to)))
	assert.True(t, queen.CanBe(TakeAction(from, to)))

	king := NewKing(shared.Black)
	assert.False(t, king.CanBe(AbilityAction(from, NoInfo())))

	pawn := NewPawn(shared.Black)
	pawn.Data.AddEffect(Invulnerability())
	assert.False(t, pawn.CanBe(TakeAction(from, to)))
	assert.False(t, pawn.CanBe(AttackAction(from, to)))
}

func TestAbilityGatedByCooldown(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	bishop := NewBishop(shared.White)
	b.Get(from).Replace(bishop)

	action := AbilityAction(from, DirectionInfo(shared.DirN))
	assert.True(t, bishop.CanDo(b, action))

	bishop.Data.Cooldown = shared.Rounds(1)
	assert.False(t, bishop.CanDo(b, action))
}

func TestAbilityGatedByMana(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	king := NewKing(shared.White)
	b.Get(from).Replace(king)

	action := AbilityAction(from, PosInfo(shared.NewPos(6, 6)))
	assert.False(t, king.CanDo(b, action))

	b.PlayerFromColor(shared.White).Mana = 2
	assert.True(t, king.CanDo(b, action))
}

func TestAbilityGatedByUsedFlag(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	king := NewKing(shared.White)
	b.Get(from).Replace(king)
	b.PlayerFromColor(shared.White).Mana = 5

	action := AbilityAction(from, PosInfo(shared.NewPos(6, 6)))
	require.True(t, king.CanDo(b, action))

	king.Data.Properties.MarkAbilityUsed()
	assert.False(t, king.CanDo(b, action))
}

func TestPieceDataTickDropsExpiredEffects(t *testing.T) {
	data := NewPieceData(shared.White, Biologic())
	data.AddEffect(Effect{Kind: EffectFire, Duration: shared.Rounds(1)})
	data.AddEffect(Effect{Kind: EffectIce, Duration: shared.Time{}})

	data.Tick(shared.TickRound)
	// The zero-duration effect is gone; the other just reached zero.
	require.Len(t, data.Effects, 1)
	assert.Equal(t, EffectFire, data.Effects[0].Kind)
	assert.True(t, data.Effects[0].Duration.IsZero())

	data.Tick(shared.TickRound)
	assert.Empty(t, data.Effects)
}

func TestPieceDataTickAgesCooldown(t *testing.T) {
	data := NewPieceData(shared.White, Structure())
	data.Cooldown = shared.NewTime(1, 1, 0)

	data.Tick(shared.TickTurn)
	assert.Equal(t, shared.NewTime(1, 0, 0), data.Cooldown)
	data.Tick(shared.TickRound)
	assert.True(t, data.Cooldown.IsZero())
}

func TestAbilityOf(t *testing.T) {
	assert.NotNil(t, AbilityOf(King))
	assert.NotNil(t, AbilityOf(Portal))
	assert.Nil(t, AbilityOf(Wall))
	assert.Nil(t, AbilityOf(Archer))
}
