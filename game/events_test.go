package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carlettos_chess/shared"
)

func TestEventBecomesDue(t *testing.T) {
	event := NewEvent("test", Nothing())
	assert.False(t, event.IsDue())

	event.Tick(shared.TickMovement)
	assert.False(t, event.IsDue())
	event.Tick(shared.TickTurn)
	assert.True(t, event.IsDue())
}

func TestFireDueEventsRemovesAndRuns(t *testing.T) {
	b := emptyBoard()
	b.Players[0].Deck = Cards{CardIce, CardFire}

	b.AddEvent(EventWithTime("draw", shared.Time{}, TakeCard(0)))
	b.AddEvent(NewEvent("later", TakeCard(0)))

	errs := b.FireDueEvents()
	assert.Empty(t, errs)
	require.Len(t, b.Events, 1)
	assert.Equal(t, "later", b.Events[0].Name)
	assert.Equal(t, Cards{CardFire}, b.Players[0].Hand)
}

func TestFireDueEventsWrapsErrors(t *testing.T) {
	b := emptyBoard()
	b.AddEvent(EventWithTime("broken", shared.Time{}, TakeCard(42)))

	errs := b.FireDueEvents()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrPlayerNotFound)
	assert.Contains(t, errs[0].Error(), `"broken"`)
	assert.Empty(t, b.Events)
}

func TestTakeCardFromEmptyDeck(t *testing.T) {
	b := emptyBoard()
	b.AddEvent(EventWithTime("dry", shared.Time{}, TakeCard(0)))

	errs := b.FireDueEvents()
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrEmptyDeck)
}

func TestShuffleDeckUsesTurnStream(t *testing.T) {
	b := emptyBoard()
	deck := Cards{CardKnight, CardRook, CardWarlock, CardIce, CardFire}
	b.Players[0].Deck = append(Cards(nil), deck...)

	expected := append(Cards(nil), deck...)
	rng := b.Rng.Turn
	expected.Shuffle(&rng)

	require.NoError(t, ShuffleDeck(0).Act(b))
	assert.Equal(t, expected, b.Players[0].Deck)
}

func TestApplyEffectWithFilters(t *testing.T) {
	b := emptyBoard()
	origin := shared.NewPos(4, 4)
	b.Get(origin).Replace(NewTeslaTower(shared.White))
	b.Get(shared.NewPos(4, 5)).Replace(NewRook(shared.Black))
	b.Get(shared.NewPos(5, 4)).Replace(NewPawn(shared.Black))
	b.Get(shared.NewPos(3, 4)).Replace(NewRook(shared.White))
	b.Get(shared.NewPos(0, 0)).Replace(NewRook(shared.Black))

	fn := ApplyEffect(Deactivate(), origin, TrioFilter(
		SquareFilter(3),
		IsTypeFilter(Structure()),
		IsNotColorFilter(shared.White),
	))
	require.NoError(t, fn.Act(b))

	assert.True(t, b.Data(shared.NewPos(4, 5)).HasEffect(EffectDeactivate))
	assert.False(t, b.Data(shared.NewPos(5, 4)).HasEffect(EffectDeactivate))
	assert.False(t, b.Data(shared.NewPos(3, 4)).HasEffect(EffectDeactivate))
	assert.False(t, b.Data(shared.NewPos(0, 0)).HasEffect(EffectDeactivate))
	// The origin tile is never touched.
	assert.False(t, b.Data(origin).HasEffect(EffectDeactivate))
}

func TestFilterMatches(t *testing.T) {
	b := emptyBoard()
	from := shared.NewPos(4, 4)
	target := shared.NewPos(4, 6)
	b.Get(target).Replace(NewPawn(shared.Black))
	b.Data(target).AddEffect(Fire())

	assert.True(t, CrossFilter(2).Matches(b, from, target))
	assert.False(t, CrossFilter(1).Matches(b, from, target))
	assert.True(t, IsColorFilter(shared.Black).Matches(b, from, target))
	assert.False(t, IsColorFilter(shared.White).Matches(b, from, target))
	assert.True(t, HasEffectFilter(EffectFire).Matches(b, from, target))
	assert.False(t, HasEffectFilter(EffectIce).Matches(b, from, target))
	assert.True(t, IsNotTypeFilter(Structure()).Matches(b, from, target))

	pair := PairFilter(SquareFilter(2), IsTypeFilter(Biologic()))
	assert.True(t, pair.Matches(b, from, target))
	assert.False(t, pair.Matches(b, from, shared.NewPos(0, 0)))
}

func TestEventsTickAll(t *testing.T) {
	events := Events{
		EventWithTime("a", shared.Turns(2), Nothing()),
		EventWithTime("b", shared.Turns(1), Nothing()),
	}
	events.Tick(shared.TickTurn)
	assert.False(t, events[0].IsDue())
	assert.True(t, events[1].IsDue())
}
