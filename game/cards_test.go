package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCosts(t *testing.T) {
	assert.Equal(t, Mana(2), CardKnight.Cost())
	assert.Equal(t, Mana(0), CardRook.Cost())
	assert.Equal(t, Mana(5), CardWarlock.Cost())
	assert.Equal(t, Mana(3), CardIce.Cost())
	assert.Equal(t, Mana(3), CardFire.Cost())
	assert.Equal(t, Mana(3), CardAttackDemonic.Cost())
	assert.Equal(t, Mana(5), CardInvulnerability.Cost())
	assert.Equal(t, Mana(4), CardRevive.Cost())
	assert.Equal(t, Mana(1), CardAddMovement.Cost())
}

func TestCardTextRoundTrip(t *testing.T) {
	data, err := json.Marshal(CardAttackDemonic)
	require.NoError(t, err)
	assert.Equal(t, `"attack_demonic"`, string(data))

	var c Card
	require.NoError(t, json.Unmarshal(data, &c))
	assert.Equal(t, CardAttackDemonic, c)

	assert.Error(t, json.Unmarshal([]byte(`"joker"`), &c))
}

func TestCardsTakeFromTop(t *testing.T) {
	pile := Cards{CardIce, CardFire, CardRevive}

	card, ok := pile.Take()
	require.True(t, ok)
	assert.Equal(t, CardRevive, card)
	assert.Equal(t, 2, pile.Len())

	pile = Cards{}
	_, ok = pile.Take()
	assert.False(t, ok)
}

func TestCardsRemove(t *testing.T) {
	pile := Cards{CardIce, CardFire, CardIce}

	assert.True(t, pile.Remove(CardIce))
	assert.Equal(t, Cards{CardFire, CardIce}, pile)
	assert.False(t, pile.Remove(CardWarlock))
}

func TestCardsContains(t *testing.T) {
	pile := Cards{CardIce, CardFire}

	assert.True(t, pile.Contains(CardFire))
	assert.False(t, pile.Contains(CardRevive))
	assert.True(t, pile.ContainsAny(CardRevive, CardIce))
	assert.False(t, pile.ContainsAny(CardRevive, CardWarlock))
}

func TestCardsShuffleIsDeterministic(t *testing.T) {
	a := Cards{CardKnight, CardRook, CardWarlock, CardIce, CardFire}
	c := append(Cards(nil), a...)

	rngA := NewRNG(7)
	rngB := NewRNG(7)
	a.Shuffle(&rngA)
	c.Shuffle(&rngB)

	assert.Equal(t, a, c)
	assert.ElementsMatch(t, Cards{CardKnight, CardRook, CardWarlock, CardIce, CardFire}, a)
}
