package ruleset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironveil-games/combat-core/ruleset"
)

func TestAbilityModifier_FloorDivision(t *testing.T) {
	cases := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{2, -4},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{20, 5},
		{30, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, ruleset.AbilityModifier(tc.score), "score %d", tc.score)
	}
}

func TestAbilityModifier_EveryScoreInRange(t *testing.T) {
	for score := 1; score <= 30; score++ {
		got := ruleset.AbilityModifier(score)
		want := int(math.Floor(float64(score-10) / 2))
		assert.Equal(t, want, got, "score %d", score)
	}
}

func TestNewAbilities_RejectsOutOfRange(t *testing.T) {
	_, err := ruleset.NewAbilities(0, 10, 10, 10, 10, 10)
	require.Error(t, err)

	_, err = ruleset.NewAbilities(10, 10, 10, 10, 10, 31)
	require.Error(t, err)

	a, err := ruleset.NewAbilities(1, 30, 10, 15, 8, 20)
	require.NoError(t, err)
	assert.Equal(t, -5, a.Modifier(ruleset.Strength))
	assert.Equal(t, 10, a.Modifier(ruleset.Dexterity))
}
