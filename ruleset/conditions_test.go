package ruleset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironveil-games/combat-core/ruleset"
)

func TestConditionSet_WithAndWithout(t *testing.T) {
	s := ruleset.NewConditionSet(ruleset.Prone)
	assert.True(t, s.Has(ruleset.Prone))
	assert.False(t, s.Has(ruleset.Stunned))

	s2 := s.With(ruleset.Stunned)
	assert.True(t, s2.Has(ruleset.Prone))
	assert.True(t, s2.Has(ruleset.Stunned))
	// original set is untouched
	assert.False(t, s.Has(ruleset.Stunned))

	s3 := s2.Without(ruleset.Prone)
	assert.False(t, s3.Has(ruleset.Prone))
	assert.True(t, s3.Has(ruleset.Stunned))
}

func TestConditionSet_AnyIncapacitating(t *testing.T) {
	s := ruleset.NewConditionSet(ruleset.Prone, ruleset.Grappled)
	_, found := s.AnyIncapacitating()
	assert.False(t, found)

	s = s.With(ruleset.Stunned)
	cond, found := s.AnyIncapacitating()
	require.True(t, found)
	assert.Equal(t, ruleset.Stunned, cond)
}

func TestCondition_JSONRoundTrip(t *testing.T) {
	original := ruleset.Frightened
	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"FRIGHTENED"`, string(data))

	var decoded ruleset.Condition
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestCondition_UnmarshalRejectsUnknown(t *testing.T) {
	var c ruleset.Condition
	err := json.Unmarshal([]byte(`"NOT_A_CONDITION"`), &c)
	require.Error(t, err)
}
