package action_test

import (
	"testing"

	"github.com/ironveil-games/combat-core/action"
	"github.com/ironveil-games/combat-core/dice"
	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reactionContext(available map[ruleset.CreatureID]bool, disengaged map[ruleset.CreatureID]bool) action.ActionContext {
	creatures := fighterAndGoblin()
	return action.ActionContext{
		Creatures:              creatures,
		ReactionAvailable:      available,
		DisengagedUntilTurnEnd: disengaged,
	}
}

func TestReactionHandler_SkipsReactorWithNoReactionAvailable(t *testing.T) {
	ctx := reactionContext(map[ruleset.CreatureID]bool{2: false}, map[ruleset.CreatureID]bool{})
	events, err := action.ReactionHandler(ctx, action.ReactionTriggerCreatureMoved, 1,
		[]ruleset.CreatureID{2}, map[ruleset.CreatureID]*action.GameAction{}, nil, 100, 1)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReactionHandler_SkipsAllReactorsWhenTriggererDisengaged(t *testing.T) {
	ctx := reactionContext(map[ruleset.CreatureID]bool{2: true}, map[ruleset.CreatureID]bool{1: true})
	events, err := action.ReactionHandler(ctx, action.ReactionTriggerCreatureMoved, 1,
		[]ruleset.CreatureID{2}, map[ruleset.CreatureID]*action.GameAction{}, nil, 100, 1)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReactionHandler_NilResponseEmitsOnlyReactionUsed(t *testing.T) {
	ctx := reactionContext(map[ruleset.CreatureID]bool{2: true}, map[ruleset.CreatureID]bool{})
	events, err := action.ReactionHandler(ctx, action.ReactionTriggerCreatureMoved, 1,
		[]ruleset.CreatureID{2}, map[ruleset.CreatureID]*action.GameAction{}, nil, 100, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	used := events[0].(event.ReactionUsed)
	assert.Equal(t, ruleset.CreatureID(2), used.ReactorID)
	assert.Equal(t, "CREATURE_MOVED", used.Trigger)
}

func TestReactionHandler_OpportunityAttackResponseProducesDownstreamEvents(t *testing.T) {
	ctx := reactionContext(map[ruleset.CreatureID]bool{2: true}, map[ruleset.CreatureID]bool{})
	response := action.NewOpportunityAttackAction(2, 1, 4, 1, dice.D6, 2)
	responses := map[ruleset.CreatureID]*action.GameAction{2: &response}
	roller := newFakeRoller(d20(15), damageRoll(dice.D6, 4))

	events, err := action.ReactionHandler(ctx, action.ReactionTriggerCreatureMoved, 1,
		[]ruleset.CreatureID{2}, responses, roller, 100, 1)
	require.NoError(t, err)
	require.Len(t, events, 3) // AttackResolved, DamageApplied, ReactionUsed

	_, ok := events[0].(event.AttackResolved)
	assert.True(t, ok)
	_, ok = events[1].(event.DamageApplied)
	assert.True(t, ok)
	used, ok := events[2].(event.ReactionUsed)
	require.True(t, ok)
	assert.Equal(t, ruleset.CreatureID(2), used.ReactorID)
}

func TestReactionHandler_PreservesInitiativeOrder(t *testing.T) {
	creatures := fighterAndGoblin()
	abilities, _ := ruleset.NewAbilities(10, 10, 10, 10, 10, 10)
	third, _ := ruleset.NewCreature(3, "Archer", 14, 10, 10, 30, 2, abilities)
	creatures[3] = third

	ctx := action.ActionContext{
		Creatures:              creatures,
		ReactionAvailable:      map[ruleset.CreatureID]bool{2: true, 3: true},
		DisengagedUntilTurnEnd: map[ruleset.CreatureID]bool{},
	}
	events, err := action.ReactionHandler(ctx, action.ReactionTriggerCreatureMoved, 1,
		[]ruleset.CreatureID{3, 2}, map[ruleset.CreatureID]*action.GameAction{}, nil, 100, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, ruleset.CreatureID(3), events[0].(event.ReactionUsed).ReactorID)
	assert.Equal(t, ruleset.CreatureID(2), events[1].(event.ReactionUsed).ReactorID)
}
