package action_test

import (
	"testing"

	"github.com/ironveil-games/combat-core/action"
	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specialContext() action.ActionContext {
	creatures := fighterAndGoblin()
	return action.ActionContext{
		TurnPhase: turnphase.StartTurn(1, 30),
		Creatures: creatures,
	}
}

func TestSpecialActionHandler_DashDoublesMovementAndConsumesAction(t *testing.T) {
	ctx := specialContext()
	act := action.NewDashAction(1)

	events, phase, err := action.SpecialActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.False(t, phase.ActionAvailable)
	assert.Equal(t, int32(60), phase.MovementRemaining) // 30 base + 30 from fighter's speed
}

func TestSpecialActionHandler_Dodge(t *testing.T) {
	ctx := specialContext()
	act := action.NewDodgeAction(1)

	events, phase, err := action.SpecialActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	_, ok := events[0].(event.DodgeAction)
	assert.True(t, ok)
	assert.False(t, phase.ActionAvailable)
}

func TestSpecialActionHandler_Disengage(t *testing.T) {
	ctx := specialContext()
	act := action.NewDisengageAction(1)

	events, phase, err := action.SpecialActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	_, ok := events[0].(event.DisengageAction)
	assert.True(t, ok)
	assert.False(t, phase.ActionAvailable)
}

func TestSpecialActionHandler_Help(t *testing.T) {
	ctx := specialContext()
	act := action.NewHelpAction(1, 2, "ATTACK")

	events, _, err := action.SpecialActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	help := events[0].(event.HelpAction)
	assert.Equal(t, ruleset.CreatureID(1), help.CreatureID)
	assert.Equal(t, ruleset.CreatureID(2), help.TargetID)
	assert.Equal(t, "ATTACK", help.HelpType)
}

func TestSpecialActionHandler_Ready(t *testing.T) {
	ctx := specialContext()
	act := action.NewReadyAction(1, "enemy enters reach", "attack with longsword")

	events, _, err := action.SpecialActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	ready := events[0].(event.ReadyAction)
	assert.Equal(t, "enemy enters reach", ready.Trigger)
	assert.Equal(t, "attack with longsword", ready.PreparedActionDescription)
}

func TestSpecialActionHandler_RejectsNonSpecialKind(t *testing.T) {
	ctx := specialContext()
	act := action.NewMoveAction(1, nil)

	_, _, err := action.SpecialActionHandler(ctx, act, 100, 1)
	require.Error(t, err)
}
