package action_test

import (
	"testing"

	"github.com/ironveil-games/combat-core/action"
	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/grid"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movementContext(t *testing.T, positions map[ruleset.CreatureID]grid.GridPos) action.ActionContext {
	t.Helper()
	g, err := grid.NewMapGrid(10, 10)
	require.NoError(t, err)
	return action.ActionContext{
		TurnPhase:              turnphase.StartTurn(1, 30),
		Positions:              positions,
		MapGrid:                g,
		DisengagedUntilTurnEnd: map[ruleset.CreatureID]bool{},
	}
}

func TestMovementActionHandler_EmitsMoveCommitted(t *testing.T) {
	ctx := movementContext(t, map[ruleset.CreatureID]grid.GridPos{1: grid.NewGridPos(0, 0)})
	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(0, 1), grid.NewGridPos(0, 2)}
	act := action.NewMoveAction(1, path)

	result, err := action.MovementActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	moved := result.Events[0].(event.MoveCommitted)
	assert.Equal(t, int32(2), moved.MovementUsed)
	assert.Equal(t, int32(28), moved.MovementRemaining)
	assert.Equal(t, int32(28), result.Phase.MovementRemaining)
}

func TestMovementActionHandler_TriggersOpportunityAttackWhenLeavingReach(t *testing.T) {
	positions := map[ruleset.CreatureID]grid.GridPos{
		1: grid.NewGridPos(0, 0),
		2: grid.NewGridPos(1, 0), // adjacent to mover's start, 5 ft reach
	}
	ctx := movementContext(t, positions)
	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(0, 1), grid.NewGridPos(0, 2), grid.NewGridPos(0, 3)}
	act := action.NewMoveAction(1, path)

	result, err := action.MovementActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	require.Len(t, result.OpportunityReactors, 1)
	assert.Equal(t, ruleset.CreatureID(2), result.OpportunityReactors[0])
}

func TestMovementActionHandler_NoTriggerWhenNeverAdjacent(t *testing.T) {
	positions := map[ruleset.CreatureID]grid.GridPos{
		1: grid.NewGridPos(0, 0),
		2: grid.NewGridPos(9, 9),
	}
	ctx := movementContext(t, positions)
	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(0, 1), grid.NewGridPos(0, 2)}
	act := action.NewMoveAction(1, path)

	result, err := action.MovementActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	assert.Empty(t, result.OpportunityReactors)
}

func TestMovementActionHandler_DisengagedMoverTriggersNoReactors(t *testing.T) {
	positions := map[ruleset.CreatureID]grid.GridPos{
		1: grid.NewGridPos(0, 0),
		2: grid.NewGridPos(1, 0),
	}
	ctx := movementContext(t, positions)
	ctx.DisengagedUntilTurnEnd[1] = true
	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(0, 1), grid.NewGridPos(0, 2), grid.NewGridPos(0, 3)}
	act := action.NewMoveAction(1, path)

	result, err := action.MovementActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	assert.Empty(t, result.OpportunityReactors)
}

func TestMovementActionHandler_MultipleReactorsSortedByCreatureID(t *testing.T) {
	positions := map[ruleset.CreatureID]grid.GridPos{
		1: grid.NewGridPos(0, 0),
		3: grid.NewGridPos(1, 0),
		2: grid.NewGridPos(0, 1),
	}
	ctx := movementContext(t, positions)
	path := []grid.GridPos{grid.NewGridPos(0, 0), grid.NewGridPos(0, 5)}
	act := action.NewMoveAction(1, path)

	result, err := action.MovementActionHandler(ctx, act, 100, 1)
	require.NoError(t, err)
	require.Len(t, result.OpportunityReactors, 2)
	assert.Equal(t, []ruleset.CreatureID{2, 3}, result.OpportunityReactors)
}
