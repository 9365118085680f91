package action

import (
	"sort"

	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/grid"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
)

// reachFeet is the threatened-zone radius used to detect opportunity
// attacks: one cell, Chebyshev distance 1.
const reachFeet = 5

// MovementResult is the outcome of a validated Move action: the events to
// append, the mover's updated TurnPhase, and the reactors (sorted by
// ascending creature id) whose reach the mover vacated.
type MovementResult struct {
	Events              []event.Event
	Phase               turnphase.TurnPhase
	OpportunityReactors []ruleset.CreatureID
}

// MovementActionHandler sums the path's cost, consumes that much movement
// (floored at zero) and emits MoveCommitted. It does not re-check the path's
// steps or its cost against the remaining movement; it never returns an
// error. It also reports which creatures the mover provoked an
// opportunity attack from by leaving their reach, unless the mover is
// Disengaged.
func MovementActionHandler(ctx ActionContext, act GameAction, sessionID, timestamp int64) (MovementResult, error) {
	cost := grid.PathCost(act.Path, ctx.MapGrid)
	phase := turnphase.ConsumeMovement(ctx.TurnPhase, cost)

	moveEvent := event.MoveCommitted{
		Meta:              event.NewMeta(sessionID, timestamp),
		CreatureID:        act.ActorID,
		Path:              act.Path,
		MovementUsed:      cost,
		MovementRemaining: phase.MovementRemaining,
	}

	result := MovementResult{
		Events: []event.Event{moveEvent},
		Phase:  phase,
	}

	if ctx.DisengagedUntilTurnEnd[act.ActorID] {
		return result, nil
	}

	for id, pos := range ctx.Positions {
		if id == act.ActorID {
			continue
		}
		if vacatesReach(act.Path, pos) {
			result.OpportunityReactors = append(result.OpportunityReactors, id)
		}
	}

	sort.Slice(result.OpportunityReactors, func(i, j int) bool {
		return result.OpportunityReactors[i] < result.OpportunityReactors[j]
	})

	return result, nil
}

// vacatesReach reports whether path moves from a cell within reachFeet of
// pos to one beyond it, at any consecutive step.
func vacatesReach(path []grid.GridPos, pos grid.GridPos) bool {
	for i := 0; i+1 < len(path); i++ {
		wasInReach := grid.DistanceFeet(path[i], pos) <= reachFeet
		staysInReach := grid.DistanceFeet(path[i+1], pos) <= reachFeet
		if wasInReach && !staysInReach {
			return true
		}
	}
	return false
}
