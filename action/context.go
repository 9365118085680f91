package action

import (
	"github.com/ironveil-games/combat-core/grid"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
)

// ReadiedAction is a Ready action waiting for its trigger to fire. The
// reaction handler consults readied_actions when a trigger condition is met.
type ReadiedAction struct {
	ActorID ruleset.CreatureID
	Trigger string
	Action  GameAction
}

// ResourcePool is the external capability the validator consults for spell
// slots, ammunition, and limited-use charges. The core never tracks these
// resources itself; callers own the pool and its persistence.
//
//go:generate mockgen -destination=mock/mock_resourcepool.go -package=mock github.com/ironveil-games/combat-core/action ResourcePool
type ResourcePool interface {
	// Available reports whether actorID has amount of kind remaining
	// (kind examples: "spell_slot_3", "ammo_arrow", "charge_second_wind").
	Available(actorID ruleset.CreatureID, kind string, amount int32) bool
}

// ActionContext is the read-only snapshot the validator and handlers
// consult: the session, the active creature's action economy, every
// creature in the encounter, the battle map, each creature's current
// conditions, and any readied actions awaiting a trigger.
type ActionContext struct {
	SessionID   int64
	RoundNumber int32
	TurnPhase   turnphase.TurnPhase

	Creatures map[ruleset.CreatureID]ruleset.Creature
	Positions map[ruleset.CreatureID]grid.GridPos
	MapGrid   *grid.MapGrid

	ActiveConditions map[ruleset.CreatureID]ruleset.ConditionSet
	ReadiedActions   map[ruleset.CreatureID]ReadiedAction

	// DisengagedUntilTurnEnd tracks creatures that took the Disengage action
	// this turn, so the movement handler's opportunity-attack sweep and the
	// reaction handler can both suppress it for them.
	DisengagedUntilTurnEnd map[ruleset.CreatureID]bool

	// ReactionAvailable tracks reaction_available for every creature, not
	// just the active one, since a reactor is rarely the active creature.
	ReactionAvailable map[ruleset.CreatureID]bool

	// BonusActionSpellCast is true when the active creature has already cast
	// a spell as a bonus action this turn. The SRD rule it enforces: a
	// further action-cost spell this turn must be a cantrip.
	BonusActionSpellCast bool
}

// conditionsOf returns the condition set tracked for id, or an empty set.
func (c ActionContext) conditionsOf(id ruleset.CreatureID) ruleset.ConditionSet {
	if s, ok := c.ActiveConditions[id]; ok {
		return s
	}
	return ruleset.NewConditionSet()
}

// positionOf returns the tracked position for id and whether one exists.
func (c ActionContext) positionOf(id ruleset.CreatureID) (grid.GridPos, bool) {
	p, ok := c.Positions[id]
	return p, ok
}
