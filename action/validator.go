package action

import (
	"fmt"

	"github.com/ironveil-games/combat-core/grid"
	"github.com/ironveil-games/combat-core/rpgerr"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
)

// touchRangeFeet is the max range for touch spells and melee attacks (one
// cell).
const touchRangeFeet = 5

// Validate runs the six-step composed check from §4.8, short-circuiting on
// the first failure: existence, condition gates, action economy, resources,
// range/line-of-effect, and (for Move) the movement path.
func Validate(ctx ActionContext, resources ResourcePool, act GameAction) ValidationResult {
	if r, ok := checkExistence(ctx, act); !ok {
		return r
	}
	if r, ok := checkConditionGates(ctx, act); !ok {
		return r
	}
	if r, ok := checkActionEconomy(ctx, act); !ok {
		return r
	}
	if r, ok := checkResources(ctx, resources, act); !ok {
		return r
	}
	if r, ok := checkRangeAndLOE(ctx, act); !ok {
		return r
	}
	if r, ok := checkMovementPath(ctx, act); !ok {
		return r
	}
	return Valid()
}

func checkExistence(ctx ActionContext, act GameAction) (ValidationResult, bool) {
	if _, ok := ctx.Creatures[act.ActorID]; !ok {
		return Invalid(rpgerr.InvalidTargetErr(fmt.Sprintf("actor %v not found", act.ActorID))), false
	}
	for _, id := range targetsOf(act) {
		if _, ok := ctx.Creatures[id]; !ok {
			return Invalid(rpgerr.InvalidTargetErr(fmt.Sprintf("target %v not found", id))), false
		}
	}
	if act.Kind == GameActionHelp {
		if _, ok := ctx.Creatures[act.TargetID]; !ok {
			return Invalid(rpgerr.InvalidTargetErr("help requires an existing target")), false
		}
	}
	return Valid(), true
}

func targetsOf(act GameAction) []ruleset.CreatureID {
	switch act.Kind {
	case GameActionAttack, GameActionOpportunityAttack:
		return []ruleset.CreatureID{act.TargetID}
	case GameActionCastSpell:
		return act.TargetIDs
	default:
		return nil
	}
}

func checkConditionGates(ctx ActionContext, act GameAction) (ValidationResult, bool) {
	conditions := ctx.conditionsOf(act.ActorID)
	if cond, blocked := conditions.AnyIncapacitating(); blocked {
		return Invalid(rpgerr.ConditionPrevents(string(cond))), false
	}
	return Valid(), true
}

func checkActionEconomy(ctx ActionContext, act GameAction) (ValidationResult, bool) {
	required := act.RequiredPhase()
	if !turnphase.IsActionAvailable(ctx.TurnPhase, required) {
		return Invalid(rpgerr.ActionEconomyExhausted(string(required))), false
	}
	if act.Kind == GameActionCastSpell && !act.AsBonus && ctx.BonusActionSpellCast && act.SpellLevel > 0 {
		return Invalid(rpgerr.ConditionPrevents("bonus action spell already cast this turn")), false
	}
	return Valid(), true
}

func checkResources(ctx ActionContext, resources ResourcePool, act GameAction) (ValidationResult, bool) {
	if act.Kind != GameActionCastSpell || act.SpellLevel == 0 {
		return Valid(), true
	}
	if resources == nil {
		return Valid(), true
	}
	kind := fmt.Sprintf("spell_slot_%d", act.SpellLevel)
	if !resources.Available(act.ActorID, kind, 1) {
		return Invalid(rpgerr.InsufficientResource(kind)), false
	}
	return Valid(), true
}

func checkRangeAndLOE(ctx ActionContext, act GameAction) (ValidationResult, bool) {
	if act.IsSelfTargeted() {
		return Valid(), true
	}

	actorPos, ok := ctx.positionOf(act.ActorID)
	if !ok {
		return Invalid(rpgerr.InvalidTargetErr("actor has no known position")), false
	}

	maxRange := act.RangeFeet
	touch := act.Touch
	if act.Kind == GameActionOpportunityAttack {
		touch = true
		maxRange = touchRangeFeet
	}
	if touch {
		maxRange = touchRangeFeet
	}

	for _, id := range targetsOf(act) {
		targetPos, ok := ctx.positionOf(id)
		if !ok {
			return Invalid(rpgerr.InvalidTargetErr("target has no known position")), false
		}
		if grid.DistanceFeet(actorPos, targetPos) > maxRange {
			return Invalid(rpgerr.ValidationFailure(rpgerr.CodeOutOfRange, "target out of range")), false
		}
		if !touch && ctx.MapGrid != nil && !grid.HasLineOfEffect(actorPos, targetPos, ctx.MapGrid) {
			return Invalid(rpgerr.LineOfEffectBlocked(fmt.Sprintf("%v", targetPos))), false
		}
	}
	return Valid(), true
}

func checkMovementPath(ctx ActionContext, act GameAction) (ValidationResult, bool) {
	if act.Kind != GameActionMove {
		return Valid(), true
	}
	if ctx.MapGrid == nil || !grid.IsValidPath(act.Path, ctx.MapGrid) {
		return Invalid(rpgerr.PathBlockedErr("movement path")), false
	}
	if !grid.WithinBudget(act.Path, ctx.TurnPhase.MovementRemaining, ctx.MapGrid) {
		return Invalid(rpgerr.ActionEconomyExhausted("movement")), false
	}
	return Valid(), true
}
