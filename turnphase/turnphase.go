package turnphase

import "github.com/ironveil-games/combat-core/ruleset"

// ActionKind distinguishes the resources a GameAction consumes when checking
// availability via IsActionAvailable.
type ActionKind string

// Supported action kinds.
const (
	ActionKindAction      ActionKind = "ACTION"
	ActionKindBonusAction ActionKind = "BONUS_ACTION"
	ActionKindReaction    ActionKind = "REACTION"
	ActionKindMovement    ActionKind = "MOVEMENT"
	ActionKindFreeAction  ActionKind = "FREE_ACTION"
)

// TurnPhase is the action economy for one creature's turn: how much
// movement remains and whether the action, bonus action, and reaction are
// still available. Every operation below is a pure function returning a
// new TurnPhase; none mutate the receiver.
type TurnPhase struct {
	CreatureID           ruleset.CreatureID `json:"creature_id"`
	MovementRemaining    int32              `json:"movement_remaining"`
	ActionAvailable      bool               `json:"action_available"`
	BonusActionAvailable bool               `json:"bonus_action_available"`
	ReactionAvailable    bool               `json:"reaction_available"`
}

// StartTurn builds a fresh TurnPhase with the action, bonus action, and
// reaction available and movement set to speed.
func StartTurn(creatureID ruleset.CreatureID, speed int32) TurnPhase {
	return TurnPhase{
		CreatureID:           creatureID,
		MovementRemaining:    speed,
		ActionAvailable:      true,
		BonusActionAvailable: true,
		ReactionAvailable:    true,
	}
}

// ConsumeMovement returns a TurnPhase with movement_remaining reduced by ft,
// floored at zero.
func ConsumeMovement(phase TurnPhase, ft int32) TurnPhase {
	next := phase
	next.MovementRemaining = phase.MovementRemaining - ft
	if next.MovementRemaining < 0 {
		next.MovementRemaining = 0
	}
	return next
}

// ConsumeAction returns a TurnPhase with the action no longer available.
// Idempotent: consuming an already-spent action is a no-op.
func ConsumeAction(phase TurnPhase) TurnPhase {
	next := phase
	next.ActionAvailable = false
	return next
}

// ConsumeBonusAction returns a TurnPhase with the bonus action no longer
// available. Idempotent.
func ConsumeBonusAction(phase TurnPhase) TurnPhase {
	next := phase
	next.BonusActionAvailable = false
	return next
}

// ConsumeReaction returns a TurnPhase with the reaction no longer available.
// Idempotent.
func ConsumeReaction(phase TurnPhase) TurnPhase {
	next := phase
	next.ReactionAvailable = false
	return next
}

// RestoreReaction returns a TurnPhase with the reaction available again.
// Used at turn start, and by features that refresh a spent reaction.
func RestoreReaction(phase TurnPhase) TurnPhase {
	next := phase
	next.ReactionAvailable = true
	return next
}

// IsActionAvailable reports whether phase has the resource kind requires.
// Movement is available iff movement_remaining > 0; FreeAction is always
// available.
func IsActionAvailable(phase TurnPhase, kind ActionKind) bool {
	switch kind {
	case ActionKindAction:
		return phase.ActionAvailable
	case ActionKindBonusAction:
		return phase.BonusActionAvailable
	case ActionKindReaction:
		return phase.ReactionAvailable
	case ActionKindMovement:
		return phase.MovementRemaining > 0
	case ActionKindFreeAction:
		return true
	default:
		return false
	}
}
