package event

import (
	"github.com/ironveil-games/combat-core/dice"
	"github.com/ironveil-games/combat-core/grid"
	"github.com/ironveil-games/combat-core/ruleset"
)

// EncounterStarted seeds the initiative order and the initial TurnState.
type EncounterStarted struct {
	Meta
	Entries            []ruleset.InitiativeEntry `json:"entries"`
	SurprisedCreatures []ruleset.CreatureID       `json:"surprised_creatures,omitempty"`
}

// Type implements Event.
func (e EncounterStarted) Type() string { return "encounter_started" }

// MarshalJSON implements json.Marshaler.
func (e EncounterStarted) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// RoundStarted sets round_number and, when leaving a surprise round, clears
// surprise flags.
type RoundStarted struct {
	Meta
	RoundNumber        int32 `json:"round_number"`
	SurpriseRoundEnded bool  `json:"surprise_round_ended,omitempty"`
}

// Type implements Event.
func (e RoundStarted) Type() string { return "round_started" }

// MarshalJSON implements json.Marshaler.
func (e RoundStarted) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// TurnStarted sets the current turn to the given creature with a fresh
// TurnPhase.
type TurnStarted struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
	Speed      int32              `json:"speed"`
}

// Type implements Event.
func (e TurnStarted) Type() string { return "turn_started" }

// MarshalJSON implements json.Marshaler.
func (e TurnStarted) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// TurnEnded clears the current turn.
type TurnEnded struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
}

// Type implements Event.
func (e TurnEnded) Type() string { return "turn_ended" }

// MarshalJSON implements json.Marshaler.
func (e TurnEnded) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// EncounterEnded records the encounter's terminal status.
type EncounterEnded struct {
	Meta
	Status ruleset.EncounterStatus `json:"status"`
}

// Type implements Event.
func (e EncounterEnded) Type() string { return "encounter_ended" }

// MarshalJSON implements json.Marshaler.
func (e EncounterEnded) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// AttackResolved is emitted for every attack roll, hit or miss.
type AttackResolved struct {
	Meta
	AttackerID  ruleset.CreatureID `json:"attacker_id"`
	TargetID    ruleset.CreatureID `json:"target_id"`
	AttackRoll  dice.DiceRoll      `json:"attack_roll"`
	AttackBonus int32              `json:"attack_bonus"`
	TargetAC    int32              `json:"target_ac"`
	Hit         bool               `json:"hit"`
	Critical    bool               `json:"critical"`
}

// Type implements Event.
func (e AttackResolved) Type() string { return "attack_resolved" }

// MarshalJSON implements json.Marshaler.
func (e AttackResolved) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// DamageApplied is emitted after a hit or spell damage resolves.
type DamageApplied struct {
	Meta
	TargetID ruleset.CreatureID `json:"target_id"`
	Amount   int32              `json:"amount"`
	HPBefore int32              `json:"hp_before"`
	HPAfter  int32              `json:"hp_after"`
}

// Type implements Event.
func (e DamageApplied) Type() string { return "damage_applied" }

// MarshalJSON implements json.Marshaler.
func (e DamageApplied) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// ConditionApplied is emitted when a status condition is added to a creature.
type ConditionApplied struct {
	Meta
	TargetID  ruleset.CreatureID `json:"target_id"`
	Condition ruleset.Condition  `json:"condition"`
}

// Type implements Event.
func (e ConditionApplied) Type() string { return "condition_applied" }

// MarshalJSON implements json.Marshaler.
func (e ConditionApplied) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// ConditionRemoved is emitted when a status condition is cleared.
type ConditionRemoved struct {
	Meta
	TargetID  ruleset.CreatureID `json:"target_id"`
	Condition ruleset.Condition  `json:"condition"`
}

// Type implements Event.
func (e ConditionRemoved) Type() string { return "condition_removed" }

// MarshalJSON implements json.Marshaler.
func (e ConditionRemoved) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// MoveCommitted is emitted when a validated Move action completes.
type MoveCommitted struct {
	Meta
	CreatureID        ruleset.CreatureID `json:"creature_id"`
	Path              []grid.GridPos     `json:"path"`
	MovementUsed      int32              `json:"movement_used"`
	MovementRemaining int32              `json:"movement_remaining"`
}

// Type implements Event.
func (e MoveCommitted) Type() string { return "move_committed" }

// MarshalJSON implements json.Marshaler.
func (e MoveCommitted) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// ReactionUsed is always emitted once a reactor's reaction has been evaluated.
type ReactionUsed struct {
	Meta
	ReactorID ruleset.CreatureID `json:"reactor_id"`
	Trigger   string             `json:"trigger"`
}

// Type implements Event.
func (e ReactionUsed) Type() string { return "reaction_used" }

// MarshalJSON implements json.Marshaler.
func (e ReactionUsed) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// TurnDelayed is emitted when a creature delays its turn.
type TurnDelayed struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
}

// Type implements Event.
func (e TurnDelayed) Type() string { return "turn_delayed" }

// MarshalJSON implements json.Marshaler.
func (e TurnDelayed) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// DelayedTurnResumed is emitted when a delayed creature re-enters the order.
type DelayedTurnResumed struct {
	Meta
	CreatureID    ruleset.CreatureID `json:"creature_id"`
	NewInitiative int32              `json:"new_initiative"`
}

// Type implements Event.
func (e DelayedTurnResumed) Type() string { return "delayed_turn_resumed" }

// MarshalJSON implements json.Marshaler.
func (e DelayedTurnResumed) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// CreatureAddedToCombat is emitted when a creature joins an in-progress encounter.
type CreatureAddedToCombat struct {
	Meta
	Entry ruleset.InitiativeEntry `json:"entry"`
}

// Type implements Event.
func (e CreatureAddedToCombat) Type() string { return "creature_added_to_combat" }

// MarshalJSON implements json.Marshaler.
func (e CreatureAddedToCombat) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// CreatureRemovedFromCombat is emitted when a creature leaves an encounter.
type CreatureRemovedFromCombat struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
}

// Type implements Event.
func (e CreatureRemovedFromCombat) Type() string { return "creature_removed_from_combat" }

// MarshalJSON implements json.Marshaler.
func (e CreatureRemovedFromCombat) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// SpellOutcome is one target's result within a SpellCast event.
type SpellOutcome struct {
	TargetID          ruleset.CreatureID  `json:"target_id"`
	Hit               bool                `json:"hit,omitempty"`
	SaveSuccess       bool                `json:"save_success,omitempty"`
	Damage            int32               `json:"damage,omitempty"`
	ConditionsApplied []ruleset.Condition `json:"conditions_applied,omitempty"`
}

// SpellCast is emitted once per spell, carrying every target's outcome.
type SpellCast struct {
	Meta
	CasterID     ruleset.CreatureID `json:"caster_id"`
	SpellID      string             `json:"spell_id"`
	SpellLevel   int32              `json:"spell_level"`
	SlotConsumed int32              `json:"slot_consumed"`
	Outcomes     []SpellOutcome     `json:"outcomes"`
}

// Type implements Event.
func (e SpellCast) Type() string { return "spell_cast" }

// MarshalJSON implements json.Marshaler.
func (e SpellCast) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// BonusActionTaken is emitted for a bonus action that is not itself one of
// the other named action events (e.g. a class feature).
type BonusActionTaken struct {
	Meta
	CreatureID  ruleset.CreatureID `json:"creature_id"`
	Description string             `json:"description"`
}

// Type implements Event.
func (e BonusActionTaken) Type() string { return "bonus_action_taken" }

// MarshalJSON implements json.Marshaler.
func (e BonusActionTaken) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// DisengageAction is emitted when a creature takes the Disengage action.
type DisengageAction struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
}

// Type implements Event.
func (e DisengageAction) Type() string { return "disengage_action" }

// MarshalJSON implements json.Marshaler.
func (e DisengageAction) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// DodgeAction is emitted when a creature takes the Dodge action.
type DodgeAction struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
}

// Type implements Event.
func (e DodgeAction) Type() string { return "dodge_action" }

// MarshalJSON implements json.Marshaler.
func (e DodgeAction) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// HelpAction is emitted when a creature takes the Help action.
type HelpAction struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
	HelpType   string             `json:"help_type"`
	TargetID   ruleset.CreatureID `json:"target_id"`
}

// Type implements Event.
func (e HelpAction) Type() string { return "help_action" }

// MarshalJSON implements json.Marshaler.
func (e HelpAction) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// ReadyAction is emitted when a creature readies an action against a trigger.
type ReadyAction struct {
	Meta
	CreatureID                ruleset.CreatureID `json:"creature_id"`
	Trigger                   string             `json:"trigger"`
	PreparedActionDescription string             `json:"prepared_action_description"`
}

// Type implements Event.
func (e ReadyAction) Type() string { return "ready_action" }

// MarshalJSON implements json.Marshaler.
func (e ReadyAction) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }

// CreatureDefeated is emitted when a creature's hp_after reaches 0 from a
// positive hp_before.
type CreatureDefeated struct {
	Meta
	CreatureID ruleset.CreatureID `json:"creature_id"`
}

// Type implements Event.
func (e CreatureDefeated) Type() string { return "creature_defeated" }

// MarshalJSON implements json.Marshaler.
func (e CreatureDefeated) MarshalJSON() ([]byte, error) { return marshalTagged(e.Type(), e) }
