package action

import (
	"github.com/ironveil-games/combat-core/dice"
	"github.com/ironveil-games/combat-core/grid"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
)

// GameActionKind names one of the closed set of actions a creature may
// submit.
type GameActionKind string

// The ten supported action kinds.
const (
	GameActionMove              GameActionKind = "MOVE"
	GameActionAttack            GameActionKind = "ATTACK"
	GameActionCastSpell         GameActionKind = "CAST_SPELL"
	GameActionReaction          GameActionKind = "REACTION"
	GameActionOpportunityAttack GameActionKind = "OPPORTUNITY_ATTACK"
	GameActionDash              GameActionKind = "DASH"
	GameActionDodge             GameActionKind = "DODGE"
	GameActionDisengage         GameActionKind = "DISENGAGE"
	GameActionHelp              GameActionKind = "HELP"
	GameActionReady             GameActionKind = "READY"
)

// SpellEffectKind distinguishes the three shapes a spell's resolution can
// take.
type SpellEffectKind string

// The three spell effect kinds.
const (
	SpellEffectAttack  SpellEffectKind = "ATTACK"
	SpellEffectSave    SpellEffectKind = "SAVE"
	SpellEffectUtility SpellEffectKind = "UTILITY"
)

// SpellEffect is the closed sum describing how a spell resolves against its
// targets. Only the fields relevant to Kind are meaningful.
type SpellEffect struct {
	Kind SpellEffectKind

	// Attack: bonus added to the d20 roll against target AC.
	AttackBonus int32

	// Save: DC to beat, the ability the target rolls, and whether a
	// successful save still takes half damage.
	SaveDC      int32
	SaveAbility ruleset.Ability
	HalfOnSave  bool

	// Damage dice shared by Attack and Save effects. Utility effects deal
	// no damage.
	DamageDiceCount int
	DamageDie       dice.DieType
	DamageModifier  int32
}

// NewAttackSpellEffect builds an Attack-kind SpellEffect.
func NewAttackSpellEffect(attackBonus int32, diceCount int, die dice.DieType, modifier int32) SpellEffect {
	return SpellEffect{Kind: SpellEffectAttack, AttackBonus: attackBonus, DamageDiceCount: diceCount, DamageDie: die, DamageModifier: modifier}
}

// NewSaveSpellEffect builds a Save-kind SpellEffect.
func NewSaveSpellEffect(dc int32, ability ruleset.Ability, halfOnSave bool, diceCount int, die dice.DieType, modifier int32) SpellEffect {
	return SpellEffect{Kind: SpellEffectSave, SaveDC: dc, SaveAbility: ability, HalfOnSave: halfOnSave, DamageDiceCount: diceCount, DamageDie: die, DamageModifier: modifier}
}

// NewUtilitySpellEffect builds a Utility-kind SpellEffect: no roll, no
// damage; side effects are expressed as events the spell handler's caller
// emits separately.
func NewUtilitySpellEffect() SpellEffect {
	return SpellEffect{Kind: SpellEffectUtility}
}

// GameAction is the closed sum of submittable actions. Construct one with
// the New*Action functions below; only the fields documented for Kind are
// populated.
type GameAction struct {
	Kind    GameActionKind
	ActorID ruleset.CreatureID

	// Move
	Path []grid.GridPos

	// Attack, OpportunityAttack
	TargetID        ruleset.CreatureID
	AttackBonus     int32
	DamageDiceCount int
	DamageDie       dice.DieType
	DamageModifier  int32
	RangeFeet       int32

	// CastSpell
	TargetIDs  []ruleset.CreatureID
	SpellID    string
	SpellLevel int32
	AsBonus    bool
	Effect     SpellEffect
	Touch      bool

	// Reaction
	Trigger              string
	TriggeringCreatureID ruleset.CreatureID
	Response             *GameAction

	// Help
	HelpType string

	// Ready
	PreparedActionDescription string
}

// NewMoveAction builds a Move action along path.
func NewMoveAction(actorID ruleset.CreatureID, path []grid.GridPos) GameAction {
	return GameAction{Kind: GameActionMove, ActorID: actorID, Path: path}
}

// NewAttackAction builds an Attack action.
func NewAttackAction(actorID, targetID ruleset.CreatureID, attackBonus int32, diceCount int, die dice.DieType, modifier, rangeFeet int32) GameAction {
	return GameAction{
		Kind: GameActionAttack, ActorID: actorID, TargetID: targetID,
		AttackBonus: attackBonus, DamageDiceCount: diceCount, DamageDie: die,
		DamageModifier: modifier, RangeFeet: rangeFeet,
	}
}

// NewOpportunityAttackAction builds an OpportunityAttack action; shape
// matches Attack but is kept as a distinct kind so the validator and
// handlers can apply reaction-specific economy checks.
func NewOpportunityAttackAction(actorID, targetID ruleset.CreatureID, attackBonus int32, diceCount int, die dice.DieType, modifier int32) GameAction {
	return GameAction{
		Kind: GameActionOpportunityAttack, ActorID: actorID, TargetID: targetID,
		AttackBonus: attackBonus, DamageDiceCount: diceCount, DamageDie: die,
		DamageModifier: modifier, RangeFeet: 5,
	}
}

// NewCastSpellAction builds a CastSpell action.
func NewCastSpellAction(actorID ruleset.CreatureID, targetIDs []ruleset.CreatureID, spellID string, spellLevel int32, asBonus bool, effect SpellEffect, rangeFeet int32, touch bool) GameAction {
	return GameAction{
		Kind: GameActionCastSpell, ActorID: actorID, TargetIDs: targetIDs,
		SpellID: spellID, SpellLevel: spellLevel, AsBonus: asBonus,
		Effect: effect, RangeFeet: rangeFeet, Touch: touch,
	}
}

// NewReactionAction builds a Reaction action wrapping the response the
// reactor takes (an attack, a spell, or nil for a reaction with no further
// domain effect).
func NewReactionAction(actorID ruleset.CreatureID, trigger string, triggeringCreatureID ruleset.CreatureID, response *GameAction) GameAction {
	return GameAction{Kind: GameActionReaction, ActorID: actorID, Trigger: trigger, TriggeringCreatureID: triggeringCreatureID, Response: response}
}

// NewDashAction builds a Dash action.
func NewDashAction(actorID ruleset.CreatureID) GameAction {
	return GameAction{Kind: GameActionDash, ActorID: actorID}
}

// NewDodgeAction builds a Dodge action.
func NewDodgeAction(actorID ruleset.CreatureID) GameAction {
	return GameAction{Kind: GameActionDodge, ActorID: actorID}
}

// NewDisengageAction builds a Disengage action.
func NewDisengageAction(actorID ruleset.CreatureID) GameAction {
	return GameAction{Kind: GameActionDisengage, ActorID: actorID}
}

// NewHelpAction builds a Help action.
func NewHelpAction(actorID, targetID ruleset.CreatureID, helpType string) GameAction {
	return GameAction{Kind: GameActionHelp, ActorID: actorID, TargetID: targetID, HelpType: helpType}
}

// NewReadyAction builds a Ready action.
func NewReadyAction(actorID ruleset.CreatureID, trigger, preparedActionDescription string) GameAction {
	return GameAction{Kind: GameActionReady, ActorID: actorID, Trigger: trigger, PreparedActionDescription: preparedActionDescription}
}

// RequiredPhase reports which action-economy resource (§4.7) the action
// consumes, for the validator's economy check.
func (a GameAction) RequiredPhase() turnphase.ActionKind {
	switch a.Kind {
	case GameActionMove:
		return turnphase.ActionKindMovement
	case GameActionReaction, GameActionOpportunityAttack:
		return turnphase.ActionKindReaction
	case GameActionCastSpell:
		if a.AsBonus {
			return turnphase.ActionKindBonusAction
		}
		return turnphase.ActionKindAction
	case GameActionAttack, GameActionDash, GameActionDodge, GameActionDisengage, GameActionHelp, GameActionReady:
		return turnphase.ActionKindAction
	default:
		return turnphase.ActionKindAction
	}
}

// IsSelfTargeted reports whether a has no distinct target, so the
// validator's range/LOE check (step 5) should be skipped.
func (a GameAction) IsSelfTargeted() bool {
	switch a.Kind {
	case GameActionMove, GameActionDash, GameActionDodge, GameActionDisengage, GameActionReady:
		return true
	case GameActionCastSpell:
		return len(a.TargetIDs) == 0
	default:
		return false
	}
}
