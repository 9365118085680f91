package action

import (
	"github.com/ironveil-games/combat-core/dice"
	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/ruleset"
)

// ReactionTrigger names the event that can provoke a reaction.
type ReactionTrigger string

// The four supported reaction triggers.
const (
	ReactionTriggerCreatureMoved ReactionTrigger = "CREATURE_MOVED"
	ReactionTriggerAttackMade    ReactionTrigger = "ATTACK_MADE"
	ReactionTriggerSpellCast     ReactionTrigger = "SPELL_CAST"
	ReactionTriggerConditionMet  ReactionTrigger = "TRIGGER_CONDITION_MET"
)

// ReactionHandler evaluates a trigger against candidate reactors in
// initiative order. Each reactor is skipped if its reaction is unavailable
// or the triggering creature holds a Disengaged marker against it; an
// evaluated reactor emits its response's events (if any) followed by
// ReactionUsed.
func ReactionHandler(
	ctx ActionContext,
	trigger ReactionTrigger,
	triggeringCreatureID ruleset.CreatureID,
	reactorsInInitiativeOrder []ruleset.CreatureID,
	responses map[ruleset.CreatureID]*GameAction,
	roller dice.Roller,
	sessionID, timestamp int64,
) ([]event.Event, error) {
	if ctx.DisengagedUntilTurnEnd[triggeringCreatureID] {
		return nil, nil
	}

	var events []event.Event
	for _, reactorID := range reactorsInInitiativeOrder {
		if !ctx.ReactionAvailable[reactorID] {
			continue
		}

		if response := responses[reactorID]; response != nil {
			downstream, err := resolveReactionResponse(ctx, *response, roller, sessionID, timestamp)
			if err != nil {
				return nil, err
			}
			events = append(events, downstream...)
		}

		events = append(events, event.ReactionUsed{
			Meta:      event.NewMeta(sessionID, timestamp),
			ReactorID: reactorID,
			Trigger:   string(trigger),
		})
	}

	return events, nil
}

func resolveReactionResponse(ctx ActionContext, response GameAction, roller dice.Roller, sessionID, timestamp int64) ([]event.Event, error) {
	switch response.Kind {
	case GameActionOpportunityAttack, GameActionAttack:
		return AttackActionHandler(ctx, response, roller, sessionID, timestamp)
	case GameActionCastSpell:
		return SpellActionHandler(ctx, response, roller, sessionID, timestamp)
	default:
		return nil, nil
	}
}
