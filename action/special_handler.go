package action

import (
	"fmt"

	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/rpgerr"
	"github.com/ironveil-games/combat-core/turnphase"
)

// SpecialActionHandler resolves Dash, Dodge, Disengage, Help, and Ready.
// Dash has no dedicated event; its effect is adding the actor's Speed to its
// remaining movement for the turn, consuming the action.
func SpecialActionHandler(ctx ActionContext, act GameAction, sessionID, timestamp int64) ([]event.Event, turnphase.TurnPhase, error) {
	phase := turnphase.ConsumeAction(ctx.TurnPhase)
	meta := event.NewMeta(sessionID, timestamp)

	switch act.Kind {
	case GameActionDash:
		actor := ctx.Creatures[act.ActorID]
		phase.MovementRemaining += int32(actor.Speed)
		return nil, phase, nil

	case GameActionDodge:
		return []event.Event{event.DodgeAction{Meta: meta, CreatureID: act.ActorID}}, phase, nil

	case GameActionDisengage:
		return []event.Event{event.DisengageAction{Meta: meta, CreatureID: act.ActorID}}, phase, nil

	case GameActionHelp:
		return []event.Event{event.HelpAction{Meta: meta, CreatureID: act.ActorID, HelpType: act.HelpType, TargetID: act.TargetID}}, phase, nil

	case GameActionReady:
		return []event.Event{event.ReadyAction{
			Meta:                      meta,
			CreatureID:                act.ActorID,
			Trigger:                   act.Trigger,
			PreparedActionDescription: act.PreparedActionDescription,
		}}, phase, nil

	default:
		return nil, ctx.TurnPhase, rpgerr.InvalidState(fmt.Sprintf("%s is not a special action", act.Kind))
	}
}
