package state

import (
	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/initiative"
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
)

// Fold applies one event to state, returning the next RoundState. Only the
// event types named in the initiative fold table change the result; every
// other event type (damage, conditions, spell outcomes, ...) passes state
// through unchanged, since those are separate projections.
//
// An event that would violate an initiative invariant (e.g. TurnStarted for
// a creature dropped from the order) is treated as a no-op rather than a
// panic or error: build_state rebuilds from a log of already-validated
// handler output, so such an event signals a caller bug elsewhere, not
// something this fold should surface.
func Fold(s initiative.RoundState, e event.Event) initiative.RoundState {
	switch ev := e.(type) {
	case event.EncounterStarted:
		entries := append([]ruleset.InitiativeEntry(nil), ev.Entries...)
		ruleset.SortEntries(entries)
		next, err := initiative.Initialize(entries, surprisedSet(ev.SurprisedCreatures))
		if err != nil {
			return s
		}
		return next

	case event.RoundStarted:
		next := s
		next.RoundNumber = ev.RoundNumber
		if ev.SurpriseRoundEnded {
			next.IsSurpriseRound = false
			next.SurprisedCreatures = nil
		}
		return next

	case event.TurnStarted:
		return applyTurnStarted(s, ev)

	case event.TurnEnded:
		next := s
		next.CurrentTurn = nil
		return next

	case event.ReactionUsed:
		return applyReactionUsed(s, ev)

	case event.TurnDelayed:
		next, err := initiative.DelayTurn(s, ev.CreatureID)
		if err != nil {
			return s
		}
		return next

	case event.DelayedTurnResumed:
		next, err := initiative.ResumeDelayedTurn(s, ev.CreatureID, int(ev.NewInitiative))
		if err != nil {
			return s
		}
		return next

	case event.CreatureAddedToCombat:
		next, err := initiative.AddCreature(s, ev.Entry)
		if err != nil {
			return s
		}
		return next

	case event.CreatureRemovedFromCombat:
		next, err := initiative.RemoveCreature(s, ev.CreatureID)
		if err != nil {
			return s
		}
		return next

	default:
		return s
	}
}

// Build threads events through Fold in order, starting from the empty
// RoundState. build_state(events) in spec terms.
func Build(events []event.Event) initiative.RoundState {
	var s initiative.RoundState
	for _, e := range events {
		s = Fold(s, e)
	}
	return s
}

func surprisedSet(ids []ruleset.CreatureID) map[ruleset.CreatureID]bool {
	if len(ids) == 0 {
		return nil
	}
	out := make(map[ruleset.CreatureID]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func applyTurnStarted(s initiative.RoundState, ev event.TurnStarted) initiative.RoundState {
	index := -1
	for i, entry := range s.InitiativeOrder {
		if entry.CreatureID == ev.CreatureID {
			index = i
			break
		}
	}
	if index == -1 {
		return s
	}

	next := s
	next.CurrentTurn = &initiative.TurnState{
		ActiveCreatureID: ev.CreatureID,
		TurnPhase:        turnphase.StartTurn(ev.CreatureID, ev.Speed),
		TurnIndex:        index,
	}
	return next
}

func applyReactionUsed(s initiative.RoundState, ev event.ReactionUsed) initiative.RoundState {
	if s.CurrentTurn == nil || s.CurrentTurn.ActiveCreatureID != ev.ReactorID {
		return s
	}
	next := s
	turn := *s.CurrentTurn
	turn.TurnPhase = turnphase.ConsumeReaction(turn.TurnPhase)
	next.CurrentTurn = &turn
	return next
}
