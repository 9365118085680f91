package initiative

import (
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/rpgerr"
	"github.com/ironveil-games/combat-core/turnphase"
)

// Initialize builds the first RoundState from a sorted initiative order and
// the set of creatures acting surprised. If surprised is nonempty the round
// starts at 0 in a surprise round; otherwise round 1. current_turn is set
// to the first entry not in surprised. Fails with InvalidState if order is
// empty or every entry is surprised.
func Initialize(order []ruleset.InitiativeEntry, surprised map[ruleset.CreatureID]bool) (RoundState, error) {
	if len(order) == 0 {
		return RoundState{}, rpgerr.InvalidState("initiative order is empty")
	}

	state := RoundState{
		InitiativeOrder:    cloneOrder(order),
		SurprisedCreatures: cloneSurprised(surprised),
		DelayedCreatures:   map[ruleset.CreatureID]ruleset.InitiativeEntry{},
	}

	if len(state.SurprisedCreatures) > 0 {
		state.RoundNumber = 0
		state.IsSurpriseRound = true
	} else {
		state.RoundNumber = 1
		state.IsSurpriseRound = false
	}

	firstIndex := -1
	for i, e := range state.InitiativeOrder {
		if !state.SurprisedCreatures[e.CreatureID] {
			firstIndex = i
			break
		}
	}
	if firstIndex < 0 {
		return RoundState{}, rpgerr.InvalidState("every creature in the initiative order is surprised")
	}

	creatureID := state.InitiativeOrder[firstIndex].CreatureID
	state.CurrentTurn = &TurnState{
		ActiveCreatureID: creatureID,
		TurnPhase:        turnphase.StartTurn(creatureID, DefaultSpeedFeet),
		TurnIndex:        firstIndex,
	}
	return state, nil
}

// resolveTurnAt advances state (whose InitiativeOrder already reflects any
// insert/remove) to index, wrapping and clearing surprise flags as needed,
// then skipping any consecutive surprised creatures, and finally installing
// a fresh TurnState at the resolved index. Precondition: len(order) > 0.
func resolveTurnAt(state RoundState, index int, wrapped bool) RoundState {
	if index >= len(state.InitiativeOrder) {
		index = 0
		wrapped = true
	}

	if wrapped {
		if state.IsSurpriseRound {
			state.IsSurpriseRound = false
			state.SurprisedCreatures = map[ruleset.CreatureID]bool{}
			state.RoundNumber = 1
		} else {
			state.RoundNumber++
		}
	}

	for state.IsSurpriseRound && state.SurprisedCreatures[state.InitiativeOrder[index].CreatureID] {
		index++
		if index >= len(state.InitiativeOrder) {
			index = 0
			state.IsSurpriseRound = false
			state.SurprisedCreatures = map[ruleset.CreatureID]bool{}
			state.RoundNumber = 1
		}
	}

	creatureID := state.InitiativeOrder[index].CreatureID
	state.CurrentTurn = &TurnState{
		ActiveCreatureID: creatureID,
		TurnPhase:        turnphase.StartTurn(creatureID, DefaultSpeedFeet),
		TurnIndex:        index,
	}
	return state
}

// AdvanceTurn moves to the next non-surprised creature in order, wrapping
// to a new round and clearing surprise-round flags as it crosses the end of
// the order.
func AdvanceTurn(state RoundState) (RoundState, error) {
	if len(state.InitiativeOrder) == 0 {
		return RoundState{}, rpgerr.InvalidState("initiative order is empty")
	}
	if state.CurrentTurn == nil {
		return RoundState{}, rpgerr.InvalidState("no active turn to advance from")
	}
	if state.CurrentTurn.TurnIndex < 0 || state.CurrentTurn.TurnIndex >= len(state.InitiativeOrder) {
		return RoundState{}, rpgerr.InvalidState("turn index out of bounds")
	}
	if indexOf(state.InitiativeOrder, state.CurrentTurn.ActiveCreatureID) != state.CurrentTurn.TurnIndex {
		return RoundState{}, rpgerr.InvalidState("active creature does not match turn index")
	}

	next := state.clone()
	nextIndex := next.CurrentTurn.TurnIndex + 1
	return resolveTurnAt(next, nextIndex, nextIndex >= len(next.InitiativeOrder)), nil
}

// AddCreature sort-inserts entry into the initiative order. If the
// insertion lands at or before the current turn index, the current turn's
// index is bumped so the same creature remains active. Fails with
// InvalidState if entry's creature is already in the order.
func AddCreature(state RoundState, entry ruleset.InitiativeEntry) (RoundState, error) {
	if indexOf(state.InitiativeOrder, entry.CreatureID) >= 0 {
		return RoundState{}, rpgerr.InvalidState("creature is already in the initiative order")
	}

	next := state.clone()
	combined := append(next.InitiativeOrder, entry)
	ruleset.SortEntries(combined)
	next.InitiativeOrder = combined

	insertionIndex := indexOf(combined, entry.CreatureID)
	if next.CurrentTurn != nil && insertionIndex <= next.CurrentTurn.TurnIndex {
		next.CurrentTurn.TurnIndex++
	}
	return next, nil
}

// RemoveCreature drops id from the initiative order. If id preceded the
// current turn index, the index is decremented. If id was active, the
// current turn is cleared; the caller must issue the next TurnStarted. If
// the order becomes empty, current turn is cleared unconditionally.
func RemoveCreature(state RoundState, id ruleset.CreatureID) (RoundState, error) {
	idx := indexOf(state.InitiativeOrder, id)
	if idx < 0 {
		return RoundState{}, rpgerr.InvalidState("creature is not in the initiative order")
	}

	next := state.clone()
	wasActive := next.CurrentTurn != nil && next.CurrentTurn.ActiveCreatureID == id

	order := make([]ruleset.InitiativeEntry, 0, len(next.InitiativeOrder)-1)
	order = append(order, next.InitiativeOrder[:idx]...)
	order = append(order, next.InitiativeOrder[idx+1:]...)
	next.InitiativeOrder = order

	switch {
	case len(order) == 0:
		next.CurrentTurn = nil
	case wasActive:
		next.CurrentTurn = nil
	case next.CurrentTurn != nil && idx < next.CurrentTurn.TurnIndex:
		next.CurrentTurn.TurnIndex--
	}

	return next, nil
}

// DelayTurn moves id's entry into delayed_creatures, removing it from the
// initiative order. If id was active, the turn advances to the next
// creature in the (now shorter) order.
func DelayTurn(state RoundState, id ruleset.CreatureID) (RoundState, error) {
	idx := indexOf(state.InitiativeOrder, id)
	if idx < 0 {
		return RoundState{}, rpgerr.InvalidState("creature is not in the initiative order")
	}

	next := state.clone()
	entry := next.InitiativeOrder[idx]
	wasActive := next.CurrentTurn != nil && next.CurrentTurn.ActiveCreatureID == id

	order := make([]ruleset.InitiativeEntry, 0, len(next.InitiativeOrder)-1)
	order = append(order, next.InitiativeOrder[:idx]...)
	order = append(order, next.InitiativeOrder[idx+1:]...)
	next.InitiativeOrder = order
	next.DelayedCreatures[id] = entry

	switch {
	case len(order) == 0:
		next.CurrentTurn = nil
	case wasActive:
		// the creature that followed the delayed one now sits at the same
		// numeric index, since the delayed entry was removed ahead of it.
		resolved := resolveTurnAt(next, next.CurrentTurn.TurnIndex, next.CurrentTurn.TurnIndex >= len(order))
		next = resolved
	case next.CurrentTurn != nil && idx < next.CurrentTurn.TurnIndex:
		next.CurrentTurn.TurnIndex--
	}

	return next, nil
}

// ResumeDelayedTurn reinserts id's delayed entry into the order immediately
// after the current turn position, with total = newInitiative and
// roll = newInitiative - modifier (the original modifier is preserved).
func ResumeDelayedTurn(state RoundState, id ruleset.CreatureID, newInitiative int) (RoundState, error) {
	entry, ok := state.DelayedCreatures[id]
	if !ok {
		return RoundState{}, rpgerr.InvalidState("creature has no delayed turn to resume")
	}
	if state.CurrentTurn == nil {
		return RoundState{}, rpgerr.InvalidState("no active turn to resume relative to")
	}

	next := state.clone()
	delete(next.DelayedCreatures, id)

	resumed := ruleset.InitiativeEntry{
		CreatureID: id,
		Roll:       newInitiative - entry.Modifier,
		Modifier:   entry.Modifier,
		Total:      newInitiative,
	}

	insertAt := next.CurrentTurn.TurnIndex + 1
	order := make([]ruleset.InitiativeEntry, 0, len(next.InitiativeOrder)+1)
	order = append(order, next.InitiativeOrder[:insertAt]...)
	order = append(order, resumed)
	order = append(order, next.InitiativeOrder[insertAt:]...)
	next.InitiativeOrder = order

	return next, nil
}
