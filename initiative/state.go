package initiative

import (
	"github.com/ironveil-games/combat-core/ruleset"
	"github.com/ironveil-games/combat-core/turnphase"
)

// DefaultSpeedFeet is the movement allotment advance_turn grants a fresh
// turn when it has no creature-specific speed to consult. Callers that know
// the active creature's actual speed re-apply it via turnphase.StartTurn.
const DefaultSpeedFeet = 30

// TurnState names whose turn it is, that creature's action economy, and
// its position in the initiative order.
type TurnState struct {
	ActiveCreatureID ruleset.CreatureID `json:"active_creature_id"`
	TurnPhase        turnphase.TurnPhase `json:"turn_phase"`
	TurnIndex        int                 `json:"turn_index"`
}

// RoundState is the full initiative runtime state for one encounter round.
// It is produced by Initialize and every subsequent transition returns a
// new value; nothing here is mutated in place.
type RoundState struct {
	RoundNumber        int32                                          `json:"round_number"`
	IsSurpriseRound    bool                                           `json:"is_surprise_round"`
	InitiativeOrder    []ruleset.InitiativeEntry                      `json:"initiative_order"`
	SurprisedCreatures map[ruleset.CreatureID]bool                    `json:"surprised_creatures,omitempty"`
	DelayedCreatures   map[ruleset.CreatureID]ruleset.InitiativeEntry `json:"delayed_creatures,omitempty"`
	CurrentTurn        *TurnState                                     `json:"current_turn,omitempty"`
}

func cloneOrder(order []ruleset.InitiativeEntry) []ruleset.InitiativeEntry {
	out := make([]ruleset.InitiativeEntry, len(order))
	copy(out, order)
	return out
}

func cloneSurprised(set map[ruleset.CreatureID]bool) map[ruleset.CreatureID]bool {
	out := make(map[ruleset.CreatureID]bool, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}

func cloneDelayed(set map[ruleset.CreatureID]ruleset.InitiativeEntry) map[ruleset.CreatureID]ruleset.InitiativeEntry {
	out := make(map[ruleset.CreatureID]ruleset.InitiativeEntry, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}

// clone returns a deep-enough copy of s so that transitions never alias the
// caller's slices or maps.
func (s RoundState) clone() RoundState {
	next := s
	next.InitiativeOrder = cloneOrder(s.InitiativeOrder)
	next.SurprisedCreatures = cloneSurprised(s.SurprisedCreatures)
	next.DelayedCreatures = cloneDelayed(s.DelayedCreatures)
	if s.CurrentTurn != nil {
		turn := *s.CurrentTurn
		next.CurrentTurn = &turn
	}
	return next
}

func indexOf(order []ruleset.InitiativeEntry, id ruleset.CreatureID) int {
	for i, e := range order {
		if e.CreatureID == id {
			return i
		}
	}
	return -1
}
