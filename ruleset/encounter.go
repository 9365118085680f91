package ruleset

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ironveil-games/combat-core/rpgerr"
)

// InitiativeEntry records one creature's rolled initiative.
type InitiativeEntry struct {
	CreatureID CreatureID `json:"creature_id"`
	Roll       int        `json:"roll"`
	Modifier   int        `json:"modifier"`
	Total      int        `json:"total"`
}

// NewInitiativeEntry builds an entry with Total computed from Roll+Modifier.
func NewInitiativeEntry(creatureID CreatureID, roll, modifier int) InitiativeEntry {
	return InitiativeEntry{CreatureID: creatureID, Roll: roll, Modifier: modifier, Total: roll + modifier}
}

// Less reports whether e sorts before other under the initiative total
// ordering: descending by Total, then by Roll, then by Modifier, then
// ascending by CreatureID. This ordering is stable and deterministic.
func (e InitiativeEntry) Less(other InitiativeEntry) bool {
	if e.Total != other.Total {
		return e.Total > other.Total
	}
	if e.Roll != other.Roll {
		return e.Roll > other.Roll
	}
	if e.Modifier != other.Modifier {
		return e.Modifier > other.Modifier
	}
	return e.CreatureID < other.CreatureID
}

// SortEntries sorts entries in place per the initiative total ordering.
func SortEntries(entries []InitiativeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Less(entries[j])
	})
}

// EncounterStatus is a closed enumeration of encounter outcomes.
type EncounterStatus string

// Encounter status values.
const (
	StatusInProgress EncounterStatus = "IN_PROGRESS"
	StatusVictory    EncounterStatus = "VICTORY"
	StatusDefeat     EncounterStatus = "DEFEAT"
	StatusFled       EncounterStatus = "FLED"
)

// MarshalJSON renders the status as its SCREAMING_SNAKE_CASE name.
func (s EncounterStatus) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('"')
	buf.WriteString(string(s))
	buf.WriteByte('"')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the SCREAMING_SNAKE_CASE spelling.
func (s *EncounterStatus) UnmarshalJSON(data []byte) error {
	v := EncounterStatus(bytes.Trim(data, `"`))
	switch v {
	case StatusInProgress, StatusVictory, StatusDefeat, StatusFled:
		*s = v
		return nil
	default:
		return fmt.Errorf("ruleset: unknown encounter status %q", v)
	}
}

// Encounter references a campaign and tracks the participants, initiative
// order, round, active creature, and outcome status of a combat.
type Encounter struct {
	CampaignID        string            `json:"campaign_id"`
	Participants      []CreatureID      `json:"participants"`
	InitiativeOrder   []InitiativeEntry `json:"initiative_order"`
	CurrentRound      int               `json:"current_round"`
	ActiveCreatureID  *CreatureID       `json:"active_creature_id,omitempty"`
	Status            EncounterStatus   `json:"status"`
}

// NewEncounter validates and constructs an Encounter. The set of creature
// ids in initiativeOrder must equal the set in participants, currentRound
// must be >= 1, and an active creature (if given) must be a participant.
func NewEncounter(campaignID string, participants []CreatureID, order []InitiativeEntry, currentRound int, active *CreatureID, status EncounterStatus) (Encounter, error) {
	if len(participants) == 0 {
		return Encounter{}, rpgerr.InvalidArgument("encounter must have at least one participant")
	}
	if currentRound < 1 {
		return Encounter{}, rpgerr.InvalidArgument("current_round must be >= 1")
	}

	participantSet := make(map[CreatureID]struct{}, len(participants))
	for _, id := range participants {
		participantSet[id] = struct{}{}
	}
	orderSet := make(map[CreatureID]struct{}, len(order))
	for _, e := range order {
		orderSet[e.CreatureID] = struct{}{}
	}
	if len(participantSet) != len(orderSet) {
		return Encounter{}, rpgerr.InvalidArgument("initiative_order creature set must equal participants set")
	}
	for id := range participantSet {
		if _, ok := orderSet[id]; !ok {
			return Encounter{}, rpgerr.InvalidArgument("initiative_order creature set must equal participants set")
		}
	}

	if active != nil {
		if _, ok := participantSet[*active]; !ok {
			return Encounter{}, rpgerr.InvalidArgument("active_creature_id must be a participant")
		}
	}

	return Encounter{
		CampaignID:       campaignID,
		Participants:     participants,
		InitiativeOrder:  order,
		CurrentRound:     currentRound,
		ActiveCreatureID: active,
		Status:           status,
	}, nil
}
