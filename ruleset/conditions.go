package ruleset

import (
	"bytes"
	"fmt"
)

// Condition is a closed enumeration of the 14 SRD status effects.
type Condition string

// The 14 SRD conditions.
const (
	Blinded       Condition = "BLINDED"
	Charmed       Condition = "CHARMED"
	Deafened      Condition = "DEAFENED"
	Frightened    Condition = "FRIGHTENED"
	Grappled      Condition = "GRAPPLED"
	Incapacitated Condition = "INCAPACITATED"
	Invisible     Condition = "INVISIBLE"
	Paralyzed     Condition = "PARALYZED"
	Petrified     Condition = "PETRIFIED"
	Poisoned      Condition = "POISONED"
	Prone         Condition = "PRONE"
	Restrained    Condition = "RESTRAINED"
	Stunned       Condition = "STUNNED"
	Unconscious   Condition = "UNCONSCIOUS"
)

var allConditions = map[Condition]struct{}{
	Blinded: {}, Charmed: {}, Deafened: {}, Frightened: {}, Grappled: {},
	Incapacitated: {}, Invisible: {}, Paralyzed: {}, Petrified: {}, Poisoned: {},
	Prone: {}, Restrained: {}, Stunned: {}, Unconscious: {},
}

// IsValid reports whether c is one of the 14 defined conditions.
func (c Condition) IsValid() bool {
	_, ok := allConditions[c]
	return ok
}

// MarshalJSON renders the condition as its SCREAMING_SNAKE_CASE name.
func (c Condition) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('"')
	buf.WriteString(string(c))
	buf.WriteByte('"')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the SCREAMING_SNAKE_CASE spelling produced by
// MarshalJSON.
func (c *Condition) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	parsed := Condition(s)
	if !parsed.IsValid() {
		return fmt.Errorf("ruleset: unknown condition %q", s)
	}
	*c = parsed
	return nil
}

// ConditionSet is an immutable set of conditions afflicting a creature.
// Construct with NewConditionSet; With/Without return new sets.
type ConditionSet struct {
	members map[Condition]struct{}
}

// NewConditionSet builds a ConditionSet from the given conditions.
func NewConditionSet(conditions ...Condition) ConditionSet {
	m := make(map[Condition]struct{}, len(conditions))
	for _, c := range conditions {
		m[c] = struct{}{}
	}
	return ConditionSet{members: m}
}

// Has reports whether the set contains c.
func (s ConditionSet) Has(c Condition) bool {
	_, ok := s.members[c]
	return ok
}

// With returns a new set with c added.
func (s ConditionSet) With(c Condition) ConditionSet {
	next := make(map[Condition]struct{}, len(s.members)+1)
	for k := range s.members {
		next[k] = struct{}{}
	}
	next[c] = struct{}{}
	return ConditionSet{members: next}
}

// Without returns a new set with c removed.
func (s ConditionSet) Without(c Condition) ConditionSet {
	next := make(map[Condition]struct{}, len(s.members))
	for k := range s.members {
		if k != c {
			next[k] = struct{}{}
		}
	}
	return ConditionSet{members: next}
}

// List returns the conditions in the set in no particular order.
func (s ConditionSet) List() []Condition {
	out := make([]Condition, 0, len(s.members))
	for k := range s.members {
		out = append(out, k)
	}
	return out
}

// Len returns the number of conditions in the set.
func (s ConditionSet) Len() int {
	return len(s.members)
}

// IncapacitatingConditions categorically block all actions, bonus actions,
// and reactions per spec §4.8 bullet 2.
var IncapacitatingConditions = []Condition{Incapacitated, Stunned, Paralyzed, Petrified, Unconscious}

// AnyIncapacitating reports whether the set contains a condition that
// categorically blocks actions.
func (s ConditionSet) AnyIncapacitating() (Condition, bool) {
	for _, c := range IncapacitatingConditions {
		if s.Has(c) {
			return c, true
		}
	}
	return "", false
}
