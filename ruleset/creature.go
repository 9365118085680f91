package ruleset

import "github.com/ironveil-games/combat-core/rpgerr"

// CreatureID uniquely identifies a creature within a campaign.
type CreatureID int64

// Creature is the combat-relevant snapshot of a participant: a player
// character, NPC, or monster. Creature values are immutable; handlers
// produce a new Creature to reflect HP/condition changes.
type Creature struct {
	ID               CreatureID   `json:"id"`
	Name             string       `json:"name"`
	ArmorClass       int          `json:"armor_class"`
	HPCurrent        int          `json:"hp_current"`
	HPMax            int          `json:"hp_max"`
	Speed            int          `json:"speed"`
	ProficiencyBonus int          `json:"proficiency_bonus"`
	Abilities        Abilities    `json:"abilities"`
	Conditions       ConditionSet `json:"-"`
}

// NewCreature validates and constructs a Creature.
func NewCreature(id CreatureID, name string, armorClass, hpCurrent, hpMax, speed, proficiencyBonus int, abilities Abilities) (Creature, error) {
	if id <= 0 {
		return Creature{}, rpgerr.InvalidArgument("creature id must be positive")
	}
	if name == "" {
		return Creature{}, rpgerr.InvalidArgument("creature name must not be empty")
	}
	if armorClass < 1 {
		return Creature{}, rpgerr.InvalidArgument("armor class must be >= 1")
	}
	if hpMax < 1 {
		return Creature{}, rpgerr.InvalidArgument("hp_max must be >= 1")
	}
	if hpCurrent < 0 || hpCurrent > hpMax {
		return Creature{}, rpgerr.InvalidArgument("hp_current must be in [0, hp_max]")
	}
	if speed < 0 {
		return Creature{}, rpgerr.InvalidArgument("speed must be >= 0")
	}
	if proficiencyBonus < 0 {
		return Creature{}, rpgerr.InvalidArgument("proficiency_bonus must be >= 0")
	}
	return Creature{
		ID:               id,
		Name:             name,
		ArmorClass:       armorClass,
		HPCurrent:        hpCurrent,
		HPMax:            hpMax,
		Speed:            speed,
		ProficiencyBonus: proficiencyBonus,
		Abilities:        abilities,
		Conditions:       NewConditionSet(),
	}, nil
}

// IsAlive reports whether the creature has any hit points remaining.
func (c Creature) IsAlive() bool {
	return c.HPCurrent > 0
}

// IsBloodied reports whether the creature is at or below half HP.
func (c Creature) IsBloodied() bool {
	return c.HPCurrent*2 <= c.HPMax
}

// WithDamage returns a copy of c with damage applied, floored at 0 HP.
func (c Creature) WithDamage(amount int) Creature {
	next := c
	next.HPCurrent = c.HPCurrent - amount
	if next.HPCurrent < 0 {
		next.HPCurrent = 0
	}
	return next
}

// WithHealing returns a copy of c with healing applied, capped at HPMax.
func (c Creature) WithHealing(amount int) Creature {
	next := c
	next.HPCurrent = c.HPCurrent + amount
	if next.HPCurrent > c.HPMax {
		next.HPCurrent = c.HPMax
	}
	return next
}

// WithCondition returns a copy of c with the condition applied.
func (c Creature) WithCondition(cond Condition) Creature {
	next := c
	next.Conditions = c.Conditions.With(cond)
	return next
}

// WithoutCondition returns a copy of c with the condition removed.
func (c Creature) WithoutCondition(cond Condition) Creature {
	next := c
	next.Conditions = c.Conditions.Without(cond)
	return next
}
