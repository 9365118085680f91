package action

import (
	"github.com/ironveil-games/combat-core/dice"
	"github.com/ironveil-games/combat-core/event"
	"github.com/ironveil-games/combat-core/ruleset"
)

// SpellActionHandler resolves a validated CastSpell action and emits a
// single SpellCast event carrying every target's outcome, followed by one
// DamageApplied (and, where it drops a target to 0 hp, CreatureDefeated)
// event per target that took damage. slot_consumed always equals
// spell_level.
func SpellActionHandler(ctx ActionContext, act GameAction, roller dice.Roller, sessionID, timestamp int64) ([]event.Event, error) {
	outcomes := make([]event.SpellOutcome, 0, len(act.TargetIDs))
	damageByTarget := make(map[ruleset.CreatureID]int32, len(act.TargetIDs))

	switch act.Effect.Kind {
	case SpellEffectAttack:
		for _, targetID := range act.TargetIDs {
			target := ctx.Creatures[targetID]

			attackRoll, err := roller.Roll(1, dice.D20, int(act.Effect.AttackBonus))
			if err != nil {
				return nil, err
			}
			natural := attackRoll.Rolls[0]
			critical := natural == 20
			hit := critical || (natural != 1 && attackRoll.Total() >= target.ArmorClass)

			outcome := event.SpellOutcome{TargetID: targetID, Hit: hit}
			if hit {
				diceCount := act.Effect.DamageDiceCount
				if critical {
					diceCount *= 2
				}
				damageRoll, err := roller.Roll(diceCount, act.Effect.DamageDie, int(act.Effect.DamageModifier))
				if err != nil {
					return nil, err
				}
				damage := clampDamage(damageRoll.Total())
				outcome.Damage = damage
				damageByTarget[targetID] = damage
			}
			outcomes = append(outcomes, outcome)
		}

	case SpellEffectSave:
		for _, targetID := range act.TargetIDs {
			target := ctx.Creatures[targetID]

			saveRoll, err := roller.Roll(1, dice.D20, target.Abilities.Modifier(act.Effect.SaveAbility))
			if err != nil {
				return nil, err
			}
			success := saveRoll.Total() >= int(act.Effect.SaveDC)

			damageRoll, err := roller.Roll(act.Effect.DamageDiceCount, act.Effect.DamageDie, int(act.Effect.DamageModifier))
			if err != nil {
				return nil, err
			}
			full := clampDamage(damageRoll.Total())

			damage := full
			if success {
				if act.Effect.HalfOnSave {
					damage = full / 2
				} else {
					damage = 0
				}
			}

			outcomes = append(outcomes, event.SpellOutcome{TargetID: targetID, SaveSuccess: success, Damage: damage})
			damageByTarget[targetID] = damage
		}

	case SpellEffectUtility:
		// No roll, no damage; side effects are expressed as separate events
		// the caller emits alongside this one.
	}

	events := []event.Event{event.SpellCast{
		Meta:         event.NewMeta(sessionID, timestamp),
		CasterID:     act.ActorID,
		SpellID:      act.SpellID,
		SpellLevel:   act.SpellLevel,
		SlotConsumed: act.SpellLevel,
		Outcomes:     outcomes,
	}}

	for _, targetID := range act.TargetIDs {
		damage, dealt := damageByTarget[targetID]
		if !dealt || damage == 0 {
			continue
		}
		target := ctx.Creatures[targetID]
		hpBefore := int32(target.HPCurrent)
		hpAfter := hpBefore - damage
		if hpAfter < 0 {
			hpAfter = 0
		}

		events = append(events, event.DamageApplied{
			Meta:     event.NewMeta(sessionID, timestamp),
			TargetID: targetID,
			Amount:   damage,
			HPBefore: hpBefore,
			HPAfter:  hpAfter,
		})

		if hpAfter == 0 && hpBefore > 0 {
			events = append(events, event.CreatureDefeated{
				Meta:       event.NewMeta(sessionID, timestamp),
				CreatureID: targetID,
			})
		}
	}

	return events, nil
}
