package action

import (
	"github.com/ironveil-games/combat-core/dice"
	"github.com/ironveil-games/combat-core/event"
)

func clampDamage(total int) int32 {
	if total < 0 {
		return 0
	}
	return int32(total)
}

// AttackActionHandler resolves a validated Attack or OpportunityAttack:
// roll d20+attack_bonus against the target's AC (natural 20 always hits and
// is a critical, natural 1 always misses), and on a hit roll damage
// (doubling dice, not the modifier, on a crit).
func AttackActionHandler(ctx ActionContext, act GameAction, roller dice.Roller, sessionID, timestamp int64) ([]event.Event, error) {
	target := ctx.Creatures[act.TargetID]

	attackRoll, err := roller.Roll(1, dice.D20, int(act.AttackBonus))
	if err != nil {
		return nil, err
	}

	natural := attackRoll.Rolls[0]
	critical := natural == 20
	hit := critical || (natural != 1 && attackRoll.Total() >= target.ArmorClass)

	events := []event.Event{event.AttackResolved{
		Meta:        event.NewMeta(sessionID, timestamp),
		AttackerID:  act.ActorID,
		TargetID:    act.TargetID,
		AttackRoll:  attackRoll,
		AttackBonus: act.AttackBonus,
		TargetAC:    int32(target.ArmorClass),
		Hit:         hit,
		Critical:    critical,
	}}

	if !hit {
		return events, nil
	}

	diceCount := act.DamageDiceCount
	if critical {
		diceCount *= 2
	}
	damageRoll, err := roller.Roll(diceCount, act.DamageDie, int(act.DamageModifier))
	if err != nil {
		return nil, err
	}
	damage := clampDamage(damageRoll.Total())

	hpBefore := int32(target.HPCurrent)
	hpAfter := hpBefore - damage
	if hpAfter < 0 {
		hpAfter = 0
	}

	events = append(events, event.DamageApplied{
		Meta:     event.NewMeta(sessionID, timestamp),
		TargetID: act.TargetID,
		Amount:   damage,
		HPBefore: hpBefore,
		HPAfter:  hpAfter,
	})

	if hpAfter == 0 && hpBefore > 0 {
		events = append(events, event.CreatureDefeated{
			Meta:       event.NewMeta(sessionID, timestamp),
			CreatureID: act.TargetID,
		})
	}

	return events, nil
}
