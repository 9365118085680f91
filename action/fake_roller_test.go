package action_test

import (
	"github.com/ironveil-games/combat-core/dice"
)

// fakeRoller is a scripted dice.Roller: each call to Roll/Advantage/
// Disadvantage consumes the next queued DiceRoll, in order. Tests use it to
// pin otherwise-random attack and damage rolls to exact values.
type fakeRoller struct {
	rolls []dice.DiceRoll
	i     int
}

func newFakeRoller(rolls ...dice.DiceRoll) *fakeRoller {
	return &fakeRoller{rolls: rolls}
}

func (f *fakeRoller) next() dice.DiceRoll {
	r := f.rolls[f.i]
	f.i++
	return r
}

func (f *fakeRoller) Roll(count int, die dice.DieType, modifier int) (dice.DiceRoll, error) {
	r := f.next()
	r.Modifier = modifier
	return r, nil
}

func (f *fakeRoller) Advantage(modifier int) (dice.DiceRoll, error) {
	r := f.next()
	r.Modifier = modifier
	r.RollType = dice.Advantage
	return r, nil
}

func (f *fakeRoller) Disadvantage(modifier int) (dice.DiceRoll, error) {
	r := f.next()
	r.Modifier = modifier
	r.RollType = dice.Disadvantage
	return r, nil
}

func d20(natural int) dice.DiceRoll {
	return dice.DiceRoll{DieType: dice.D20, Rolls: []int{natural}, RollType: dice.Normal}
}

func damageRoll(die dice.DieType, values ...int) dice.DiceRoll {
	return dice.DiceRoll{DieType: die, Rolls: values, RollType: dice.Normal}
}

var _ dice.Roller = (*fakeRoller)(nil)
