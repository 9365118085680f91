package dice

import (
	"math/rand"
	"sync"
)

// Roller is the interface for random number generation the engine exposes.
// Implementations must be safe for concurrent use.
type Roller interface {
	// Roll produces count uniform samples in [1,die]. Returns InvalidArgument
	// if count < 1 or die is not one of the supported DieTypes.
	Roll(count int, die DieType, modifier int) (DiceRoll, error)

	// Advantage rolls two d20s and keeps the higher as SelectedValue.
	Advantage(modifier int) (DiceRoll, error)

	// Disadvantage rolls two d20s and keeps the lower as SelectedValue.
	Disadvantage(modifier int) (DiceRoll, error)
}

// Engine is a seeded, deterministic Roller backed by math/rand. Two engines
// built with the same seed via NewEngine produce identical sequences of
// rolls across all die types and compound operations, for as long as the
// calls made against them are identical in order and shape.
type Engine struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// NewEngine constructs a deterministic dice engine from an explicit 64-bit
// seed. The core never seeds from wall-clock time; callers own the seed.
func NewEngine(seed int64) *Engine {
	return &Engine{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed this engine was constructed with.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Roll implements Roller.
func (e *Engine) Roll(count int, die DieType, modifier int) (DiceRoll, error) {
	if count < 1 {
		return DiceRoll{}, errInvalidCount(count)
	}
	if !die.IsValid() {
		return DiceRoll{}, errInvalidDieType(die)
	}

	e.mu.Lock()
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = e.rng.Intn(int(die)) + 1
	}
	e.mu.Unlock()

	return DiceRoll{DieType: die, Rolls: rolls, Modifier: modifier, RollType: Normal}, nil
}

// Advantage implements Roller.
func (e *Engine) Advantage(modifier int) (DiceRoll, error) {
	return e.rollD20Pair(modifier, Advantage)
}

// Disadvantage implements Roller.
func (e *Engine) Disadvantage(modifier int) (DiceRoll, error) {
	return e.rollD20Pair(modifier, Disadvantage)
}

func (e *Engine) rollD20Pair(modifier int, rollType RollType) (DiceRoll, error) {
	e.mu.Lock()
	a := e.rng.Intn(int(D20)) + 1
	b := e.rng.Intn(int(D20)) + 1
	e.mu.Unlock()

	return DiceRoll{DieType: D20, Rolls: []int{a, b}, Modifier: modifier, RollType: rollType}, nil
}

// D4 rolls count d4s. Convenience wrapper around Roll.
func (e *Engine) D4(count, modifier int) (DiceRoll, error) { return e.Roll(count, D4, modifier) }

// D6 rolls count d6s.
func (e *Engine) D6(count, modifier int) (DiceRoll, error) { return e.Roll(count, D6, modifier) }

// D8 rolls count d8s.
func (e *Engine) D8(count, modifier int) (DiceRoll, error) { return e.Roll(count, D8, modifier) }

// D10 rolls count d10s.
func (e *Engine) D10(count, modifier int) (DiceRoll, error) { return e.Roll(count, D10, modifier) }

// D12 rolls count d12s.
func (e *Engine) D12(count, modifier int) (DiceRoll, error) { return e.Roll(count, D12, modifier) }

// D20 rolls a single d20. Most attack and save rolls go through this.
func (e *Engine) D20(modifier int) (DiceRoll, error) { return e.Roll(1, D20, modifier) }

// D100 rolls a single d100 (percentile die).
func (e *Engine) D100(modifier int) (DiceRoll, error) { return e.Roll(1, D100, modifier) }

var _ Roller = (*Engine)(nil)
