// Package dice implements the combat core's seeded, deterministic dice
// engine. Every roll is derived from an explicit 64-bit seed: two engines
// constructed with the same seed produce identical sequences across every
// die type and compound operation, and the engine never reads wall-clock
// time or any other hidden entropy source.
package dice
