// Package turnphase implements the combat core's per-turn action economy:
// movement remaining and action/bonus-action/reaction availability. Every
// operation is a pure function from one TurnPhase to the next; none of them
// mutate a receiver in place.
package turnphase
