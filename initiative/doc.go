// Package initiative implements the combat core's round and turn-order
// state machine: RoundState, TurnState, and the pure operations that
// advance, insert into, and remove creatures from the initiative order.
// Every operation returns a new RoundState; none mutate their input.
package initiative
