// Package action implements the combat core's action model: the closed
// GameAction sum type, the six-step validator, and the handlers that turn a
// validated action into an ordered list of events. Every handler is a pure
// function of its inputs; none hold state between calls.
package action
