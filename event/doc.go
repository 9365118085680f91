// Package event defines the closed set of events the combat core emits.
// Events are immutable, serializable, and carry a stable "type" tag per
// variant so a log of mixed event types round-trips through JSON without
// losing its concrete shape.
package event
