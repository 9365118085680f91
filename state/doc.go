// Package state rebuilds initiative runtime state from an event log. Fold
// applies one event to a RoundState; Build threads an entire log through
// Fold from the empty state. Only initiative-affecting events change the
// result — HP, conditions, and spell outcomes are separate projections
// this package does not maintain.
package state
