package rpgerr

import "fmt"

// Family classifies a Code into one of the three error families the combat
// core distinguishes: how must the caller react?
type Family string

const (
	// FamilyValidation marks recoverable, user-facing validation failures.
	// Surfaced by the action validator; handlers trust validated inputs.
	FamilyValidation Family = "validation_failure"
	// FamilyInvalidState marks programmer errors surfaced for debugging
	// (empty initiative order, turn index out of bounds, unknown creature id).
	FamilyInvalidState Family = "invalid_state"
	// FamilyInvalidArgument marks contract violations at construction time.
	FamilyInvalidArgument Family = "invalid_argument"
	// FamilyUnclassified covers codes with no assigned family.
	FamilyUnclassified Family = "unclassified"
)

var familyByCode = map[Code]Family{
	CodeOutOfRange:             FamilyValidation,
	CodeLineOfEffectBlocked:    FamilyValidation,
	CodeActionEconomyExhausted: FamilyValidation,
	CodeResourceExhausted:      FamilyValidation,
	CodeConditionPrevents:      FamilyValidation,
	CodeInvalidTarget:          FamilyValidation,
	CodePathBlocked:            FamilyValidation,

	CodeInvalidState: FamilyInvalidState,
	CodeNotFound:     FamilyInvalidState,

	CodeInvalidArgument: FamilyInvalidArgument,
}

// FamilyOf returns the family assigned to a code, or FamilyUnclassified.
func FamilyOf(code Code) Family {
	if f, ok := familyByCode[code]; ok {
		return f
	}
	return FamilyUnclassified
}

// ValidationFailure constructs an error with the given code (a
// FamilyValidation code such as CodeOutOfRange). Use the more
// specific constructors below (LineOfEffectBlocked, ActionEconomyExhausted,
// ...) when the failure reason is known; this is the catch-all form.
func ValidationFailure(code Code, message string, opts ...Option) *Error {
	return New(code, message, opts...)
}

// LineOfEffectBlocked reports that an obstacle interrupts the line of effect
// between actor and target. blockingObstacle identifies the blocking cell.
func LineOfEffectBlocked(blockingObstacle string) *Error {
	return New(CodeLineOfEffectBlocked, "line of effect blocked",
		WithMeta("blocking_obstacle", blockingObstacle))
}

// ActionEconomyExhausted reports that the action's required phase(s) are no
// longer available this turn. required names what was needed
// (e.g. "action", "bonus_action", "reaction", "movement").
func ActionEconomyExhausted(required string) *Error {
	return New(CodeActionEconomyExhausted, fmt.Sprintf("%s no longer available this turn", required),
		WithMeta("required", required))
}

// InsufficientResource reports that a spell slot, charge, or ammo pool is
// depleted. kind names the exhausted resource.
func InsufficientResource(kind string) *Error {
	return New(CodeResourceExhausted, fmt.Sprintf("insufficient %s", kind),
		WithMeta("kind", kind))
}

// ConditionPrevents reports that a status condition on the actor blocks the
// action outright (incapacitated, stunned, paralyzed, petrified, unconscious).
func ConditionPrevents(condition string) *Error {
	return New(CodeConditionPrevents, fmt.Sprintf("condition prevents action: %s", condition),
		WithMeta("condition", condition))
}

// InvalidTargetErr reports that the chosen target cannot be targeted by this
// action (missing, wrong type, self-target on a non-self-targetable action).
func InvalidTargetErr(reason string) *Error {
	return New(CodeInvalidTarget, fmt.Sprintf("invalid target: %s", reason))
}

// PathBlockedErr reports that a specific position along a movement path
// cannot be traversed (impassable terrain, obstacle, or an intermediate
// occupied cell).
func PathBlockedErr(position string) *Error {
	return New(CodePathBlocked, fmt.Sprintf("path blocked at %s", position),
		WithMeta("position", position))
}

// InvalidState constructs a programmer-error result for a broken initiative
// invariant (empty order, out-of-bounds turn index, unknown creature id).
// Callers should log and not retry.
func InvalidState(reason string) *Error {
	return New(CodeInvalidState, reason)
}

// InvalidArgument constructs a contract-violation error for a rejected
// constructor input (bad dice count, out-of-range map dimensions, an
// over-healed creature). No partially constructed value escapes the caller.
func InvalidArgument(reason string) *Error {
	return New(CodeInvalidArgument, reason)
}
