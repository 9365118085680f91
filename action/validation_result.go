package action

import "github.com/ironveil-games/combat-core/rpgerr"

type validationKind int

const (
	validationValid validationKind = iota
	validationInvalid
	validationRequiresChoice
)

// ActionOption describes one way an under-specified action could be
// completed, surfaced to the caller by a RequiresChoice result.
type ActionOption struct {
	Description string
	Action      GameAction
}

// ValidationResult is the closed sum the validator returns: Valid,
// Invalid{reason}, or RequiresChoice{options}.
type ValidationResult struct {
	kind    validationKind
	reason  *rpgerr.Error
	options []ActionOption
}

// Valid constructs a passing ValidationResult.
func Valid() ValidationResult {
	return ValidationResult{kind: validationValid}
}

// Invalid constructs a failing ValidationResult carrying reason.
func Invalid(reason *rpgerr.Error) ValidationResult {
	return ValidationResult{kind: validationInvalid, reason: reason}
}

// RequiresChoice constructs a ValidationResult for an under-specified action
// that needs the caller to pick among options and resubmit.
func RequiresChoice(options []ActionOption) ValidationResult {
	return ValidationResult{kind: validationRequiresChoice, options: options}
}

// IsValid reports whether the result is the Valid variant.
func (r ValidationResult) IsValid() bool { return r.kind == validationValid }

// IsInvalid reports whether the result is the Invalid variant.
func (r ValidationResult) IsInvalid() bool { return r.kind == validationInvalid }

// IsRequiresChoice reports whether the result is the RequiresChoice variant.
func (r ValidationResult) IsRequiresChoice() bool { return r.kind == validationRequiresChoice }

// Reason returns the failure reason. Valid only when IsInvalid is true.
func (r ValidationResult) Reason() *rpgerr.Error { return r.reason }

// Options returns the candidate completions. Valid only when
// IsRequiresChoice is true.
func (r ValidationResult) Options() []ActionOption { return r.options }
