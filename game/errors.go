package game

import "errors"

var (
	// ErrConfig reports an inconsistent RuleSet. Fatal, setup time only.
	ErrConfig = errors.New("invalid rule set")
	// ErrSetup reports a bad player list. Fatal, setup time only.
	ErrSetup = errors.New("invalid setup")
	// ErrInvalidAction reports a choice that is not legal at the current decision point.
	// The state is left untouched and the caller may retry.
	ErrInvalidAction = errors.New("invalid action")
	// ErrMandatoryAction reports a declaration that ignores the forced coup rule.
	// The state is left untouched and the caller may retry.
	ErrMandatoryAction = errors.New("mandatory action required")
)
