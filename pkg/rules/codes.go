package rules

import "github.com/dmitrymomot/formcheck/pkg/validation"

// Codes attached to records produced by failing rules.
const (
	CodeRequired   = 1001
	CodeTooShort   = 1002
	CodeTooLong    = 1003
	CodePattern    = 1004
	CodeNotAllowed = 1005
	CodeMismatch   = 1006
	CodeTag        = 1007
	CodeNotNumber  = 1008
	CodeOutOfRange = 1009
)

// fail builds an error outcome with the rule's code and default message.
func fail(code int, message string) validation.Outcome {
	return validation.Failure().WithCode(code).WithMessage(message)
}
