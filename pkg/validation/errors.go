package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrEvaluation marks a defect inside a validator's evaluation function.
	ErrEvaluation = errors.New("validation: evaluation failed")

	// ErrUnknownResult is returned when an evaluation function produces an unknown result kind.
	ErrUnknownResult = errors.New("validation: unknown result type")

	// ErrInvalidResultType is returned when a result kind cannot be parsed.
	ErrInvalidResultType = errors.New("validation: invalid result type")

	// ErrEmptyTarget is raised when a validator is built without a target name.
	ErrEmptyTarget = errors.New("validation: empty target name")

	// ErrNilFunc is raised when a validator is built without an evaluation function.
	ErrNilFunc = errors.New("validation: nil evaluation function")
)

// EvaluationError reports a failed evaluation function together with the
// validator that owns it.
type EvaluationError struct {
	Validator Descriptor
	Err       error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("validation: %s validator for %q (precedence %d) failed: %v",
		e.Validator.Type, e.Validator.TargetName, e.Validator.Precedence, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrEvaluation) hold for every EvaluationError.
func (e *EvaluationError) Is(target error) bool { return target == ErrEvaluation }
