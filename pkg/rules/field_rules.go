package rules

import (
	"fmt"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// EqualsField fails when the value differs from the value of the other input,
// e.g. a password confirmation. A missing other input counts as empty.
func EqualsField(other string) validation.SyncFunc {
	return func(in validation.InputState, inputs validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if in.Value != inputs.Value(other) {
			return fail(CodeMismatch, fmt.Sprintf("must match %s", other)), nil
		}
		return validation.Success(), nil
	}
}

// DiffersFromField fails when the value equals the value of the other input.
func DiffersFromField(other string) validation.SyncFunc {
	return func(in validation.InputState, inputs validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if in.Value == inputs.Value(other) {
			return fail(CodeMismatch, fmt.Sprintf("must differ from %s", other)), nil
		}
		return validation.Success(), nil
	}
}
