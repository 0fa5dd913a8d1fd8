package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// OneOf fails when the value is not one of allowed.
func OneOf(allowed ...string) validation.SyncFunc {
	allowed = slices.Clone(allowed)
	msg := fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if !slices.Contains(allowed, in.Value) {
			return fail(CodeNotAllowed, msg), nil
		}
		return validation.Success(), nil
	}
}

// NoneOf fails when the value is one of forbidden, compared case-insensitively.
func NoneOf(forbidden ...string) validation.SyncFunc {
	lowered := make([]string, len(forbidden))
	for i, f := range forbidden {
		lowered[i] = strings.ToLower(f)
	}
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if slices.Contains(lowered, strings.ToLower(in.Value)) {
			return fail(CodeNotAllowed, "value is not allowed"), nil
		}
		return validation.Success(), nil
	}
}
