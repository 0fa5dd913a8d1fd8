package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// Required fails when the value is empty after trimming whitespace.
func Required() validation.SyncFunc {
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if strings.TrimSpace(in.Value) == "" {
			return fail(CodeRequired, "field is required"), nil
		}
		return validation.Success(), nil
	}
}

// MinLength fails when the value has fewer than minLen characters.
// Length is counted in runes.
func MinLength(minLen int) validation.SyncFunc {
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if utf8.RuneCountInString(in.Value) < minLen {
			return fail(CodeTooShort, fmt.Sprintf("must be at least %d characters long", minLen)), nil
		}
		return validation.Success(), nil
	}
}

// MaxLength fails when the value has more than maxLen characters.
func MaxLength(maxLen int) validation.SyncFunc {
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if utf8.RuneCountInString(in.Value) > maxLen {
			return fail(CodeTooLong, fmt.Sprintf("must be at most %d characters long", maxLen)), nil
		}
		return validation.Success(), nil
	}
}

// LengthBetween combines MinLength and MaxLength.
func LengthBetween(minLen, maxLen int) validation.SyncFunc {
	return All(MinLength(minLen), MaxLength(maxLen))
}
