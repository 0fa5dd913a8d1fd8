package rules

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// Pattern fails when the value does not match re. The description names the
// expected format in the default message.
func Pattern(re *regexp.Regexp, description string) validation.SyncFunc {
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if !re.MatchString(in.Value) {
			return fail(CodePattern, fmt.Sprintf("must match %s pattern", description)), nil
		}
		return validation.Success(), nil
	}
}

// MatchesRegex compiles pattern once and returns a Pattern rule.
// It panics if pattern is not a valid regular expression.
func MatchesRegex(pattern, description string) validation.SyncFunc {
	return Pattern(regexp.MustCompile(pattern), description)
}

// NotPattern fails when the value matches re.
func NotPattern(re *regexp.Regexp, description string) validation.SyncFunc {
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		if re.MatchString(in.Value) {
			return fail(CodePattern, fmt.Sprintf("must not match %s pattern", description)), nil
		}
		return validation.Success(), nil
	}
}
