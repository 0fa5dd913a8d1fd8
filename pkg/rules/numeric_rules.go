package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// IntRange fails when the value is not a base-10 integer within [minVal, maxVal].
// Surrounding whitespace is ignored.
func IntRange(minVal, maxVal int64) validation.SyncFunc {
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(in.Value), 10, 64)
		if err != nil {
			return fail(CodeNotNumber, "must be a whole number"), nil
		}
		if n < minVal || n > maxVal {
			return fail(CodeOutOfRange, fmt.Sprintf("must be between %d and %d", minVal, maxVal)), nil
		}
		return validation.Success(), nil
	}
}
