package rules

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

var tagValidator = sync.OnceValue(func() *validator.Validate {
	return validator.New()
})

// Tag checks the value against a go-playground/validator tag expression such
// as "email", "uuid4" or "numeric,len=5". The value is a string, so size
// params (len, min, max, gte, lte) count characters; use IntRange for numeric
// bounds. An unknown tag is a rule defect and fails the validation call.
func Tag(tag string) validation.SyncFunc {
	return TagWith(tagValidator(), tag)
}

// TagWith is Tag with a caller-provided validator, for custom registered tags.
func TagWith(v *validator.Validate, tag string) validation.SyncFunc {
	return func(in validation.InputState, _ validation.Inputs, _ validation.ProgressFunc) (validation.Outcome, error) {
		err := v.Var(in.Value, tag)
		if err == nil {
			return validation.Success(), nil
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fail(CodeTag, fmt.Sprintf("failed %q check", verrs[0].Tag())), nil
		}
		return validation.Outcome{}, fmt.Errorf("tag %q: %w", tag, err)
	}
}
