package rules

import (
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/validation"
)

// AsWarning downgrades error outcomes of fn to warnings.
func AsWarning(fn validation.SyncFunc) validation.SyncFunc {
	return func(in validation.InputState, inputs validation.Inputs, p validation.ProgressFunc) (validation.Outcome, error) {
		out, err := fn(in, inputs, p)
		if err == nil && out.Result == validation.ResultError {
			out.Result = validation.ResultWarning
		}
		return out, err
	}
}

// WithCode replaces the code of non-success outcomes of fn.
func WithCode(fn validation.SyncFunc, code int) validation.SyncFunc {
	return func(in validation.InputState, inputs validation.Inputs, p validation.ProgressFunc) (validation.Outcome, error) {
		out, err := fn(in, inputs, p)
		if err == nil && out.Result != validation.ResultSuccess {
			out = out.WithCode(code)
		}
		return out, err
	}
}

// WithMessage replaces the message of non-success outcomes of fn.
func WithMessage(fn validation.SyncFunc, message string) validation.SyncFunc {
	return func(in validation.InputState, inputs validation.Inputs, p validation.ProgressFunc) (validation.Outcome, error) {
		out, err := fn(in, inputs, p)
		if err == nil && out.Result != validation.ResultSuccess {
			out = out.WithMessage(message)
		}
		return out, err
	}
}

// Optional skips fn and succeeds when the value is blank.
func Optional(fn validation.SyncFunc) validation.SyncFunc {
	return func(in validation.InputState, inputs validation.Inputs, p validation.ProgressFunc) (validation.Outcome, error) {
		if strings.TrimSpace(in.Value) == "" {
			return validation.Success(), nil
		}
		return fn(in, inputs, p)
	}
}

// All runs fns in order and returns the first non-success outcome.
func All(fns ...validation.SyncFunc) validation.SyncFunc {
	return func(in validation.InputState, inputs validation.Inputs, p validation.ProgressFunc) (validation.Outcome, error) {
		for _, fn := range fns {
			out, err := fn(in, inputs, p)
			if err != nil || out.Result != validation.ResultSuccess {
				return out, err
			}
		}
		return validation.Success(), nil
	}
}
