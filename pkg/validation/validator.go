package validation

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formcheck/pkg/async"
)

// ProgressFunc lets a long-running rule report how far it got.
// Rules always receive a non-nil ProgressFunc.
type ProgressFunc func(percent int, message string)

// SyncFunc evaluates a rule inline. input is the target's own state and inputs is a
// read-only snapshot of every known input, so cross-field rules are possible.
// A returned error is a defect in the rule, not a validation failure.
type SyncFunc func(input InputState, inputs Inputs, progress ProgressFunc) (Outcome, error)

// AsyncFunc evaluates a rule in the background, typically against a remote source.
// It should honour ctx cancellation.
type AsyncFunc func(ctx context.Context, input InputState, inputs Inputs, progress ProgressFunc) (Outcome, error)

// Validator is an immutable rule bound to one target.
// Build it with NewSync or NewAsync.
type Validator struct {
	target     string
	precedence int
	kind       Type
	syncFn     SyncFunc
	asyncFn    AsyncFunc
}

// ValidatorOption customizes a validator at construction time.
type ValidatorOption func(*Validator)

// WithPrecedence sets the ordering hint. Lower runs first; the default is 0.
func WithPrecedence(p int) ValidatorOption {
	return func(v *Validator) { v.precedence = p }
}

// NewSync creates a synchronous validator for target.
// It panics if target is empty or fn is nil.
func NewSync(target string, fn SyncFunc, opts ...ValidatorOption) *Validator {
	if fn == nil {
		panic(fmt.Errorf("%w: sync validator for %q", ErrNilFunc, target))
	}
	return newValidator(target, TypeSync, fn, nil, opts)
}

// NewAsync creates an asynchronous validator for target.
// It panics if target is empty or fn is nil.
func NewAsync(target string, fn AsyncFunc, opts ...ValidatorOption) *Validator {
	if fn == nil {
		panic(fmt.Errorf("%w: async validator for %q", ErrNilFunc, target))
	}
	return newValidator(target, TypeAsync, nil, fn, opts)
}

func newValidator(target string, kind Type, syncFn SyncFunc, asyncFn AsyncFunc, opts []ValidatorOption) *Validator {
	if target == "" {
		panic(ErrEmptyTarget)
	}
	v := &Validator{target: target, kind: kind, syncFn: syncFn, asyncFn: asyncFn}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// TargetName returns the name of the input the validator is bound to.
func (v *Validator) TargetName() string { return v.target }

// Precedence returns the ordering hint within the validator's type.
func (v *Validator) Precedence() int { return v.precedence }

// Type reports whether the validator is sync or async.
func (v *Validator) Type() Type { return v.kind }

// Descriptor returns the identifying snapshot copied into every record.
func (v *Validator) Descriptor() Descriptor {
	return Descriptor{TargetName: v.target, Type: v.kind, Precedence: v.precedence}
}

// Validate runs the rule against input and resolves to a Record.
//
// Both variants share this contract: a sync validator evaluates before Validate
// returns and hands back a completed future; an async validator evaluates in its
// own goroutine. Errors and panics raised by the rule resolve the future with an
// *EvaluationError, and so does a ctx that is already done when an async rule
// would start; the rule is then not called.
func (v *Validator) Validate(ctx context.Context, input InputState, inputs Inputs, progress ProgressFunc) *async.Future[Record] {
	if progress == nil {
		progress = func(int, string) {}
	}

	if v.kind == TypeSync {
		rec, err := v.evaluate(ctx, input, inputs, progress)
		return async.Resolved(rec, err)
	}

	// The rule still gets ctx; evaluate reports a canceled one as an *EvaluationError.
	return async.Async(context.WithoutCancel(ctx), input, func(_ context.Context, input InputState) (Record, error) {
		return v.evaluate(ctx, input, inputs, progress)
	})
}

func (v *Validator) evaluate(ctx context.Context, input InputState, inputs Inputs, progress ProgressFunc) (rec Record, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, err = Record{}, &EvaluationError{Validator: v.Descriptor(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	var out Outcome
	if v.kind == TypeSync {
		out, err = v.syncFn(input, inputs, progress)
	} else if err = ctx.Err(); err == nil {
		out, err = v.asyncFn(ctx, input, inputs, progress)
	}
	if err != nil {
		return Record{}, &EvaluationError{Validator: v.Descriptor(), Err: err}
	}
	if !out.Result.Valid() {
		return Record{}, &EvaluationError{
			Validator: v.Descriptor(),
			Err:       fmt.Errorf("%w: %q", ErrUnknownResult, out.Result),
		}
	}

	return Record{
		Result:    out.Result,
		Code:      out.Code,
		Message:   out.Message,
		Value:     input.Value,
		Validator: v.Descriptor(),
	}, nil
}
