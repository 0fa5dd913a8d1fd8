// Package validation orchestrates field-level validation rules for forms.
//
// A Validator binds one rule to one target (an input name). Rules are either
// synchronous (cheap checks such as formats and lengths) or asynchronous (checks
// that wait on something, such as a uniqueness lookup against a database). A
// Manager holds the registered validators and evaluates them for one target with
// ValidateTarget or for every target with ValidateAll.
//
// # Execution model
//
// For a target, sync validators run first, one after another, ordered by
// precedence with ties kept in registration order. As soon as a sync rule yields
// a result kind contained in the break set (by default only ResultError), the
// remaining sync rules are skipped and the async phase does not start. If the
// sync phase completes without a break, all async validators of the target start
// together and the call waits for every one of them. The returned Records hold
// the sync records followed by the async records; rules that were skipped do not
// produce a record.
//
// WithExhaustiveSyncPhase changes the sync phase to always run every sync rule;
// the break set then only decides whether the async phase runs.
//
// ValidateAll runs each target independently and concurrently. A break on one
// target never affects another.
//
// # Inputs
//
// Callers pass the full Inputs map on every call. The manager copies it once per
// call and hands the copy to every rule, so cross-field rules (for example a
// password confirmation) can read other inputs. Rules must treat it as read-only.
//
// # Errors
//
// Result kinds are outcomes, never errors. A rule that returns an error or panics
// is a defect: the call fails with an *EvaluationError (errors.Is(err,
// ErrEvaluation) holds) and no partial records are returned. The manager does
// not retry.
//
// # Events and logging
//
// A Notifier receives start, progress, done and failed events for every target
// validation; *events.Hub[Event] can be plugged in directly. The manager logs
// through log/slog with the attribute helpers from the logger package.
//
// # Usage
//
//	m := validation.NewManager(validation.WithLogger(log))
//	m.AddValidator(
//	    validation.NewSync("email", rules.WithMessage(rules.Required(), "email is required")),
//	    validation.NewSync("email", rules.WithMessage(rules.Tag("email"), "not an email"), validation.WithPrecedence(1)),
//	    validation.NewAsync("email", remote.RedisAbsent(rdb, "users:emails", "email already registered")),
//	)
//
//	records, err := m.ValidateTarget(ctx, "email", validation.Inputs{
//	    "email": {Value: "jane@example.com", IsTouched: true},
//	})
//	if err != nil {
//	    return err // a rule is broken
//	}
//	if records.HasErrors() {
//	    // render records.Filter(validation.ResultError).Messages()
//	}
package validation
