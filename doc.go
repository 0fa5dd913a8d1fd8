// Package formcheck validates form inputs against ordered sets of synchronous
// and asynchronous rules.
//
// The root package holds documentation only; functionality lives under pkg/:
//
//   - validation: validators, the Manager that runs them per target, records and events
//   - rules: ready-made synchronous rules and decorators
//   - remote: asynchronous rules backed by Redis and Postgres lookups
//   - async: generic futures used by validators and the manager
//   - events: typed in-memory hub that can receive validation events
//   - logger, config: slog factory and env-driven configuration
//
// Basic Usage:
//
//	m := validation.NewManager()
//	m.AddValidator(
//		validation.NewSync("email", rules.Required()),
//		validation.NewSync("email", rules.Tag("email"), validation.WithPrecedence(1)),
//		validation.NewAsync("email", remote.RedisAbsent(rdb, "users:emails", "email already registered")),
//		validation.NewSync("age", rules.Optional(rules.IntRange(18, 130))),
//	)
//
//	records, err := m.ValidateAll(ctx, validation.Inputs{
//		"email": {Value: "jane@example.com", IsTouched: true},
//		"age":   {Value: "34"},
//	})
//	if err != nil {
//		return err // a rule is broken
//	}
//	for target, rs := range records.ByTarget() {
//		// render rs.Filter(validation.ResultError).Messages() next to target
//	}
//
// A result in the break set (error by default) stops a target's sync phase and
// skips its async rules. Targets never affect each other.
package formcheck
