// Package rules provides ready-made synchronous validation rules for form
// inputs. Every constructor returns a validation.SyncFunc that can be bound to
// a target with validation.NewSync.
//
// Rules are grouped by family, one file each (string, numeric, pattern, choice,
// field, tag). A failing rule reports validation.ResultError together with a stable
// numeric code and a default message. Decorators adjust a rule without
// rewriting it:
//
//	email := validation.NewSync("email", rules.Optional(
//	    rules.WithMessage(rules.Tag("email"), "not an email"),
//	))
//	nick := validation.NewSync("nickname", rules.AsWarning(rules.MaxLength(16)))
//
// Rules hold no mutable state and are safe to share between validators.
package rules
