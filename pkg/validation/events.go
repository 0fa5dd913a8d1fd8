package validation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventKind names a point in the lifecycle of a target validation.
type EventKind string

const (
	EventStart    EventKind = "start"
	EventProgress EventKind = "progress"
	EventDone     EventKind = "done"
	EventFailed   EventKind = "failed"
)

// Progress is reported by rules through their ProgressFunc.
type Progress struct {
	Validator Descriptor
	Percent   int
	Message   string
}

// Event is emitted by the Manager while validating one target.
// All events of a single target validation share the same ID.
type Event struct {
	ID       uuid.UUID
	Kind     EventKind
	Target   string
	Records  Records   // set on EventDone
	Progress *Progress // set on EventProgress
	Err      error     // set on EventFailed
	At       time.Time
}

// Notifier receives validation events. Implementations must be safe for
// concurrent use and should not block; *events.Hub[Event] is one.
type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, e Event) error

// Notify calls f(ctx, e).
func (f NotifierFunc) Notify(ctx context.Context, e Event) error { return f(ctx, e) }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Event) error { return nil }
