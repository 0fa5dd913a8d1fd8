package validation

import (
	"fmt"
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets the event sink. Nil is ignored.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBreakOnSyncError replaces the default break set ({error}).
// It panics on unknown kinds, like SetBreakOnSyncError rejects them.
func WithBreakOnSyncError(kinds ...ResultType) Option {
	return func(m *Manager) {
		m.breakOn = mustBreakSet(kinds)
	}
}

// WithExhaustiveSyncPhase makes the sync phase run every rule of the target.
// A break kind then only prevents the async phase.
func WithExhaustiveSyncPhase() Option {
	return func(m *Manager) {
		m.exhaustiveSync = true
	}
}

// WithAsyncTimeout bounds every async rule with a deadline derived from the call context.
func WithAsyncTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.asyncTimeout = d
		}
	}
}

// WithConfig applies an env-loaded Config. It panics on unknown break kinds.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.breakOn = mustBreakSet(cfg.BreakOn)
		m.exhaustiveSync = cfg.ExhaustiveSync
		if cfg.AsyncTimeout > 0 {
			m.asyncTimeout = cfg.AsyncTimeout
		}
	}
}

func breakSet(kinds []ResultType) (map[ResultType]struct{}, error) {
	set := make(map[ResultType]struct{}, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidResultType, k)
		}
		set[k] = struct{}{}
	}
	return set, nil
}

func mustBreakSet(kinds []ResultType) map[ResultType]struct{} {
	set, err := breakSet(kinds)
	if err != nil {
		panic(err)
	}
	return set
}
