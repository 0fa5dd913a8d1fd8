package validation

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formcheck/pkg/async"
	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// Manager owns an ordered collection of validators and runs them per target.
// All methods are safe for concurrent use.
type Manager struct {
	mu             sync.RWMutex
	validators     []*Validator
	breakOn        map[ResultType]struct{}
	exhaustiveSync bool
	asyncTimeout   time.Duration

	inflight atomic.Int64

	notifier Notifier
	logger   *slog.Logger
}

// NewManager creates a manager that breaks on ResultError, emits no events and
// logs through slog.Default.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		breakOn:  map[ResultType]struct{}{ResultError: {}},
		notifier: nopNotifier{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("validation"))
	return m
}

// AddValidator appends validators to the collection. Nil values are skipped;
// several validators may share a target.
func (m *Manager) AddValidator(vs ...*Validator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range vs {
		if v != nil {
			m.validators = append(m.validators, v)
		}
	}
}

// RemoveValidator drops every validator bound to target. Unknown targets are a no-op.
func (m *Manager) RemoveValidator(target string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validators = slices.DeleteFunc(m.validators, func(v *Validator) bool {
		return v.target == target
	})
}

// ClearValidators empties the collection.
func (m *Manager) ClearValidators() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validators = nil
}

// Validators returns a copy of the collection in registration order.
func (m *Manager) Validators() []*Validator {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.validators)
}

// Targets returns the distinct target names in first-registration order.
func (m *Manager) Targets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, order := groupByTarget(m.validators)
	return order
}

// SetBreakOnSyncError replaces the set of result kinds that stop the sync phase
// and skip the async phase. An empty set disables breaking. The change applies
// to calls started afterwards.
func (m *Manager) SetBreakOnSyncError(kinds ...ResultType) error {
	set, err := breakSet(kinds)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.breakOn = set
	return nil
}

// BreakOnSyncError returns the current break set in a stable order.
func (m *Manager) BreakOnSyncError() []ResultType {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ResultType, 0, len(m.breakOn))
	for _, k := range []ResultType{ResultSuccess, ResultWarning, ResultError} {
		if _, ok := m.breakOn[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// IsValidating reports whether any validation call is in flight.
func (m *Manager) IsValidating() bool {
	return m.inflight.Load() > 0
}

// ValidateTarget runs the validators of target against inputs.
//
// Sync validators run first, ordered by precedence (ties keep registration
// order). The first record whose result is in the break set ends the sync phase
// and cancels the async phase. Otherwise every async validator runs concurrently
// and the call waits for all of them. The result holds sync records followed by
// async records. A target without validators yields an empty result.
//
// A failing rule fails the whole call with an *EvaluationError.
func (m *Manager) ValidateTarget(ctx context.Context, target string, inputs Inputs) (Records, error) {
	m.inflight.Add(1)
	defer m.inflight.Add(-1)

	selected, p := m.snapshot(target)
	return m.run(ctx, target, selected, p, inputs.clone())
}

// ValidateAll validates every registered target concurrently and concatenates
// the results in target registration order. Break policy applies per target.
// If any target fails, the call fails.
func (m *Manager) ValidateAll(ctx context.Context, inputs Inputs) (Records, error) {
	m.inflight.Add(1)
	defer m.inflight.Add(-1)

	m.mu.RLock()
	groups, order := groupByTarget(m.validators)
	p := m.policyLocked()
	m.mu.RUnlock()

	snapshot := inputs.clone()
	futures := make([]*async.Future[Records], len(order))
	// Targets always launch; cancellation only reaches async rules through run,
	// so each target's result matches ValidateTarget.
	launch := context.WithoutCancel(ctx)
	for i, target := range order {
		futures[i] = async.Async(launch, target, func(_ context.Context, target string) (Records, error) {
			return m.run(ctx, target, groups[target], p, snapshot)
		})
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		return nil, err
	}

	var total int
	for _, rs := range results {
		total += len(rs)
	}
	all := make(Records, 0, total)
	for _, rs := range results {
		all = append(all, rs...)
	}
	return all, nil
}

// policy is the per-call copy of the manager configuration.
type policy struct {
	breakOn        map[ResultType]struct{}
	exhaustiveSync bool
	asyncTimeout   time.Duration
}

func (p policy) breaks(r ResultType) bool {
	_, ok := p.breakOn[r]
	return ok
}

func (m *Manager) policyLocked() policy {
	return policy{
		breakOn:        m.breakOn,
		exhaustiveSync: m.exhaustiveSync,
		asyncTimeout:   m.asyncTimeout,
	}
}

func (m *Manager) snapshot(target string) ([]*Validator, policy) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var selected []*Validator
	for _, v := range m.validators {
		if v.target == target {
			selected = append(selected, v)
		}
	}
	return selected, m.policyLocked()
}

func (m *Manager) run(ctx context.Context, target string, selected []*Validator, p policy, inputs Inputs) (Records, error) {
	if len(selected) == 0 {
		return Records{}, nil
	}

	id := uuid.New()
	start := time.Now()
	log := m.logger.With(logger.Target(target), logger.CallID(id))
	m.notify(ctx, log, Event{ID: id, Kind: EventStart, Target: target})

	syncVs, asyncVs := partition(selected)
	input := inputs[target]
	records := make(Records, 0, len(selected))

	var breaker *Record
	for _, v := range syncVs {
		rec, err := v.Validate(ctx, input, inputs, m.progress(ctx, log, id, v)).Await()
		if err != nil {
			return nil, m.fail(ctx, log, id, target, err)
		}
		records = append(records, rec)
		if breaker == nil && p.breaks(rec.Result) {
			breaker = &rec
			if !p.exhaustiveSync {
				break
			}
		}
	}

	if breaker != nil {
		log.DebugContext(ctx, "sync phase broke, skipping async validators",
			validatorAttr(breaker.Validator),
			logger.Result(breaker.Result.String()),
			slog.Int("skipped_sync", len(syncVs)-len(records)),
			slog.Int("skipped_async", len(asyncVs)))
	} else if len(asyncVs) > 0 {
		futures := make([]*async.Future[Record], len(asyncVs))
		for i, v := range asyncVs {
			vctx, cancel := p.asyncContext(ctx)
			defer cancel()
			futures[i] = v.Validate(vctx, input, inputs, m.progress(ctx, log, id, v))
		}

		asyncRecords, err := async.WaitAll(futures...)
		if err != nil {
			return nil, m.fail(ctx, log, id, target, err)
		}
		records = append(records, asyncRecords...)
	}

	log.DebugContext(ctx, "target validated",
		logger.Records(len(records)),
		logger.Duration(time.Since(start)))
	m.notify(ctx, log, Event{ID: id, Kind: EventDone, Target: target, Records: slices.Clone(records)})

	return records, nil
}

func (p policy) asyncContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.asyncTimeout > 0 {
		return context.WithTimeout(ctx, p.asyncTimeout)
	}
	return ctx, func() {}
}

func (m *Manager) fail(ctx context.Context, log *slog.Logger, id uuid.UUID, target string, err error) error {
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		log = log.With(validatorAttr(evalErr.Validator))
	}
	log.ErrorContext(ctx, "validator failed", logger.Error(err))
	m.notify(ctx, log, Event{ID: id, Kind: EventFailed, Target: target, Err: err})
	return err
}

func (m *Manager) progress(ctx context.Context, log *slog.Logger, id uuid.UUID, v *Validator) ProgressFunc {
	d := v.Descriptor()
	return func(percent int, message string) {
		m.notify(ctx, log, Event{
			ID:       id,
			Kind:     EventProgress,
			Target:   d.TargetName,
			Progress: &Progress{Validator: d, Percent: percent, Message: message},
		})
	}
}

// notify never fails the validation; notifier errors are only logged.
func (m *Manager) notify(ctx context.Context, log *slog.Logger, e Event) {
	e.At = time.Now()
	if err := m.notifier.Notify(ctx, e); err != nil {
		log.WarnContext(ctx, "event notification failed",
			slog.String("event", string(e.Kind)),
			logger.Error(err))
	}
}

// partition splits validators by type and stable-sorts each part by precedence.
func partition(vs []*Validator) (syncVs, asyncVs []*Validator) {
	for _, v := range vs {
		if v.kind == TypeSync {
			syncVs = append(syncVs, v)
		} else {
			asyncVs = append(asyncVs, v)
		}
	}
	byPrecedence := func(a, b *Validator) int { return cmp.Compare(a.precedence, b.precedence) }
	slices.SortStableFunc(syncVs, byPrecedence)
	slices.SortStableFunc(asyncVs, byPrecedence)
	return syncVs, asyncVs
}

func groupByTarget(vs []*Validator) (map[string][]*Validator, []string) {
	groups := make(map[string][]*Validator)
	var order []string
	for _, v := range vs {
		if _, seen := groups[v.target]; !seen {
			order = append(order, v.target)
		}
		groups[v.target] = append(groups[v.target], v)
	}
	return groups, order
}

func validatorAttr(d Descriptor) slog.Attr {
	return logger.Group("validator",
		logger.ValidatorType(d.Type.String()),
		logger.Precedence(d.Precedence),
	)
}
