package warmup

import (
	"context"
	"log/slog"
	"time"

	"axwarm/internal/ax"
	"axwarm/internal/logging"
	"axwarm/internal/workspace"
)

// DefaultPacing is the fixed delay between successive targets.
const DefaultPacing = 100 * time.Millisecond

// Options configures an Engine.
type Options struct {
	Binding ax.Binding
	// Logger receives per-attempt progress. Nil means discard.
	Logger *slog.Logger
	// Pacing overrides DefaultPacing when positive.
	Pacing time.Duration
}

// Engine performs bootstrap reads strictly sequentially.
type Engine struct {
	binding ax.Binding
	logger  *slog.Logger
	pacing  time.Duration
}

// NewEngine constructs an engine over the given binding.
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	pacing := opts.Pacing
	if pacing <= 0 {
		pacing = DefaultPacing
	}
	return &Engine{
		binding: opts.Binding,
		logger:  logging.NewComponentLogger(logger, "engine"),
		pacing:  pacing,
	}
}

// WarmUp performs exactly one bootstrap read against the target's
// accessibility root and classifies the result. preDelay is applied before
// the read, for applications that were launched moments ago. No retry
// happens here; repetition across targets is WarmUpAll's job.
func (e *Engine) WarmUp(ctx context.Context, target workspace.App, preDelay time.Duration) Attempt {
	if preDelay > 0 {
		sleepCtx(ctx, preDelay)
	}

	attempt := Attempt{App: target}

	el, err := e.binding.AppElement(target.PID)
	if err != nil {
		attempt.Outcome = OutcomeFailure
		attempt.Err = err
		return attempt
	}
	defer e.binding.Release(el)

	role, code, err := ax.ReadAttribute(e.binding, el, ax.RoleAttribute)
	attempt.Code = code
	switch {
	case err != nil:
		attempt.Outcome = OutcomeFailure
		attempt.Err = err
	case code == ax.CodeSuccess && role != "":
		attempt.Outcome = OutcomeSuccess
		attempt.Role = role
	case code == ax.CodeCannotComplete:
		attempt.Outcome = OutcomePartial
	default:
		// Covers other error codes and the "no error but empty role" case.
		attempt.Outcome = OutcomeFailure
	}
	return attempt
}

// WarmUpAll processes targets in input order, recording every outcome in
// the returned session. One target's failure never halts the rest. The
// skipped set is carried on the session for reporting only; no attempt is
// made against it.
func (e *Engine) WarmUpAll(ctx context.Context, targets []workspace.App, skipped []workspace.App, preDelay time.Duration) *Session {
	session := newSession(skipped)
	logger := e.logger.With(logging.String(logging.FieldRunID, session.RunID))

	for i, target := range targets {
		if i > 0 {
			sleepCtx(ctx, e.pacing)
		}
		if ctx.Err() != nil {
			logger.Warn("warm-up interrupted",
				logging.Int("remaining", len(targets)-i))
			break
		}

		appAttrs := logging.Args(
			logging.String(logging.FieldApp, target.Name),
			logging.Int(logging.FieldPID, target.PID),
		)
		logger.Info("initializing accessibility tree", appAttrs...)

		attempt := e.WarmUp(ctx, target, preDelay)
		session.Attempted = append(session.Attempted, attempt)

		switch attempt.Outcome {
		case OutcomeSuccess:
			logger.Info("accessibility tree initialized",
				logging.String(logging.FieldApp, target.Name),
				logging.Int(logging.FieldPID, target.PID),
				logging.String(logging.FieldOutcome, attempt.Outcome.String()),
				logging.String("role", attempt.Role),
			)
		case OutcomePartial:
			logger.Warn("accessibility tree still initializing",
				logging.String(logging.FieldApp, target.Name),
				logging.Int(logging.FieldPID, target.PID),
				logging.String(logging.FieldOutcome, attempt.Outcome.String()),
				logging.Int(logging.FieldCode, int(attempt.Code)),
			)
		default:
			attrs := []logging.Attr{
				logging.String(logging.FieldApp, target.Name),
				logging.Int(logging.FieldPID, target.PID),
				logging.String(logging.FieldOutcome, attempt.Outcome.String()),
				logging.Int(logging.FieldCode, int(attempt.Code)),
			}
			if attempt.Err != nil {
				attrs = append(attrs, logging.Error(attempt.Err))
			}
			logger.Warn("accessibility warm-up failed", logging.Args(attrs...)...)
		}
	}
	return session
}

// sleepCtx waits for the duration or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
