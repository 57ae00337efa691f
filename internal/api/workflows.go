package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"axwarm/internal/ax"
	"axwarm/internal/config"
	"axwarm/internal/logging"
	"axwarm/internal/runlock"
	"axwarm/internal/selector"
	"axwarm/internal/warmup"
	"axwarm/internal/workspace"
)

var (
	// ErrNotTrusted reports that the process lacks accessibility permission.
	// Nothing downstream of the permission gate runs without it.
	ErrNotTrusted = errors.New("accessibility permission not granted")
	// ErrNoMatch reports that explicitly requested fragments matched no
	// running application.
	ErrNoMatch = errors.New("no running applications matched")
	// ErrNoneWarmed reports that targets were attempted and none succeeded.
	ErrNoneWarmed = errors.New("no applications were warmed up")
)

// EnsureTrusted is the permission gate. A failed or false trust query stops
// the run before any process enumeration happens.
func EnsureTrusted(binding ax.Binding) error {
	if !binding.Trusted() {
		return ErrNotTrusted
	}
	return nil
}

// ListRequest asks for the running-application directory.
type ListRequest struct {
	Binding ax.Binding
}

// ListResult carries the directory contents sorted by name.
type ListResult struct {
	Apps []workspace.App
}

// ListApplications enumerates running applications for display. No
// accessibility attribute is read.
func ListApplications(req ListRequest) (ListResult, error) {
	if err := EnsureTrusted(req.Binding); err != nil {
		return ListResult{}, err
	}
	apps, err := workspace.NewDirectory(req.Binding).ListRunning()
	if err != nil {
		return ListResult{}, err
	}
	workspace.SortByName(apps)
	return ListResult{Apps: apps}, nil
}

// WarmUpRequest configures one warm-up pass.
type WarmUpRequest struct {
	Config  *config.Config
	Binding ax.Binding
	Logger  *slog.Logger
	Mode    selector.Mode
	// Delay is the pre-attempt delay applied to every target.
	Delay time.Duration
	// DisableLock skips the single-instance lock; tests only.
	DisableLock bool
}

// WarmUpResult carries the finished session. Session is nil when the run
// stopped before the engine started.
type WarmUpResult struct {
	Session *warmup.Session
	Targets []workspace.App
}

// RunWarmUp executes the full pass: permission gate, directory query,
// target selection, then sequential warm-up under the run lock. Per-target
// problems are absorbed into the session; only the gate, the directory,
// the lock, and the no-match/none-warmed policies surface as errors.
func RunWarmUp(ctx context.Context, req WarmUpRequest) (WarmUpResult, error) {
	logger := req.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	if err := EnsureTrusted(req.Binding); err != nil {
		return WarmUpResult{}, err
	}

	apps, err := workspace.NewDirectory(req.Binding).ListRunning()
	if err != nil {
		return WarmUpResult{}, err
	}

	sel := selector.New(req.Config.Targets.HelperMarkers).Select(apps, req.Mode)
	if req.Mode.Explicit() && sel.Candidates() == 0 && len(apps) > 0 {
		return WarmUpResult{}, fmt.Errorf("%w: %s", ErrNoMatch, strings.Join(req.Mode.Fragments(), ", "))
	}
	if len(sel.Targets) == 0 {
		if len(sel.Skipped) > 0 {
			logger.Warn("only helper subprocesses matched; nothing to warm up",
				logging.Int("skipped", len(sel.Skipped)))
		} else {
			logger.Info("no applications need warming up")
		}
	}

	if !req.DisableLock {
		lock := runlock.New(req.Config.Paths.LockFile)
		if err := lock.Acquire(); err != nil {
			return WarmUpResult{}, err
		}
		defer lock.Release() //nolint:errcheck // best-effort on exit
	}

	engine := warmup.NewEngine(warmup.Options{
		Binding: req.Binding,
		Logger:  logger,
		Pacing:  req.Config.Pacing(),
	})
	session := engine.WarmUpAll(ctx, sel.Targets, sel.Skipped, req.Delay)

	result := WarmUpResult{Session: session, Targets: sel.Targets}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if len(sel.Targets) > 0 && !session.AnySuccess() {
		return result, ErrNoneWarmed
	}
	return result, nil
}
