package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"axwarm/internal/api"
	"axwarm/internal/logging"
	"axwarm/internal/selector"
)

type warmOptions struct {
	apps         []string
	targets      []string
	allRunning   bool
	list         bool
	quiet        bool
	verbose      bool
	delaySeconds float64
	delaySet     bool
}

// logLevel maps the verbosity flags onto a log level override. Quiet wins
// when both are set.
func (o *warmOptions) logLevel() string {
	switch {
	case o.quiet:
		return "warn"
	case o.verbose:
		return "debug"
	default:
		return ""
	}
}

func (o *warmOptions) fragments() []string {
	return append(append([]string(nil), o.apps...), o.targets...)
}

func runWarmUp(cmd *cobra.Command, ctx *commandContext, opts *warmOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	fragments := opts.fragments()
	if opts.allRunning && len(fragments) > 0 {
		return errors.New("--all-running cannot be combined with --apps/--targets")
	}

	if opts.list {
		result, err := api.ListApplications(api.ListRequest{Binding: ctx.binding})
		if err != nil {
			return describePermissionError(err)
		}
		renderAppList(cmd.OutOrStdout(), result.Apps)
		return nil
	}

	logger, err := logging.NewFromConfig(cfg, opts.logLevel())
	if err != nil {
		return err
	}

	var mode selector.Mode
	switch {
	case len(fragments) > 0:
		mode = selector.ByFragments(fragments)
	case opts.allRunning:
		mode = selector.AllRunning()
	default:
		mode = selector.KnownDefaults(cfg.Targets.DefaultFragments)
	}

	delay := cfg.Delay()
	if opts.delaySet {
		delay = time.Duration(opts.delaySeconds * float64(time.Second))
	}

	runCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := api.RunWarmUp(runCtx, api.WarmUpRequest{
		Config:  cfg,
		Binding: ctx.binding,
		Logger:  logger,
		Mode:    mode,
		Delay:   delay,
	})
	if result.Session != nil && len(result.Session.Attempted)+len(result.Session.Skipped) > 0 {
		renderSummary(cmd.OutOrStdout(), result.Session)
	}
	return describePermissionError(err)
}

// describePermissionError attaches remediation instructions to the
// permission gate error; everything else passes through.
func describePermissionError(err error) error {
	if errors.Is(err, api.ErrNotTrusted) {
		return fmt.Errorf("%w\nGrant accessibility access to your terminal under "+
			"System Settings > Privacy & Security > Accessibility, then run axwarm again", err)
	}
	return err
}
