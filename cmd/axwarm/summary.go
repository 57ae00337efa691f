package main

import (
	"fmt"
	"io"
	"strings"

	"axwarm/internal/warmup"
)

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

func renderSummary(out io.Writer, session *warmup.Session) {
	summary := session.Summary()
	colorize := shouldColorize(out)

	fmt.Fprintf(out, "Warm-up summary: %s succeeded, %s partial, %s failed, %d skipped\n",
		paint(colorize, ansiGreen, summary.Success),
		paint(colorize, ansiYellow, summary.Partial),
		paint(colorize, ansiRed, summary.Failure),
		summary.Skipped,
	)
	writeGroup(out, "success", session.Names(warmup.OutcomeSuccess))
	writeGroup(out, "partial", session.Names(warmup.OutcomePartial))
	writeGroup(out, "failure", session.Names(warmup.OutcomeFailure))
	writeGroup(out, "skipped", session.SkippedNames())
}

func writeGroup(out io.Writer, label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(out, "  %s: %s\n", label, strings.Join(names, ", "))
}

func paint(colorize bool, color string, count int) string {
	if !colorize || count == 0 {
		return fmt.Sprintf("%d", count)
	}
	return fmt.Sprintf("%s%d%s", color, count, ansiReset)
}
