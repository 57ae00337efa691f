package warmup

import (
	"github.com/google/uuid"

	"axwarm/internal/ax"
	"axwarm/internal/workspace"
)

// Attempt pairs an application with the outcome of its bootstrap read.
type Attempt struct {
	App     workspace.App
	Outcome Outcome
	// Role is the value returned by a successful read.
	Role string
	// Code is the raw platform error code for the attempt.
	Code ax.Code
	// Err carries binding-layer errors for failure outcomes.
	Err error
}

// Session aggregates one engine invocation. It lives for a single run and
// is never persisted.
type Session struct {
	// RunID correlates every log line of one invocation.
	RunID string
	// Attempted holds one entry per processed target, in processing order.
	Attempted []Attempt
	// Skipped holds records excluded before any attempt was made.
	Skipped []workspace.App
}

func newSession(skipped []workspace.App) *Session {
	return &Session{RunID: uuid.NewString(), Skipped: skipped}
}

// Summary is the per-outcome tally of a session.
type Summary struct {
	Success int
	Partial int
	Failure int
	Skipped int
}

// Summary tallies attempts by outcome. The three attempt counts always sum
// to len(Attempted).
func (s *Session) Summary() Summary {
	summary := Summary{Skipped: len(s.Skipped)}
	for _, attempt := range s.Attempted {
		switch attempt.Outcome {
		case OutcomeSuccess:
			summary.Success++
		case OutcomePartial:
			summary.Partial++
		default:
			summary.Failure++
		}
	}
	return summary
}

// AnySuccess reports whether at least one attempt succeeded.
func (s *Session) AnySuccess() bool {
	for _, attempt := range s.Attempted {
		if attempt.Outcome == OutcomeSuccess {
			return true
		}
	}
	return false
}

// Names returns the display names of attempts with the given outcome, in
// processing order.
func (s *Session) Names(outcome Outcome) []string {
	var out []string
	for _, attempt := range s.Attempted {
		if attempt.Outcome == outcome {
			out = append(out, attempt.App.Name)
		}
	}
	return out
}

// SkippedNames returns the display names of the skipped records.
func (s *Session) SkippedNames() []string {
	var out []string
	for _, app := range s.Skipped {
		out = append(out, app.Name)
	}
	return out
}
