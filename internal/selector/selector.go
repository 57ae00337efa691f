package selector

import (
	"strings"

	"golang.org/x/text/cases"

	"axwarm/internal/workspace"
)

type modeKind int

const (
	modeFragments modeKind = iota
	modeAllRunning
	modeKnownDefaults
)

// Mode chooses how candidates are matched before the helper filter runs.
type Mode struct {
	kind      modeKind
	fragments []string
}

// ByFragments matches records whose name contains any fragment,
// case-insensitively. Used for explicit --apps selections.
func ByFragments(fragments []string) Mode {
	return Mode{kind: modeFragments, fragments: fragments}
}

// AllRunning makes every directory record a candidate.
func AllRunning() Mode {
	return Mode{kind: modeAllRunning}
}

// KnownDefaults matches against the built-in set of commonly affected
// application name fragments.
func KnownDefaults(fragments []string) Mode {
	return Mode{kind: modeKnownDefaults, fragments: fragments}
}

// Explicit reports whether the mode carries user-requested fragments. Only
// explicit selections that match nothing are reported as an error upstream;
// an empty result under the other modes just means nothing needs warming.
func (m Mode) Explicit() bool {
	return m.kind == modeFragments
}

// Fragments returns the fragment list the mode matches against.
func (m Mode) Fragments() []string {
	return m.fragments
}

// Selection partitions a directory snapshot for one run. Targets and
// Skipped are disjoint and together equal the candidate set.
type Selection struct {
	Targets []workspace.App
	Skipped []workspace.App
}

// Candidates is the pre-filter match count.
func (s Selection) Candidates() int {
	return len(s.Targets) + len(s.Skipped)
}

// Selector applies candidate matching and the helper filter.
type Selector struct {
	fold    cases.Caser
	markers []string
}

// New builds a selector excluding records whose name contains any of the
// given helper markers.
func New(helperMarkers []string) *Selector {
	s := &Selector{fold: cases.Fold()}
	for _, marker := range helperMarkers {
		marker = strings.TrimSpace(marker)
		if marker == "" {
			continue
		}
		s.markers = append(s.markers, s.fold.String(marker))
	}
	return s
}

// Select filters apps under the given mode. Result order follows the input
// order, and every matching record is kept: several records can share a
// near-identical name when an application runs multiple processes.
func (s *Selector) Select(apps []workspace.App, mode Mode) Selection {
	var candidates []workspace.App
	switch mode.kind {
	case modeAllRunning:
		candidates = append(candidates, apps...)
	default:
		fragments := make([]string, 0, len(mode.fragments))
		for _, fragment := range mode.fragments {
			fragment = strings.TrimSpace(fragment)
			if fragment == "" {
				continue
			}
			fragments = append(fragments, s.fold.String(fragment))
		}
		for _, app := range apps {
			if s.matchesAny(app.Name, fragments) {
				candidates = append(candidates, app)
			}
		}
	}

	var selection Selection
	for _, app := range candidates {
		if s.isHelper(app.Name) {
			selection.Skipped = append(selection.Skipped, app)
			continue
		}
		selection.Targets = append(selection.Targets, app)
	}
	return selection
}

func (s *Selector) matchesAny(name string, fragments []string) bool {
	folded := s.fold.String(name)
	for _, fragment := range fragments {
		if strings.Contains(folded, fragment) {
			return true
		}
	}
	return false
}

func (s *Selector) isHelper(name string) bool {
	folded := s.fold.String(name)
	for _, marker := range s.markers {
		if strings.Contains(folded, marker) {
			return true
		}
	}
	return false
}
