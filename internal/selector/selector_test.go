package selector

import (
	"testing"

	"axwarm/internal/workspace"
)

var defaultMarkers = []string{"helper", "renderer", "gpu", "networking", "crashpad"}

func names(apps []workspace.App) []string {
	out := make([]string, 0, len(apps))
	for _, app := range apps {
		out = append(out, app.Name)
	}
	return out
}

func equalNames(got []workspace.App, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, app := range got {
		if app.Name != want[i] {
			return false
		}
	}
	return true
}

func TestByFragmentsMatchesCaseInsensitively(t *testing.T) {
	apps := []workspace.App{
		{Name: "Slack", PID: 1},
		{Name: "Finder", PID: 2},
		{Name: "Visual Studio Code", PID: 3},
	}

	sel := New(defaultMarkers).Select(apps, ByFragments([]string{"SLACK", "code"}))
	if !equalNames(sel.Targets, "Slack", "Visual Studio Code") {
		t.Fatalf("unexpected targets: %v", names(sel.Targets))
	}
	if len(sel.Skipped) != 0 {
		t.Fatalf("unexpected skips: %v", names(sel.Skipped))
	}
}

func TestByFragmentsKeepsEveryMatchInDirectoryOrder(t *testing.T) {
	// Multi-process applications surface several near-identical records;
	// all of them must be kept, ordered by the directory, not the fragments.
	apps := []workspace.App{
		{Name: "Discord", PID: 1},
		{Name: "Slack", PID: 2},
		{Name: "Slack", PID: 3},
	}

	sel := New(nil).Select(apps, ByFragments([]string{"slack", "discord"}))
	if !equalNames(sel.Targets, "Discord", "Slack", "Slack") {
		t.Fatalf("unexpected targets: %v", names(sel.Targets))
	}
}

func TestHelperFilterAppliesAfterCandidateMatch(t *testing.T) {
	apps := []workspace.App{
		{Name: "Slack Helper", PID: 100},
		{Name: "Slack", PID: 101},
		{Name: "Finder", PID: 102},
	}

	sel := New(defaultMarkers).Select(apps, KnownDefaults([]string{"slack"}))
	if !equalNames(sel.Targets, "Slack") || sel.Targets[0].PID != 101 {
		t.Fatalf("unexpected targets: %+v", sel.Targets)
	}
	if !equalNames(sel.Skipped, "Slack Helper") || sel.Skipped[0].PID != 100 {
		t.Fatalf("unexpected skips: %+v", sel.Skipped)
	}
	if sel.Candidates() != 2 {
		t.Fatalf("expected 2 candidates, got %d", sel.Candidates())
	}
}

func TestAllRunningStillExcludesHelpers(t *testing.T) {
	apps := []workspace.App{
		{Name: "Slack Helper (Renderer)", PID: 1},
		{Name: "Slack", PID: 2},
		{Name: "Notion", PID: 3},
	}

	sel := New(defaultMarkers).Select(apps, AllRunning())
	if !equalNames(sel.Targets, "Slack", "Notion") {
		t.Fatalf("unexpected targets: %v", names(sel.Targets))
	}
	if !equalNames(sel.Skipped, "Slack Helper (Renderer)") {
		t.Fatalf("unexpected skips: %v", names(sel.Skipped))
	}
}

func TestNoMatchYieldsEmptySelection(t *testing.T) {
	apps := []workspace.App{{Name: "Finder", PID: 1}}

	sel := New(defaultMarkers).Select(apps, ByFragments([]string{"zzzznoapp"}))
	if len(sel.Targets) != 0 || len(sel.Skipped) != 0 {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}

func TestBlankFragmentsAreIgnored(t *testing.T) {
	apps := []workspace.App{{Name: "Finder", PID: 1}}

	sel := New(nil).Select(apps, ByFragments([]string{"  ", ""}))
	if len(sel.Targets) != 0 {
		t.Fatalf("blank fragments must not match everything: %v", names(sel.Targets))
	}
}

func TestModeExplicit(t *testing.T) {
	if !ByFragments([]string{"slack"}).Explicit() {
		t.Fatal("ByFragments must be explicit")
	}
	if AllRunning().Explicit() || KnownDefaults([]string{"slack"}).Explicit() {
		t.Fatal("AllRunning and KnownDefaults must not be explicit")
	}
}
