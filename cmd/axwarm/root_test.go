package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"axwarm/internal/ax"
	"axwarm/internal/testsupport"
)

func execute(t *testing.T, binding ax.Binding, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommandWith(binding)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListPrintsSortedDirectoryWithoutReads(t *testing.T) {
	binding := &testsupport.Binding{Apps: []ax.AppInfo{
		{Name: "Slack", PID: 3, BundleID: "com.tinyspeck.slackmacgap"},
		{Name: "Discord", PID: 1},
		{Name: "Finder", PID: 2, BundleID: "com.apple.finder"},
	}}

	out, err := execute(t, binding, "--list")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	discord := strings.Index(out, "Discord")
	finder := strings.Index(out, "Finder")
	slack := strings.Index(out, "Slack")
	if discord < 0 || finder < 0 || slack < 0 || !(discord < finder && finder < slack) {
		t.Fatalf("expected name-sorted listing, got:\n%s", out)
	}
	if !strings.Contains(out, "Total: 3 applications") {
		t.Fatalf("expected total footer, got:\n%s", out)
	}
	if binding.Reads != 0 {
		t.Fatalf("--list must not perform attribute reads, got %d", binding.Reads)
	}
}

func TestPermissionDeniedCarriesRemediation(t *testing.T) {
	_, err := execute(t, &testsupport.Binding{Untrusted: true}, "--list")
	if err == nil {
		t.Fatal("expected permission error")
	}
	if !strings.Contains(err.Error(), "Privacy & Security") {
		t.Fatalf("expected remediation instructions, got %v", err)
	}
}

func TestExplicitFragmentsWithoutMatchFail(t *testing.T) {
	binding := &testsupport.Binding{Apps: []ax.AppInfo{{Name: "Finder", PID: 1}}}

	_, err := execute(t, binding, "--apps", "zzzznoapp")
	if err == nil {
		t.Fatal("expected no-match error")
	}
	if !strings.Contains(err.Error(), "zzzznoapp") {
		t.Fatalf("expected fragments in error, got %v", err)
	}
}

func TestDefaultRunWarmsKnownApplications(t *testing.T) {
	binding := &testsupport.Binding{
		Apps: []ax.AppInfo{
			{Name: "Slack Helper", PID: 100},
			{Name: "Slack", PID: 101},
			{Name: "Finder", PID: 102},
		},
		Roles: map[int]string{101: "AXApplication"},
		Codes: map[int]ax.Code{101: ax.CodeSuccess},
	}

	out, err := execute(t, binding)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out, "1 succeeded") {
		t.Fatalf("expected success count in summary, got:\n%s", out)
	}
	if !strings.Contains(out, "skipped: Slack Helper") {
		t.Fatalf("expected skipped helper in summary, got:\n%s", out)
	}
	if binding.Reads != 1 {
		t.Fatalf("expected exactly one attribute read, got %d", binding.Reads)
	}
}

func TestAllRunningConflictsWithExplicitFragments(t *testing.T) {
	_, err := execute(t, &testsupport.Binding{}, "--all-running", "--apps", "slack")
	if err == nil || !strings.Contains(err.Error(), "cannot be combined") {
		t.Fatalf("expected flag conflict error, got %v", err)
	}
}

func TestNoneWarmedExitsWithError(t *testing.T) {
	binding := &testsupport.Binding{
		Apps:  []ax.AppInfo{{Name: "Slack", PID: 101}},
		Codes: map[int]ax.Code{101: ax.CodeCannotComplete},
	}

	out, err := execute(t, binding, "--apps", "slack")
	if err == nil {
		t.Fatal("expected error when nothing was warmed")
	}
	if !strings.Contains(out, "1 partial") {
		t.Fatalf("summary must still render, got:\n%s", out)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := execute(t, &testsupport.Binding{}, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected written path in output, got:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config on disk: %v", err)
	}
}

func TestConfigValidateReportsDefaults(t *testing.T) {
	out, err := execute(t, &testsupport.Binding{}, "config", "validate")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(out, "Configuration OK") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
