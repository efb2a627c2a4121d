package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != version {
		t.Fatalf("version output = %q, want %q", got, version)
	}
}

func TestProbeCommandSimulated(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"probe", "--simulate", "--config", filepath.Join(t.TempDir(), "none.toml")})

	if err := root.Execute(); err != nil {
		t.Fatalf("probe: %v", err)
	}
	if !strings.Contains(out.String(), "battery") {
		t.Fatalf("probe output missing battery line:\n%s", out.String())
	}
}

func TestRootRejectsArgs(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"extra"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for positional args")
	}
}
