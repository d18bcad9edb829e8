package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestSeedCommand_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_DSN", filepath.Join(t.TempDir(), "seed.sqlite"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("MARGIN_TARGET", "")
	t.Setenv("MARGIN_FLOOR", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed", "--org", "org-demo", "--days", "30", "--seed", "7"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !strings.Contains(out.String(), "seeded org-demo: 6 subcontractors, 30 leads") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestSeedCommand_RequiresOrg(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_DSN", filepath.Join(t.TempDir(), "seed.sqlite"))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected missing --org error")
	}
}
