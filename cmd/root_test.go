package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// newDBCmd builds a bare command carrying the --db flag the way the root
// command registers it.
func newDBCmd(dbFlag string) *cobra.Command {
	c := &cobra.Command{}
	c.Flags().String("db", dbFlag, "")
	return c
}

func TestResolveDBPathPrecedence(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.db")
	cfgPath := filepath.Join(dir, "cfg.db")
	envPath := filepath.Join(dir, "env.db")

	got, err := resolveDBPath(newDBCmd(flagPath), cfgPath)
	if err != nil {
		t.Fatalf("resolve with flag: %v", err)
	}
	if got != flagPath {
		t.Errorf("path = %q, want the --db flag to win", got)
	}

	got, err = resolveDBPath(newDBCmd(""), cfgPath)
	if err != nil {
		t.Fatalf("resolve with config: %v", err)
	}
	if got != cfgPath {
		t.Errorf("path = %q, want the configured path", got)
	}

	t.Setenv("WORKLENS_DB", envPath)
	got, err = resolveDBPath(newDBCmd(""), "")
	if err != nil {
		t.Fatalf("resolve with env: %v", err)
	}
	if got != envPath {
		t.Errorf("path = %q, want the WORKLENS_DB fallback", got)
	}
}

func TestOpenStoreUsesConfiguredDatabase(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir) // no user config layer
	t.Setenv("WORKLENS_DB", "")

	dbPath := filepath.Join(dir, "configured.db")
	yaml := "database:\n  path: " + dbPath + "\n"
	if err := os.WriteFile("worklens.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	st, err := openStore(newDBCmd(""))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database not created at the configured path: %v", err)
	}
}
