//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // UOMSYS_HOME, holds config.yaml
	CatalogDir string // directory holding catalog manifests written by the test
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so config reads are sandboxed. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		CatalogDir: t.TempDir(),
	}
	t.Setenv("UOMSYS_HOME", env.HomeDir)
	return env
}

// writeCatalog writes a catalog manifest into the env's catalog directory and
// returns its path.
func writeCatalog(t *testing.T, env *testEnv, name, content string) string {
	t.Helper()
	path := filepath.Join(env.CatalogDir, name)
	writeFile(t, path, content)
	return path
}

// writeFile writes content to path, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
