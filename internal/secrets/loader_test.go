package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UNLOSTAI_TEST_KEY", "from-env")

	got, err := Load(Source{Name: "api key", File: path, Env: "UNLOSTAI_TEST_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file value, got %q", got)
	}
}

func TestLoadFallsBackToEnvThenValue(t *testing.T) {
	t.Setenv("UNLOSTAI_TEST_KEY", " from-env ")

	got, err := Load(Source{Env: "UNLOSTAI_TEST_KEY", Value: "inline"})
	if err != nil || got != "from-env" {
		t.Fatalf("expected env value, got %q (%v)", got, err)
	}

	t.Setenv("UNLOSTAI_TEST_KEY", "")
	got, err = Load(Source{Env: "UNLOSTAI_TEST_KEY", Value: " inline "})
	if err != nil || got != "inline" {
		t.Fatalf("expected inline value, got %q (%v)", got, err)
	}
}

func TestLoadErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("   "), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(Source{Name: "gemini api key", File: empty})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}

	_, err = Load(Source{Name: "gemini api key", File: filepath.Join(t.TempDir(), "missing")})
	if err == nil || !strings.Contains(err.Error(), "reading gemini api key") {
		t.Fatalf("expected read error, got %v", err)
	}

	_, err = Load(Source{})
	if err == nil || err.Error() != "secret is not configured" {
		t.Fatalf("expected not configured error, got %v", err)
	}
}
