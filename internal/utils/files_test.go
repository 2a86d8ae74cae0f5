package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("type Query { ok: Boolean }"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFindGraphQLFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.graphql"))
	writeFile(t, filepath.Join(dir, "a.graphqls"))
	writeFile(t, filepath.Join(dir, "nested", "c.gql"))
	writeFile(t, filepath.Join(dir, "ignored.txt"))

	files, err := FindGraphQLFiles(dir)
	if err != nil {
		t.Fatalf("FindGraphQLFiles failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}

	// Sorted by path
	if filepath.Base(files[0]) != "a.graphqls" || filepath.Base(files[1]) != "b.graphql" {
		t.Errorf("unexpected order: %v", files)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, "single.graphql")
	writeFile(t, single)
	writeFile(t, filepath.Join(dir, "sub", "x.graphql"))
	writeFile(t, filepath.Join(dir, "sub", "y.graphql"))

	files, err := ExpandPaths([]string{single, filepath.Join(dir, "sub")})
	if err != nil {
		t.Fatalf("ExpandPaths failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}

	if files[0] != single {
		t.Errorf("expected plain file first, got %v", files)
	}
}

func TestExpandPathsMissing(t *testing.T) {
	if _, err := ExpandPaths([]string{"does-not-exist.graphql"}); err == nil {
		t.Fatal("expected error for missing path")
	}
}
