package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoader_LoadAll(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "example.yml"), "url: https://example.com/rss.xml\n")
	writeFile(t, filepath.Join(dir, "other.yaml"), "url: https://example.org/atom.xml\n")

	loader := NewLoader(dir)
	seeds, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(seeds) != 2 {
		t.Fatalf("Expected 2 seeds, got %d", len(seeds))
	}

	urls := map[string]bool{}
	for _, seed := range seeds {
		urls[seed.URL] = true
	}
	if !urls["https://example.com/rss.xml"] || !urls["https://example.org/atom.xml"] {
		t.Errorf("Unexpected seed URLs: %v", urls)
	}
}

func TestLoader_LoadAll_MissingDirectory(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "does-not-exist"))

	seeds, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll should not fail for a missing directory: %v", err)
	}
	if len(seeds) != 0 {
		t.Errorf("Expected no seeds, got %d", len(seeds))
	}
}

func TestLoader_LoadAll_MissingURL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yml"), "name: no url here\n")

	loader := NewLoader(dir)
	if _, err := loader.LoadAll(); err == nil {
		t.Error("Expected error for seed file without URL")
	}
}

func TestLoader_LoadAll_InvalidScheme(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yml"), "url: ftp://example.com/feed\n")

	loader := NewLoader(dir)
	if _, err := loader.LoadAll(); err == nil {
		t.Error("Expected error for non-http seed URL")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
