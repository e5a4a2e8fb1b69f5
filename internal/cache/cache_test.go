// ABOUTME: Tests for the speech cache
// ABOUTME: Tests keying, lookup, store and atomic replacement
package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeyIsStableAndDistinct(t *testing.T) {
	c := New(t.TempDir())

	if c.Key("hello") != c.Key("hello") {
		t.Error("key not stable for identical text")
	}
	if c.Key("hello") == c.Key("goodbye") {
		t.Error("distinct texts share a key")
	}
	if len(c.Key("hello")) != 32 {
		t.Errorf("key length = %d, want 32 hex chars", len(c.Key("hello")))
	}
}

func TestLookupMiss(t *testing.T) {
	c := New(t.TempDir())

	if _, ok := c.Lookup("never stored"); ok {
		t.Error("lookup hit for text never stored")
	}
}

func TestStoreAndLookup(t *testing.T) {
	c := New(t.TempDir())
	payload := []byte("RIFF-ish payload")

	path, err := c.Store("hello world", payload)
	if err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if !strings.HasSuffix(path, ".wav") {
		t.Errorf("stored path %q missing .wav suffix", path)
	}

	got, ok := c.Lookup("hello world")
	if !ok {
		t.Fatal("lookup miss after store")
	}
	if got != path {
		t.Errorf("lookup path %q, want %q", got, path)
	}

	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("reading cached file: %v", err)
	}
	if string(data) != string(payload) {
		t.Error("cached payload corrupted")
	}
}

func TestStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := New(dir)

	if _, err := c.Store("text", []byte("wav")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
}

func TestStoreReplaces(t *testing.T) {
	c := New(t.TempDir())

	if _, err := c.Store("text", []byte("first")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	path, err := c.Store("text", []byte("second"))
	if err != nil {
		t.Fatalf("Store() replace failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("cached payload = %q, want %q", data, "second")
	}
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	if _, err := c.Store("text", []byte("wav")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading cache dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
