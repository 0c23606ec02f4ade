// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, dirs ...string) <-chan []string {
	t.Helper()
	w, err := New(dirs, 100*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	calls := make(chan []string, 8)
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(_ context.Context, changed []string) error {
			calls <- changed
			return nil
		})
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return calls
}

func waitCall(t *testing.T, calls <-chan []string) []string {
	t.Helper()
	select {
	case c := <-calls:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild within 5s")
	}
	return nil
}

func TestRunDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	calls := startWatcher(t, dir)

	a := filepath.Join(dir, "a.ttl")
	b := filepath.Join(dir, "b.ttl")
	require.NoError(t, os.WriteFile(a, []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("1"), 0o644))
	require.NoError(t, os.WriteFile(a, []byte("2"), 0o644))

	assert.Equal(t, []string{a, b}, waitCall(t, calls))

	select {
	case c := <-calls:
		t.Fatalf("unexpected second rebuild: %v", c)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRunIgnoresHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	calls := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".energie.ttl.swp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "energie.ttl~"), []byte("x"), 0o644))

	select {
	case c := <-calls:
		t.Fatalf("unexpected rebuild: %v", c)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestNewWatchesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "netbeheer", "meting"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	w, err := New([]string{dir, ""}, 0, nil)
	require.NoError(t, err)
	defer w.fs.Close()

	assert.Equal(t, []string{
		dir,
		filepath.Join(dir, "netbeheer"),
		filepath.Join(dir, "netbeheer", "meting"),
	}, w.Dirs())
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing")}, 0, nil)
	require.Error(t, err)
}

func TestIgnored(t *testing.T) {
	for path, want := range map[string]bool{
		"begrippen/energie.ttl":      false,
		"begrippen/.energie.ttl.swp": true,
		"begrippen/energie.ttl~":     true,
		"templates/concept.md.tmpl":  false,
		"4913.tmp":                   true,
	} {
		assert.Equal(t, want, ignored(path), path)
	}
}
