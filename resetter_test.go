package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryResetterRemovesEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	warnings := NewDirectoryResetter(2, discardLogger()).Reset(context.Background(), dir)

	assert.Empty(t, warnings)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDirectoryResetterMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	warnings := NewDirectoryResetter(2, discardLogger()).Reset(context.Background(), dir)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "listing")
}

func TestDirectoryResetterCollectsRemoveFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.md"), []byte("x"), 0644))
	// A non-empty subdirectory cannot be removed with os.Remove
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested", "deep"), 0755))

	warnings := NewDirectoryResetter(4, discardLogger()).Reset(context.Background(), dir)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "nested")
	assert.NoFileExists(t, filepath.Join(dir, "ok.md"))
}

func TestDirectoryResetterStubbedRemove(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"one.md", "two.md", "three.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	r := NewDirectoryResetter(1, discardLogger())
	r.remove = func(name string) error {
		if filepath.Base(name) == "two.md" {
			return errors.New("busy")
		}
		return os.Remove(name)
	}

	warnings := r.Reset(context.Background(), dir)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "busy")
	assert.FileExists(t, filepath.Join(dir, "two.md"))
	assert.NoFileExists(t, filepath.Join(dir, "one.md"))
	assert.NoFileExists(t, filepath.Join(dir, "three.md"))
}

func TestDirectoryResetterCancelledContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.md"), nil, 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	warnings := NewDirectoryResetter(1, discardLogger()).Reset(ctx, dir)

	require.Len(t, warnings, 1)
	assert.FileExists(t, filepath.Join(dir, "keep.md"))
}
