package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DirectoryResetter removes every immediate entry of a directory.
// Failures are reported as warnings and never stop the run.
type DirectoryResetter struct {
	readDir func(name string) ([]os.DirEntry, error)
	remove  func(name string) error
	workers int
	logger  *slog.Logger
}

// NewDirectoryResetter creates a resetter backed by the os package
func NewDirectoryResetter(workers int, logger *slog.Logger) *DirectoryResetter {
	return &DirectoryResetter{
		readDir: os.ReadDir,
		remove:  os.Remove,
		workers: workers,
		logger:  logger,
	}
}

// Reset deletes the directory entries and returns the collected warnings
func (r *DirectoryResetter) Reset(ctx context.Context, dir string) []string {
	entries, err := r.readDir(dir)
	if err != nil {
		r.logger.Warn("listing posts directory failed", "dir", dir, "error", err)
		return []string{fmt.Sprintf("listing %s: %v", dir, err)}
	}

	var (
		mu       sync.Mutex
		warnings []string
	)
	addWarning := func(msg string) {
		mu.Lock()
		warnings = append(warnings, msg)
		mu.Unlock()
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				addWarning(fmt.Sprintf("removing %s: %v", path, err))
				return nil
			}
			if err := r.remove(path); err != nil {
				r.logger.Warn("removing file failed", "path", path, "error", err)
				addWarning(fmt.Sprintf("removing %s: %v", path, err))
				return nil
			}
			r.logger.Debug("removed", "path", path)
			return nil
		})
	}

	// Tasks never return errors; failures are in warnings
	_ = eg.Wait()

	return warnings
}
