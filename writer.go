package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// postFilename returns <dir>/<slug>.md with the slug used verbatim. Slugs
// that would name something other than a file directly in dir are rejected.
func postFilename(dir, articleSlug string) (string, error) {
	switch {
	case articleSlug == "", articleSlug == ".", articleSlug == "..":
		return "", fmt.Errorf("invalid slug %q", articleSlug)
	case strings.ContainsAny(articleSlug, "/"+string(filepath.Separator)):
		return "", fmt.Errorf("slug %q contains a path separator", articleSlug)
	}

	return filepath.Join(dir, articleSlug+".md"), nil
}

// writePost writes the merged document, overwriting any existing file
func writePost(dir, articleSlug, doc string) (string, error) {
	filename, err := postFilename(dir, articleSlug)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating posts directory: %w", err)
	}

	if err := os.WriteFile(filename, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}

	return filename, nil
}
