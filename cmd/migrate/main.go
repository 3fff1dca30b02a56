package main

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/neutrino2211/devto-sync/internal/frontmatter"
)

var devtoLinkRe = regexp.MustCompile(`(?m)^devto_link:\s*"?([^"\r\n]+)"?`)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate <strip-tag-hashes|remove-duplicates> <posts-directory>")
	}

	command := os.Args[1]
	postsDir := os.Args[2]

	switch command {
	case "strip-tag-hashes":
		if err := stripTagHashes(postsDir); err != nil {
			log.Fatal(err)
		}
	case "remove-duplicates":
		if err := removeDuplicates(postsDir, os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("Unknown command %q", command)
	}
}

func stripTagHashes(postsDir string) error {
	return filepath.WalkDir(postsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Continue on errors
		}

		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			if err := processFile(path); err != nil {
				log.Printf("Error processing %s: %v", path, err)
			}
		}

		return nil
	})
}

func processFile(filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	updated, changed := sanitizeFrontMatterTags(string(content))
	if !changed {
		return nil
	}

	log.Printf("Stripping tag hashes in %s", filepath.Base(filePath))
	return os.WriteFile(filePath, []byte(updated), 0644)
}

// sanitizeFrontMatterTags strips hashes from tags lines inside the leading
// front-matter block only. Works with LF and CRLF files.
func sanitizeFrontMatterTags(content string) (string, bool) {
	if !frontmatter.HasFrontMatter(content) {
		return content, false
	}

	lines := strings.Split(content, "\n")
	changed := false
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == frontmatter.Delimiter {
			break
		}
		sanitized := frontmatter.SanitizeTagsLine(lines[i])
		if sanitized != lines[i] {
			lines[i] = sanitized
			changed = true
		}
	}

	return strings.Join(lines, "\n"), changed
}

func extractDevtoLink(content string) string {
	matches := devtoLinkRe.FindStringSubmatch(content)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

func generateURLHash(url string) string {
	h := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", h)[:8]
}

func removeDuplicates(postsDir string, in io.Reader, out io.Writer) error {
	hashToFiles := make(map[string][]string)
	var order []string
	reader := bufio.NewReader(in)

	if err := filepath.WalkDir(postsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Continue on errors
		}

		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Error reading %s: %v", path, err)
			return nil
		}

		link := extractDevtoLink(string(content))
		if link == "" || link == "none" {
			return nil
		}

		hash := generateURLHash(link)
		if _, seen := hashToFiles[hash]; !seen {
			order = append(order, hash)
		}
		hashToFiles[hash] = append(hashToFiles[hash], path)
		return nil
	}); err != nil {
		return fmt.Errorf("walking directory: %w", err)
	}

	totalRemoved := 0
	for _, hash := range order {
		files := hashToFiles[hash]
		if len(files) <= 1 {
			continue
		}

		fmt.Fprintf(out, "\nFound %d posts with devto_link hash %s:\n", len(files), hash)
		for i, file := range files {
			fileName := filepath.Base(file)
			if i == 0 {
				fmt.Fprintf(out, "  KEEP: %s\n", fileName)
				continue
			}

			if confirmDelete(reader, out, file) {
				if err := os.Remove(file); err != nil {
					log.Printf("Error removing %s: %v", file, err)
				} else {
					totalRemoved++
					fmt.Fprintf(out, "  REMOVED: %s\n", fileName)
				}
			} else {
				fmt.Fprintf(out, "  SKIP: %s\n", fileName)
			}
		}
	}

	fmt.Fprintf(out, "\nRemoved %d duplicate posts\n", totalRemoved)
	return nil
}

func confirmDelete(reader *bufio.Reader, out io.Writer, path string) bool {
	for {
		fmt.Fprintf(out, "  DELETE %s? [y/N]: ", filepath.Base(path))
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			if err != io.EOF {
				log.Printf("Error reading input: %v", err)
			}
			return false
		}
		response := strings.ToLower(strings.TrimSpace(input))
		switch response {
		case "y", "yes":
			return true
		case "", "n", "no":
			return false
		default:
			fmt.Fprintln(out, "  Please enter y or n.")
		}
	}
}
