// Package frontmatter injects metadata into the YAML front-matter of
// dev.to markdown documents.
package frontmatter

import (
	"fmt"
	"strings"
)

const (
	// Delimiter opens and closes a front-matter block.
	Delimiter = "---"

	// LineTerminator is used for every line the merger produces,
	// regardless of host platform.
	LineTerminator = "\r\n"

	// headLen covers the opening delimiter and its terminator.
	headLen = len(Delimiter + LineTerminator)

	tagsPrefix = "tags:"
)

// Field is a single front-matter key and the value to inject for it.
type Field struct {
	Key   string
	Value any
}

// String renders the field as a YAML line without terminator.
func (f Field) String() string {
	return fmt.Sprintf("%s: %v", f.Key, f.Value)
}

// HasFrontMatter reports whether doc starts with the front-matter delimiter.
func HasFrontMatter(doc string) bool {
	return strings.HasPrefix(doc, Delimiter)
}

// MissingFields returns the fields whose "key:" does not appear anywhere in doc.
func MissingFields(doc string, fields []Field) []Field {
	missing := make([]Field, 0, len(fields))
	for _, f := range fields {
		if strings.Contains(doc, f.Key+":") {
			continue
		}
		missing = append(missing, f)
	}
	return missing
}

// Merge inserts the missing fields right after the opening delimiter and
// strips hash marks from tags lines in the rest of the document.
//
// When every field already exists the inserted segment is a lone line
// terminator, so the output always gains at least one empty line.
func Merge(doc string, fields []Field) string {
	head, rest := doc, ""
	if len(doc) > headLen {
		head, rest = doc[:headLen], doc[headLen:]
	}

	lines := make([]string, 0, len(fields))
	for _, f := range MissingFields(doc, fields) {
		lines = append(lines, f.String())
	}
	injected := strings.Join(lines, LineTerminator) + LineTerminator

	return head + injected + StripTagHashes(rest)
}

// StripTagHashes applies SanitizeTagsLine to every CRLF-separated line.
func StripTagHashes(text string) string {
	lines := strings.Split(text, LineTerminator)
	for i, line := range lines {
		lines[i] = SanitizeTagsLine(line)
	}
	return strings.Join(lines, LineTerminator)
}

// SanitizeTagsLine removes every '#' from a line starting with "tags:".
// Other lines are returned unchanged.
func SanitizeTagsLine(line string) string {
	if !strings.HasPrefix(line, tagsPrefix) {
		return line
	}
	return strings.ReplaceAll(line, "#", "")
}
