package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(lines ...string) string {
	return strings.Join(lines, LineTerminator)
}

func TestMergeInjectsMissingKeys(t *testing.T) {
	in := doc("---", "title: Hello", "published: true", "---", "", "Body text")

	out := Merge(in, []Field{{Key: "views", Value: 42}})

	want := doc("---", "views: 42", "title: Hello", "published: true", "---", "", "Body text")
	assert.Equal(t, want, out)
}

func TestMergeKeepsFieldOrder(t *testing.T) {
	in := doc("---", "title: Hello", "---", "body")

	out := Merge(in, []Field{
		{Key: "comments", Value: 1},
		{Key: "reactions", Value: 2},
		{Key: "views", Value: 3},
	})

	want := doc("---", "comments: 1", "reactions: 2", "views: 3", "title: Hello", "---", "body")
	assert.Equal(t, want, out)
}

func TestMergeDoesNotDuplicateExistingKey(t *testing.T) {
	in := doc("---", "title: Hello", "views: 10", "---", "body")

	out := Merge(in, []Field{
		{Key: "views", Value: 99},
		{Key: "comments", Value: 3},
	})

	assert.Equal(t, strings.Count(in, "views:"), strings.Count(out, "views:"))
	assert.Contains(t, out, "views: 10")
	assert.NotContains(t, out, "views: 99")
	assert.True(t, strings.HasPrefix(out, "---"+LineTerminator+"comments: 3"+LineTerminator))
}

func TestMergeKeyPresenceScansWholeDocument(t *testing.T) {
	// A "key:" in the body still counts as present.
	in := doc("---", "title: Hello", "---", "see devto_link: below")

	out := Merge(in, []Field{{Key: "devto_link", Value: "https://dev.to/x"}})

	assert.NotContains(t, out, "devto_link: https://dev.to/x")
}

func TestMergeAllKeysPresentInsertsBlankLine(t *testing.T) {
	in := doc("---", "views: 1", "---", "body")

	out := Merge(in, []Field{{Key: "views", Value: 2}})

	want := "---" + LineTerminator + LineTerminator + "views: 1" + LineTerminator + "---" + LineTerminator + "body"
	assert.Equal(t, want, out)
}

func TestMergeNoFieldsInsertsBlankLine(t *testing.T) {
	in := doc("---", "title: x", "---")

	out := Merge(in, nil)

	assert.Equal(t, len(in)+len(LineTerminator), len(out))
}

func TestMergeStripsHashesFromTags(t *testing.T) {
	in := doc("---", "title: C# tips", "tags: #go, #webdev", "---", "# Heading", "tags: #inbody")

	out := Merge(in, nil)

	lines := strings.Split(out, LineTerminator)
	require.Len(t, lines, 7)
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "title: C# tips", lines[2])
	assert.Equal(t, "tags: go, webdev", lines[3])
	assert.Equal(t, "# Heading", lines[5])
	assert.Equal(t, "tags: inbody", lines[6])
}

func TestMergeShortDocument(t *testing.T) {
	out := Merge("---", []Field{{Key: "views", Value: 1}})
	assert.Equal(t, "---views: 1"+LineTerminator, out)
}

func TestSanitizeTagsLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"tags line", "tags: #go, #rust", "tags: go, rust"},
		{"no hashes", "tags: go", "tags: go"},
		{"only hashes", "tags:###", "tags:"},
		{"indented tags untouched", " tags: #go", " tags: #go"},
		{"other key untouched", "title: #1 post", "title: #1 post"},
		{"heading untouched", "## tags: #x", "## tags: #x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTagsLine(tt.line))
		})
	}
}

func TestMissingFields(t *testing.T) {
	in := doc("---", "comments: 0", "cover_image: https://x/y.png", "---")
	fields := []Field{
		{Key: "comments", Value: 5},
		{Key: "views", Value: 6},
		{Key: "cover_image", Value: "none"},
	}

	missing := MissingFields(in, fields)

	require.Len(t, missing, 1)
	assert.Equal(t, "views", missing[0].Key)
}

func TestHasFrontMatter(t *testing.T) {
	assert.True(t, HasFrontMatter("---\r\ntitle: x"))
	assert.False(t, HasFrontMatter("# title"))
	assert.False(t, HasFrontMatter(""))
}
