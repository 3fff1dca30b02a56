package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleRecordEligible(t *testing.T) {
	link := "https://dev.to/me/post"
	empty := ""
	body := "---\r\ntitle: x\r\n---\r\n"

	tests := []struct {
		name    string
		article ArticleRecord
		want    bool
	}{
		{"url and front-matter", ArticleRecord{URL: &link, BodyMarkdown: body}, true},
		{"empty url kept", ArticleRecord{URL: &empty, BodyMarkdown: body}, true},
		{"null url", ArticleRecord{BodyMarkdown: body}, false},
		{"no front-matter", ArticleRecord{URL: &link, BodyMarkdown: "# title"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.article.Eligible())
		})
	}
}

func TestMetadataFieldsDefaults(t *testing.T) {
	fields := ArticleRecord{}.MetadataFields()

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"comments", "reactions", "views", "published_at", "devto_link", "cover_image"}, keys)
	assert.Equal(t, "", fields[4].Value)
	assert.Equal(t, "none", fields[5].Value)
}
