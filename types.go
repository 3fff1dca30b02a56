package main

import "github.com/neutrino2211/devto-sync/internal/frontmatter"

// ArticleRecord is a published article as returned by the dev.to API
type ArticleRecord struct {
	ID                   int     `json:"id"`
	Title                string  `json:"title"`
	Slug                 string  `json:"slug"`
	URL                  *string `json:"url"`
	BodyMarkdown         string  `json:"body_markdown"`
	CommentsCount        int     `json:"comments_count"`
	PublicReactionsCount int     `json:"public_reactions_count"`
	PageViewsCount       int     `json:"page_views_count"`
	PublishedTimestamp   string  `json:"published_timestamp"`
	CoverImage           *string `json:"cover_image"`
}

// Link returns the article URL, empty when the API sent none
func (a ArticleRecord) Link() string {
	if a.URL == nil {
		return ""
	}
	return *a.URL
}

// Eligible reports whether the article can be written as a post. Only a
// null or missing url disqualifies it; an empty string is kept.
func (a ArticleRecord) Eligible() bool {
	return a.URL != nil && frontmatter.HasFrontMatter(a.BodyMarkdown)
}

// MetadataFields returns the front-matter fields injected into the post.
// Key names match the posts content collection.
func (a ArticleRecord) MetadataFields() []frontmatter.Field {
	cover := "none"
	if a.CoverImage != nil && *a.CoverImage != "" {
		cover = *a.CoverImage
	}

	return []frontmatter.Field{
		{Key: "comments", Value: a.CommentsCount},
		{Key: "reactions", Value: a.PublicReactionsCount},
		{Key: "views", Value: a.PageViewsCount},
		{Key: "published_at", Value: a.PublishedTimestamp},
		{Key: "devto_link", Value: a.Link()},
		{Key: "cover_image", Value: cover},
	}
}

// ProcessingStatus represents the outcome status of processing an article
type ProcessingStatus string

const (
	StatusSuccess ProcessingStatus = "success"
	StatusSkipped ProcessingStatus = "skipped"
	StatusError   ProcessingStatus = "error"
)

// ProcessingResult tracks the outcome of processing each article
type ProcessingResult struct {
	Slug     string
	URL      string
	Status   ProcessingStatus
	Filename string
	Error    error
}

// SyncStatus tells whether a sync actually ran
type SyncStatus string

const (
	SyncRan     SyncStatus = "ran"
	SyncSkipped SyncStatus = "skipped"
)

// SyncResult summarises a single sync run
type SyncResult struct {
	Status   SyncStatus
	Fetched  int
	Results  []ProcessingResult
	Warnings []string
}

// Count returns the number of results with the given status
func (r *SyncResult) Count(status ProcessingStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}
