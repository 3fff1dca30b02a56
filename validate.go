package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Collection names a content collection consumed by the site generator
type Collection string

const (
	CollectionPosts          Collection = "posts"
	CollectionPublicSpeaking Collection = "public_speaking"
)

// PostFrontMatter is the front-matter contract of the posts collection
type PostFrontMatter struct {
	Title       string     `yaml:"title" json:"title"`
	PublishedAt *time.Time `yaml:"published_at" json:"published_at"`
	Description string     `yaml:"description" json:"description"`
	Published   *bool      `yaml:"published" json:"published"`
	Tags        *string    `yaml:"tags" json:"tags"`
	Comments    *int       `yaml:"comments" json:"comments"`
	Reactions   *int       `yaml:"reactions" json:"reactions"`
	Views       *int       `yaml:"views" json:"views"`
	CoverImage  *string    `yaml:"cover_image" json:"cover_image"`
	DevtoLink   *string    `yaml:"devto_link" json:"devto_link"`
}

// Validate checks the post against the collection schema
func (p PostFrontMatter) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.PublishedAt, validation.NotNil),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.Published, validation.NotNil),
		validation.Field(&p.Tags, validation.NotNil),
		validation.Field(&p.Comments, validation.NotNil, validation.Min(0)),
		validation.Field(&p.Reactions, validation.NotNil, validation.Min(0)),
		validation.Field(&p.Views, validation.NotNil, validation.Min(0)),
		validation.Field(&p.DevtoLink, is.URL),
	)
}

// SpeechFrontMatter is the front-matter contract of the public speaking collection
type SpeechFrontMatter struct {
	Speech      string     `yaml:"speech" json:"speech"`
	Event       string     `yaml:"event" json:"event"`
	Date        *time.Time `yaml:"date" json:"date"`
	Image       string     `yaml:"image" json:"image"`
	Description string     `yaml:"description" json:"description"`
}

func (s SpeechFrontMatter) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Speech, validation.Required),
		validation.Field(&s.Event, validation.Required),
		validation.Field(&s.Date, validation.NotNil),
		validation.Field(&s.Image, validation.Required),
		validation.Field(&s.Description, validation.Required),
	)
}

// ValidateDocument parses the front-matter of doc and validates it against
// the collection schema
func ValidateDocument(collection Collection, doc string) error {
	var target validation.Validatable
	switch collection {
	case CollectionPosts:
		target = &PostFrontMatter{}
	case CollectionPublicSpeaking:
		target = &SpeechFrontMatter{}
	default:
		return fmt.Errorf("unknown collection: %s", collection)
	}

	normalized := strings.ReplaceAll(doc, "\r\n", "\n")
	if _, err := frontmatter.MustParse(strings.NewReader(normalized), target); err != nil {
		return fmt.Errorf("parsing front-matter: %w", err)
	}

	return target.Validate()
}

// ValidationResult is the outcome of validating one file
type ValidationResult struct {
	Filename string
	Error    error
}

// ValidateCollection validates every markdown file directly under dir
func ValidateCollection(collection Collection, dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	sort.Strings(files)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			results = append(results, ValidationResult{Filename: file, Error: err})
			continue
		}
		results = append(results, ValidationResult{
			Filename: file,
			Error:    ValidateDocument(collection, string(content)),
		})
	}

	return results, nil
}
