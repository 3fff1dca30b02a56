package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/neutrino2211/devto-sync/internal/frontmatter"
	"golang.org/x/sync/errgroup"
)

// ArticleSource lists published articles
type ArticleSource interface {
	FetchPublished(ctx context.Context) ([]ArticleRecord, error)
}

// SyncProcessor handles the main workflow: reset the posts directory, fetch
// articles, merge metadata and write one post per article
type SyncProcessor struct {
	config   *Config
	source   ArticleSource
	resetter *DirectoryResetter
	write    func(dir, slug, doc string) (string, error)
	logger   *slog.Logger
}

// NewSyncProcessor creates a processor for the given configuration
func NewSyncProcessor(config *Config, logger *slog.Logger) *SyncProcessor {
	settings := config.Settings

	return &SyncProcessor{
		config:   config,
		source:   NewArticleFetcher(settings, config.APIKey),
		resetter: NewDirectoryResetter(settings.Workers, logger),
		write:    writePost,
		logger:   logger,
	}
}

// Run performs one full sync. Without an API key nothing happens and the
// result is marked skipped. Write failures are joined into the returned error
// after every write has been attempted.
func (sp *SyncProcessor) Run(ctx context.Context) (*SyncResult, error) {
	if sp.config.APIKey == "" {
		sp.logger.Debug("no API key configured, skipping sync", "env", apiKeyEnv)
		return &SyncResult{Status: SyncSkipped}, nil
	}

	settings := sp.config.Settings
	result := &SyncResult{Status: SyncRan}

	var articles []ArticleRecord
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		result.Warnings = sp.resetter.Reset(egCtx, settings.PostsDirectory)
		return nil
	})

	eg.Go(func() error {
		var err error
		articles, err = sp.source.FetchPublished(egCtx)
		return err
	})

	if err := eg.Wait(); err != nil {
		return result, fmt.Errorf("fetching published articles: %w", err)
	}

	result.Fetched = len(articles)
	sp.logger.Info("fetched articles", "count", len(articles))

	result.Results = make([]ProcessingResult, len(articles))
	warnings := make([]string, len(articles))

	writers, writeCtx := errgroup.WithContext(ctx)
	writers.SetLimit(settings.Workers)

	for i, article := range articles {
		i, article := i, article
		if !article.Eligible() {
			sp.logger.Debug("skipping article", "slug", article.Slug, "url", article.Link())
			result.Results[i] = ProcessingResult{
				Slug:   article.Slug,
				URL:    article.Link(),
				Status: StatusSkipped,
			}
			continue
		}

		writers.Go(func() error {
			// Siblings never cancel each other; only the caller's context does
			if err := writeCtx.Err(); err != nil {
				result.Results[i] = failed(article, err)
				return nil
			}
			result.Results[i], warnings[i] = sp.processArticle(article)
			return nil
		})
	}
	_ = writers.Wait()

	for _, w := range warnings {
		if w != "" {
			result.Warnings = append(result.Warnings, w)
		}
	}

	var errs []error
	for _, res := range result.Results {
		if res.Status == StatusError {
			errs = append(errs, fmt.Errorf("%s: %w", res.Slug, res.Error))
		}
	}

	return result, errors.Join(errs...)
}

// processArticle merges and writes a single article. The second return value
// is a schema warning, empty when validation is off or passes.
func (sp *SyncProcessor) processArticle(article ArticleRecord) (ProcessingResult, string) {
	doc := frontmatter.Merge(article.BodyMarkdown, article.MetadataFields())

	var warning string
	if sp.config.Settings.Validate {
		if err := ValidateDocument(CollectionPosts, doc); err != nil {
			sp.logger.Warn("post does not match schema", "slug", article.Slug, "error", err)
			warning = fmt.Sprintf("%s: %v", article.Slug, err)
		}
	}

	filename, err := sp.write(sp.config.Settings.PostsDirectory, article.Slug, doc)
	if err != nil {
		sp.logger.Error("writing post failed", "slug", article.Slug, "error", err)
		return failed(article, err), warning
	}

	sp.logger.Debug("wrote post", "file", filename)
	return ProcessingResult{
		Slug:     article.Slug,
		URL:      article.Link(),
		Status:   StatusSuccess,
		Filename: filename,
	}, warning
}

func failed(article ArticleRecord, err error) ProcessingResult {
	return ProcessingResult{
		Slug:   article.Slug,
		URL:    article.Link(),
		Status: StatusError,
		Error:  err,
	}
}
