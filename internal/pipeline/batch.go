package pipeline

import (
	"context"
	"log/slog"
	"sync"

	"technews/internal/model"
	"technews/pkg/extract"
	"technews/pkg/llm"
	"technews/pkg/news"
)

// maxInFlight bounds concurrent extract+rewrite pipelines per run, to
// respect third-party rate limits.
const maxInFlight = 5

type Extractor interface {
	Extract(ctx context.Context, url string) (*extract.Article, error)
}

// Orchestrator runs one ingestion batch: feed page -> relevance filter ->
// bounded fan-out over extract+rewrite -> collected successes.
type Orchestrator struct {
	feed      news.FeedClient
	extractor Extractor
	rewriter  llm.Rewriter
}

func NewOrchestrator(feed news.FeedClient, extractor Extractor, rewriter llm.Rewriter) *Orchestrator {
	return &Orchestrator{
		feed:      feed,
		extractor: extractor,
		rewriter:  rewriter,
	}
}

// RunBatch never fails as a whole: a dead feed yields an empty batch and
// per-item errors are logged and dropped, not propagated.
func (o *Orchestrator) RunBatch(ctx context.Context) []model.ProcessedArticle {
	candidates, err := o.feed.FetchTop(feedPageSize)
	if err != nil {
		slog.Error("error fetching candidates", "source", o.feed.Name(), "error", err)
		return []model.ProcessedArticle{}
	}

	survivors := FilterCandidates(candidates)
	slog.Info("candidates filtered", "fetched", len(candidates), "survivors", len(survivors))

	if len(survivors) == 0 {
		return []model.ProcessedArticle{}
	}

	sem := make(chan struct{}, maxInFlight)
	resultCh := make(chan model.ProcessedArticle, len(survivors))

	var wg sync.WaitGroup
	for _, candidate := range survivors {
		wg.Add(1)
		go func(c news.Candidate) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			article, err := o.processOne(ctx, c)
			if err != nil {
				slog.Warn("dropping article", "url", c.URL, "error", err)
				return
			}
			resultCh <- *article
		}(candidate)
	}

	wg.Wait()
	close(resultCh)

	processed := make([]model.ProcessedArticle, 0, len(survivors))
	for article := range resultCh {
		processed = append(processed, article)
	}

	slog.Info("batch complete", "processed", len(processed), "survivors", len(survivors))
	return processed
}

func (o *Orchestrator) processOne(ctx context.Context, c news.Candidate) (*model.ProcessedArticle, error) {
	extracted, err := o.extractor.Extract(ctx, c.URL)
	if err != nil {
		return nil, err
	}

	abstract := extracted.Summary
	if abstract == "" {
		abstract = c.Description
	}

	rewritten, err := o.rewriter.Rewrite(ctx, llm.RewriteInput{
		Title:      c.Title,
		Abstract:   abstract,
		Content:    extracted.Text,
		Keywords:   extracted.Keywords,
		SourceName: c.SourceName,
		SourceURL:  c.URL,
	})
	if err != nil {
		return nil, err
	}

	image := c.ImageURL
	if image == "" {
		image = extracted.TopImage
	}

	return &model.ProcessedArticle{
		Title:    rewritten.Title,
		Tags:     rewritten.Tags,
		Abstract: rewritten.Abstract,
		Content:  rewritten.Content,
		ImageURL: image,
	}, nil
}
