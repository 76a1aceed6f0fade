package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"technews/pkg/extract"
	"technews/pkg/llm"
	"technews/pkg/news"
)

type fakeFeed struct {
	candidates []news.Candidate
	err        error
}

func (f *fakeFeed) FetchTop(limit int) ([]news.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.candidates) > limit {
		return f.candidates[:limit], nil
	}
	return f.candidates, nil
}

func (f *fakeFeed) Name() string { return "fake" }

type fakeExtractor struct {
	failURLs map[string]bool
	delay    time.Duration

	mu        sync.Mutex
	inFlight  int
	maxSeen   int
	emptyURLs map[string]bool
}

func (f *fakeExtractor) Extract(ctx context.Context, url string) (*extract.Article, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.failURLs[url] {
		return nil, fmt.Errorf("fetch %s: connection refused", url)
	}
	if f.emptyURLs[url] {
		return nil, fmt.Errorf("%s: %w", url, extract.ErrEmptyText)
	}

	return &extract.Article{
		URL:       url,
		Title:     "Extracted title",
		Text:      strings.Repeat("Real article body text. ", 20),
		Summary:   "Extracted summary.",
		Keywords:  []string{"ai"},
		WordCount: 80,
	}, nil
}

type fakeRewriter struct {
	failURLs map[string]bool
}

func (f *fakeRewriter) Rewrite(ctx context.Context, input llm.RewriteInput) (*llm.RewriteResult, error) {
	if f.failURLs[input.SourceURL] {
		return nil, llm.ErrInvalidResponse
	}
	if len(strings.TrimSpace(input.Content)) < 100 {
		return nil, llm.ErrTooShort
	}
	return &llm.RewriteResult{
		Title:    "Rewritten: " + input.Title,
		Tags:     []string{"ai", "technology"},
		Abstract: "Rewritten abstract.",
		Content:  "<p>Rewritten.</p>",
	}, nil
}

func techCandidates(n int) []news.Candidate {
	var out []news.Candidate
	for i := 0; i < n; i++ {
		out = append(out, news.Candidate{
			URL:          fmt.Sprintf("https://example.com/article-%d", i),
			Title:        fmt.Sprintf("AI story %d", i),
			SourceName:   "Example",
			SourceDomain: "example.com",
			ImageURL:     fmt.Sprintf("https://cdn.example.com/%d.jpg", i),
		})
	}
	return out
}

func TestRunBatch_FeedErrorYieldsEmptyBatch(t *testing.T) {
	o := NewOrchestrator(
		&fakeFeed{err: errors.New("feed unreachable")},
		&fakeExtractor{},
		&fakeRewriter{},
	)

	got := o.RunBatch(context.Background())
	assert.Equal(t, 0, len(got))
}

func TestRunBatch_PartialFailureIsolation(t *testing.T) {
	candidates := techCandidates(4)
	o := NewOrchestrator(
		&fakeFeed{candidates: candidates},
		&fakeExtractor{failURLs: map[string]bool{candidates[1].URL: true}},
		&fakeRewriter{},
	)

	got := o.RunBatch(context.Background())

	assert.Equal(t, 3, len(got))
	for _, article := range got {
		assert.NotEqual(t, "Rewritten: AI story 1", article.Title)
	}
}

func TestRunBatch_EmptyExtractionIsDropped(t *testing.T) {
	candidates := techCandidates(3)
	o := NewOrchestrator(
		&fakeFeed{candidates: candidates},
		&fakeExtractor{emptyURLs: map[string]bool{candidates[0].URL: true}},
		&fakeRewriter{},
	)

	got := o.RunBatch(context.Background())
	assert.Equal(t, 2, len(got))
}

func TestRunBatch_RewriteFailureIsDropped(t *testing.T) {
	candidates := techCandidates(3)
	o := NewOrchestrator(
		&fakeFeed{candidates: candidates},
		&fakeExtractor{},
		&fakeRewriter{failURLs: map[string]bool{candidates[2].URL: true}},
	)

	got := o.RunBatch(context.Background())
	assert.Equal(t, 2, len(got))
}

func TestRunBatch_ConcurrencyBound(t *testing.T) {
	// 20 candidates cap to 10 survivors; never more than 5 in flight.
	extractor := &fakeExtractor{delay: 20 * time.Millisecond}
	o := NewOrchestrator(
		&fakeFeed{candidates: techCandidates(20)},
		extractor,
		&fakeRewriter{},
	)

	got := o.RunBatch(context.Background())

	assert.Equal(t, maxSurvivors, len(got))
	if extractor.maxSeen > maxInFlight {
		t.Errorf("high-water mark = %d, want at most %d", extractor.maxSeen, maxInFlight)
	}
	if extractor.maxSeen < 2 {
		t.Errorf("high-water mark = %d, expected real overlap", extractor.maxSeen)
	}
}

func TestRunBatch_CarriesLeadImage(t *testing.T) {
	candidates := techCandidates(1)
	o := NewOrchestrator(
		&fakeFeed{candidates: candidates},
		&fakeExtractor{},
		&fakeRewriter{},
	)

	got := o.RunBatch(context.Background())

	assert.Equal(t, 1, len(got))
	assert.Equal(t, candidates[0].ImageURL, got[0].ImageURL)
	assert.Equal(t, "Rewritten: AI story 0", got[0].Title)
	assert.Equal(t, []string{"ai", "technology"}, got[0].Tags)
}
