package staging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"technews/internal/model"
)

const (
	keyPrefix = "pending_article:"
	batchTTL  = 24 * time.Hour
)

// ErrNotFound is returned by Backend.Get when the key is absent or expired.
var ErrNotFound = errors.New("staging key not found")

// Backend is the key-value surface the cache needs from redis. Narrow on
// purpose so tests can run against an in-memory fake.
type Backend interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
}

// Cache stages one day's processed batch for human review. Every operation
// fails soft: a dead backend degrades to empty/false/nil, never an error,
// so staging unavailability cannot take down ingestion.
type Cache struct {
	backend Backend
	now     func() time.Time
}

func NewCache(backend Backend) *Cache {
	return &Cache{backend: backend, now: time.Now}
}

func (c *Cache) key() string {
	return keyPrefix + c.now().UTC().Format("20060102")
}

// Save assigns each item a fresh id, writes the whole batch under today's
// key with a 24h expiry, and overwrites any earlier batch for the date.
// Concurrent saves on the same date are last-write-wins.
func (c *Cache) Save(ctx context.Context, batch []model.ProcessedArticle) []model.StagedArticle {
	if !c.alive(ctx) {
		return nil
	}

	staged := make([]model.StagedArticle, 0, len(batch))
	for _, article := range batch {
		staged = append(staged, model.StagedArticle{
			ID:       uuid.NewString(),
			Title:    article.Title,
			Abstract: article.Abstract,
			Content:  article.Content,
			Tags:     article.Tags,
			ImageURL: article.ImageURL,
		})
	}

	if !c.write(ctx, staged) {
		return nil
	}

	slog.Info("staged batch saved", "count", len(staged), "key", c.key())
	return staged
}

// GetAll returns today's staged batch. A missing key, expired key, backend
// error, or undecodable value all degrade to an empty list.
func (c *Cache) GetAll(ctx context.Context) []model.StagedArticle {
	if !c.alive(ctx) {
		return []model.StagedArticle{}
	}

	raw, err := c.backend.Get(ctx, c.key())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Error("error reading staged batch", "error", err)
		}
		return []model.StagedArticle{}
	}

	var staged []model.StagedArticle
	if err := json.Unmarshal([]byte(raw), &staged); err != nil {
		slog.Error("error decoding staged batch", "error", err)
		return []model.StagedArticle{}
	}

	return staged
}

// DeleteOne removes the item with the given id by rewriting the whole batch
// value and re-applying the expiry. Returns whether anything was removed.
// Concurrent deletes on the same date key race; last write wins.
func (c *Cache) DeleteOne(ctx context.Context, id string) bool {
	if !c.alive(ctx) {
		return false
	}

	staged := c.GetAll(ctx)
	if len(staged) == 0 {
		return false
	}

	remaining := make([]model.StagedArticle, 0, len(staged))
	for _, article := range staged {
		if article.ID != id {
			remaining = append(remaining, article)
		}
	}

	if len(remaining) == len(staged) {
		return false
	}

	return c.write(ctx, remaining)
}

func (c *Cache) write(ctx context.Context, staged []model.StagedArticle) bool {
	payload, err := json.Marshal(staged)
	if err != nil {
		slog.Error("error encoding staged batch", "error", err)
		return false
	}

	if err := c.backend.SetWithTTL(ctx, c.key(), string(payload), batchTTL); err != nil {
		slog.Error("error writing staged batch", "error", err)
		return false
	}

	return true
}

func (c *Cache) alive(ctx context.Context) bool {
	if err := c.backend.Ping(ctx); err != nil {
		slog.Error("staging cache unavailable", "error", err)
		return false
	}
	return true
}
