package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"technews/db"
	"technews/internal/config"
	"technews/internal/pipeline"
	"technews/internal/scheduler"
	"technews/internal/staging"
	"technews/pkg/extract"
	"technews/pkg/llm"
	"technews/pkg/news"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	rdb, err := db.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer rdb.Close()

	var rewriter llm.Rewriter
	if cfg.LLMProvider == "anthropic" {
		rewriter = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	} else {
		rewriter = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	}

	feed := news.NewNewsAPIClient(cfg.NewsAPIKey)
	orchestrator := pipeline.NewOrchestrator(feed, extract.NewExtractor(nil), rewriter)
	cache := staging.NewCache(staging.NewRedisBackend(rdb))

	job := func(ctx context.Context) {
		processed := orchestrator.RunBatch(ctx)
		staged := cache.Save(ctx, processed)
		slog.Info("ingestion batch staged", "processed", len(processed), "staged", len(staged))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RunOnce {
		job(ctx)
		return
	}

	scheduler.New(cfg.FetchHourUTC, cfg.FetchMinuteUTC, job).Run(ctx)
}
