package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/JaydeCohenDev/folklore-hunter-news/app/cfg"
	"github.com/JaydeCohenDev/folklore-hunter-news/app/content"
	"github.com/JaydeCohenDev/folklore-hunter-news/app/feed"
	"github.com/JaydeCohenDev/folklore-hunter-news/app/site"
	"github.com/JaydeCohenDev/folklore-hunter-news/app/tasks"
)

func main() {
	// Optional .env file for local runs; the scheduler environment sets
	// real variables directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appCfg.Debug)

	slog.Info("Starting news publish run",
		"version", appCfg.Version,
		"feed_url", appCfg.FeedURL,
		"output_dir", appCfg.OutputDir)

	if err := run(appCfg); err != nil {
		slog.Error("Publish run failed", "error", err)
		os.Exit(1)
	}
}

func run(appCfg *cfg.Cfg) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	policy, err := content.LoadPolicy(appCfg.PolicyFile)
	if err != nil {
		return err
	}

	fetcher := feed.NewFetcher(&http.Client{}, appCfg.UserAgent,
		time.Duration(appCfg.Timeout)*time.Second)
	parser := feed.NewParser()
	normalizer := content.NewNormalizer(content.NewSanitizer(policy))
	builder := content.NewBuilder(normalizer, appCfg.MaxArticles)
	renderer := site.NewRenderer()
	writer := site.NewWriter(appCfg.OutputDir)

	task := tasks.NewPublishSiteTask(appCfg.FeedURL, fetcher, parser, builder, renderer, writer)

	return task.Execute(ctx)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
