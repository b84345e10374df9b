package tasks

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/JaydeCohenDev/folklore-hunter-news/app/content"
	"github.com/JaydeCohenDev/folklore-hunter-news/app/feed"
	"github.com/JaydeCohenDev/folklore-hunter-news/app/site"
)

// Published artifact names, written side by side so index.html can fetch
// news.json with a same-directory relative request.
const (
	ArtifactJSON  = "news.json"
	ArtifactEmbed = "embed.html"
	ArtifactIndex = "index.html"
)

const defaultSiteTitle = "Folklore Hunter News"

// PublishSiteTask is the whole batch run: fetch the feed, normalize the
// items, render all three artifacts in memory, then publish them
// atomically. Any failure before the write stage leaves the previous
// output untouched.
type PublishSiteTask struct {
	Task
	feedURL  string
	fetcher  *feed.Fetcher
	parser   *feed.Parser
	builder  *content.Builder
	renderer *site.Renderer
	writer   *site.Writer
}

func NewPublishSiteTask(feedURL string, fetcher *feed.Fetcher, parser *feed.Parser,
	builder *content.Builder, renderer *site.Renderer, writer *site.Writer) *PublishSiteTask {
	return &PublishSiteTask{
		Task:     NewTask(TaskTypePublishSite),
		feedURL:  feedURL,
		fetcher:  fetcher,
		parser:   parser,
		builder:  builder,
		renderer: renderer,
		writer:   writer,
	}
}

func (t *PublishSiteTask) Execute(ctx context.Context) error {
	t.Start()

	data, err := t.fetcher.Run(ctx, t.feedURL)
	if err != nil {
		return fmt.Errorf("failed to fetch feed: %w", err)
	}

	metadata, items, err := t.parser.Run(data)
	if err != nil {
		return fmt.Errorf("failed to parse feed: %w", err)
	}

	articles := t.builder.Run(items)

	newsJSON, err := t.renderer.RunJSON(articles)
	if err != nil {
		return fmt.Errorf("failed to render JSON artifact: %w", err)
	}

	title := cmp.Or(metadata.Title, defaultSiteTitle)

	// Pages publish before the JSON they fetch, so a rename failure
	// partway never leaves new data paired with stale pages.
	artifacts := []site.Artifact{
		{Name: ArtifactEmbed, Data: t.renderer.RunEmbed(title, articles)},
		{Name: ArtifactIndex, Data: t.renderer.RunIndex(title)},
		{Name: ArtifactJSON, Data: newsJSON},
	}

	if err := t.writer.Run(artifacts); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	slog.Info("Task completed",
		"type", t.GetType(),
		"duration", t.GetDuration(),
		"total", len(items),
		"published", len(articles))

	return nil
}
