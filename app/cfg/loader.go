package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Feed configuration
	FeedURL     string `long:"feed-url" env:"FEED_URL" default:"https://steamcommunity.com/games/FolkloreHunter/rss/" description:"RSS feed URL to poll"`
	MaxArticles int    `long:"max-articles" env:"MAX_ARTICLES" default:"10" description:"Maximum number of articles to publish"`
	Timeout     int    `long:"timeout" env:"TIMEOUT" default:"30" description:"Feed fetch timeout in seconds"`

	// Output configuration
	OutputDir  string `long:"output-dir" env:"OUTPUT_DIR" default:"./docs" description:"Directory the artifacts are published to"`
	PolicyFile string `long:"policy-file" env:"POLICY_FILE" description:"YAML file overriding the sanitization allow-lists (optional)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedURL:     raw.FeedURL,
		MaxArticles: raw.MaxArticles,
		Timeout:     raw.Timeout,
		OutputDir:   raw.OutputDir,
		PolicyFile:  raw.PolicyFile,
		UserAgent:   cmp.Or(raw.UserAgent, "folklore-hunter-news/"+GetVersion()),
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func (c *Cfg) validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if c.MaxArticles <= 0 {
		return fmt.Errorf("max articles must be a positive integer, got %d", c.MaxArticles)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be a positive integer, got %d", c.Timeout)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
