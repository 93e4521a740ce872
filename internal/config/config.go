package config

import "time"

// Config holds all application configuration.
type Config struct {
	Translator  Translator  `mapstructure:"translator"`
	Leaderboard Leaderboard `mapstructure:"leaderboard"`
	Fetch       Fetch       `mapstructure:"fetch"`
	Store       Store       `mapstructure:"store"`
	Blog        Blog        `mapstructure:"blog"`
	Format      Format      `mapstructure:"format"`
	Enrich      Enrich      `mapstructure:"enrich"`
	State       State       `mapstructure:"state"`
	MCP         MCP         `mapstructure:"mcp"`
	Feeds       []Feed      `mapstructure:"feeds"`
}

// Translator holds the feed-to-JSON translation endpoint configuration.
type Translator struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Leaderboard holds the model-leaderboard endpoint configuration.
// An empty endpoint means the locally simulated snapshot is used.
type Leaderboard struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Fetch holds aggregation-wide fetch behavior.
type Fetch struct {
	Timeout      time.Duration `mapstructure:"timeout"`        // per-fetcher deadline
	PerSourceCap int           `mapstructure:"per_source_cap"` // max records kept per fetcher
}

// Store holds the hosted query service configuration. An empty address
// list means the service is not configured and every consumer falls back
// to static/local behavior.
type Store struct {
	Addresses   []string `mapstructure:"addresses"`
	IndexPrefix string   `mapstructure:"index_prefix"`
	Username    string   `mapstructure:"username"`
	Password    string   `mapstructure:"password"`
}

// Blog holds the markdown post loader configuration.
type Blog struct {
	PostsDir string `mapstructure:"posts_dir"`
	BaseURL  string `mapstructure:"base_url"` // public URL prefix for post links
}

// Format holds digest formatting configuration.
type Format struct {
	ShortLimit   int    `mapstructure:"short_limit"` // items in the short digest
	CallToAction string `mapstructure:"call_to_action"`
	Hashtags     string `mapstructure:"hashtags"`
}

// Enrich holds article-page enrichment configuration.
type Enrich struct {
	Enabled   bool          `mapstructure:"enabled"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// State holds the client state store configuration.
type State struct {
	Path string `mapstructure:"path"` // JSON file path; empty keeps state in memory
}

// MCP holds MCP server configuration.
type MCP struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// Feed describes one live source: a syndication feed pulled through the
// translation endpoint, or parsed directly as RSS.
type Feed struct {
	Name   string `mapstructure:"name"`
	URL    string `mapstructure:"url"`
	Source string `mapstructure:"source"` // source kind the feed contributes to
	Direct bool   `mapstructure:"direct"` // parse as RSS instead of using the translator
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Translator: Translator{
			Endpoint: "https://api.rss2json.com/v1/api.json",
			Timeout:  10 * time.Second,
		},
		Leaderboard: Leaderboard{
			Endpoint: "", // Empty uses the simulated snapshot
			Timeout:  10 * time.Second,
		},
		Fetch: Fetch{
			Timeout:      10 * time.Second,
			PerSourceCap: 5,
		},
		Store: Store{
			IndexPrefix: "pulsefeed",
		},
		Blog: Blog{
			PostsDir: "./posts",
			BaseURL:  "https://pulsefeed.dev/blog",
		},
		Format: Format{
			ShortLimit:   3,
			CallToAction: "Full digest at pulsefeed.dev",
			Hashtags:     "#AI #MachineLearning #AINews",
		},
		Enrich: Enrich{
			Enabled:   false, // Opt-in, hits every article page
			Timeout:   15 * time.Second,
			UserAgent: "pulsefeed/1.0",
		},
		MCP: MCP{
			Name:    "pulsefeed",
			Version: "1.0.0",
		},
	}
}
