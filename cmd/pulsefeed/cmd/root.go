package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pulsefeed/pulsefeed/internal/aggregate"
	"github.com/pulsefeed/pulsefeed/internal/blog"
	"github.com/pulsefeed/pulsefeed/internal/config"
	"github.com/pulsefeed/pulsefeed/internal/digest"
	"github.com/pulsefeed/pulsefeed/internal/fetcher"
	"github.com/pulsefeed/pulsefeed/internal/format"
	"github.com/pulsefeed/pulsefeed/internal/scrape"
	"github.com/pulsefeed/pulsefeed/internal/state"
	"github.com/pulsefeed/pulsefeed/internal/static"
	"github.com/pulsefeed/pulsefeed/internal/store"
	"github.com/pulsefeed/pulsefeed/pkg/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	cfg     config.Config
)

// GetConfig returns the loaded configuration.
func GetConfig() config.Config {
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "pulsefeed",
	Short: "PulseFeed: an AI-news content aggregator",
	Long: `PulseFeed pulls AI news, videos, jobs and research from live feeds,
merges them with curated content sets, and renders dated digests.

Commands:
  digest     Build the digest for a date
  fetch      Aggregate all sources and report what came back
  search     Search previously indexed items
  tools      List the AI tool directory
  subscribe  Sign an address up for the newsletter
  bookmark   Bookmark items for later
  serve      Start the MCP server`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func initConfig() {
	// Start with defaults
	cfg = config.Defaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/pulsefeed")
		viper.AddConfigPath(".")
	}

	// Environment variable overrides
	// PULSEFEED_STORE_ADDRESSES -> store.addresses
	viper.SetEnvPrefix("PULSEFEED")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Explicitly bind nested env vars
	viper.BindEnv("translator.endpoint", "PULSEFEED_TRANSLATOR_ENDPOINT")
	viper.BindEnv("leaderboard.endpoint", "PULSEFEED_LEADERBOARD_ENDPOINT")
	viper.BindEnv("fetch.timeout", "PULSEFEED_FETCH_TIMEOUT")
	viper.BindEnv("fetch.per_source_cap", "PULSEFEED_FETCH_PER_SOURCE_CAP")
	viper.BindEnv("store.addresses", "PULSEFEED_STORE_ADDRESSES")
	viper.BindEnv("store.index_prefix", "PULSEFEED_STORE_INDEX_PREFIX")
	viper.BindEnv("store.username", "PULSEFEED_STORE_USERNAME")
	viper.BindEnv("store.password", "PULSEFEED_STORE_PASSWORD")
	viper.BindEnv("blog.posts_dir", "PULSEFEED_BLOG_POSTS_DIR")
	viper.BindEnv("blog.base_url", "PULSEFEED_BLOG_BASE_URL")
	viper.BindEnv("enrich.enabled", "PULSEFEED_ENRICH_ENABLED")
	viper.BindEnv("state.path", "PULSEFEED_STATE_PATH")
	viper.BindEnv("mcp.name", "PULSEFEED_MCP_NAME")
	viper.BindEnv("mcp.version", "PULSEFEED_MCP_VERSION")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("config file error", "error", err)
		}
		// No config file - use defaults + env vars
	}

	// Unmarshal into struct (merges config file with defaults)
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Warn("failed to parse config", "error", err)
	}

	// Handle special case: addresses as comma-separated string from env
	if addrs := os.Getenv("PULSEFEED_STORE_ADDRESSES"); addrs != "" {
		cfg.Store.Addresses = strings.Split(addrs, ",")
	}
}

// buildStore creates the hosted query service client, or nil when no
// addresses are configured.
func buildStore(cfg config.Config) (*store.Client, error) {
	return store.New(store.Config{
		Addresses:   cfg.Store.Addresses,
		IndexPrefix: cfg.Store.IndexPrefix,
		Username:    cfg.Store.Username,
		Password:    cfg.Store.Password,
	})
}

// buildFetchers assembles the live fetcher set: one per configured feed
// plus the model leaderboard.
func buildFetchers(cfg config.Config) ([]fetcher.Fetcher, error) {
	translator, err := fetcher.NewTranslatorClient(fetcher.TranslatorConfig{
		Endpoint: cfg.Translator.Endpoint,
		Timeout:  cfg.Translator.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create translator client: %w", err)
	}

	fetchers := make([]fetcher.Fetcher, 0, len(cfg.Feeds)+1)
	for _, feed := range cfg.Feeds {
		kind := models.Source(feed.Source)
		if !kind.Valid() {
			return nil, fmt.Errorf("feed %q has unknown source kind %q (valid: %v)", feed.Name, feed.Source, models.Sources())
		}
		if feed.Direct {
			fetchers = append(fetchers, fetcher.NewRSSFetcher(kind, feed.Name, feed.URL, cfg.Fetch.PerSourceCap))
		} else {
			fetchers = append(fetchers, fetcher.NewFeedFetcher(translator, kind, feed.Name, feed.URL, cfg.Fetch.PerSourceCap))
		}
	}

	fetchers = append(fetchers, fetcher.NewLeaderboardFetcher(fetcher.LeaderboardConfig{
		Endpoint: cfg.Leaderboard.Endpoint,
		Timeout:  cfg.Leaderboard.Timeout,
	}, static.Leaderboard(), cfg.Fetch.PerSourceCap))

	return fetchers, nil
}

// buildAggregator wires fetchers, curated sets and the blog loader.
func buildAggregator(cfg config.Config) (*aggregate.Aggregator, error) {
	fetchers, err := buildFetchers(cfg)
	if err != nil {
		return nil, err
	}

	var posts aggregate.PostLoader
	if cfg.Blog.PostsDir != "" {
		posts = blog.NewLoader(cfg.Blog.PostsDir, cfg.Blog.BaseURL)
	}

	return aggregate.New(aggregate.Config{
		FetchTimeout: cfg.Fetch.Timeout,
	}, fetchers, static.ByKind(), posts), nil
}

// buildPipeline wires the full digest pipeline from configuration.
func buildPipeline(cfg config.Config) (*digest.Pipeline, error) {
	aggregator, err := buildAggregator(cfg)
	if err != nil {
		return nil, err
	}

	formatter := format.New(format.Config{
		ShortLimit:   cfg.Format.ShortLimit,
		CallToAction: cfg.Format.CallToAction,
		Hashtags:     cfg.Format.Hashtags,
	})

	var enricher *scrape.Enricher
	if cfg.Enrich.Enabled {
		enricher = scrape.New(scrape.Config{
			Timeout:   cfg.Enrich.Timeout,
			UserAgent: cfg.Enrich.UserAgent,
		})
	}

	storeClient, err := buildStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create store client: %w", err)
	}

	return digest.New(aggregator, formatter, enricher, storeClient), nil
}

// openState opens the client state store, file-backed when a path is
// configured.
func openState(cfg config.Config) (*state.Store, error) {
	var backend state.Backend = &state.MemoryBackend{}
	if cfg.State.Path != "" {
		backend = &state.FileBackend{Path: cfg.State.Path}
	}
	return state.Open(backend)
}
