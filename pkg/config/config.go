// Package config loads and validates engine configuration from YAML files
// with environment-variable overrides, grounded on the teacher's
// pkg/config.Load — typed struct, sensible defaults, SP_*-style env
// overrides — scaled down to the settings this single in-process engine
// actually has: stop-word source, shard count, default page size, and
// top-K result cap.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EngineConfig is the top-level configuration for a search core instance.
type EngineConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Search  SearchConfig  `yaml:"search"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SearchConfig controls the retrieval engine's structural constants.
//
// The rolling request-statistics window's FIFO capacity (spec.md §4.10) is
// deliberately absent here: spec.md §9 calls it out as "a fixed design
// constant, not a tunable," so it stays a package constant
// (requestlog.Capacity) rather than a config field that would invite
// changing it.
type SearchConfig struct {
	// StopWords is the ASCII-space-separated stop-word text passed to
	// searchcore.NewFromText. See spec.md §3/§6.
	StopWords string `yaml:"stopWords"`
	// ShardCount is the number of shards in the concurrent accumulator
	// used by the parallel retrieval path. See spec.md §4.2.
	ShardCount int `yaml:"shardCount"`
	// TopK is the maximum number of documents FindTopDocuments returns.
	// See spec.md §4.5.
	TopK int `yaml:"topK"`
	// DefaultPageSize is the page size used by demonstration callers that
	// don't specify one explicitly. See spec.md §4.9.
	DefaultPageSize int `yaml:"defaultPageSize"`
}

// Load reads a YAML config file (if path is non-empty) and applies
// environment-variable overrides, returning a config populated with
// defaults for anything unset.
func Load(path string) (*EngineConfig, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *EngineConfig {
	return &EngineConfig{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Search: SearchConfig{
			StopWords:       "",
			ShardCount:      12,
			TopK:            5,
			DefaultPageSize: 5,
		},
	}
}

// applyEnvOverrides reads SEARCHCORE_* environment variables and overrides
// the corresponding config fields.
func applyEnvOverrides(cfg *EngineConfig) {
	if v := os.Getenv("SEARCHCORE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SEARCHCORE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SEARCHCORE_STOP_WORDS"); v != "" {
		cfg.Search.StopWords = v
	}
	if v := os.Getenv("SEARCHCORE_SHARD_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.ShardCount = n
		}
	}
	if v := os.Getenv("SEARCHCORE_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.TopK = n
		}
	}
}
