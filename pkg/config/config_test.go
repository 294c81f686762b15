package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.ShardCount != 12 {
		t.Errorf("ShardCount = %d, want 12", cfg.Search.ShardCount)
	}
	if cfg.Search.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.Search.TopK)
	}
	if cfg.Search.DefaultPageSize != 5 {
		t.Errorf("DefaultPageSize = %d, want 5", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.StopWords != "" {
		t.Errorf("StopWords = %q, want empty", cfg.Search.StopWords)
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := "search:\n  shardCount: 4\n  topK: 3\n  stopWords: \"и в на\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.ShardCount != 4 {
		t.Errorf("ShardCount = %d, want 4", cfg.Search.ShardCount)
	}
	if cfg.Search.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.Search.TopK)
	}
	if cfg.Search.StopWords != "и в на" {
		t.Errorf("StopWords = %q, want %q", cfg.Search.StopWords, "и в на")
	}
	// Unset fields retain their defaults.
	if cfg.Search.DefaultPageSize != 5 {
		t.Errorf("DefaultPageSize = %d, want default 5", cfg.Search.DefaultPageSize)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SEARCHCORE_SHARD_COUNT", "8")
	t.Setenv("SEARCHCORE_STOP_WORDS", "in the")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.ShardCount != 8 {
		t.Errorf("ShardCount = %d, want 8 from env override", cfg.Search.ShardCount)
	}
	if cfg.Search.StopWords != "in the" {
		t.Errorf("StopWords = %q, want %q from env override", cfg.Search.StopWords, "in the")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
