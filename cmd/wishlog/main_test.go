package main

import (
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"

	"github.com/mihoyo-tools/genshin-stats-client/pkg/models"
)

func TestEnvConfigDefaults(t *testing.T) {
	t.Setenv("GSTATS_AUTHKEY", "test-authkey")

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("Failed to parse env: %v", err)
	}

	if cfg.AuthKey != "test-authkey" {
		t.Errorf("Unexpected authkey: %q", cfg.AuthKey)
	}
	if cfg.Lang != "en-us" {
		t.Errorf("Expected default lang en-us, got %q", cfg.Lang)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected default log level warn, got %q", cfg.LogLevel)
	}
	if !cfg.LogPretty {
		t.Error("Expected pretty logging by default")
	}
}

func TestEnvConfigOverrides(t *testing.T) {
	t.Setenv("GSTATS_AUTHKEY", "test-authkey")
	t.Setenv("GSTATS_LANG", "ja-jp")
	t.Setenv("GSTATS_REDIS_ADDR", "localhost:6379")
	t.Setenv("GSTATS_CHINESE", "true")

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("Failed to parse env: %v", err)
	}

	if cfg.Lang != "ja-jp" {
		t.Errorf("Unexpected lang: %q", cfg.Lang)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("Unexpected redis addr: %q", cfg.RedisAddr)
	}
	if !cfg.Chinese {
		t.Error("Expected chinese region flag to be set")
	}
}

func TestFormatWish(t *testing.T) {
	var wish models.Wish
	wish.ID = 1000
	wish.BannerType = 301
	wish.Name = "Sacrificial Sword"
	wish.ItemType = "Weapon"
	wish.Rarity = 4

	names := map[int]string{301: "Character Event Wish"}

	line := formatWish(wish, names)
	if !strings.Contains(line, "Sacrificial Sword") {
		t.Errorf("Expected item name in %q", line)
	}
	if !strings.Contains(line, "****") {
		t.Errorf("Expected four stars in %q", line)
	}
	if !strings.Contains(line, "Character Event Wish") {
		t.Errorf("Expected banner name in %q", line)
	}
}

func TestFormatWish_UnknownBanner(t *testing.T) {
	var wish models.Wish
	wish.BannerType = 400
	wish.Name = "Mystery Item"

	line := formatWish(wish, map[int]string{})
	if !strings.Contains(line, "banner 400") {
		t.Errorf("Expected numeric fallback in %q", line)
	}
}
