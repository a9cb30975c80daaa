package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Port)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage, got %q", cfg.StorageDriver)
	}
	if cfg.AuthDelay != time.Second || cfg.PageDelay != 500*time.Millisecond {
		t.Fatalf("unexpected delays %s %s", cfg.AuthDelay, cfg.PageDelay)
	}
	if cfg.ReminderLead != time.Hour || cfg.ReminderIcon != "/js/logo.png" {
		t.Fatalf("unexpected reminder defaults %s %q", cfg.ReminderLead, cfg.ReminderIcon)
	}
	if cfg.CatalogSource != "embedded" || cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("unexpected catalog/session defaults %q %s", cfg.CatalogSource, cfg.SessionTTL)
	}
	if cfg.ObjectStorageEnabled() {
		t.Fatalf("expected object storage disabled by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "REDIS")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("AUTH_DELAY", "0s")
	t.Setenv("ALLOW_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_ACCESS_KEY", "key")
	t.Setenv("MINIO_SECRET_KEY", "secret")

	cfg := Load()
	if cfg.Port != "9000" || cfg.StorageDriver != StorageRedis || cfg.RedisAddr != "redis:6379" {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.AuthDelay != 0 {
		t.Fatalf("expected zero auth delay, got %s", cfg.AuthDelay)
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.AllowOrigins)
	}
	if !cfg.ObjectStorageEnabled() {
		t.Fatalf("expected object storage enabled")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PAGE_DELAY", "soon")
	t.Setenv("DESTINATION_IMAGE_MAX_BYTES", "-1")
	t.Setenv("DESTINATION_IMAGE_MAX_DIMENSION", "big")
	t.Setenv("STORAGE_DRIVER", "cassandra")

	cfg := Load()
	if cfg.PageDelay != 500*time.Millisecond {
		t.Fatalf("expected fallback page delay, got %s", cfg.PageDelay)
	}
	if cfg.DestinationImageMaxBytes != 5*1024*1024 || cfg.DestinationImageMaxDimension != 3840 {
		t.Fatalf("unexpected image limits %d %d", cfg.DestinationImageMaxBytes, cfg.DestinationImageMaxDimension)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory fallback, got %q", cfg.StorageDriver)
	}
}

func TestLoadPanicsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing DATABASE_URL")
		}
	}()
	Load()
}

func TestEventLocationFallback(t *testing.T) {
	cfg := Config{EventTimezone: "Mars/Olympus"}
	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, cfg.EventLocation()).Zone()
	if offset != -5*60*60 {
		t.Fatalf("expected UTC-5 fallback, got %d", offset)
	}
}
