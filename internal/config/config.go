package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// Notification channel endpoint. Empty selects the log publisher.
	NotifyTopicURL string

	// PublishTimeout bounds each outbound HTTP publish call.
	PublishTimeout time.Duration

	// Dispatcher flush cadence and batching.
	NotifyFlushInterval time.Duration
	NotifyBatchSize     int // max events published per flush
	NotifyMaxPending    int // queue capacity (0 = unlimited)

	// Publisher throttling.
	NotifyRateLimit float64 // publishes per second
	NotifyBurst     int
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.NotifyTopicURL = os.Getenv("NOTIFY_TOPIC_URL")

	timeoutStr := getenvDefault("PUBLISH_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PUBLISH_TIMEOUT: %w", err)
	}
	cfg.PublishTimeout = timeout

	// Dispatcher flush cadence: default 30 seconds.
	intervalStr := getenvDefault("NOTIFY_FLUSH_INTERVAL", "30s")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid NOTIFY_FLUSH_INTERVAL: %w", err)
	}
	cfg.NotifyFlushInterval = interval

	cfg.NotifyBatchSize = getenvInt("NOTIFY_BATCH_SIZE", 100)
	cfg.NotifyMaxPending = getenvInt("NOTIFY_MAX_PENDING", 1024)
	cfg.NotifyRateLimit = getenvFloat("NOTIFY_RATE_LIMIT", 5)
	cfg.NotifyBurst = getenvInt("NOTIFY_BURST", 10)

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
