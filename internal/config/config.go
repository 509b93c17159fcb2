package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	USGSBaseURL     string
	USGSTimeout     time.Duration
	CacheEnabled    bool
	CacheSize       int
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Feed poller configuration.
	KafkaBrokers     []string
	KafkaSinkTopic   string
	PollInterval     time.Duration
	PollMinMagnitude float64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	usgsTimeoutStr := sharedcfg.EnvOrDefault("USGS_TIMEOUT", "10s")
	usgsTimeout, err := time.ParseDuration(usgsTimeoutStr)
	if err != nil || usgsTimeout <= 0 {
		return nil, errors.New("invalid USGS_TIMEOUT")
	}

	pollIntervalStr := sharedcfg.EnvOrDefault("POLL_INTERVAL", "5m")
	pollInterval, err := time.ParseDuration(pollIntervalStr)
	if err != nil || pollInterval <= 0 {
		return nil, errors.New("invalid POLL_INTERVAL")
	}

	pollMinMagStr := sharedcfg.EnvOrDefault("POLL_MIN_MAGNITUDE", "4.5")
	pollMinMag, err := strconv.ParseFloat(pollMinMagStr, 64)
	if err != nil || pollMinMag < -1 || pollMinMag > 10 {
		return nil, errors.New("invalid POLL_MIN_MAGNITUDE")
	}

	cacheEnabled := true
	if v := os.Getenv("USGS_CACHE_ENABLED"); v != "" {
		cacheEnabled = v == "true"
	}

	cfg := &Config{
		USGSBaseURL:     sharedcfg.EnvOrDefault("USGS_BASE_URL", "https://earthquake.usgs.gov/fdsnws/event/1/query"),
		USGSTimeout:     usgsTimeout,
		CacheEnabled:    cacheEnabled,
		CacheSize:       parseCacheSize(),
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers:     sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:   sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "quake-event-rows"),
		PollInterval:     pollInterval,
		PollMinMagnitude: pollMinMag,
	}

	if cfg.USGSBaseURL == "" {
		return nil, errors.New("USGS_BASE_URL is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}
	if cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_SINK_TOPIC is required")
	}

	return cfg, nil
}

func parseCacheSize() int {
	if s := os.Getenv("USGS_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 256
}
