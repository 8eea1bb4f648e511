package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Policy files
	SourcesPath    string
	SettingsPath   string
	IndustriesPath string
	ClientsPath    string

	// Snapshot files
	OutputPath         string
	PreviousDigestPath string // defaults to OutputPath

	// Fetch settings
	FetchTimeout       time.Duration
	FetchConcurrency   int
	FetchRatePerSecond float64 // 0 = unlimited

	// Output shaping
	SummaryMaxRunes int
	PreviewCount    int // daily articles printed after a run; 0 disables

	// Scheduling
	Schedule string // cron expression; empty = run once
	Timezone string

	// Gemini settings (optional briefing)
	GeminiAPIKey string
	GeminiModel  string

	// Telegram settings (optional publication)
	TelegramToken  string
	TelegramChatID string

	// App settings
	Debug                bool
	EnableHTTPMonitoring bool
	MonitoringPort       string
	RetryAttempts        int
	RetryDelay           time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		SourcesPath:      "configs/sources.json",
		SettingsPath:     "configs/settings.json",
		IndustriesPath:   "configs/industries.json",
		ClientsPath:      "configs/clients.json",
		OutputPath:       "web/public/data/digest.json",
		FetchTimeout:     20 * time.Second,
		FetchConcurrency: 8,
		SummaryMaxRunes:  280,
		PreviewCount:     2,
		Timezone:         "UTC",
		GeminiModel:      "gemini-1.5-flash",
		MonitoringPort:   "8080",
		RetryAttempts:    3,
		RetryDelay:       2 * time.Second,
	}

	cfg.SourcesPath = getEnvOrDefault("SOURCES_PATH", cfg.SourcesPath)
	cfg.SettingsPath = getEnvOrDefault("SETTINGS_PATH", cfg.SettingsPath)
	cfg.IndustriesPath = getEnvOrDefault("INDUSTRIES_PATH", cfg.IndustriesPath)
	cfg.ClientsPath = getEnvOrDefault("CLIENTS_PATH", cfg.ClientsPath)
	cfg.OutputPath = getEnvOrDefault("OUTPUT_PATH", cfg.OutputPath)
	cfg.PreviousDigestPath = getEnvOrDefault("PREVIOUS_DIGEST_PATH", cfg.OutputPath)

	if v := os.Getenv("FETCH_TIMEOUT_SECONDS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchTimeout = time.Duration(val) * time.Second
		}
	}
	if v := os.Getenv("FETCH_CONCURRENCY"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.FetchConcurrency = val
		}
	}
	if v := os.Getenv("FETCH_RATE_PER_SECOND"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val >= 0 {
			cfg.FetchRatePerSecond = val
		}
	}
	if v := os.Getenv("SUMMARY_MAX_RUNES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.SummaryMaxRunes = val
		}
	}
	cfg.PreviewCount = getEnvIntOrDefault("PREVIEW_COUNT", cfg.PreviewCount)

	cfg.Schedule = os.Getenv("SCHEDULE")
	cfg.Timezone = getEnvOrDefault("TIMEZONE", cfg.Timezone)

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.GeminiModel = getEnvOrDefault("GEMINI_MODEL", cfg.GeminiModel)
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}
	if mon := os.Getenv("ENABLE_HTTP_MONITORING"); mon == "true" {
		cfg.EnableHTTPMonitoring = true
	}
	cfg.MonitoringPort = getEnvOrDefault("MONITORING_PORT", cfg.MonitoringPort)

	return cfg, cfg.Validate()
}

// TelegramEnabled reports whether both Telegram credentials are set.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != ""
}

// GeminiEnabled reports whether a Gemini key is set.
func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.SourcesPath == "" {
		return fmt.Errorf("SOURCES_PATH is required")
	}
	if c.SettingsPath == "" {
		return fmt.Errorf("SETTINGS_PATH is required")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}
	if c.PreviewCount < 0 {
		return fmt.Errorf("PREVIEW_COUNT must not be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == "") {
		return fmt.Errorf("TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}
