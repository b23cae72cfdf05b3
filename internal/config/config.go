package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BotToken       string
	OwnerID        int64
	DataFile       string
	LogLevel       string
	Timezone       string
	ReminderHour   int
	ReminderMinute int

	// Location is the resolved Timezone; all calendar-day math and the
	// reminder firing time use it.
	Location *time.Location
}

func LoadConfig() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	cfg := &Config{
		BotToken: token,
		DataFile: getEnv("DATA_FILE", "user_data.json"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("TIMEZONE", "Asia/Kolkata"),
	}

	var err error
	if cfg.OwnerID, err = parseIntEnv("OWNER_ID", 0); err != nil {
		return nil, err
	}
	hour, err := parseIntEnv("REMINDER_HOUR", 20)
	if err != nil {
		return nil, err
	}
	minute, err := parseIntEnv("REMINDER_MINUTE", 0)
	if err != nil {
		return nil, err
	}
	cfg.ReminderHour = int(hour)
	cfg.ReminderMinute = int(minute)

	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseIntEnv(key string, defaultValue int64) (int64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
