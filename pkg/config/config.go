package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	FirebaseProjectID   string
	FirebaseCredentials string
	TasksCollection     string
	DoubtsCollection    string
	MarkerDBPath        string

	// Weekly reset trigger: weekday + HH:MM evaluated in Timezone.
	ResetWeekday       time.Weekday
	ResetTime          string
	ResetCheckInterval time.Duration
	Timezone           *time.Location
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	tz := getEnv("TIMEZONE", "America/Sao_Paulo")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}

	// 0 = Sunday ... 6 = Saturday. Default is Wednesday midnight.
	weekday := 3
	if raw := os.Getenv("RESET_WEEKDAY"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 6 {
			return nil, fmt.Errorf("invalid RESET_WEEKDAY %q", raw)
		}
		weekday = parsed
	}

	interval := time.Minute
	if raw := os.Getenv("RESET_CHECK_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid RESET_CHECK_INTERVAL %q", raw)
		}
		interval = parsed
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		FirebaseProjectID:   getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		TasksCollection:     getEnv("TASKS_COLLECTION", "tasks"),
		DoubtsCollection:    getEnv("DOUBTS_COLLECTION", "doubts"),
		MarkerDBPath:        getEnv("MARKER_DB_PATH", "data/reset_markers.db"),
		ResetWeekday:        time.Weekday(weekday),
		ResetTime:           getEnv("RESET_TIME", "00:00"),
		ResetCheckInterval:  interval,
		Timezone:            loc,
	}

	if cfg.FirebaseProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
