package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	GroupID       int64

	PollQuestion string
	PollOptions  []string

	CronSpecOpen  string
	CronSpecClose string
	Timezone      *time.Location

	RadarURL  string
	SentryDSN string
	LogLevel  string
}

const (
	defaultQuestion  = "wanna play?"
	defaultOptions   = "🏀 打,❌ nope"
	defaultCronOpen  = "0 18 * * 0" // Sunday 18:00
	defaultCronClose = "0 7 * * 1"  // Monday 07:00
	defaultTimezone  = "Asia/Taipei"
	defaultRadarURL  = "https://www.cwa.gov.tw/Data/radar/CV1_3600.png"
)

// Load reads configuration from environment variables and a .env file if
// one is present. Existing env variables are never overridden by .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_API_KEY")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_API_KEY is required")
	}

	groupIDStr := os.Getenv("TELEGRAM_GROUP_ID")
	if groupIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_GROUP_ID is required")
	}
	groupID, err := strconv.ParseInt(groupIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("TELEGRAM_GROUP_ID must be a number: %w", err)
	}

	tzName := getenv("TIMEZONE", defaultTimezone)
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tzName, err)
	}

	options := strings.Split(getenv("POLL_OPTIONS", defaultOptions), ",")
	for i := range options {
		options[i] = strings.TrimSpace(options[i])
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("POLL_OPTIONS needs at least two comma-separated options")
	}

	return &Config{
		TelegramToken: token,
		GroupID:       groupID,
		PollQuestion:  getenv("POLL_QUESTION", defaultQuestion),
		PollOptions:   options,
		CronSpecOpen:  getenv("CRON_SPEC_OPEN", defaultCronOpen),
		CronSpecClose: getenv("CRON_SPEC_CLOSE", defaultCronClose),
		Timezone:      loc,
		RadarURL:      getenv("RADAR_URL", defaultRadarURL),
		SentryDSN:     os.Getenv("SENTRY_DSN"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
