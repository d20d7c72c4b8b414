package config

import (
	"os"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_API_KEY", "test-token")
	t.Setenv("TELEGRAM_GROUP_ID", "-100123")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TelegramToken != "test-token" {
		t.Errorf("TelegramToken = %q, want %q", cfg.TelegramToken, "test-token")
	}
	if cfg.GroupID != -100123 {
		t.Errorf("GroupID = %d, want %d", cfg.GroupID, -100123)
	}
	if cfg.PollQuestion != "wanna play?" {
		t.Errorf("PollQuestion = %q, want default", cfg.PollQuestion)
	}
	if len(cfg.PollOptions) != 2 || cfg.PollOptions[0] != "🏀 打" || cfg.PollOptions[1] != "❌ nope" {
		t.Errorf("PollOptions = %v, want defaults", cfg.PollOptions)
	}
	if cfg.CronSpecOpen != "0 18 * * 0" || cfg.CronSpecClose != "0 7 * * 1" {
		t.Errorf("cron specs = %q / %q, want defaults", cfg.CronSpecOpen, cfg.CronSpecClose)
	}
	if cfg.Timezone.String() != "Asia/Taipei" {
		t.Errorf("Timezone = %q, want Asia/Taipei", cfg.Timezone.String())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_QUESTION", "badminton tonight?")
	t.Setenv("POLL_OPTIONS", "yes, no , maybe")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PollQuestion != "badminton tonight?" {
		t.Errorf("PollQuestion = %q", cfg.PollQuestion)
	}
	if len(cfg.PollOptions) != 3 || cfg.PollOptions[1] != "no" || cfg.PollOptions[2] != "maybe" {
		t.Errorf("expected trimmed options, got %v", cfg.PollOptions)
	}
	if cfg.Timezone.String() != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Timezone.String())
	}
}

func TestLoad_MissingToken(t *testing.T) {
	os.Unsetenv("TELEGRAM_BOT_API_KEY")
	t.Setenv("TELEGRAM_GROUP_ID", "-100123")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing token")
	}
}

func TestLoad_InvalidGroupID(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_API_KEY", "test-token")
	t.Setenv("TELEGRAM_GROUP_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric group id")
	}
}

func TestLoad_SingleOption(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_OPTIONS", "only-one")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for fewer than two options")
	}
}
