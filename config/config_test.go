package config

import (
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "12345:testtoken")
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Mode != ModePolling {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModePolling)
	}
	if cfg.DBName != "movie_bot" {
		t.Errorf("DBName = %q, want movie_bot", cfg.DBName)
	}
	if cfg.Port != "10000" {
		t.Errorf("Port = %q, want 10000", cfg.Port)
	}
	if cfg.TMDBBaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDBBaseURL = %q", cfg.TMDBBaseURL)
	}
	if cfg.LogFile != "movie_bot.log" {
		t.Errorf("LogFile = %q, want movie_bot.log", cfg.LogFile)
	}
}

func TestLoadConfig_MissingBotToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing TELEGRAM_BOT_TOKEN")
	}
}

func TestLoadConfig_WebhookModeRequiresURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_MODE", "webhook")
	t.Setenv("WEBHOOK_URL", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for webhook mode without WEBHOOK_URL")
	}

	t.Setenv("WEBHOOK_URL", "https://bot.example.com")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got := cfg.FullWebhookURL(); got != "https://bot.example.com/webhook" {
		t.Errorf("FullWebhookURL = %q", got)
	}
}

func TestLoadConfig_InvalidMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BOT_MODE", "carrier-pigeon")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown BOT_MODE")
	}
}

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "12345", want: []int64{12345}},
		{name: "multiple with spaces", raw: "1, 2,3", want: []int64{1, 2, 3}},
		{name: "trailing comma", raw: "7,", want: []int64{7}},
		{name: "garbage", raw: "1,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAdminIDs(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAdminIDs(%q): %v", tt.raw, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
