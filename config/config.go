package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// WebhookPath is the fixed path the webhook server listens on.
const WebhookPath = "/webhook"

// Mode selects how updates are delivered by Telegram.
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

type Config struct {
	// Telegram Configuration
	BotToken      string `validate:"required"`
	AdminIDs      []int64
	Mode          string `validate:"oneof=polling webhook"`
	WebhookURL    string `validate:"required_if=Mode webhook"`
	WebhookSecret string

	// TMDB API Configuration
	TMDBAPIKey  string `validate:"required"`
	TMDBBaseURL string

	// Database Configuration
	MongoURI string `validate:"required"`
	DBName   string

	// Server Configuration
	Port string
	Env  string

	// Logging Configuration
	LogLevel string
	LogFile  string
}

// LoadConfig builds the configuration from environment variables and
// validates that everything the bot cannot run without is present.
func LoadConfig() (*Config, error) {
	adminIDs, err := parseAdminIDs(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		// Telegram Configuration
		BotToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminIDs:      adminIDs,
		Mode:          getEnvOrDefault("BOT_MODE", ModePolling),
		WebhookURL:    os.Getenv("WEBHOOK_URL"),
		WebhookSecret: os.Getenv("WEBHOOK_SECRET"),

		// TMDB API Configuration
		TMDBAPIKey:  os.Getenv("TMDB_API_KEY"),
		TMDBBaseURL: getEnvOrDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3"),

		// Database Configuration
		MongoURI: os.Getenv("MONGODB_URI"),
		DBName:   getEnvOrDefault("DATABASE_NAME", "movie_bot"),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "10000"),
		Env:  getEnvOrDefault("GO_ENV", "development"),

		// Logging Configuration
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		LogFile:  getEnvOrDefault("LOG_FILE", "movie_bot.log"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FullWebhookURL is the externally reachable webhook endpoint registered
// with Telegram.
func (c *Config) FullWebhookURL() string {
	return strings.TrimSuffix(c.WebhookURL, "/") + WebhookPath
}

// parseAdminIDs splits the comma-separated ADMIN_IDS value into Telegram
// user ids, skipping empty tokens.
func parseAdminIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", tok, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
