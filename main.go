package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"movie-bot-backend/config"
	"movie-bot-backend/controllers"
	"movie-bot-backend/data_access"
	"movie-bot-backend/logger"
	"movie-bot-backend/middleware"
	"movie-bot-backend/services"
	"movie-bot-backend/telegram"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logg := logger.Setup(cfg.LogLevel, cfg.LogFile)
	logg.Info().Str("env", cfg.Env).Str("mode", cfg.Mode).Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("Failed to create indexes")
	}

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	searchRepo := data_access.NewSearchRepository(mongodb)
	favoriteRepo := data_access.NewFavoriteRepository(mongodb)
	adminRepo := data_access.NewAdminRepository(mongodb)

	tmdbClient := data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL, logg)

	// Initialize services
	movieService := services.NewMovieService(tmdbClient, logg)
	userService := services.NewUserService(userRepo, searchRepo, favoriteRepo, adminRepo, cfg.AdminIDs, logg)

	if err := userService.SeedAdmins(ctx); err != nil {
		logg.Error().Err(err).Msg("Failed to seed admins")
	}

	botClient := telegram.NewClient(cfg.BotToken, logg)
	me, err := botClient.GetMe(ctx)
	if err != nil {
		logg.Fatal().Err(err).Msg("Failed to verify bot token")
	}
	logg.Info().Str("username", me.Username).Msg("Bot authorized")

	botController := controllers.NewBotController(botClient, movieService, userService, logg)

	switch cfg.Mode {
	case config.ModeWebhook:
		runWebhook(ctx, cfg, botClient, botController, logg)
	default:
		runPolling(ctx, botClient, botController, logg)
	}
}

// runWebhook registers the webhook with Telegram and serves update
// deliveries over HTTP until the context is cancelled.
func runWebhook(ctx context.Context, cfg *config.Config, bot *telegram.Client, botController *controllers.BotController, logg zerolog.Logger) {
	if err := bot.SetWebhook(ctx, cfg.FullWebhookURL(), cfg.WebhookSecret); err != nil {
		logg.Fatal().Err(err).Msg("Failed to register webhook")
	}
	logg.Info().Str("url", cfg.FullWebhookURL()).Msg("Webhook registered")

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	webhookController := controllers.NewWebhookController(ctx, botController, logg)

	r := gin.Default()
	r.GET("/healthz", webhookController.Healthz)

	webhook := r.Group(config.WebhookPath)
	webhook.Use(middleware.WebhookAuth(cfg.WebhookSecret))
	webhook.POST("", webhookController.HandleUpdate)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logg.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	logg.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Fatal().Err(err).Msg("Server failed")
	}
	logg.Info().Msg("Shutting down")
}

// runPolling clears any registered webhook and long-polls for updates
// until the context is cancelled.
func runPolling(ctx context.Context, bot *telegram.Client, botController *controllers.BotController, logg zerolog.Logger) {
	if err := bot.DeleteWebhook(ctx, false); err != nil {
		logg.Warn().Err(err).Msg("Failed to delete webhook before polling")
	}

	poller := telegram.NewPoller(bot, botController.HandleUpdate, logg)
	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Fatal().Err(err).Msg("Polling failed")
	}
	logg.Info().Msg("Shutting down")
}
