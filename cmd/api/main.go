package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/api/router"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/bot"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/classifier"
	appconfig "github.com/DiegoAltamirano13/IA-MARKETING/internal/config"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/directory"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/http/handlers"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/llm"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/nlp"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/observability/metrics"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/services"
	"github.com/DiegoAltamirano13/IA-MARKETING/internal/session"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting almassist API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Session store (Redis)
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)
	sessions := session.NewStore(redisClient, cfg.ConversationTTL, cfg.LocationContextTTL, logger)

	// Operational database (optional)
	var directoryStore *directory.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		directoryStore = directory.NewStore(db, logger)
	} else {
		logger.Warn("DATABASE_URL not set, location lookups use the static roster only")
	}

	// Spell correction service (optional)
	var speller nlp.SpellService = nlp.NopSpeller{}
	if cfg.SpellAPIURL != "" {
		speller = nlp.NewHTTPSpellClient(cfg.SpellAPIURL, cfg.SpellTimeout)
	}
	normalizer := nlp.NewNormalizer(speller, logger)

	// Intent classifier (optional, falls back to keyword responders)
	var intents bot.IntentClassifier
	if cfg.OpenRouterAPIKey != "" {
		primary, err := llm.NewOpenRouterClient(llm.OpenRouterConfig{
			APIURL:  cfg.OpenRouterAPIURL,
			APIKey:  cfg.OpenRouterAPIKey,
			Model:   cfg.OpenRouterModel,
			AppName: cfg.OpenRouterAppName,
			AppURL:  cfg.OpenRouterAppURL,
		})
		if err != nil {
			logger.Error("failed to create openrouter client", "error", err)
			os.Exit(1)
		}

		var client llm.Client = primary
		if cfg.GeminiAPIKey != "" {
			gemini, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModelID)
			if err != nil {
				logger.Error("failed to create gemini client", "error", err)
				os.Exit(1)
			}
			defer gemini.Close()
			client = llm.NewFallbackClient(primary, gemini, logger)
		}

		intents = classifier.NewGateway(client, normalizer, classifier.GatewayConfig{
			Timeout:   cfg.ClassifierTimeout,
			MaxTokens: cfg.ClassifierMaxTokens,
		}, logger)
	} else {
		logger.Warn("OPENROUTER_API_KEY not set, intent classification disabled")
	}

	chatMetrics := metrics.NewChatMetrics(nil)

	locationsResponder := directory.NewResponder(directoryStore, sessions, logger)
	servicesResponder := services.NewResponder(sessions, logger)
	chatRouter := bot.NewRouter(sessions, intents, locationsResponder, servicesResponder, chatMetrics, logger)

	chatHandler := handlers.NewChatHandler(chatRouter, logger)

	r := router.New(&router.Config{
		Logger:         logger,
		ChatHandler:    chatHandler,
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("failed to close redis client", "error", err)
	}

	logger.Info("server exited")
}
