// Vital Quest API
//
// REST API that turns daily activity into recovery scores, battle points and
// RPG progression.
//
//	@title			Vital Quest API
//	@version		1.0
//	@description	Score daily activity into recovery, battle points, XP, levels and RPG classes.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	Player management endpoints
//
//	@tag.name			daily-logs
//	@tag.description	Raw daily activity ingestion
//
//	@tag.name			scores
//	@tag.description	Recovery, battle points and weekly statistics
//
//	@tag.name			progression
//	@tag.description	XP, levels, attributes and class
//
//	@tag.name			battles
//	@tag.description	Team-vs-team contests
//
//	@tag.name			coach
//	@tag.description	AI coach advice and ratings
//
//	@tag.name			leaderboards
//	@tag.description	Player rankings by level and XP
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/vital-quest/internal/aggregator"
	"github.com/blaisecz/vital-quest/internal/api"
	"github.com/blaisecz/vital-quest/internal/api/handler"
	"github.com/blaisecz/vital-quest/internal/config"
	"github.com/blaisecz/vital-quest/internal/engine"
	"github.com/blaisecz/vital-quest/internal/events"
	"github.com/blaisecz/vital-quest/internal/langfuse"
	"github.com/blaisecz/vital-quest/internal/llm"
	"github.com/blaisecz/vital-quest/internal/repository"
	"github.com/blaisecz/vital-quest/internal/seed"
	"github.com/blaisecz/vital-quest/internal/service"
	"github.com/blaisecz/vital-quest/internal/telemetry"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	formula, err := engine.ParseRecoveryFormula(cfg.RecoveryFormula)
	if err != nil {
		log.Fatalf("Invalid RECOVERY_FORMULA: %v", err)
	}

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "vital-quest-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(ctx, db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	dailyLogRepo := repository.NewDailyLogRepository(db)
	battleRepo := repository.NewBattleRepository(db)

	// Event delivery (no-op without brokers)
	publisher, publisherCloser := events.New(cfg.KafkaBrokers)
	if publisherCloser == nil {
		log.Println("Warning: KAFKA_BROKERS not configured, level-up and battle events are dropped")
	}

	// Battle aggregation
	driver := aggregator.NewDriver(battleRepo, dailyLogRepo,
		aggregator.WithInterval(cfg.AggregationInterval),
		aggregator.WithContestTimeout(cfg.AggregationContestTimeout),
		aggregator.WithConcurrency(cfg.AggregationConcurrency),
		aggregator.WithPublisher(publisher),
	)
	if cfg.AggregationEnabled {
		go driver.Start(ctx)
	}

	// Coach LLM (unavailable without an API key)
	var coachLLM llm.CoachLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel); client != nil {
		coachLLM = client
	} else {
		log.Println("Warning: OpenAI API key not configured, coach endpoint will be unavailable")
	}

	traces := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.OTelEnv,
	})

	// Initialize services
	userService := service.NewUserService(userRepo)
	dailyLogService := service.NewDailyLogService(dailyLogRepo, userRepo)
	scoringService := service.NewScoringService(dailyLogRepo, userRepo, formula)
	progressionService := service.NewProgressionService(dailyLogRepo, userRepo, publisher, formula)
	battleService := service.NewBattleService(battleRepo, driver)
	coachService := service.NewCoachService(dailyLogRepo, userRepo, coachLLM, traces, formula)

	// Initialize handlers
	router := api.NewRouter(
		handler.NewUserHandler(userService),
		handler.NewDailyLogHandler(dailyLogService),
		handler.NewScoreHandler(scoringService),
		handler.NewProgressionHandler(progressionService),
		handler.NewBattleHandler(battleService),
		handler.NewCoachHandler(coachService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s (recovery formula %s)", srv.Addr, formula)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	if cfg.AggregationEnabled {
		driver.Wait()
	}
	if publisherCloser != nil {
		if err := publisherCloser.Close(); err != nil {
			log.Printf("Closing event publisher: %v", err)
		}
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown: %v", err)
	}
	log.Println("Shutdown complete")
}
