package main

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/club-booking-backend/api"
	"github.com/hanksha/club-booking-backend/auth"
	bk "github.com/hanksha/club-booking-backend/booking"
	"github.com/hanksha/club-booking-backend/catalog"
	"github.com/hanksha/club-booking-backend/clock"
	"github.com/hanksha/club-booking-backend/config"
	"github.com/hanksha/club-booking-backend/discord"
	"github.com/hanksha/club-booking-backend/events"
	"github.com/hanksha/club-booking-backend/sweeper"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

//go:embed database/setup.sql
var setupSQL string

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	if cfg.IsProduction() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
		gin.SetMode(gin.ReleaseMode)
	}

	logger := slog.Default().With("component", "main")

	clk, err := clock.NewFromName(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("connecting to PostgreSQL database")
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

	if err != nil {
		logger.Error("Unable to connect to database", "err", err)
		os.Exit(1)
	}

	defer pool.Close()

	_, err = pool.Exec(ctx, setupSQL)
	if err != nil {
		logger.Error("failed to initialize tables", "err", err)
		os.Exit(1)
	} else {
		logger.Info("initialized database tables")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	taskClient := asynq.NewClient(redisOpt)
	defer taskClient.Close()

	catalogStore := catalog.NewCached(catalog.NewRepository(pool), cfg.CatalogCacheTTL)
	bookingRepo := bk.NewRepository(pool, clk.Location())
	bookingService := bk.NewService(bookingRepo, catalogStore, events.NewPublisher(taskClient), clk)

	// NOTIFICATIONS

	discordClient := discord.NewClient(cfg.DiscordBotToken)
	notifier := events.NewDiscordNotifier(discordClient, cfg.DiscordChannelID, clk.Location())
	worker := events.NewWorker(redisOpt, cfg.WorkerConcurrency, notifier)

	if err := worker.Start(); err != nil {
		logger.Error("failed to start notification worker", "err", err)
		os.Exit(1)
	}

	defer worker.Shutdown()

	// EXPIRY SWEEPER

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	expirySweeper := sweeper.New(bookingService, sweeper.NewRedisLocker(redisClient), cfg.ExpirySweepInterval)
	go expirySweeper.Run(ctx)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// BOOKING API

	apiRouter := r.Group("/api/v1")
	apiRouter.Use(api.RateLimit(cfg.RateLimitPerMinute), api.JWTAuth(auth.NewVerifier(cfg.JWTSecret)))

	api.NewAccountHandler().Register(apiRouter)
	api.NewBookingHandler(bookingService).Register(apiRouter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down http server")

		if err := srv.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("http server shutdown failed", "err", err)
		}
	}()

	logger.Info("listening", "port", cfg.Port)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("http server failed", "err", err)
	}
}
