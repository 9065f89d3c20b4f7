package main

import (
	_ "bank-api/docs"
	"bank-api/internal/api"
	mw "bank-api/internal/api/middleware"
	"bank-api/internal/batch"
	"bank-api/internal/config"
	"bank-api/internal/domain/account"
	"bank-api/internal/domain/customer"
	"bank-api/internal/domain/loan"
	"bank-api/internal/domain/stats"
	"bank-api/internal/domain/transaction"
	"bank-api/internal/event"
	"bank-api/internal/infrastructure/database/postgres"
	"bank-api/internal/infrastructure/logging"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

const (
	defaultSnapshotSchedule = "*/5 * * * *"
	defaultSnapshotTimeout  = 30 * time.Second
)

// @title Bank API
// @version 1.0
// @description REST API over the customers, accounts, transactions and loans of a small bank.

// @contact.name API Support
// @contact.email support@bank-api.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
func main() {
	cfg, logger := initializeApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool := initializeDatabase(ctx, cfg, logger)
	defer closeDatabase(dbPool, logger)

	publisher, brokerConn := initializePublisher(cfg, logger)
	defer closeBroker(brokerConn, logger)

	redisClient := initializeRedisClient(cfg, logger)
	defer closeRedisClient(redisClient, logger)
	rateLimiter := mw.NewRateLimiterMiddleware(ctx, cfg.Server.RateLimit, redisClient, logger)

	services := initializeServices(dbPool, publisher, logger)

	snapshotJob := batch.NewStatsSnapshotJob(services.Stats, logger)
	cronScheduler := startBatchJobs(cfg, logger, snapshotJob)

	router := api.SetupRouter(rateLimiter, services, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	// Money columns go out as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
	logger.Info("Application starting...", "port", cfg.Server.Port, "log_level", cfg.Logger.Level)

	return cfg, logger
}

func initializeDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	logger.Info("Initializing database connection pool...")
	dbPool, err := postgres.NewConnectionPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}
	return dbPool
}

func closeDatabase(dbPool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("Closing database connection pool...")
	dbPool.Close()
}

// initializePublisher falls back to a no-op publisher when the broker is
// disabled or unreachable; customer writes never depend on it.
func initializePublisher(cfg *config.Config, logger *slog.Logger) (event.EventPublisher, *amqp.Connection) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("RabbitMQ disabled, customer events will not be published.")
		return event.NoopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ, continuing without events", "error", err)
		return event.NoopPublisher{}, nil
	}

	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.RabbitMQ.ExchangeName, logger)
	if err != nil {
		logger.Error("Failed to initialize RabbitMQ publisher, continuing without events", "error", err)
		_ = conn.Close()
		return event.NoopPublisher{}, nil
	}
	logger.Info("RabbitMQ publisher ready", "exchange", cfg.RabbitMQ.ExchangeName)
	return publisher, conn
}

func closeBroker(conn *amqp.Connection, logger *slog.Logger) {
	if conn == nil {
		return
	}
	logger.Info("Closing RabbitMQ connection...")
	if err := conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		logger.Warn("RabbitMQ connection close failed", "error", err)
	}
}

// initializeRedisClient returns nil when no address is configured or the
// server does not answer; the rate limiter then keeps its in-memory buckets.
func initializeRedisClient(cfg *config.Config, logger *slog.Logger) *redis.Client {
	rlCfg := cfg.Server.RateLimit
	if !rlCfg.Enabled || rlCfg.RedisAddr == "" {
		return nil
	}
	logger.Info("Initializing Redis client for rate limiting...", "addr", rlCfg.RedisAddr)

	rdb := redis.NewClient(&redis.Options{
		Addr:     rlCfg.RedisAddr,
		Password: rlCfg.RedisPassword,
		DB:       rlCfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis, rate limiting stays in memory", "error", err, "addr", rlCfg.RedisAddr)
		_ = rdb.Close()
		return nil
	}

	logger.Info("Redis client connected.", "addr", rlCfg.RedisAddr, "db", rlCfg.RedisDB)
	return rdb
}

func closeRedisClient(redisClient *redis.Client, logger *slog.Logger) {
	if redisClient == nil {
		return
	}
	logger.Info("Closing Redis client connection...")
	if err := redisClient.Close(); err != nil {
		logger.Error("Failed to close Redis client connection gracefully", "error", err)
	}
}

func initializeServices(dbPool *pgxpool.Pool, publisher event.EventPublisher, logger *slog.Logger) api.Services {
	logger.Info("Initializing application components...")
	return api.Services{
		Customer:    customer.NewCustomerService(postgres.NewCustomerRepository(dbPool, logger), publisher, logger),
		Account:     account.NewAccountService(postgres.NewAccountRepository(dbPool, logger), logger),
		Transaction: transaction.NewTransactionService(postgres.NewTransactionRepository(dbPool, logger), logger),
		Loan:        loan.NewLoanService(postgres.NewLoanRepository(dbPool, logger), logger),
		Stats:       stats.NewStatsService(postgres.NewStatsRepository(dbPool, logger), logger),
	}
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
			return
		}
		logger.Info("Server closed gracefully.")
		serverErrors <- nil
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		triggerReason = "server exited"
		serverErrors = nil
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	logger.Info("Stopping cron scheduler...")
	select {
	case <-cronScheduler.Stop().Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	if serverErrors != nil {
		select {
		case err := <-serverErrors:
			if err != nil {
				logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
			} else {
				logger.Info("Server goroutine confirmed exit.")
			}
		case <-time.After(5 * time.Second):
			logger.Warn("Timed out waiting for server goroutine confirmation.")
		}
	}

	logger.Info("Application shutdown process complete.")
}

func snapshotTimeout(cfg config.BatchConfig) time.Duration {
	if cfg.StatsSnapshotTimeout <= 0 {
		return defaultSnapshotTimeout
	}
	return time.Duration(cfg.StatsSnapshotTimeout) * time.Second
}

func startBatchJobs(cfg *config.Config, logger *slog.Logger, snapshotJob *batch.StatsSnapshotJob) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	scheduleSpec := cfg.Batch.StatsSnapshotSchedule
	if scheduleSpec == "" {
		scheduleSpec = defaultSnapshotSchedule
		logger.Warn("Stats snapshot schedule not configured, using default", "schedule", scheduleSpec)
	}
	jobTimeout := snapshotTimeout(cfg.Batch)

	jobID, err := c.AddJob(scheduleSpec, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", "StatsSnapshot")

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if runErr := snapshotJob.Run(ctx); runErr != nil {
			jobLogger.Error("Stats snapshot job finished with error", slog.Any("error", runErr))
		}
	}))
	if err != nil {
		logger.Error("Failed to schedule stats snapshot job", "schedule", scheduleSpec, slog.Any("error", err))
	} else {
		logger.Info("Scheduled stats snapshot job", "schedule", scheduleSpec, "job_id", jobID)
	}

	c.Start()
	logger.Info("Cron scheduler started.")
	return c
}
