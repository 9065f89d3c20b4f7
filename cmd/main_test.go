package main

import (
	"bank-api/internal/batch"
	"bank-api/internal/config"
	"bank-api/internal/domain/stats"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedStats struct{}

func (fixedStats) GetStats(context.Context) (*stats.Stats, error) {
	return &stats.Stats{TotalCustomers: 1}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInitializeApp(t *testing.T) {
	cfg, log := initializeApp()

	assert.NotNil(t, cfg, "Config should not be nil")
	assert.NotNil(t, log, "Logger should not be nil")
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.True(t, decimal.MarshalJSONWithoutQuotes, "money must marshal as JSON numbers")
}

func TestInitializeRedisClient(t *testing.T) {
	t.Run("no address keeps the in-memory limiter", func(t *testing.T) {
		cfg := &config.Config{Server: config.ServerConfig{RateLimit: config.RateLimitConfig{Enabled: true}}}
		assert.Nil(t, initializeRedisClient(cfg, quietLogger()))
	})

	t.Run("unreachable server falls back", func(t *testing.T) {
		cfg := &config.Config{Server: config.ServerConfig{RateLimit: config.RateLimitConfig{Enabled: true, RedisAddr: "127.0.0.1:1"}}}
		client := initializeRedisClient(cfg, quietLogger())
		assert.Nil(t, client)
		closeRedisClient(client, quietLogger())
	})
}

func TestSnapshotTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, snapshotTimeout(config.BatchConfig{StatsSnapshotTimeout: 30}))
	assert.Equal(t, 90*time.Second, snapshotTimeout(config.BatchConfig{StatsSnapshotTimeout: 90}))
	assert.Equal(t, defaultSnapshotTimeout, snapshotTimeout(config.BatchConfig{}))
}

func TestInitializePublisher_Disabled(t *testing.T) {
	cfg := &config.Config{RabbitMQ: config.RabbitMQConfig{Enabled: false}}

	pub, conn := initializePublisher(cfg, quietLogger())

	assert.NotNil(t, pub)
	assert.Nil(t, conn)
	closeBroker(conn, quietLogger())
}

func TestStartServerAndShutdown(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
	}
	logger := quietLogger()

	srv, serverErrors, shutdownChan := startServer(cfg, http.NewServeMux(), logger)
	require.NotNil(t, srv)
	assert.NotNil(t, shutdownChan)

	signals := make(chan os.Signal, 1)
	signals <- syscall.SIGTERM

	done := make(chan struct{})
	go func() {
		handleShutdown(srv, cron.New(), signals, serverErrors, logger)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(15 * time.Second):
		t.Fatal("handleShutdown did not return")
	}
}

func TestStartBatchJobs(t *testing.T) {
	job := batch.NewStatsSnapshotJob(fixedStats{}, quietLogger())

	t.Run("default schedule", func(t *testing.T) {
		c := startBatchJobs(&config.Config{}, quietLogger(), job)
		defer c.Stop()
		assert.Len(t, c.Entries(), 1)
	})

	t.Run("invalid schedule is skipped", func(t *testing.T) {
		cfg := &config.Config{Batch: config.BatchConfig{StatsSnapshotSchedule: "not a schedule"}}
		c := startBatchJobs(cfg, quietLogger(), job)
		defer c.Stop()
		assert.Empty(t, c.Entries())
	})
}
