package batch

import (
	"bank-api/internal/domain/stats"
	"bank-api/internal/infrastructure/monitoring"
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	tableCustomer    = "customer"
	tableAccount     = "account"
	tableLoan        = "loan"
	tableTransaction = "transaction"
)

// StatsSnapshotJob exports table row counts as Prometheus gauges.
type StatsSnapshotJob struct {
	statsService stats.StatsService
	logger       *slog.Logger
}

func NewStatsSnapshotJob(statsSvc stats.StatsService, logger *slog.Logger) *StatsSnapshotJob {
	if statsSvc == nil || logger == nil {
		panic("StatsSnapshotJob dependencies cannot be nil")
	}
	return &StatsSnapshotJob{
		statsService: statsSvc,
		logger:       logger.With("job", "StatsSnapshot"),
	}
}

func (j *StatsSnapshotJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.InfoContext(ctx, "Starting table stats snapshot job.")

	s, err := j.statsService.GetStats(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to read table stats, gauges left unchanged.", slog.Any("error", err))
		return fmt.Errorf("cannot run job, failed to read stats: %w", err)
	}

	monitoring.SetTableRows(tableCustomer, s.TotalCustomers)
	monitoring.SetTableRows(tableAccount, s.TotalAccounts)
	monitoring.SetTableRows(tableLoan, s.TotalLoans)
	monitoring.SetTableRows(tableTransaction, s.TotalTransactions)

	j.logger.InfoContext(ctx, "Table stats snapshot job finished.",
		slog.Int64("customers", s.TotalCustomers),
		slog.Int64("accounts", s.TotalAccounts),
		slog.Int64("loans", s.TotalLoans),
		slog.Int64("transactions", s.TotalTransactions),
		slog.Duration("duration", time.Since(startTime)),
	)
	return nil
}
