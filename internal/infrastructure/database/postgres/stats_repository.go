package postgres

import (
	"context"
	"log/slog"
	"time"

	"bank-api/internal/domain/stats"
)

const queryCountAll = `
        SELECT
            (SELECT COUNT(*) FROM Customer),
            (SELECT COUNT(*) FROM Account),
            (SELECT COUNT(*) FROM Loan),
            (SELECT COUNT(*) FROM Transaction)`

type StatsRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ stats.Repository = (*StatsRepository)(nil)

func NewStatsRepository(db DBPool, logger *slog.Logger) *StatsRepository {
	if db == nil {
		panic("DBPool cannot be nil for StatsRepository")
	}
	return &StatsRepository{db: db, logger: componentLogger(logger, "StatsRepository")}
}

// Count reads all four table sizes in one round trip.
func (r *StatsRepository) Count(ctx context.Context) (*stats.Stats, error) {
	start := time.Now()
	var s stats.Stats
	err := r.db.QueryRow(ctx, queryCountAll).Scan(
		&s.TotalCustomers,
		&s.TotalAccounts,
		&s.TotalLoans,
		&s.TotalTransactions,
	)
	if err != nil {
		return nil, observe("stats_count", start, err, r.logger)
	}
	observe("stats_count", start, nil, r.logger)
	return &s, nil
}
