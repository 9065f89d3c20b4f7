package stats

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Stats holds row counts for the dashboard summary.
type Stats struct {
	TotalCustomers    int64 `json:"totalCustomers"`
	TotalAccounts     int64 `json:"totalAccounts"`
	TotalLoans        int64 `json:"totalLoans"`
	TotalTransactions int64 `json:"totalTransactions"`
}

type Repository interface {
	Count(ctx context.Context) (*Stats, error)
}

type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsService struct {
	repo   Repository
	logger *slog.Logger
}

func NewStatsService(repo Repository, logger *slog.Logger) StatsService {
	if repo == nil {
		panic("stats repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewStatsService, using default stderr handler")
	}
	return &statsService{
		repo:   repo,
		logger: logger.With(slog.String("component", "statsService")),
	}
}

func (s *statsService) GetStats(ctx context.Context) (*Stats, error) {
	st, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error counting rows", slog.Any("error", err))
		return nil, fmt.Errorf("failed to count rows: %w", err)
	}
	s.logger.DebugContext(ctx, "Counted rows",
		slog.Int64("customers", st.TotalCustomers),
		slog.Int64("accounts", st.TotalAccounts),
		slog.Int64("loans", st.TotalLoans),
		slog.Int64("transactions", st.TotalTransactions),
	)
	return st, nil
}
