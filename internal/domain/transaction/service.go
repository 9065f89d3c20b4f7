package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

type TransactionService interface {
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	ListAccountTransactions(ctx context.Context, accountID int64) ([]*Transaction, error)
}

type transactionService struct {
	repo   Repository
	logger *slog.Logger
}

func NewTransactionService(repo Repository, logger *slog.Logger) TransactionService {
	if repo == nil {
		panic("transaction repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewTransactionService, using default stderr handler")
	}
	return &transactionService{
		repo:   repo,
		logger: logger.With(slog.String("component", "transactionService")),
	}
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]*Transaction, error) {
	s.logger.InfoContext(ctx, "Attempting to list all transactions")

	txns, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing transactions", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved transactions", slog.Int("count", len(txns)))
	return txns, nil
}

func (s *transactionService) ListAccountTransactions(ctx context.Context, accountID int64) ([]*Transaction, error) {
	logger := s.logger.With(slog.Int64("accountID", accountID))
	logger.InfoContext(ctx, "Attempting to list transactions for account")

	txns, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error listing account transactions", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list transactions for account %d: %w", accountID, err)
	}

	logger.InfoContext(ctx, "Successfully retrieved account transactions", slog.Int("count", len(txns)))
	return txns, nil
}
