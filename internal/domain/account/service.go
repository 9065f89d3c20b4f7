package account

import (
	"bank-api/internal/infrastructure/monitoring"
	"bank-api/internal/pkg/apperrors"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type AccountService interface {
	ListAccounts(ctx context.Context) ([]*Account, error)
	ListCustomerAccounts(ctx context.Context, customerID int64) ([]*Account, error)
	OpenAccount(ctx context.Context, acc *Account) (*Account, error)
	UpdateAccount(ctx context.Context, accountID int64, patch Patch) (*Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

type accountService struct {
	repo   Repository
	logger *slog.Logger
}

func NewAccountService(repo Repository, logger *slog.Logger) AccountService {
	if repo == nil {
		panic("account repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewAccountService, using default stderr handler")
	}
	return &accountService{
		repo:   repo,
		logger: logger.With(slog.String("component", "accountService")),
	}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]*Account, error) {
	s.logger.InfoContext(ctx, "Attempting to list all accounts")

	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing accounts", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved accounts", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) ListCustomerAccounts(ctx context.Context, customerID int64) ([]*Account, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to list accounts for customer")

	accounts, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error listing customer accounts", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list accounts for customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully retrieved customer accounts", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountService) OpenAccount(ctx context.Context, acc *Account) (*Account, error) {
	if acc == nil {
		return nil, fmt.Errorf("%w: account cannot be nil", apperrors.ErrInvalidArgument)
	}
	logger := s.logger.With(slog.Int64("customerID", acc.CustomerID))
	logger.InfoContext(ctx, "Attempting to open account")

	acc.AccountID = 0
	acc.Type = strings.TrimSpace(acc.Type)
	if err := validateAccount(acc); err != nil {
		logger.WarnContext(ctx, "Validation failed for new account", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		logger.Log(ctx, levelFor(err), "Repository failed to save new account", slog.Any("error", err))
		return nil, fmt.Errorf("failed to open account for customer %d: %w", acc.CustomerID, err)
	}

	monitoring.RecordAccountChange("created")
	logger.InfoContext(ctx, "Successfully opened account", slog.Int64("accountID", acc.AccountID))
	return acc, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID int64, patch Patch) (*Account, error) {
	logger := s.logger.With(slog.Int64("accountID", accountID))
	logger.InfoContext(ctx, "Attempting to update account")

	if accountID <= 0 {
		return nil, fmt.Errorf("%w: account ID must be positive", apperrors.ErrInvalidArgument)
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: at least one of Type or Balance must be provided", apperrors.ErrInvalidArgument)
	}
	if patch.Type != nil {
		trimmed := strings.TrimSpace(*patch.Type)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("Type", "must not be empty")
		}
		patch.Type = &trimmed
	}
	if patch.Balance != nil && patch.Balance.IsNegative() {
		return nil, apperrors.NewValidationError("Balance", "must be at least 0")
	}

	updated, err := s.repo.Update(ctx, accountID, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Update matched no account row")
			return nil, apperrors.ErrNotFound
		}
		logger.Log(ctx, levelFor(err), "Repository failed to update account", slog.Any("error", err))
		return nil, fmt.Errorf("failed to update account %d: %w", accountID, err)
	}

	monitoring.RecordAccountChange("updated")
	logger.InfoContext(ctx, "Successfully updated account")
	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	logger := s.logger.With(slog.Int64("accountID", accountID))
	logger.InfoContext(ctx, "Attempting to delete account")

	if accountID <= 0 {
		return fmt.Errorf("%w: account ID must be positive", apperrors.ErrInvalidArgument)
	}

	if err := s.repo.Delete(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Delete matched no account row")
			return apperrors.ErrNotFound
		}
		logger.Log(ctx, levelFor(err), "Repository failed to delete account", slog.Any("error", err))
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}

	monitoring.RecordAccountChange("deleted")
	logger.InfoContext(ctx, "Successfully deleted account")
	return nil
}

func validateAccount(acc *Account) error {
	var fields []apperrors.FieldError
	if acc.CustomerID <= 0 {
		fields = append(fields, apperrors.FieldError{Field: "CustomerID", Message: "must be positive"})
	}
	if acc.Type == "" {
		fields = append(fields, apperrors.FieldError{Field: "Type", Message: "is required"})
	}
	if acc.Balance.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "Balance", Message: "must be at least 0"})
	}
	return apperrors.NewFieldsValidationError(fields)
}

// levelFor keeps constraint rejections (unknown customer, referenced rows) at warn.
func levelFor(err error) slog.Level {
	if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrValidation) {
		return slog.LevelWarn
	}
	return slog.LevelError
}
