package loan

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

type LoanService interface {
	ListLoans(ctx context.Context) ([]*Loan, error)
	ListCustomerLoans(ctx context.Context, customerID int64) ([]*Loan, error)
	ApplyForLoan(ctx context.Context, l *Loan) (*Loan, error)
	ApproveLoan(ctx context.Context, loanID int64) (*Loan, error)
	CloseLoan(ctx context.Context, loanID int64) (*Loan, error)
	DeleteLoan(ctx context.Context, loanID int64) error
}

type loanService struct {
	repo   Repository
	logger *slog.Logger
}

func NewLoanService(repo Repository, logger *slog.Logger) LoanService {
	if repo == nil {
		panic("loan repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLoanService, using default stderr handler")
	}
	return &loanService{
		repo:   repo,
		logger: logger.With(slog.String("component", "loanService")),
	}
}

func (s *loanService) ListLoans(ctx context.Context) ([]*Loan, error) {
	s.logger.InfoContext(ctx, "Attempting to list all loans")

	loans, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing loans", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved loans", slog.Int("count", len(loans)))
	return loans, nil
}

func (s *loanService) ListCustomerLoans(ctx context.Context, customerID int64) ([]*Loan, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to list loans for customer")

	loans, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		logger.ErrorContext(ctx, "Repository error listing customer loans", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list loans for customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully retrieved customer loans", slog.Int("count", len(loans)))
	return loans, nil
}

func (s *loanService) ApplyForLoan(ctx context.Context, l *Loan) (*Loan, error) {
	if l == nil {
		return nil, fmt.Errorf("%w: loan cannot be nil", apperrors.ErrInvalidArgument)
	}
	logger := s.logger.With(slog.Int64("customerID", l.CustomerID))
	logger.InfoContext(ctx, "Attempting to record loan application")

	l.LoanID = 0
	l.Status = LoanStatus(strings.TrimSpace(string(l.Status)))
	if l.Status == "" {
		l.Status = StatusPending
	}
	if err := validateLoan(l); err != nil {
		logger.WarnContext(ctx, "Validation failed for loan application", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Create(ctx, l); err != nil {
		logger.Log(ctx, levelFor(err), "Repository failed to save loan", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create loan for customer %d: %w", l.CustomerID, err)
	}

	monitoring.RecordLoanChange("created")
	logger.InfoContext(ctx, "Successfully recorded loan", slog.Int64("loanID", l.LoanID), slog.String("status", string(l.Status)))
	return l, nil
}

func (s *loanService) ApproveLoan(ctx context.Context, loanID int64) (*Loan, error) {
	return s.transition(ctx, loanID, StatusApproved)
}

func (s *loanService) CloseLoan(ctx context.Context, loanID int64) (*Loan, error) {
	return s.transition(ctx, loanID, StatusClosed)
}

func (s *loanService) transition(ctx context.Context, loanID int64, to LoanStatus) (*Loan, error) {
	from := requiredStatus[to]
	logger := s.logger.With(slog.Int64("loanID", loanID), slog.String("from", string(from)), slog.String("to", string(to)))
	logger.InfoContext(ctx, "Attempting loan status change")

	if loanID <= 0 {
		return nil, fmt.Errorf("%w: loan ID must be positive", apperrors.ErrInvalidArgument)
	}

	updated, err := s.repo.UpdateStatus(ctx, loanID, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "No loan in the required status")
			return nil, fmt.Errorf("%w: no %s loan with id %d", apperrors.ErrNotFound, strings.ToLower(string(from)), loanID)
		}
		logger.ErrorContext(ctx, "Repository failed to change loan status", slog.Any("error", err))
		return nil, fmt.Errorf("failed to change status of loan %d: %w", loanID, err)
	}

	monitoring.RecordLoanChange(strings.ToLower(string(to)))
	logger.InfoContext(ctx, "Loan status changed")
	return updated, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, loanID int64) error {
	logger := s.logger.With(slog.Int64("loanID", loanID))
	logger.InfoContext(ctx, "Attempting to delete loan")

	if loanID <= 0 {
		return fmt.Errorf("%w: loan ID must be positive", apperrors.ErrInvalidArgument)
	}

	if err := s.repo.Delete(ctx, loanID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, "Delete matched no loan row")
			return apperrors.ErrNotFound
		}
		logger.ErrorContext(ctx, "Repository failed to delete loan", slog.Any("error", err))
		return fmt.Errorf("failed to delete loan %d: %w", loanID, err)
	}

	monitoring.RecordLoanChange("deleted")
	logger.InfoContext(ctx, "Successfully deleted loan")
	return nil
}

func validateLoan(l *Loan) error {
	var fields []apperrors.FieldError
	if l.CustomerID <= 0 {
		fields = append(fields, apperrors.FieldError{Field: "CustomerID", Message: "must be positive"})
	}
	if !l.Amount.IsPositive() {
		fields = append(fields, apperrors.FieldError{Field: "Amount", Message: "must be greater than 0"})
	}
	if l.InterestRate.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "InterestRate", Message: "must be at least 0"})
	}
	if l.EMI.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "EMI", Message: "must be at least 0"})
	}
	if !l.Status.Valid() {
		fields = append(fields, apperrors.FieldError{Field: "Status", Message: "must be one of: Pending Approved Closed"})
	}
	return apperrors.NewFieldsValidationError(fields)
}

func levelFor(err error) slog.Level {
	if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrValidation) {
		return slog.LevelWarn
	}
	return slog.LevelError
}
