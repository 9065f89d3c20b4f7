package loan

import (
	"context"
)

type Repository interface {
	FindAll(ctx context.Context) ([]*Loan, error)

	FindByCustomerID(ctx context.Context, customerID int64) ([]*Loan, error)

	// Create inserts l and fills LoanID and CustomerName.
	Create(ctx context.Context, l *Loan) error

	// UpdateStatus moves a loan from one status to another in a single
	// conditional statement. apperrors.ErrNotFound means no loan with that
	// id is currently in status from.
	UpdateStatus(ctx context.Context, loanID int64, from, to LoanStatus) (*Loan, error)

	Delete(ctx context.Context, loanID int64) error
}
