package account

import "context"

type Repository interface {
	FindAll(ctx context.Context) ([]*Account, error)

	FindByCustomerID(ctx context.Context, customerID int64) ([]*Account, error)

	// Create inserts acc and fills AccountID and CustomerName.
	Create(ctx context.Context, acc *Account) error

	// Update applies patch and returns the stored row, or apperrors.ErrNotFound.
	Update(ctx context.Context, accountID int64, patch Patch) (*Account, error)

	Delete(ctx context.Context, accountID int64) error
}
