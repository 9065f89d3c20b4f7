package transaction

import "context"

type Repository interface {
	FindAll(ctx context.Context) ([]*Transaction, error)

	FindByAccountID(ctx context.Context, accountID int64) ([]*Transaction, error)
}
