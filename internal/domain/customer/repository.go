package customer

import (
	"context"
)

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*Customer, error)

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	Create(ctx context.Context, customer *Customer) error

	// Update overwrites every attribute of the row identified by
	// customer.CustomerID. It returns apperrors.ErrNotFound when no row matched.
	Update(ctx context.Context, customer *Customer) error

	// Delete returns apperrors.ErrNotFound when no row matched.
	Delete(ctx context.Context, customerID int64) error
}
