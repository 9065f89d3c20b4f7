package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bank-api/internal/domain/customer"
	"bank-api/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	queryFindAllCustomers = `
        SELECT CustomerID, Name, age, gender, Phone, Address
        FROM Customer
        ORDER BY CustomerID`

	queryFindCustomerByID = `
        SELECT CustomerID, Name, age, gender, Phone, Address
        FROM Customer
        WHERE CustomerID = $1`

	queryInsertCustomer = `
        INSERT INTO Customer (Name, age, gender, Phone, Address)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING CustomerID`

	queryUpdateCustomer = `
        UPDATE Customer
        SET Name = $1,
            age = $2,
            gender = $3,
            Phone = $4,
            Address = $5
        WHERE CustomerID = $6`

	queryDeleteCustomer = `DELETE FROM Customer WHERE CustomerID = $1`
)

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	return &CustomerRepository{
		db:     db,
		logger: componentLogger(logger, "CustomerRepository"),
	}
}

func scanCustomer(row pgx.Row) (*customer.Customer, error) {
	var c customer.Customer
	if err := row.Scan(&c.CustomerID, &c.Name, &c.Age, &c.Gender, &c.Phone, &c.Address); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	start := time.Now()
	r.logger.DebugContext(ctx, "Querying all customers")

	rows, err := r.db.Query(ctx, queryFindAllCustomers)
	if err != nil {
		return nil, observe("customer_find_all", start, err, r.logger)
	}

	customers, err := collectRows(rows, func(rows pgx.Rows) (*customer.Customer, error) {
		return scanCustomer(rows)
	})
	if err != nil {
		return nil, observe("customer_find_all", start, err, r.logger)
	}

	observe("customer_find_all", start, nil, r.logger)
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("customerID", customerID))
	logCtx.DebugContext(ctx, "Querying customer by ID")

	cust, err := scanCustomer(r.db.QueryRow(ctx, queryFindCustomerByID, customerID))
	if err != nil {
		return nil, observe("customer_find_by_id", start, err, logCtx)
	}

	observe("customer_find_by_id", start, nil, logCtx)
	return cust, nil
}

func (r *CustomerRepository) Create(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	start := time.Now()
	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("name", cust.Name))

	err := r.db.QueryRow(ctx, queryInsertCustomer,
		cust.Name,
		cust.Age,
		cust.Gender,
		cust.Phone,
		cust.Address,
	).Scan(&cust.CustomerID)
	if err != nil {
		return observe("customer_insert", start, err, r.logger)
	}

	observe("customer_insert", start, nil, r.logger)
	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.CustomerID))
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("customerID", cust.CustomerID))
	logCtx.InfoContext(ctx, "Attempting to update customer")

	cmdTag, err := r.db.Exec(ctx, queryUpdateCustomer,
		cust.Name,
		cust.Age,
		cust.Gender,
		cust.Phone,
		cust.Address,
		cust.CustomerID,
	)
	if err != nil {
		return observe("customer_update", start, err, logCtx)
	}
	observe("customer_update", start, nil, logCtx)

	if cmdTag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	logCtx.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("customerID", customerID))
	logCtx.InfoContext(ctx, "Attempting to delete customer")

	cmdTag, err := r.db.Exec(ctx, queryDeleteCustomer, customerID)
	if err != nil {
		return observe("customer_delete", start, err, logCtx)
	}
	observe("customer_delete", start, nil, logCtx)

	if cmdTag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	logCtx.InfoContext(ctx, "Customer deleted successfully")
	return nil
}
