package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bank-api/internal/domain/account"
	"bank-api/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	selectAccounts = `
        SELECT a.AccountID, a.CustomerID, a.Type, a.Balance, c.Name AS CustomerName
        FROM Account a
        JOIN Customer c ON a.CustomerID = c.CustomerID`

	queryFindAllAccounts = selectAccounts + `
        ORDER BY a.AccountID`

	queryFindAccountsByCustomerID = selectAccounts + `
        WHERE a.CustomerID = $1
        ORDER BY a.AccountID`

	// Writes return the joined row in the same statement.
	queryInsertAccount = `
        WITH inserted AS (
            INSERT INTO Account (CustomerID, Type, Balance)
            VALUES ($1, $2, $3)
            RETURNING AccountID, CustomerID, Type, Balance
        )
        SELECT i.AccountID, i.CustomerID, i.Type, i.Balance, c.Name AS CustomerName
        FROM inserted i
        JOIN Customer c ON i.CustomerID = c.CustomerID`

	queryUpdateAccount = `
        WITH updated AS (
            UPDATE Account
            SET Type = COALESCE($1, Type),
                Balance = COALESCE($2, Balance)
            WHERE AccountID = $3
            RETURNING AccountID, CustomerID, Type, Balance
        )
        SELECT u.AccountID, u.CustomerID, u.Type, u.Balance, c.Name AS CustomerName
        FROM updated u
        JOIN Customer c ON u.CustomerID = c.CustomerID`

	queryDeleteAccount = `DELETE FROM Account WHERE AccountID = $1`
)

type AccountRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ account.Repository = (*AccountRepository)(nil)

func NewAccountRepository(db DBPool, logger *slog.Logger) *AccountRepository {
	if db == nil {
		panic("DBPool cannot be nil for AccountRepository")
	}
	return &AccountRepository{db: db, logger: componentLogger(logger, "AccountRepository")}
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var a account.Account
	if err := row.Scan(&a.AccountID, &a.CustomerID, &a.Type, &a.Balance, &a.CustomerName); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]*account.Account, error) {
	return r.list(ctx, "account_find_all", r.logger, queryFindAllAccounts)
}

func (r *AccountRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*account.Account, error) {
	logCtx := r.logger.With(slog.Int64("customerID", customerID))
	return r.list(ctx, "account_find_by_customer", logCtx, queryFindAccountsByCustomerID, customerID)
}

func (r *AccountRepository) list(ctx context.Context, queryName string, logCtx *slog.Logger, query string, args ...any) ([]*account.Account, error) {
	start := time.Now()
	logCtx.DebugContext(ctx, "Querying accounts", slog.String("query", queryName))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, observe(queryName, start, err, logCtx)
	}
	accounts, err := collectRows(rows, func(rows pgx.Rows) (*account.Account, error) {
		return scanAccount(rows)
	})
	if err != nil {
		return nil, observe(queryName, start, err, logCtx)
	}

	observe(queryName, start, nil, logCtx)
	return accounts, nil
}

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	if acc == nil {
		return fmt.Errorf("%w: account cannot be nil", apperrors.ErrInvalidArgument)
	}
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("customerID", acc.CustomerID))
	logCtx.InfoContext(ctx, "Attempting to insert new account", slog.String("type", acc.Type))

	created, err := scanAccount(r.db.QueryRow(ctx, queryInsertAccount, acc.CustomerID, acc.Type, acc.Balance))
	if err != nil {
		return observe("account_insert", start, err, logCtx)
	}
	observe("account_insert", start, nil, logCtx)

	*acc = *created
	logCtx.InfoContext(ctx, "Account inserted successfully", slog.Int64("accountID", acc.AccountID))
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, accountID int64, patch account.Patch) (*account.Account, error) {
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("accountID", accountID))
	logCtx.InfoContext(ctx, "Attempting to update account")

	// Untyped nil binds as NULL, which COALESCE turns into "keep".
	var typ, balance any
	if patch.Type != nil {
		typ = *patch.Type
	}
	if patch.Balance != nil {
		balance = *patch.Balance
	}

	updated, err := scanAccount(r.db.QueryRow(ctx, queryUpdateAccount, typ, balance, accountID))
	if err != nil {
		return nil, observe("account_update", start, err, logCtx)
	}
	observe("account_update", start, nil, logCtx)

	logCtx.InfoContext(ctx, "Account updated successfully")
	return updated, nil
}

func (r *AccountRepository) Delete(ctx context.Context, accountID int64) error {
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("accountID", accountID))
	logCtx.InfoContext(ctx, "Attempting to delete account")

	cmdTag, err := r.db.Exec(ctx, queryDeleteAccount, accountID)
	if err != nil {
		return observe("account_delete", start, err, logCtx)
	}
	observe("account_delete", start, nil, logCtx)

	if cmdTag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Delete affected zero rows, account likely not found")
		return apperrors.ErrNotFound
	}

	logCtx.InfoContext(ctx, "Account deleted successfully")
	return nil
}
