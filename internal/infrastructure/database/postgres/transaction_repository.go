package postgres

import (
	"context"
	"log/slog"
	"time"

	"bank-api/internal/domain/transaction"

	"github.com/jackc/pgx/v5"
)

const (
	selectTransactions = `
        SELECT t.TransID, t.AccountID, t.Amount, t.Type, t.Date, a.Type AS AccountType
        FROM Transaction t
        JOIN Account a ON t.AccountID = a.AccountID`

	queryFindAllTransactions = selectTransactions + `
        ORDER BY t.TransID`

	queryFindTransactionsByAccountID = selectTransactions + `
        WHERE t.AccountID = $1
        ORDER BY t.TransID`
)

type TransactionRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ transaction.Repository = (*TransactionRepository)(nil)

func NewTransactionRepository(db DBPool, logger *slog.Logger) *TransactionRepository {
	if db == nil {
		panic("DBPool cannot be nil for TransactionRepository")
	}
	return &TransactionRepository{db: db, logger: componentLogger(logger, "TransactionRepository")}
}

func scanTransaction(rows pgx.Rows) (*transaction.Transaction, error) {
	var t transaction.Transaction
	if err := rows.Scan(&t.TransID, &t.AccountID, &t.Amount, &t.Type, &t.Date, &t.AccountType); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]*transaction.Transaction, error) {
	start := time.Now()
	r.logger.DebugContext(ctx, "Querying all transactions")

	rows, err := r.db.Query(ctx, queryFindAllTransactions)
	if err != nil {
		return nil, observe("transaction_find_all", start, err, r.logger)
	}
	txns, err := collectRows(rows, scanTransaction)
	if err != nil {
		return nil, observe("transaction_find_all", start, err, r.logger)
	}

	observe("transaction_find_all", start, nil, r.logger)
	return txns, nil
}

func (r *TransactionRepository) FindByAccountID(ctx context.Context, accountID int64) ([]*transaction.Transaction, error) {
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("accountID", accountID))
	logCtx.DebugContext(ctx, "Querying transactions for account")

	rows, err := r.db.Query(ctx, queryFindTransactionsByAccountID, accountID)
	if err != nil {
		return nil, observe("transaction_find_by_account", start, err, logCtx)
	}
	txns, err := collectRows(rows, scanTransaction)
	if err != nil {
		return nil, observe("transaction_find_by_account", start, err, logCtx)
	}

	observe("transaction_find_by_account", start, nil, logCtx)
	return txns, nil
}
