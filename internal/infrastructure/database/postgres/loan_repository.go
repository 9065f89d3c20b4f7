package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bank-api/internal/domain/loan"
	"bank-api/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	selectLoans = `
        SELECT l.LoanID, l.CustomerID, l.Amount, l.InterestRate, l.EMI, l.Status, c.Name AS CustomerName
        FROM Loan l
        JOIN Customer c ON l.CustomerID = c.CustomerID`

	queryFindAllLoans = selectLoans + `
        ORDER BY l.LoanID`

	queryFindLoansByCustomerID = selectLoans + `
        WHERE l.CustomerID = $1
        ORDER BY l.LoanID`

	queryInsertLoan = `
        WITH inserted AS (
            INSERT INTO Loan (CustomerID, Amount, InterestRate, EMI, Status)
            VALUES ($1, $2, $3, $4, $5)
            RETURNING LoanID, CustomerID, Amount, InterestRate, EMI, Status
        )
        SELECT i.LoanID, i.CustomerID, i.Amount, i.InterestRate, i.EMI, i.Status, c.Name AS CustomerName
        FROM inserted i
        JOIN Customer c ON i.CustomerID = c.CustomerID`

	// The status guard makes a missing loan and a loan in the wrong state
	// indistinguishable: both return no row.
	queryUpdateLoanStatus = `
        WITH updated AS (
            UPDATE Loan
            SET Status = $2
            WHERE LoanID = $1 AND Status = $3
            RETURNING LoanID, CustomerID, Amount, InterestRate, EMI, Status
        )
        SELECT u.LoanID, u.CustomerID, u.Amount, u.InterestRate, u.EMI, u.Status, c.Name AS CustomerName
        FROM updated u
        JOIN Customer c ON u.CustomerID = c.CustomerID`

	queryDeleteLoan = `DELETE FROM Loan WHERE LoanID = $1`
)

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ loan.Repository = (*LoanRepository)(nil)

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	if db == nil {
		panic("DBPool cannot be nil for LoanRepository")
	}
	return &LoanRepository{db: db, logger: componentLogger(logger, "LoanRepository")}
}

func scanLoan(row pgx.Row) (*loan.Loan, error) {
	var l loan.Loan
	err := row.Scan(
		&l.LoanID,
		&l.CustomerID,
		&l.Amount,
		&l.InterestRate,
		&l.EMI,
		&l.Status,
		&l.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoanRepository) FindAll(ctx context.Context) ([]*loan.Loan, error) {
	logCtx := r.logger.With(slog.String("operation", "FindAll"))
	return r.list(ctx, "loan_find_all", logCtx, queryFindAllLoans)
}

func (r *LoanRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*loan.Loan, error) {
	logCtx := r.logger.With(slog.String("operation", "FindByCustomerID"), slog.Int64("customerID", customerID))
	return r.list(ctx, "loan_find_by_customer", logCtx, queryFindLoansByCustomerID, customerID)
}

func (r *LoanRepository) list(ctx context.Context, queryName string, logCtx *slog.Logger, query string, args ...any) ([]*loan.Loan, error) {
	start := time.Now()
	logCtx.DebugContext(ctx, "Querying loans")

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, observe(queryName, start, err, logCtx)
	}
	loans, err := collectRows(rows, func(rows pgx.Rows) (*loan.Loan, error) {
		return scanLoan(rows)
	})
	if err != nil {
		return nil, observe(queryName, start, err, logCtx)
	}

	observe(queryName, start, nil, logCtx)
	logCtx.DebugContext(ctx, "Loans retrieved", slog.Int("count", len(loans)))
	return loans, nil
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	if l == nil {
		return fmt.Errorf("%w: loan cannot be nil", apperrors.ErrInvalidArgument)
	}
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("customerID", l.CustomerID))
	logCtx.InfoContext(ctx, "Attempting to insert new loan", slog.String("status", string(l.Status)))

	created, err := scanLoan(r.db.QueryRow(ctx, queryInsertLoan,
		l.CustomerID, l.Amount, l.InterestRate, l.EMI, string(l.Status)))
	if err != nil {
		return observe("loan_insert", start, err, logCtx)
	}
	observe("loan_insert", start, nil, logCtx)

	*l = *created
	logCtx.InfoContext(ctx, "Loan inserted successfully", slog.Int64("loanID", l.LoanID))
	return nil
}

func (r *LoanRepository) UpdateStatus(ctx context.Context, loanID int64, from, to loan.LoanStatus) (*loan.Loan, error) {
	start := time.Now()
	logCtx := r.logger.With(
		slog.Int64("loanID", loanID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)
	logCtx.InfoContext(ctx, "Attempting to change loan status")

	updated, err := scanLoan(r.db.QueryRow(ctx, queryUpdateLoanStatus, loanID, string(to), string(from)))
	if err != nil {
		return nil, observe("loan_update_status", start, err, logCtx)
	}
	observe("loan_update_status", start, nil, logCtx)

	logCtx.InfoContext(ctx, "Loan status changed")
	return updated, nil
}

func (r *LoanRepository) Delete(ctx context.Context, loanID int64) error {
	start := time.Now()
	logCtx := r.logger.With(slog.Int64("loanID", loanID))
	logCtx.InfoContext(ctx, "Attempting to delete loan")

	cmdTag, err := r.db.Exec(ctx, queryDeleteLoan, loanID)
	if err != nil {
		return observe("loan_delete", start, err, logCtx)
	}
	observe("loan_delete", start, nil, logCtx)

	if cmdTag.RowsAffected() == 0 {
		logCtx.WarnContext(ctx, "Delete affected zero rows, loan likely not found")
		return apperrors.ErrNotFound
	}

	logCtx.InfoContext(ctx, "Loan deleted successfully")
	return nil
}
