package postgres

import (
	"bank-api/internal/pkg/apperrors"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionColumns = []string{"transid", "accountid", "amount", "type", "date", "accounttype"}

func TestTransactionRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewTransactionRepository(mockPool, logger)
	date := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	mockPool.ExpectQuery(regexp.QuoteMeta(queryFindAllTransactions)).WillReturnRows(
		pgxmock.NewRows(transactionColumns).
			AddRow(int64(100), int64(10), decimal.NewFromInt(250), "Deposit", date, "Savings"))

	txns, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "Savings", txns[0].AccountType)
	assert.Equal(t, date, txns[0].Date)
	assert.Equal(t, "Deposit", txns[0].Type)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestTransactionRepository_FindByAccountID(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by account", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewTransactionRepository(mockPool, logger)
		mockPool.ExpectQuery(regexp.QuoteMeta(queryFindTransactionsByAccountID)).WithArgs(int64(10)).WillReturnRows(
			pgxmock.NewRows(transactionColumns))

		txns, err := repo.FindByAccountID(ctx, 10)

		require.NoError(t, err)
		assert.Empty(t, txns)
		assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
	})

	t.Run("query failure", func(t *testing.T) {
		mockPool := newMockPool(t)
		repo := NewTransactionRepository(mockPool, logger)
		mockPool.ExpectQuery(regexp.QuoteMeta(queryFindTransactionsByAccountID)).WithArgs(int64(10)).
			WillReturnError(assert.AnError)

		txns, err := repo.FindByAccountID(ctx, 10)

		assert.Nil(t, txns)
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
