package batch

import (
	"bank-api/internal/domain/stats"
	"bank-api/internal/infrastructure/monitoring"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStats(ctx context.Context) (*stats.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.Stats), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStatsSnapshotJob_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("sets gauges", func(t *testing.T) {
		monitoring.Business.TableRows.Reset()
		svc := new(MockStatsService)
		svc.On("GetStats", ctx).Return(&stats.Stats{TotalCustomers: 3, TotalAccounts: 5, TotalLoans: 2, TotalTransactions: 40}, nil).Once()

		err := NewStatsSnapshotJob(svc, newTestLogger()).Run(ctx)

		assert.NoError(t, err)
		assert.Equal(t, float64(3), testutil.ToFloat64(monitoring.Business.TableRows.WithLabelValues(tableCustomer)))
		assert.Equal(t, float64(5), testutil.ToFloat64(monitoring.Business.TableRows.WithLabelValues(tableAccount)))
		assert.Equal(t, float64(2), testutil.ToFloat64(monitoring.Business.TableRows.WithLabelValues(tableLoan)))
		assert.Equal(t, float64(40), testutil.ToFloat64(monitoring.Business.TableRows.WithLabelValues(tableTransaction)))
		svc.AssertExpectations(t)
	})

	t.Run("leaves gauges on failure", func(t *testing.T) {
		monitoring.Business.TableRows.Reset()
		monitoring.SetTableRows(tableCustomer, 7)
		svc := new(MockStatsService)
		svc.On("GetStats", ctx).Return(nil, errors.New("db down")).Once()

		err := NewStatsSnapshotJob(svc, newTestLogger()).Run(ctx)

		assert.ErrorContains(t, err, "failed to read stats")
		assert.Equal(t, float64(7), testutil.ToFloat64(monitoring.Business.TableRows.WithLabelValues(tableCustomer)))
	})
}

func TestNewStatsSnapshotJob_Panics(t *testing.T) {
	assert.Panics(t, func() { NewStatsSnapshotJob(nil, newTestLogger()) })
	assert.Panics(t, func() { NewStatsSnapshotJob(new(MockStatsService), nil) })
}
