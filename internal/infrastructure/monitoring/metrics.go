package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	TableRows       *prometheus.GaugeVec
	CustomerChanges *prometheus.CounterVec
	AccountChanges  *prometheus.CounterVec
	LoanChanges     *prometheus.CounterVec
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bank_api_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		TableRows: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bank_api_table_rows",
				Help: "Number of rows per table at the last stats snapshot.",
			},
			[]string{"table"},
		),
		CustomerChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_api_customer_changes_total",
				Help: "Total number of successful customer mutations.",
			},
			[]string{"operation"},
		),
		AccountChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_api_account_changes_total",
				Help: "Total number of successful account mutations.",
			},
			[]string{"operation"},
		),
		LoanChanges: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_api_loan_changes_total",
				Help: "Total number of successful loan mutations, status transitions labelled by the new status.",
			},
			[]string{"operation"},
		),
	}
)

func RecordDBQuery(queryName string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func SetTableRows(table string, count int64) {
	Business.TableRows.WithLabelValues(table).Set(float64(count))
}

func RecordCustomerChange(operation string) {
	Business.CustomerChanges.WithLabelValues(operation).Inc()
}

func RecordAccountChange(operation string) {
	Business.AccountChanges.WithLabelValues(operation).Inc()
}

func RecordLoanChange(operation string) {
	Business.LoanChanges.WithLabelValues(operation).Inc()
}
