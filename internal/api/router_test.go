package api

import (
	mw "bank-api/internal/api/middleware"
	"bank-api/internal/config"
	"bank-api/internal/domain/account"
	"bank-api/internal/domain/customer"
	"bank-api/internal/domain/loan"
	"bank-api/internal/domain/stats"
	"bank-api/internal/domain/transaction"
	"bank-api/internal/pkg/apperrors"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCustomers is an in-memory customer service for exercising the routes end to end.
type memCustomers struct {
	mu     sync.Mutex
	nextID int64
	rows   []*customer.Customer
}

func (m *memCustomers) ListCustomers(context.Context) ([]*customer.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*customer.Customer, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memCustomers) GetCustomer(_ context.Context, id int64) (*customer.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.CustomerID == id {
			return c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memCustomers) CreateCustomer(_ context.Context, c *customer.Customer) (*customer.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.CustomerID = m.nextID
	m.rows = append(m.rows, c)
	return c, nil
}

func (m *memCustomers) UpdateCustomer(_ context.Context, id int64, c *customer.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.rows {
		if existing.CustomerID == id {
			c.CustomerID = id
			m.rows[i] = c
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (m *memCustomers) DeleteCustomer(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.rows {
		if existing.CustomerID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type emptyBank struct{}

func (emptyBank) ListAccounts(context.Context) ([]*account.Account, error) { return nil, nil }
func (emptyBank) ListCustomerAccounts(context.Context, int64) ([]*account.Account, error) {
	return nil, nil
}
func (emptyBank) ListTransactions(context.Context) ([]*transaction.Transaction, error) {
	return nil, nil
}
func (emptyBank) ListAccountTransactions(context.Context, int64) ([]*transaction.Transaction, error) {
	return nil, nil
}
func (emptyBank) ListLoans(context.Context) ([]*loan.Loan, error)                 { return nil, nil }
func (emptyBank) ListCustomerLoans(context.Context, int64) ([]*loan.Loan, error) { return nil, nil }
func (emptyBank) OpenAccount(_ context.Context, a *account.Account) (*account.Account, error) {
	opened := *a
	opened.AccountID = 1
	return &opened, nil
}
func (emptyBank) UpdateAccount(context.Context, int64, account.Patch) (*account.Account, error) {
	return nil, apperrors.ErrNotFound
}
func (emptyBank) DeleteAccount(context.Context, int64) error { return apperrors.ErrNotFound }
func (emptyBank) ApplyForLoan(_ context.Context, l *loan.Loan) (*loan.Loan, error) {
	created := *l
	created.LoanID = 1
	created.Status = loan.StatusPending
	return &created, nil
}
func (emptyBank) ApproveLoan(context.Context, int64) (*loan.Loan, error) { return nil, apperrors.ErrNotFound }
func (emptyBank) CloseLoan(context.Context, int64) (*loan.Loan, error)   { return nil, apperrors.ErrNotFound }
func (emptyBank) DeleteLoan(context.Context, int64) error               { return apperrors.ErrNotFound }
func (emptyBank) GetStats(context.Context) (*stats.Stats, error) {
	return &stats.Stats{TotalCustomers: 1}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{}
	cfg.Metrics.Path = "/metrics"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	limiter := mw.NewRateLimiterMiddleware(ctx, cfg.Server.RateLimit, nil, logger)
	router := SetupRouter(limiter, Services{
		Customer:    &memCustomers{},
		Account:     emptyBank{},
		Transaction: emptyBank{},
		Loan:        emptyBank{},
		Stats:       emptyBank{},
	}, cfg, logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestRouter_CustomerLifecycle(t *testing.T) {
	srv := newTestServer(t)
	body := `{"Name":"Asha","age":30,"gender":"F","Phone":"555-0100","Address":"12 Elm St"}`

	status, resp := do(t, http.MethodPost, srv.URL+"/customers", body)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Customer added!"}`, resp)

	status, resp = do(t, http.MethodGet, srv.URL+"/customers", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"CustomerID":1,"Name":"Asha","age":30,"gender":"F","Phone":"555-0100","Address":"12 Elm St"}]`, resp)

	updated := `{"Name":"Asha","age":31,"gender":"F","Phone":"555-0100","Address":"99 Oak Ave"}`
	status, resp = do(t, http.MethodPut, srv.URL+"/customers/1", updated)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Customer updated!"}`, resp)

	status, resp = do(t, http.MethodGet, srv.URL+"/customers/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp, `"Address":"99 Oak Ave"`)

	status, resp = do(t, http.MethodDelete, srv.URL+"/customers/1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Customer deleted!"}`, resp)

	status, resp = do(t, http.MethodDelete, srv.URL+"/customers/1", "")
	assert.Equal(t, http.StatusOK, status, "missing rows keep the confirmation by default")
	assert.JSONEq(t, `{"message":"Customer deleted!"}`, resp)

	status, resp = do(t, http.MethodGet, srv.URL+"/customers", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", resp)
}

func TestRouter_Routes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"accounts", http.MethodGet, "/accounts", http.StatusOK},
		{"accounts by customer", http.MethodGet, "/accounts/customer/1", http.StatusOK},
		{"transactions", http.MethodGet, "/transactions", http.StatusOK},
		{"transactions by account", http.MethodGet, "/transactions/account/3", http.StatusOK},
		{"loans", http.MethodGet, "/loans", http.StatusOK},
		{"loans by customer", http.MethodGet, "/loans/customer/abc", http.StatusBadRequest},
		{"stats", http.MethodGet, "/dashboard/stats", http.StatusOK},
		{"update missing account", http.MethodPut, "/accounts/7", http.StatusBadRequest},
		{"delete missing account", http.MethodDelete, "/accounts/7", http.StatusNotFound},
		{"approve missing loan", http.MethodPut, "/loans/7/approve", http.StatusNotFound},
		{"close missing loan", http.MethodPut, "/loans/7/close", http.StatusNotFound},
		{"delete missing loan", http.MethodDelete, "/loans/7", http.StatusNotFound},
		{"customer above key range", http.MethodGet, "/customers/2147483648", http.StatusNotFound},
		{"loans of customer above key range", http.MethodGet, "/loans/customer/2147483648", http.StatusOK},
		{"approve loan above key range", http.MethodPut, "/loans/2147483648/approve", http.StatusNotFound},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"swagger redirect", http.MethodGet, "/swagger", http.StatusMovedPermanently},
		{"swagger doc", http.MethodGet, "/swagger/doc.json", http.StatusOK},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound},
		{"method not allowed", http.MethodPatch, "/customers/1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := do(t, tt.method, srv.URL+tt.path, "")
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestRouter_ListsAreArrays(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/accounts", "/transactions", "/loans"} {
		status, body := do(t, http.MethodGet, srv.URL+path, "")
		assert.Equal(t, http.StatusOK, status, path)
		assert.Equal(t, "[]", body, path)
	}
}

func TestRouter_CORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/customers", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_BankingWrites(t *testing.T) {
	srv := newTestServer(t)

	status, resp := do(t, http.MethodPost, srv.URL+"/accounts", `{"CustomerID":1,"Type":"Savings","Balance":100}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, resp, `"AccountID":1`)

	status, _ = do(t, http.MethodPost, srv.URL+"/accounts", `{"CustomerID":1,"Type":"Savings","Balance":-5}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, http.MethodPut, srv.URL+"/accounts/7", `{"Type":"Current"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, resp = do(t, http.MethodPost, srv.URL+"/loans", `{"CustomerID":1,"Amount":1000,"InterestRate":5,"EMI":90}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Contains(t, resp, `"Status":"Pending"`)
}
