package dto

import (
	"bank-api/internal/domain/account"
	"bank-api/internal/domain/customer"
	"bank-api/internal/domain/loan"
	"bank-api/internal/domain/stats"
	"bank-api/internal/domain/transaction"
	"bank-api/internal/pkg/apperrors"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func intPtr(i int) *int { return &i }

func int64Ptr(i int64) *int64 { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func TestCustomerRequest_Validate(t *testing.T) {
	t.Run("trims and accepts", func(t *testing.T) {
		req := CustomerRequest{Name: " Asha ", Age: intPtr(30), Gender: "F", Phone: "555-0100", Address: " 12 Elm St"}
		require.NoError(t, req.Validate())

		c := req.ToDomain()
		assert.Equal(t, &customer.Customer{Name: "Asha", Age: 30, Gender: "F", Phone: "555-0100", Address: "12 Elm St"}, c)
	})

	t.Run("zero age is allowed", func(t *testing.T) {
		req := CustomerRequest{Name: "Baby", Age: intPtr(0), Gender: "M", Phone: "1", Address: "x"}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing phone names the field", func(t *testing.T) {
		var req CustomerRequest
		require.NoError(t, json.Unmarshal([]byte(`{"Name":"Asha","age":30,"gender":"F","Address":"12 Elm St"}`), &req))

		err := req.Validate()

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Phone", vErr.Field)
		assert.Len(t, vErr.Fields, 1)
	})

	t.Run("missing age and blank name", func(t *testing.T) {
		req := CustomerRequest{Name: "   ", Gender: "F", Phone: "1", Address: "x"}

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, []apperrors.FieldError{
			{Field: "Name", Message: "is required"},
			{Field: "age", Message: "is required"},
		}, vErr.Fields)
	})
}

func TestCustomerResponse_JSONKeys(t *testing.T) {
	body, err := json.Marshal(NewCustomerListResponse([]*customer.Customer{
		{CustomerID: 1, Name: "Asha", Age: 30, Gender: "F", Phone: "555-0100", Address: "12 Elm St"},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"CustomerID":1,"Name":"Asha","age":30,"gender":"F","Phone":"555-0100","Address":"12 Elm St"}]`, string(body))
}

func TestListResponses_EmptyIsArray(t *testing.T) {
	for name, v := range map[string]any{
		"customers":    NewCustomerListResponse(nil),
		"accounts":     NewAccountListResponse(nil),
		"transactions": NewTransactionListResponse(nil),
		"loans":        NewLoanListResponse(nil),
	} {
		body, err := json.Marshal(v)
		require.NoError(t, err, name)
		assert.Equal(t, "[]", string(body), name)
	}
}

func TestBankingResponses(t *testing.T) {
	t.Run("transaction date and numeric amount", func(t *testing.T) {
		resp := NewTransactionListResponse([]*transaction.Transaction{{
			TransID:     100,
			AccountID:   10,
			Amount:      decimal.RequireFromString("250.75"),
			Type:        "Deposit",
			Date:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			AccountType: "Savings",
		}})
		body, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"TransID":100,"AccountID":10,"Amount":250.75,"Type":"Deposit","Date":"2024-03-14","AccountType":"Savings"}]`, string(body))
	})

	t.Run("loan status", func(t *testing.T) {
		resp := NewLoanListResponse([]*loan.Loan{{LoanID: 5, Status: loan.StatusPending, CustomerName: "Asha"}})
		require.Len(t, resp, 1)
		assert.Equal(t, "Pending", resp[0].Status)
		assert.Equal(t, "Asha", resp[0].CustomerName)
	})

	t.Run("stats", func(t *testing.T) {
		assert.Equal(t, StatsResponse{}, NewStatsResponse(nil))
		assert.Equal(t, int64(4), NewStatsResponse(&stats.Stats{TotalLoans: 4}).TotalLoans)
	})
}

func TestAccountCreateRequest_Validate(t *testing.T) {
	t.Run("accepts zero balance", func(t *testing.T) {
		req := AccountCreateRequest{CustomerID: int64Ptr(1), Type: " Savings ", Balance: decPtr("0")}
		require.NoError(t, req.Validate())
		assert.Equal(t, &account.Account{CustomerID: 1, Type: "Savings", Balance: decimal.RequireFromString("0")}, req.ToDomain())
	})

	t.Run("rejects missing and out of range fields", func(t *testing.T) {
		req := AccountCreateRequest{CustomerID: int64Ptr(2147483648), Balance: decPtr("-1")}

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, []apperrors.FieldError{
			{Field: "CustomerID", Message: "must not exceed 2147483647"},
			{Field: "Type", Message: "is required"},
			{Field: "Balance", Message: "must be at least 0"},
		}, vErr.Fields)
	})
}

func TestAccountUpdateRequest_Validate(t *testing.T) {
	t.Run("balance only", func(t *testing.T) {
		var req AccountUpdateRequest
		require.NoError(t, json.Unmarshal([]byte(`{"Balance":250.5}`), &req))
		require.NoError(t, req.Validate())

		patch := req.ToDomain()
		assert.Nil(t, patch.Type)
		assert.True(t, decimal.RequireFromString("250.5").Equal(*patch.Balance))
	})

	t.Run("empty body", func(t *testing.T) {
		var req AccountUpdateRequest
		assert.ErrorIs(t, req.Validate(), apperrors.ErrInvalidArgument)
	})

	t.Run("blank type", func(t *testing.T) {
		req := AccountUpdateRequest{Type: strPtr("  ")}
		err := req.Validate()
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, "", *req.Type)
	})
}

func TestLoanRequest_Validate(t *testing.T) {
	valid := func() LoanRequest {
		return LoanRequest{
			CustomerID:   int64Ptr(1),
			Amount:       decPtr("10000"),
			InterestRate: decPtr("8.5"),
			EMI:          decPtr("872.20"),
		}
	}

	t.Run("status is optional", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
		l := req.ToDomain()
		assert.Equal(t, loan.LoanStatus(""), l.Status)
		assert.Equal(t, int64(1), l.CustomerID)
	})

	t.Run("unknown status", func(t *testing.T) {
		req := valid()
		req.Status = "Rejected"

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, "Status", vErr.Field)
	})

	t.Run("zero amount and rate above 100", func(t *testing.T) {
		req := valid()
		req.Amount = decPtr("0")
		req.InterestRate = decPtr("120")

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, req.Validate(), &vErr)
		assert.Equal(t, []apperrors.FieldError{
			{Field: "Amount", Message: "must be greater than 0"},
			{Field: "InterestRate", Message: "must not exceed 100"},
		}, vErr.Fields)
	})
}

func TestSingleResponses(t *testing.T) {
	assert.Equal(t, AccountResponse{}, NewAccountResponse(nil))
	assert.Equal(t, LoanResponse{}, NewLoanResponse(nil))

	body, err := json.Marshal(NewLoanResponse(&loan.Loan{
		LoanID:       5,
		CustomerID:   1,
		Amount:       decimal.NewFromInt(50000),
		InterestRate: decimal.RequireFromString("7.5"),
		EMI:          decimal.RequireFromString("1001.23"),
		Status:       loan.StatusApproved,
		CustomerName: "Asha",
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"LoanID":5,"CustomerID":1,"Amount":50000,"InterestRate":7.5,"EMI":1001.23,"Status":"Approved","CustomerName":"Asha"}`, string(body))
}
