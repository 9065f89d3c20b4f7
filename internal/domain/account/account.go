package account

import "github.com/shopspring/decimal"

type Account struct {
	AccountID  int64           `json:"AccountID"`
	CustomerID int64           `json:"CustomerID"`
	Type       string          `json:"Type"`
	Balance    decimal.Decimal `json:"Balance"`
	// CustomerName is joined from the owning customer row.
	CustomerName string `json:"CustomerName"`
}

// Patch holds the columns of an account that may change after opening.
// Nil fields keep their stored value.
type Patch struct {
	Type    *string
	Balance *decimal.Decimal
}

func (p Patch) Empty() bool {
	return p.Type == nil && p.Balance == nil
}
