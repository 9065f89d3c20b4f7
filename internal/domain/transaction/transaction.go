package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	TransID   int64           `json:"TransID"`
	AccountID int64           `json:"AccountID"`
	Amount    decimal.Decimal `json:"Amount"`
	Type      string          `json:"Type"`
	Date      time.Time       `json:"Date"`
	// AccountType is joined from the account row.
	AccountType string `json:"AccountType"`
}
