package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrEntryNotFound indicates that the ledger entry is not found.
var ErrEntryNotFound = errors.New("transaction not found")

// Ledger entry kinds.
const (
	EntryDeposit  = "deposit"
	EntryWithdraw = "withdraw"
)

// Entry is the immutable audit record of a single account balance change.
type Entry struct {
	ID           int64           `json:"id"`
	AccountID    int64           `json:"account_id"`
	Kind         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Description  string          `json:"description"`
	CreatedAt    time.Time       `json:"created_at"`
}
