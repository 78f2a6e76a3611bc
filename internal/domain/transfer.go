package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a malformed or non-positive amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds indicates that the balance does not cover the mutation.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBelowMinimum indicates that the mutation would breach the minimum balance.
	ErrBelowMinimum = errors.New("account must maintain its minimum balance")
	// ErrSameAccount indicates a transfer where source and destination are the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")
	// ErrSelfTransfer indicates an external transfer to an account of the same user.
	ErrSelfTransfer = errors.New("cannot transfer to your own account")
	// ErrTransferLimitExceeded indicates that the external transfer ceiling is exceeded.
	ErrTransferLimitExceeded = errors.New("transfer amount cannot exceed $2,500")
	// ErrDuplicateRequest indicates that the idempotency key was already applied.
	ErrDuplicateRequest = errors.New("request already processed")
)

// ExternalTransferLimit is the per-transfer ceiling for cross-user transfers.
var ExternalTransferLimit = decimal.NewFromInt(2_500)

// InternalTransferParams is the input for a transfer between two accounts of one user.
type InternalTransferParams struct {
	UserID      int64
	FromType    string
	ToType      string
	Amount      decimal.Decimal
	Description string
	// IdempotencyKey, when set, dedupes retried requests. A key is
	// claimed only by a committed transfer.
	IdempotencyKey string
}

// ExternalTransferParams is the input for a cross-user transfer.
type ExternalTransferParams struct {
	SenderUserID   int64
	FromNumber     string
	ToNumber       string
	Amount         decimal.Decimal
	Description    string
	IdempotencyKey string
}

// TransferTxResult is the result of a transfer unit of work.
type TransferTxResult struct {
	FromAccount Account `json:"from_account"`
	ToAccount   Account `json:"to_account"`
	FromEntry   Entry   `json:"from_entry"`
	ToEntry     Entry   `json:"to_entry"`
}
