package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrRequestNotFound indicates that the funding request is not found.
	ErrRequestNotFound = errors.New("funding request not found")
	// ErrRequestNotPending indicates a transition attempted on a terminal request.
	ErrRequestNotPending = errors.New("funding request is not pending")
)

// Funding request statuses. Pending is the only non-terminal state.
const (
	FundingPending  = "pending"
	FundingApproved = "approved"
	FundingRejected = "rejected"
)

// FundingRequest is a user's claim to have sent crypto that should be
// credited to a fiat account. The USD amount is fixed at creation time
// and never recomputed.
type FundingRequest struct {
	ID           int64           `json:"request_id"`
	UserID       int64           `json:"user_id"`
	Currency     string          `json:"currency"`
	CryptoAmount decimal.Decimal `json:"crypto_amount"`
	USDAmount    decimal.Decimal `json:"usd_amount"`
	AccountType  string          `json:"account_type"`
	Status       string          `json:"status"`
	AdminNotes   string          `json:"admin_notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CreateFundingRequestParams is the input for a new funding request.
type CreateFundingRequestParams struct {
	UserID       int64
	Currency     string
	CryptoAmount decimal.Decimal
	USDAmount    decimal.Decimal
	AccountType  string
}

// FundingApproveResult is the result of the approval unit of work.
type FundingApproveResult struct {
	Request     FundingRequest `json:"request"`
	Account     Account        `json:"account"`
	Wallet      Wallet         `json:"wallet"`
	BankEntry   Entry          `json:"bank_entry"`
	CryptoEntry CryptoEntry    `json:"crypto_entry"`
}
