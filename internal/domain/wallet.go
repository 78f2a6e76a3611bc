package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound indicates that the crypto wallet is not found.
	ErrWalletNotFound = errors.New("crypto wallet not found")
	// ErrUnsupportedCurrency indicates a currency outside the supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrInsufficientCryptoFunds indicates that the wallet balance does not cover the amount.
	ErrInsufficientCryptoFunds = errors.New("insufficient crypto balance")
	// ErrBelowMinWithdrawal indicates an external withdrawal below the currency minimum.
	ErrBelowMinWithdrawal = errors.New("amount is below the minimum withdrawal")
)

// Crypto entry kinds and confirmation statuses.
const (
	CryptoDeposit    = "deposit"
	CryptoWithdrawal = "withdrawal"

	CryptoPending   = "pending"
	CryptoConfirmed = "confirmed"
)

// Wallet holds a user's balance for one crypto currency. The deposit
// address is generated once and stable for the wallet lifetime.
type Wallet struct {
	ID        int64           `json:"wallet_id"`
	UserID    int64           `json:"user_id"`
	Currency  string          `json:"currency"`
	Address   string          `json:"address"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// CryptoTxResult is the result of a unit of work that touched a wallet
// and, for dual-ledger operations, the paired fiat account.
type CryptoTxResult struct {
	Account     Account     `json:"account,omitempty"`
	Wallet      Wallet      `json:"wallet"`
	BankEntry   Entry       `json:"bank_entry,omitempty"`
	CryptoEntry CryptoEntry `json:"crypto_entry"`
}

// CryptoEntry is the immutable audit record of a wallet balance change.
// USDValue captures the exchange rate at the time of recording.
type CryptoEntry struct {
	ID        int64           `json:"id"`
	WalletID  int64           `json:"wallet_id"`
	Kind      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	USDValue  decimal.Decimal `json:"usd_value"`
	Address   string          `json:"address,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
