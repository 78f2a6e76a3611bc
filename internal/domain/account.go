package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountTypeExists indicates that the user already holds an account of the given type.
	ErrAccountTypeExists = errors.New("account of this type already exists")
	// ErrInvalidAccountType indicates an unknown account type.
	ErrInvalidAccountType = errors.New("account type must be savings or checking")
	// ErrOwnerNotFound indicates that the owner for the account is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrProvisioningFailed indicates that a unique account number could not be generated.
	ErrProvisioningFailed = errors.New("failed to generate unique account number")
	// ErrNumberTaken indicates that the generated account number is already in use.
	ErrNumberTaken = errors.New("account number already in use")
	// ErrFirstDepositTooSmall indicates that the opening deposit is below the account type floor.
	ErrFirstDepositTooSmall = errors.New("first deposit is below the account type minimum")
)

// Supported account types.
const (
	Savings  = "savings"
	Checking = "checking"
)

// IsValidAccountType returns true for a known account type.
func IsValidAccountType(accountType string) bool {
	return accountType == Savings || accountType == Checking
}

// NumberPrefix returns the account number prefix bound to the account type.
func NumberPrefix(accountType string) string {
	if accountType == Savings {
		return "NBS"
	}

	return "NBC"
}

// MinimumBalance returns the balance every committed mutation must preserve.
func MinimumBalance(accountType string) decimal.Decimal {
	if accountType == Savings {
		return decimal.NewFromInt(10)
	}

	return decimal.NewFromInt(5)
}

// InitialDepositFloor returns the minimum first-ever deposit for the account type.
func InitialDepositFloor(accountType string) decimal.Decimal {
	if accountType == Savings {
		return decimal.NewFromInt(100)
	}

	return decimal.NewFromInt(50)
}

// Account holds a fiat balance of a single type for one user.
type Account struct {
	ID        int64           `json:"account_id"`
	UserID    int64           `json:"user_id"`
	Number    string          `json:"account_number"`
	Type      string          `json:"account_type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
