package domain

import (
	"errors"
	"time"
)

// ErrBeneficiaryExists indicates a duplicate saved transfer target.
var ErrBeneficiaryExists = errors.New("beneficiary already exists")

// Beneficiary is a saved external transfer target of a user.
type Beneficiary struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	BankName      string    `json:"bank_name"`
	CreatedAt     time.Time `json:"created_at"`
}
