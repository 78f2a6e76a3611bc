// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"

	"github.com/go-petr/nexa-bank/internal/domain"
)

// Repo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Repo interface {
	InternalTransferTx(ctx context.Context, arg domain.InternalTransferParams) (domain.TransferTxResult, error)
	ExternalTransferTx(ctx context.Context, arg domain.ExternalTransferParams) (domain.TransferTxResult, error)
}

// BeneficiaryRepo provides saved recipient access needed by transfer
// service layer.
type BeneficiaryRepo interface {
	Create(ctx context.Context, userID int64, accountNumber, name, bankName string) (domain.Beneficiary, error)
	List(ctx context.Context, userID int64) ([]domain.Beneficiary, error)
}

// AccountRepo resolves transfer targets by account number.
type AccountRepo interface {
	GetByNumber(ctx context.Context, number string) (domain.Account, error)
}

// Service facilitates transfer service layer logic.
type Service struct {
	repo          Repo
	beneficiaries BeneficiaryRepo
	accounts      AccountRepo
}

// New returns transfer service struct to manage transfer business logic.
func New(tr Repo, br BeneficiaryRepo, ar AccountRepo) *Service {
	return &Service{repo: tr, beneficiaries: br, accounts: ar}
}

// Internal moves money between the user's own savings and checking
// accounts.
func (s *Service) Internal(ctx context.Context, arg domain.InternalTransferParams) (domain.TransferTxResult, error) {
	if !arg.Amount.IsPositive() {
		return domain.TransferTxResult{}, domain.ErrInvalidAmount
	}

	if !domain.IsValidAccountType(arg.FromType) || !domain.IsValidAccountType(arg.ToType) {
		return domain.TransferTxResult{}, domain.ErrInvalidAccountType
	}

	if arg.FromType == arg.ToType {
		return domain.TransferTxResult{}, domain.ErrSameAccount
	}

	return s.repo.InternalTransferTx(ctx, arg)
}

// External moves money to another user's account. Transfers are capped
// per operation; self transfers are rejected inside the unit of work.
func (s *Service) External(ctx context.Context, arg domain.ExternalTransferParams) (domain.TransferTxResult, error) {
	if !arg.Amount.IsPositive() {
		return domain.TransferTxResult{}, domain.ErrInvalidAmount
	}

	if arg.Amount.GreaterThan(domain.ExternalTransferLimit) {
		return domain.TransferTxResult{}, domain.ErrTransferLimitExceeded
	}

	return s.repo.ExternalTransferTx(ctx, arg)
}

// AddBeneficiary saves a recipient for future transfers. The target
// account must exist; the number match is case-insensitive.
func (s *Service) AddBeneficiary(ctx context.Context, userID int64, accountNumber, name, bankName string) (domain.Beneficiary, error) {
	if _, err := s.accounts.GetByNumber(ctx, accountNumber); err != nil {
		return domain.Beneficiary{}, err
	}

	return s.beneficiaries.Create(ctx, userID, accountNumber, name, bankName)
}

// Beneficiaries returns the user's saved recipients.
func (s *Service) Beneficiaries(ctx context.Context, userID int64) ([]domain.Beneficiary, error) {
	return s.beneficiaries.List(ctx, userID)
}
