// Package fundingservice manages business logic layer of crypto
// funding requests.
package fundingservice

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/currencypkg"
)

// pendingListLimit caps the user's pending request listing.
const pendingListLimit = 5

// Repo provides data access layer interface needed by funding service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package fundingservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateFundingRequestParams) (domain.FundingRequest, error)
	Get(ctx context.Context, id int64) (domain.FundingRequest, error)
	ListPendingByUser(ctx context.Context, userID int64, limit int32) ([]domain.FundingRequest, error)
	ListPending(ctx context.Context) ([]domain.FundingRequest, error)
	ApproveTx(ctx context.Context, requestID int64, notes string) (domain.FundingApproveResult, error)
	Reject(ctx context.Context, requestID int64, notes string) (domain.FundingRequest, error)
}

// Oracle provides USD rates needed by funding service layer.
type Oracle interface {
	CryptoPrices(ctx context.Context) map[string]decimal.Decimal
}

// Service facilitates funding request service layer logic.
type Service struct {
	repo   Repo
	oracle Oracle
}

// New returns funding service struct to manage funding business logic.
func New(r Repo, o Oracle) *Service {
	return &Service{repo: r, oracle: o}
}

// Request submits a pending funding request. The USD amount is locked
// to the current rate and never recomputed, even if approval happens
// much later.
func (s *Service) Request(ctx context.Context, userID int64, currency, accountType string, cryptoAmount decimal.Decimal) (domain.FundingRequest, error) {
	currency = strings.ToUpper(currency)
	if !currencypkg.IsSupportedCurrency(currency) {
		return domain.FundingRequest{}, domain.ErrUnsupportedCurrency
	}

	if !cryptoAmount.IsPositive() {
		return domain.FundingRequest{}, domain.ErrInvalidAmount
	}

	if !domain.IsValidAccountType(accountType) {
		return domain.FundingRequest{}, domain.ErrInvalidAccountType
	}

	rate := s.oracle.CryptoPrices(ctx)[currency]

	return s.repo.Create(ctx, domain.CreateFundingRequestParams{
		UserID:       userID,
		Currency:     currency,
		CryptoAmount: cryptoAmount,
		USDAmount:    cryptoAmount.Mul(rate),
		AccountType:  accountType,
	})
}

// Pending returns the user's pending requests, newest first.
func (s *Service) Pending(ctx context.Context, userID int64) ([]domain.FundingRequest, error) {
	return s.repo.ListPendingByUser(ctx, userID, pendingListLimit)
}

// ReviewQueue returns all pending requests, oldest first.
func (s *Service) ReviewQueue(ctx context.Context) ([]domain.FundingRequest, error) {
	return s.repo.ListPending(ctx)
}

// Approve settles a pending request, crediting the user's fiat account
// and wallet with the amounts locked at submission.
func (s *Service) Approve(ctx context.Context, requestID int64, notes string) (domain.FundingApproveResult, error) {
	return s.repo.ApproveTx(ctx, requestID, notes)
}

// Reject declines a pending request. No balances move.
func (s *Service) Reject(ctx context.Context, requestID int64, notes string) (domain.FundingRequest, error) {
	return s.repo.Reject(ctx, requestID, notes)
}
