// Package accountservice manages business logic layer of fiat accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/randompkg"
)

// numberAttempts bounds account number generation before provisioning
// is declared failed.
const numberAttempts = 10

// numberDigits is the random digit count after the type prefix.
const numberDigits = 9

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, userID int64, number, accountType string) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByUserAndType(ctx context.Context, userID int64, accountType string) (domain.Account, error)
	GetByUserAndNumber(ctx context.Context, userID int64, number string) (domain.Account, error)
	List(ctx context.Context, userID int64) ([]domain.Account, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

// EntryRepo provides ledger read access needed by account service layer.
type EntryRepo interface {
	Get(ctx context.Context, userID, entryID int64) (domain.Entry, error)
	CountByAccount(ctx context.Context, accountID int64) (int64, error)
	ListByAccount(ctx context.Context, accountID int64, limit int32) ([]domain.Entry, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]domain.Entry, error)
}

// TxRepo provides the balance mutation units of work needed by account
// service layer.
type TxRepo interface {
	DepositTx(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (domain.Account, domain.Entry, error)
	WithdrawTx(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (domain.Account, domain.Entry, error)
	AdjustTx(ctx context.Context, accountID int64, delta decimal.Decimal, description string) (domain.Account, domain.Entry, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo    Repo
	entries EntryRepo
	tx      TxRepo
}

// New returns account service struct to manage account business logic.
func New(ar Repo, er EntryRepo, tr TxRepo) *Service {
	return &Service{repo: ar, entries: er, tx: tr}
}

// Create opens an account of the given type with a generated unique
// number. Generation retries on collisions and gives up after a fixed
// number of attempts.
func (s *Service) Create(ctx context.Context, userID int64, accountType string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if !domain.IsValidAccountType(accountType) {
		return domain.Account{}, domain.ErrInvalidAccountType
	}

	if _, err := s.repo.GetByUserAndType(ctx, userID, accountType); err == nil {
		return domain.Account{}, domain.ErrAccountTypeExists
	} else if err != domain.ErrAccountNotFound {
		return domain.Account{}, err
	}

	prefix := domain.NumberPrefix(accountType)

	for attempt := 0; attempt < numberAttempts; attempt++ {
		number := prefix + randompkg.Digits(numberDigits)

		exists, err := s.repo.NumberExists(ctx, number)
		if err != nil {
			return domain.Account{}, err
		}

		if exists {
			continue
		}

		account, err := s.repo.Create(ctx, userID, number, accountType)
		if err == domain.ErrNumberTaken {
			continue
		}

		return account, err
	}

	l.Error().Int64("user_id", userID).Msg("account number generation exhausted")

	return domain.Account{}, domain.ErrProvisioningFailed
}

// List returns all accounts of the user.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Account, error) {
	return s.repo.List(ctx, userID)
}

// Get returns the user's account with the given number together with
// its recent entries.
func (s *Service) Get(ctx context.Context, userID int64, number string, entryLimit int32) (domain.Account, []domain.Entry, error) {
	account, err := s.repo.GetByUserAndNumber(ctx, userID, number)
	if err != nil {
		return domain.Account{}, nil, err
	}

	entries, err := s.entries.ListByAccount(ctx, account.ID, entryLimit)
	if err != nil {
		return domain.Account{}, nil, err
	}

	return account, entries, nil
}

// resolve picks the target account: by number when given, otherwise
// the user's oldest account.
func (s *Service) resolve(ctx context.Context, userID int64, number string) (domain.Account, error) {
	if number != "" {
		return s.repo.GetByUserAndNumber(ctx, userID, number)
	}

	accounts, err := s.repo.List(ctx, userID)
	if err != nil {
		return domain.Account{}, err
	}

	if len(accounts) == 0 {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return accounts[0], nil
}

// Deposit credits the account. The first deposit ever made to an
// account must meet the opening floor for its type.
func (s *Service) Deposit(ctx context.Context, userID int64, number string, amount decimal.Decimal) (domain.Account, domain.Entry, error) {
	if !amount.IsPositive() {
		return domain.Account{}, domain.Entry{}, domain.ErrInvalidAmount
	}

	account, err := s.resolve(ctx, userID, number)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	count, err := s.entries.CountByAccount(ctx, account.ID)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	if count == 0 && amount.LessThan(domain.InitialDepositFloor(account.Type)) {
		return domain.Account{}, domain.Entry{}, domain.ErrFirstDepositTooSmall
	}

	return s.tx.DepositTx(ctx, account.ID, amount, "Cash deposit")
}

// Withdraw debits the account, honoring its minimum balance.
func (s *Service) Withdraw(ctx context.Context, userID int64, number string, amount decimal.Decimal) (domain.Account, domain.Entry, error) {
	if !amount.IsPositive() {
		return domain.Account{}, domain.Entry{}, domain.ErrInvalidAmount
	}

	account, err := s.resolve(ctx, userID, number)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	return s.tx.WithdrawTx(ctx, account.ID, amount, "Cash withdrawal")
}

// Adjust applies an admin correction to the user's account of the
// given type. Minimum balance rules do not apply; the balance still
// cannot go negative.
func (s *Service) Adjust(ctx context.Context, userID int64, accountType string, delta decimal.Decimal, reason string) (domain.Account, domain.Entry, error) {
	if delta.IsZero() {
		return domain.Account{}, domain.Entry{}, domain.ErrInvalidAmount
	}

	if !domain.IsValidAccountType(accountType) {
		return domain.Account{}, domain.Entry{}, domain.ErrInvalidAccountType
	}

	account, err := s.repo.GetByUserAndType(ctx, userID, accountType)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	description := "Admin adjustment"
	if reason != "" {
		description += ": " + reason
	}

	return s.tx.AdjustTx(ctx, account.ID, delta, description)
}

// Transactions returns the user's entries across all accounts.
func (s *Service) Transactions(ctx context.Context, userID int64, limit, offset int32) ([]domain.Entry, error) {
	return s.entries.ListByUser(ctx, userID, limit, offset)
}

// Transaction returns one entry scoped to the user.
func (s *Service) Transaction(ctx context.Context, userID, entryID int64) (domain.Entry, error) {
	return s.entries.Get(ctx, userID, entryID)
}
