package walletrepo

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// LedgerTarget adapts one wallet row to the balance mutation engine.
// USDValue, Address and Status describe the crypto entry the mutation
// will append; the engine supplies kind and amount.
type LedgerTarget struct {
	repo *RepoPGS

	Wallet domain.Wallet
	Entry  domain.CryptoEntry

	USDValue decimal.Decimal
	Address  string
	Status   string
}

// LedgerTarget scopes the given wallet to this repo's unit of work.
func (r *RepoPGS) LedgerTarget(wallet domain.Wallet, usdValue decimal.Decimal, address, status string) *LedgerTarget {
	return &LedgerTarget{
		repo:     r,
		Wallet:   wallet,
		USDValue: usdValue,
		Address:  address,
		Status:   status,
	}
}

// Balance returns the balance read when the wallet was loaded.
func (t *LedgerTarget) Balance() decimal.Decimal {
	return t.Wallet.Balance
}

const setBalanceQuery = `
UPDATE wallets
SET balance = $1
WHERE wallet_id = $2 AND balance = $3
`

// SetBalance writes the new balance only if the stored balance still
// equals the one this target was loaded with.
func (t *LedgerTarget) SetBalance(ctx context.Context, balance decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	res, err := t.repo.db.ExecContext(ctx, setBalanceQuery,
		balance, t.Wallet.ID, t.Wallet.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if affected == 0 {
		return errorspkg.ErrConflict
	}

	t.Wallet.Balance = balance

	return nil
}

// AppendEntry records the mutation in the wallet's crypto ledger. The
// resulting balance is implied by the ordered entries, so only the
// moved amount is stored.
func (t *LedgerTarget) AppendEntry(ctx context.Context, kind string, amount, _ decimal.Decimal, _ string) error {
	entryKind := domain.CryptoDeposit
	if kind == domain.EntryWithdraw {
		entryKind = domain.CryptoWithdrawal
	}

	entry, err := t.repo.createEntry(ctx, t.Wallet.ID, entryKind, amount, t.USDValue, t.Address, t.Status)
	if err != nil {
		return err
	}

	t.Entry = entry

	return nil
}
