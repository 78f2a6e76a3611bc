package accountrepo

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/entryrepo"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// LedgerTarget adapts one account row to the balance mutation engine.
// After a successful mutation it carries the updated account and the
// appended entry.
type LedgerTarget struct {
	repo    *RepoPGS
	entries *entryrepo.RepoPGS

	Account domain.Account
	Entry   domain.Entry
}

// LedgerTarget scopes the given account to this repo's unit of work.
func (r *RepoPGS) LedgerTarget(account domain.Account) *LedgerTarget {
	return &LedgerTarget{
		repo:    r,
		entries: entryrepo.NewRepoPGS(r.db),
		Account: account,
	}
}

// Balance returns the balance read when the account was loaded.
func (t *LedgerTarget) Balance() decimal.Decimal {
	return t.Account.Balance
}

const setBalanceQuery = `
UPDATE accounts
SET balance = $1
WHERE account_id = $2 AND balance = $3
`

// SetBalance writes the new balance only if the stored balance still
// equals the one this target was loaded with. A concurrent change
// makes the write miss and surfaces as ErrConflict.
func (t *LedgerTarget) SetBalance(ctx context.Context, balance decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	res, err := t.repo.db.ExecContext(ctx, setBalanceQuery,
		balance, t.Account.ID, t.Account.Balance)
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

	t.Account.Balance = balance

	return nil
}

// AppendEntry records the mutation in the account's ledger.
func (t *LedgerTarget) AppendEntry(ctx context.Context, kind string, amount, balanceAfter decimal.Decimal, description string) error {
	entry, err := t.entries.Create(ctx, t.Account.ID, kind, amount, balanceAfter, description)
	if err != nil {
		return err
	}

	t.Entry = entry

	return nil
}
