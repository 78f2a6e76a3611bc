// Package transferrepo owns the fiat money movement units of work.
// Each operation runs in one database transaction and drives every
// balance change through the mutation engine.
package transferrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/accountrepo"
	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/mutation"
	"github.com/go-petr/nexa-bank/internal/userrepo"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates transfer repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns transfer RepoPGS.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{conn: conn}
}

func (r *RepoPGS) beginTx(ctx context.Context) (*sql.Tx, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return tx, nil
}

func commit(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const claimKeyQuery = `
INSERT INTO idempotency_keys (user_id, idempotency_key)
VALUES ($1, $2)
`

// claimKey records the idempotency key inside the transfer's
// transaction, so the key is only consumed by a committed transfer.
// A key is unique per user.
func claimKey(ctx context.Context, tx *sql.Tx, userID int64, key string) error {
	if key == "" {
		return nil
	}

	if _, err := tx.ExecContext(ctx, claimKeyQuery, userID, key); err != nil {
		l := zerolog.Ctx(ctx)
		l.Info().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "idempotency_keys_user_id_idempotency_key_key" {
				return domain.ErrDuplicateRequest
			}
		}

		return errorspkg.ErrInternal
	}

	return nil
}

// DepositTx credits the account and appends the matching entry.
func (r *RepoPGS) DepositTx(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (domain.Account, domain.Entry, error) {
	tx, err := r.beginTx(ctx)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}
	defer tx.Rollback()

	accounts := accountrepo.NewRepoPGS(tx)

	account, err := accounts.Get(ctx, accountID)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	target := accounts.LedgerTarget(account)

	if _, err := mutation.Apply(ctx, target, amount, description, mutation.Policy{}); err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	if err := commit(ctx, tx); err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	return target.Account, target.Entry, nil
}

// WithdrawTx debits the account, honoring its minimum balance.
func (r *RepoPGS) WithdrawTx(ctx context.Context, accountID int64, amount decimal.Decimal, description string) (domain.Account, domain.Entry, error) {
	tx, err := r.beginTx(ctx)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}
	defer tx.Rollback()

	accounts := accountrepo.NewRepoPGS(tx)

	account, err := accounts.Get(ctx, accountID)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	target := accounts.LedgerTarget(account)

	_, err = mutation.Apply(ctx, target, amount.Neg(), description, mutation.MinimumFor(account.Type))
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	if err := commit(ctx, tx); err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	return target.Account, target.Entry, nil
}

// AdjustTx applies a signed correction to the account. Minimum balance
// rules do not apply, the engine still refuses a negative result.
func (r *RepoPGS) AdjustTx(ctx context.Context, accountID int64, delta decimal.Decimal, description string) (domain.Account, domain.Entry, error) {
	tx, err := r.beginTx(ctx)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}
	defer tx.Rollback()

	accounts := accountrepo.NewRepoPGS(tx)

	account, err := accounts.Get(ctx, accountID)
	if err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	target := accounts.LedgerTarget(account)

	if _, err := mutation.Apply(ctx, target, delta, description, mutation.Policy{}); err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	if err := commit(ctx, tx); err != nil {
		return domain.Account{}, domain.Entry{}, err
	}

	return target.Account, target.Entry, nil
}

// InternalTransferTx moves money between two accounts of one user.
// The debit honors the source account's minimum balance; the paired
// entries make the transfer conserve total funds.
func (r *RepoPGS) InternalTransferTx(ctx context.Context, arg domain.InternalTransferParams) (domain.TransferTxResult, error) {
	var res domain.TransferTxResult

	tx, err := r.beginTx(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	if err := claimKey(ctx, tx, arg.UserID, arg.IdempotencyKey); err != nil {
		return res, err
	}

	accounts := accountrepo.NewRepoPGS(tx)

	from, err := accounts.GetByUserAndType(ctx, arg.UserID, arg.FromType)
	if err != nil {
		return res, err
	}

	to, err := accounts.GetByUserAndType(ctx, arg.UserID, arg.ToType)
	if err != nil {
		return res, err
	}

	if from.ID == to.ID {
		return res, domain.ErrSameAccount
	}

	outDesc := "Transfer to " + to.Type
	inDesc := "Transfer from " + from.Type

	if arg.Description != "" {
		outDesc = fmt.Sprintf("%s: %s", outDesc, arg.Description)
		inDesc = fmt.Sprintf("%s: %s", inDesc, arg.Description)
	}

	fromTarget := accounts.LedgerTarget(from)
	toTarget := accounts.LedgerTarget(to)

	err = mutation.ApplyPair(ctx,
		mutation.Leg{LockOrder: from.ID, Target: fromTarget, Delta: arg.Amount.Neg(), Description: outDesc, Policy: mutation.MinimumFor(from.Type)},
		mutation.Leg{LockOrder: to.ID, Target: toTarget, Delta: arg.Amount, Description: inDesc},
	)
	if err != nil {
		return res, err
	}

	if err := commit(ctx, tx); err != nil {
		return res, err
	}

	res.FromAccount = fromTarget.Account
	res.ToAccount = toTarget.Account
	res.FromEntry = fromTarget.Entry
	res.ToEntry = toTarget.Entry

	return res, nil
}

// ExternalTransferTx moves money to another user's account, resolved
// by account number regardless of case.
func (r *RepoPGS) ExternalTransferTx(ctx context.Context, arg domain.ExternalTransferParams) (domain.TransferTxResult, error) {
	var res domain.TransferTxResult

	tx, err := r.beginTx(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	if err := claimKey(ctx, tx, arg.SenderUserID, arg.IdempotencyKey); err != nil {
		return res, err
	}

	accounts := accountrepo.NewRepoPGS(tx)
	users := userrepo.NewRepoPGS(tx)

	from, err := accounts.GetByUserAndNumber(ctx, arg.SenderUserID, arg.FromNumber)
	if err != nil {
		return res, err
	}

	to, err := accounts.GetByNumber(ctx, arg.ToNumber)
	if err != nil {
		return res, err
	}

	if to.UserID == from.UserID {
		return res, domain.ErrSelfTransfer
	}

	sender, err := users.Get(ctx, from.UserID)
	if err != nil {
		return res, err
	}

	recipient, err := users.Get(ctx, to.UserID)
	if err != nil {
		return res, err
	}

	outDesc := "Transfer to " + recipient.FullName
	inDesc := "Transfer from " + sender.FullName

	if arg.Description != "" {
		outDesc = fmt.Sprintf("%s: %s", outDesc, arg.Description)
		inDesc = fmt.Sprintf("%s: %s", inDesc, arg.Description)
	}

	fromTarget := accounts.LedgerTarget(from)
	toTarget := accounts.LedgerTarget(to)

	err = mutation.ApplyPair(ctx,
		mutation.Leg{LockOrder: from.ID, Target: fromTarget, Delta: arg.Amount.Neg(), Description: outDesc, Policy: mutation.MinimumFor(from.Type)},
		mutation.Leg{LockOrder: to.ID, Target: toTarget, Delta: arg.Amount, Description: inDesc},
	)
	if err != nil {
		return res, err
	}

	if err := commit(ctx, tx); err != nil {
		return res, err
	}

	res.FromAccount = fromTarget.Account
	res.ToAccount = toTarget.Account
	res.FromEntry = fromTarget.Entry
	res.ToEntry = toTarget.Entry

	return res, nil
}
