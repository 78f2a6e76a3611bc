// Package fundingrepo manages repository layer of crypto funding
// requests and their approval unit of work.
package fundingrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/nexa-bank/internal/accountrepo"
	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/mutation"
	"github.com/go-petr/nexa-bank/internal/walletrepo"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates funding request repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns funding RepoPGS.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{conn: conn}
}

const createQuery = `
INSERT INTO funding_requests (user_id, currency, crypto_amount, usd_amount, account_type, status)
VALUES ($1, $2, $3, $4, $5, 'pending')
RETURNING request_id, user_id, currency, crypto_amount, usd_amount, account_type, status, admin_notes, created_at, updated_at
`

// Create records a pending funding request with the USD amount locked
// to the quote taken at submission time.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateFundingRequestParams) (domain.FundingRequest, error) {
	l := zerolog.Ctx(ctx)

	row := r.conn.QueryRowContext(ctx, createQuery,
		arg.UserID, arg.Currency, arg.CryptoAmount, arg.USDAmount, arg.AccountType)

	var fr domain.FundingRequest

	err := scanRequest(row, &fr)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "funding_requests_user_id_fkey" {
				return fr, domain.ErrUserNotFound
			}
		}

		return fr, errorspkg.ErrInternal
	}

	return fr, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner, fr *domain.FundingRequest) error {
	return row.Scan(
		&fr.ID,
		&fr.UserID,
		&fr.Currency,
		&fr.CryptoAmount,
		&fr.USDAmount,
		&fr.AccountType,
		&fr.Status,
		&fr.AdminNotes,
		&fr.CreatedAt,
		&fr.UpdatedAt,
	)
}

const getQuery = `
SELECT request_id, user_id, currency, crypto_amount, usd_amount, account_type, status, admin_notes, created_at, updated_at
FROM funding_requests
WHERE request_id = $1
`

// Get returns the funding request with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.FundingRequest, error) {
	l := zerolog.Ctx(ctx)

	var fr domain.FundingRequest

	err := scanRequest(r.conn.QueryRowContext(ctx, getQuery, id), &fr)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return fr, domain.ErrRequestNotFound
		}

		return fr, errorspkg.ErrInternal
	}

	return fr, nil
}

const listPendingByUserQuery = `
SELECT request_id, user_id, currency, crypto_amount, usd_amount, account_type, status, admin_notes, created_at, updated_at
FROM funding_requests
WHERE user_id = $1 AND status = 'pending'
ORDER BY created_at DESC
LIMIT $2
`

// ListPendingByUser returns the user's pending requests, newest first.
func (r *RepoPGS) ListPendingByUser(ctx context.Context, userID int64, limit int32) ([]domain.FundingRequest, error) {
	return r.list(ctx, listPendingByUserQuery, userID, limit)
}

const listPendingQuery = `
SELECT request_id, user_id, currency, crypto_amount, usd_amount, account_type, status, admin_notes, created_at, updated_at
FROM funding_requests
WHERE status = 'pending'
ORDER BY created_at
`

// ListPending returns all pending requests, oldest first, for the
// admin review queue.
func (r *RepoPGS) ListPending(ctx context.Context) ([]domain.FundingRequest, error) {
	return r.list(ctx, listPendingQuery)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.FundingRequest, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.FundingRequest{}

	for rows.Next() {
		var fr domain.FundingRequest

		if err := scanRequest(rows, &fr); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, fr)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const transitionQuery = `
UPDATE funding_requests
SET status = $1, admin_notes = $2, updated_at = now()
WHERE request_id = $3 AND status = 'pending'
RETURNING request_id, user_id, currency, crypto_amount, usd_amount, account_type, status, admin_notes, created_at, updated_at
`

// ApproveTx settles a pending request: flips it to approved, credits
// the named fiat account with the locked USD amount and mirrors the
// crypto movement in the user's wallet. The status flip is conditional
// on the request still being pending, so two admins cannot both settle
// the same request.
func (r *RepoPGS) ApproveTx(ctx context.Context, requestID int64, notes string) (domain.FundingApproveResult, error) {
	l := zerolog.Ctx(ctx)

	var res domain.FundingApproveResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}
	defer tx.Rollback()

	var fr domain.FundingRequest

	err = scanRequest(tx.QueryRowContext(ctx, transitionQuery, domain.FundingApproved, notes, requestID), &fr)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, r.transitionMiss(ctx, requestID)
		}

		l.Error().Err(err).Send()

		return res, errorspkg.ErrInternal
	}

	accounts := accountrepo.NewRepoPGS(tx)
	wallets := walletrepo.NewRepoPGS(tx)

	account, err := accounts.GetByUserAndType(ctx, fr.UserID, fr.AccountType)
	if err != nil {
		return res, err
	}

	wallet, err := wallets.GetByUserAndCurrency(ctx, fr.UserID, fr.Currency)
	if err != nil {
		return res, err
	}

	accountTarget := accounts.LedgerTarget(account)
	walletTarget := wallets.LedgerTarget(wallet, fr.USDAmount, wallet.Address, domain.CryptoConfirmed)

	desc := fmt.Sprintf("Crypto funding: %s %s", fr.CryptoAmount, fr.Currency)

	if _, err := mutation.Apply(ctx, accountTarget, fr.USDAmount, desc, mutation.Policy{}); err != nil {
		return res, err
	}

	if _, err := mutation.Apply(ctx, walletTarget, fr.CryptoAmount, "", mutation.Policy{}); err != nil {
		return res, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}

	res.Request = fr
	res.Account = accountTarget.Account
	res.Wallet = walletTarget.Wallet
	res.BankEntry = accountTarget.Entry
	res.CryptoEntry = walletTarget.Entry

	return res, nil
}

// Reject flips a pending request to rejected. No balances move.
func (r *RepoPGS) Reject(ctx context.Context, requestID int64, notes string) (domain.FundingRequest, error) {
	l := zerolog.Ctx(ctx)

	var fr domain.FundingRequest

	err := scanRequest(r.conn.QueryRowContext(ctx, transitionQuery, domain.FundingRejected, notes, requestID), &fr)
	if err != nil {
		if err == sql.ErrNoRows {
			return fr, r.transitionMiss(ctx, requestID)
		}

		l.Error().Err(err).Send()

		return fr, errorspkg.ErrInternal
	}

	return fr, nil
}

// transitionMiss distinguishes a missing request from one already
// settled when the conditional status update matched no row.
func (r *RepoPGS) transitionMiss(ctx context.Context, requestID int64) error {
	if _, err := r.Get(ctx, requestID); err != nil {
		return err
	}

	return domain.ErrRequestNotPending
}
