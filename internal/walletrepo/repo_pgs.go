// Package walletrepo manages repository layer of crypto wallets and
// their ledger entries.
package walletrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/dbpkg"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates wallet repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns wallet RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO wallets (user_id, currency, address, balance)
VALUES ($1, $2, $3, 0)
RETURNING wallet_id, user_id, currency, address, balance, created_at
`

// Create opens an empty wallet with the given deposit address.
func (r *RepoPGS) Create(ctx context.Context, userID int64, currency, address string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID, currency, address)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Currency,
		&w.Address,
		&w.Balance,
		&w.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "wallets_user_id_fkey" {
				return w, domain.ErrUserNotFound
			}
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const getQuery = `
SELECT wallet_id, user_id, currency, address, balance, created_at
FROM wallets
WHERE wallet_id = $1
`

// Get returns the wallet with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Currency,
		&w.Address,
		&w.Balance,
		&w.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return w, domain.ErrWalletNotFound
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const getByUserAndCurrencyQuery = `
SELECT wallet_id, user_id, currency, address, balance, created_at
FROM wallets
WHERE user_id = $1 AND currency = $2
`

// GetByUserAndCurrency returns the user's wallet for the currency.
func (r *RepoPGS) GetByUserAndCurrency(ctx context.Context, userID int64, currency string) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByUserAndCurrencyQuery, userID, currency)

	var w domain.Wallet

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Currency,
		&w.Address,
		&w.Balance,
		&w.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return w, domain.ErrWalletNotFound
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const listByUserQuery = `
SELECT wallet_id, user_id, currency, address, balance, created_at
FROM wallets
WHERE user_id = $1
ORDER BY currency
`

// ListByUser returns all wallets of the user.
func (r *RepoPGS) ListByUser(ctx context.Context, userID int64) ([]domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Wallet{}

	for rows.Next() {
		var w domain.Wallet

		err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Currency,
			&w.Address,
			&w.Balance,
			&w.CreatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listEntriesQuery = `
SELECT ce.crypto_entry_id, ce.wallet_id, ce.kind, ce.amount, ce.usd_value, ce.address, ce.status, ce.created_at
FROM crypto_entries ce
JOIN wallets w ON w.wallet_id = ce.wallet_id
WHERE w.user_id = $1
ORDER BY ce.created_at DESC, ce.crypto_entry_id DESC
LIMIT $2
`

// ListEntriesByUser returns the user's crypto ledger entries across
// all wallets, newest first.
func (r *RepoPGS) ListEntriesByUser(ctx context.Context, userID int64, limit int32) ([]domain.CryptoEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listEntriesQuery, userID, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.CryptoEntry{}

	for rows.Next() {
		var e domain.CryptoEntry

		err := rows.Scan(
			&e.ID,
			&e.WalletID,
			&e.Kind,
			&e.Amount,
			&e.USDValue,
			&e.Address,
			&e.Status,
			&e.CreatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const createEntryQuery = `
INSERT INTO crypto_entries (wallet_id, kind, amount, usd_value, address, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING crypto_entry_id, wallet_id, kind, amount, usd_value, address, status, created_at
`

func (r *RepoPGS) createEntry(ctx context.Context, walletID int64, kind string, amount, usdValue decimal.Decimal, address, status string) (domain.CryptoEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createEntryQuery,
		walletID, kind, amount, usdValue, address, status)

	var e domain.CryptoEntry

	err := row.Scan(
		&e.ID,
		&e.WalletID,
		&e.Kind,
		&e.Amount,
		&e.USDValue,
		&e.Address,
		&e.Status,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	return e, nil
}
