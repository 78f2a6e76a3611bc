// Package entryrepo manages repository layer of fiat ledger entries.
package entryrepo

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

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO entries (account_id, kind, amount, balance_after, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING entry_id, account_id, kind, amount, balance_after, description, created_at
`

// Create appends an immutable entry to the account's ledger.
func (r *RepoPGS) Create(ctx context.Context, accountID int64, kind string, amount, balanceAfter decimal.Decimal, description string) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		accountID, kind, amount, balanceAfter, description)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Kind,
		&e.Amount,
		&e.BalanceAfter,
		&e.Description,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "entries_account_id_fkey" {
				return e, domain.ErrAccountNotFound
			}
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const getQuery = `
SELECT e.entry_id, e.account_id, e.kind, e.amount, e.balance_after, e.description, e.created_at
FROM entries e
JOIN accounts a ON a.account_id = e.account_id
WHERE e.entry_id = $1 AND a.user_id = $2
`

// Get returns one entry scoped to the owning user.
func (r *RepoPGS) Get(ctx context.Context, userID, entryID int64) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, entryID, userID)

	var e domain.Entry

	err := row.Scan(
		&e.ID,
		&e.AccountID,
		&e.Kind,
		&e.Amount,
		&e.BalanceAfter,
		&e.Description,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

const countByAccountQuery = `
SELECT count(*) FROM entries WHERE account_id = $1
`

// CountByAccount returns the number of entries an account has.
func (r *RepoPGS) CountByAccount(ctx context.Context, accountID int64) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	if err := r.db.QueryRowContext(ctx, countByAccountQuery, accountID).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const listByUserQuery = `
SELECT e.entry_id, e.account_id, e.kind, e.amount, e.balance_after, e.description, e.created_at
FROM entries e
JOIN accounts a ON a.account_id = e.account_id
WHERE a.user_id = $1
ORDER BY e.created_at DESC, e.entry_id DESC
LIMIT $2 OFFSET $3
`

// ListByUser returns entries across all of the user's accounts,
// newest first.
func (r *RepoPGS) ListByUser(ctx context.Context, userID int64, limit, offset int32) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Entry{}

	for rows.Next() {
		var e domain.Entry

		err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.Kind,
			&e.Amount,
			&e.BalanceAfter,
			&e.Description,
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

const listByAccountQuery = `
SELECT entry_id, account_id, kind, amount, balance_after, description, created_at
FROM entries
WHERE account_id = $1
ORDER BY created_at DESC, entry_id DESC
LIMIT $2
`

// ListByAccount returns the account's most recent entries.
func (r *RepoPGS) ListByAccount(ctx context.Context, accountID int64, limit int32) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByAccountQuery, accountID, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Entry{}

	for rows.Next() {
		var e domain.Entry

		err := rows.Scan(
			&e.ID,
			&e.AccountID,
			&e.Kind,
			&e.Amount,
			&e.BalanceAfter,
			&e.Description,
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
