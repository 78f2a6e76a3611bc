// Package accountrepo manages repository layer of fiat accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/dbpkg"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic. It works on
// *sql.DB and *sql.Tx alike so transactional repos can scope it to
// their unit of work.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO accounts (user_id, account_number, account_type, balance)
VALUES ($1, $2, $3, 0)
RETURNING account_id, user_id, account_number, account_type, balance, created_at
`

// Create opens an account with a zero balance.
func (r *RepoPGS) Create(ctx context.Context, userID int64, number, accountType string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID, number, accountType)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Number,
		&a.Type,
		&a.Balance,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_user_id_fkey":
				return a, domain.ErrOwnerNotFound
			case "accounts_user_id_account_type_key":
				return a, domain.ErrAccountTypeExists
			case "accounts_account_number_key":
				return a, domain.ErrNumberTaken
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

func (r *RepoPGS) scanAccount(ctx context.Context, query string, args ...interface{}) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)

	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Number,
		&a.Type,
		&a.Balance,
		&a.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT account_id, user_id, account_number, account_type, balance, created_at
FROM accounts
WHERE account_id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	return r.scanAccount(ctx, getQuery, id)
}

const getByUserAndTypeQuery = `
SELECT account_id, user_id, account_number, account_type, balance, created_at
FROM accounts
WHERE user_id = $1 AND account_type = $2
`

// GetByUserAndType returns the user's account of the given type.
func (r *RepoPGS) GetByUserAndType(ctx context.Context, userID int64, accountType string) (domain.Account, error) {
	return r.scanAccount(ctx, getByUserAndTypeQuery, userID, accountType)
}

const getByNumberQuery = `
SELECT account_id, user_id, account_number, account_type, balance, created_at
FROM accounts
WHERE upper(account_number) = upper($1)
`

// GetByNumber returns the account with the given number. The match is
// case insensitive.
func (r *RepoPGS) GetByNumber(ctx context.Context, number string) (domain.Account, error) {
	return r.scanAccount(ctx, getByNumberQuery, number)
}

const getByUserAndNumberQuery = `
SELECT account_id, user_id, account_number, account_type, balance, created_at
FROM accounts
WHERE user_id = $1 AND upper(account_number) = upper($2)
`

// GetByUserAndNumber returns the account only if the user owns it.
func (r *RepoPGS) GetByUserAndNumber(ctx context.Context, userID int64, number string) (domain.Account, error) {
	return r.scanAccount(ctx, getByUserAndNumberQuery, userID, number)
}

const listQuery = `
SELECT account_id, user_id, account_number, account_type, balance, created_at
FROM accounts
WHERE user_id = $1
ORDER BY created_at
`

// List returns all accounts of the user, oldest first.
func (r *RepoPGS) List(ctx context.Context, userID int64) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account

		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Number,
			&a.Type,
			&a.Balance,
			&a.CreatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const numberExistsQuery = `
SELECT EXISTS (SELECT 1 FROM accounts WHERE upper(account_number) = upper($1))
`

// NumberExists reports whether an account with the number exists.
func (r *RepoPGS) NumberExists(ctx context.Context, number string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool

	if err := r.db.QueryRowContext(ctx, numberExistsQuery, number).Scan(&exists); err != nil {
		l.Error().Err(err).Send()
		return false, errorspkg.ErrInternal
	}

	return exists, nil
}
