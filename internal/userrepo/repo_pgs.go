// Package userrepo manages repository layer of users. User rows are
// owned by the identity collaborator; this repo only reads them.
package userrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/dbpkg"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getQuery = `
SELECT user_id, email, full_name, is_admin, created_at
FROM users
WHERE user_id = $1
`

// Get returns the user with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.IsAdmin,
		&u.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const listQuery = `
SELECT user_id, email, full_name, is_admin, created_at
FROM users
ORDER BY created_at DESC
`

// List returns all users.
func (r *RepoPGS) List(ctx context.Context) ([]domain.User, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.User{}

	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.IsAdmin, &u.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, u)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
