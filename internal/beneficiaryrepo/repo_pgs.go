// Package beneficiaryrepo manages repository layer of saved external
// transfer recipients.
package beneficiaryrepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/dbpkg"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates beneficiary repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns beneficiary RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO beneficiaries (user_id, account_number, name, bank_name)
VALUES ($1, $2, $3, $4)
RETURNING beneficiary_id, user_id, account_number, name, bank_name, created_at
`

// Create saves a recipient for future transfers. The account number is
// unique per user regardless of case.
func (r *RepoPGS) Create(ctx context.Context, userID int64, accountNumber, name, bankName string) (domain.Beneficiary, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, userID, accountNumber, name, bankName)

	var b domain.Beneficiary

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.AccountNumber,
		&b.Name,
		&b.BankName,
		&b.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "beneficiaries_user_id_account_number_idx":
				return b, domain.ErrBeneficiaryExists
			case "beneficiaries_user_id_fkey":
				return b, domain.ErrUserNotFound
			}
		}

		return b, errorspkg.ErrInternal
	}

	return b, nil
}

const listQuery = `
SELECT beneficiary_id, user_id, account_number, name, bank_name, created_at
FROM beneficiaries
WHERE user_id = $1
ORDER BY created_at DESC
`

// List returns the user's saved recipients, newest first.
func (r *RepoPGS) List(ctx context.Context, userID int64) ([]domain.Beneficiary, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Beneficiary{}

	for rows.Next() {
		var b domain.Beneficiary

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.AccountNumber,
			&b.Name,
			&b.BankName,
			&b.CreatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
