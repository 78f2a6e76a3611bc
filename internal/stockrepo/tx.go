package stockrepo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/nexa-bank/internal/accountrepo"
	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/mutation"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

const upsertPositionQuery = `
INSERT INTO positions (user_id, symbol, quantity, average_price, total_invested)
VALUES ($1, upper($2), $3, $4, $5)
ON CONFLICT (user_id, symbol) DO UPDATE
SET quantity = EXCLUDED.quantity,
    average_price = EXCLUDED.average_price,
    total_invested = EXCLUDED.total_invested,
    updated_at = now()
RETURNING position_id, user_id, symbol, quantity, average_price, total_invested, created_at, updated_at
`

const deletePositionQuery = `
DELETE FROM positions
WHERE user_id = $1 AND symbol = upper($2)
`

const createEntryQuery = `
INSERT INTO stock_entries (user_id, symbol, kind, quantity, price, total_amount, order_type, status)
VALUES ($1, upper($2), $3, $4, $5, $6, $7, $8)
RETURNING stock_entry_id, user_id, symbol, kind, quantity, price, total_amount, order_type, status, created_at
`

// BuyTx executes a market buy: debits the fiat account by the order
// total, folds the shares into the position at weighted average cost
// and records the trade.
func (r *RepoPGS) BuyTx(ctx context.Context, arg domain.StockTradeParams) (domain.StockTradeResult, error) {
	l := zerolog.Ctx(ctx)

	var res domain.StockTradeResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}
	defer tx.Rollback()

	accounts := accountrepo.NewRepoPGS(tx)

	account, err := accounts.GetByUserAndType(ctx, arg.UserID, arg.AccountType)
	if err != nil {
		return res, err
	}

	symbol := strings.ToUpper(arg.Symbol)
	totalCost := arg.Quantity.Mul(arg.Price)
	desc := fmt.Sprintf("Stock purchase: %s shares of %s", arg.Quantity, symbol)

	target := accounts.LedgerTarget(account)

	if _, err := mutation.Apply(ctx, target, totalCost.Neg(), desc, mutation.Policy{}); err != nil {
		return res, err
	}

	var position domain.Position

	err = scanPosition(tx.QueryRowContext(ctx, getPositionQuery, arg.UserID, symbol), &position)
	if err != nil && err != sql.ErrNoRows {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}

	position = position.ApplyBuy(arg.Quantity, arg.Price)

	err = scanPosition(tx.QueryRowContext(ctx, upsertPositionQuery,
		arg.UserID, symbol, position.Quantity, position.AveragePrice, position.TotalInvested), &position)
	if err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}

	var entry domain.StockEntry

	err = scanEntry(tx.QueryRowContext(ctx, createEntryQuery,
		arg.UserID, symbol, domain.StockBuy, arg.Quantity, arg.Price, totalCost,
		domain.OrderMarket, domain.OrderCompleted), &entry)
	if err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}

	res.Account = target.Account
	res.Position = position
	res.Entry = entry
	res.BankEntry = target.Entry

	return res, nil
}

// SellTx executes a market sell: removes the shares from the position,
// credits the proceeds to the fiat account and records the trade with
// the realized profit or loss. A closed out position is deleted.
func (r *RepoPGS) SellTx(ctx context.Context, arg domain.StockTradeParams) (domain.StockTradeResult, error) {
	l := zerolog.Ctx(ctx)

	var res domain.StockTradeResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}
	defer tx.Rollback()

	accounts := accountrepo.NewRepoPGS(tx)

	account, err := accounts.GetByUserAndType(ctx, arg.UserID, arg.AccountType)
	if err != nil {
		return res, err
	}

	symbol := strings.ToUpper(arg.Symbol)

	var position domain.Position

	err = scanPosition(tx.QueryRowContext(ctx, getPositionQuery, arg.UserID, symbol), &position)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return res, domain.ErrPositionNotFound
		}

		return res, errorspkg.ErrInternal
	}

	position, realized, err := position.ApplySell(arg.Quantity, arg.Price)
	if err != nil {
		return res, err
	}

	proceeds := arg.Quantity.Mul(arg.Price)
	desc := fmt.Sprintf("Stock sale: %s shares of %s", arg.Quantity, symbol)

	target := accounts.LedgerTarget(account)

	if _, err := mutation.Apply(ctx, target, proceeds, desc, mutation.Policy{}); err != nil {
		return res, err
	}

	if position.Quantity.IsZero() {
		if _, err := tx.ExecContext(ctx, deletePositionQuery, arg.UserID, symbol); err != nil {
			l.Error().Err(err).Send()
			return res, errorspkg.ErrInternal
		}
	} else {
		err = scanPosition(tx.QueryRowContext(ctx, upsertPositionQuery,
			arg.UserID, symbol, position.Quantity, position.AveragePrice, position.TotalInvested), &position)
		if err != nil {
			l.Error().Err(err).Send()
			return res, errorspkg.ErrInternal
		}
	}

	var entry domain.StockEntry

	err = scanEntry(tx.QueryRowContext(ctx, createEntryQuery,
		arg.UserID, symbol, domain.StockSell, arg.Quantity, arg.Price, proceeds,
		domain.OrderMarket, domain.OrderCompleted), &entry)
	if err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return res, errorspkg.ErrInternal
	}

	res.Account = target.Account
	res.Position = position
	res.Entry = entry
	res.BankEntry = target.Entry
	res.RealizedPnL = realized

	return res, nil
}
