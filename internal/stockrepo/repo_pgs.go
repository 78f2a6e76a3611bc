// Package stockrepo manages repository layer of the stock catalog,
// user positions and trade records.
package stockrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates stock repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns stock RepoPGS.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{conn: conn}
}

const createStockQuery = `
INSERT INTO stocks (symbol, company_name, current_price)
VALUES (upper($1), $2, $3)
RETURNING stock_id, symbol, company_name, current_price, daily_change, daily_change_percent, last_updated
`

// CreateStock lists a new symbol in the catalog.
func (r *RepoPGS) CreateStock(ctx context.Context, symbol, companyName string, price decimal.Decimal) (domain.Stock, error) {
	l := zerolog.Ctx(ctx)

	row := r.conn.QueryRowContext(ctx, createStockQuery, symbol, companyName, price)

	var s domain.Stock

	err := scanStock(row, &s)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "stocks_symbol_key" {
				return s, domain.ErrStockExists
			}
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStock(row rowScanner, s *domain.Stock) error {
	return row.Scan(
		&s.ID,
		&s.Symbol,
		&s.CompanyName,
		&s.CurrentPrice,
		&s.DailyChange,
		&s.DailyChangePercent,
		&s.LastUpdated,
	)
}

const getStockQuery = `
SELECT stock_id, symbol, company_name, current_price, daily_change, daily_change_percent, last_updated
FROM stocks
WHERE symbol = upper($1)
`

// GetStock returns the listed stock for the symbol.
func (r *RepoPGS) GetStock(ctx context.Context, symbol string) (domain.Stock, error) {
	l := zerolog.Ctx(ctx)

	var s domain.Stock

	err := scanStock(r.conn.QueryRowContext(ctx, getStockQuery, symbol), &s)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return s, domain.ErrStockNotFound
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

const listStocksQuery = `
SELECT stock_id, symbol, company_name, current_price, daily_change, daily_change_percent, last_updated
FROM stocks
ORDER BY symbol
`

// ListStocks returns the full catalog.
func (r *RepoPGS) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.conn.QueryContext(ctx, listStocksQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Stock{}

	for rows.Next() {
		var s domain.Stock

		if err := scanStock(rows, &s); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updatePriceQuery = `
UPDATE stocks
SET current_price = $2, daily_change = $3, daily_change_percent = $4, last_updated = now()
WHERE symbol = upper($1)
RETURNING stock_id, symbol, company_name, current_price, daily_change, daily_change_percent, last_updated
`

// UpdatePrice refreshes the cached quote for the symbol.
func (r *RepoPGS) UpdatePrice(ctx context.Context, symbol string, price, change, changePercent decimal.Decimal) (domain.Stock, error) {
	l := zerolog.Ctx(ctx)

	var s domain.Stock

	err := scanStock(r.conn.QueryRowContext(ctx, updatePriceQuery, symbol, price, change, changePercent), &s)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return s, domain.ErrStockNotFound
		}

		return s, errorspkg.ErrInternal
	}

	return s, nil
}

func scanPosition(row rowScanner, p *domain.Position) error {
	return row.Scan(
		&p.ID,
		&p.UserID,
		&p.Symbol,
		&p.Quantity,
		&p.AveragePrice,
		&p.TotalInvested,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

const getPositionQuery = `
SELECT position_id, user_id, symbol, quantity, average_price, total_invested, created_at, updated_at
FROM positions
WHERE user_id = $1 AND symbol = upper($2)
`

// GetPosition returns the user's holding of the symbol.
func (r *RepoPGS) GetPosition(ctx context.Context, userID int64, symbol string) (domain.Position, error) {
	l := zerolog.Ctx(ctx)

	var p domain.Position

	err := scanPosition(r.conn.QueryRowContext(ctx, getPositionQuery, userID, symbol), &p)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrPositionNotFound
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const listPositionsQuery = `
SELECT position_id, user_id, symbol, quantity, average_price, total_invested, created_at, updated_at
FROM positions
WHERE user_id = $1
ORDER BY symbol
`

// ListPositions returns all holdings of the user.
func (r *RepoPGS) ListPositions(ctx context.Context, userID int64) ([]domain.Position, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.conn.QueryContext(ctx, listPositionsQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Position{}

	for rows.Next() {
		var p domain.Position

		if err := scanPosition(rows, &p); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanEntry(row rowScanner, e *domain.StockEntry) error {
	return row.Scan(
		&e.ID,
		&e.UserID,
		&e.Symbol,
		&e.Kind,
		&e.Quantity,
		&e.Price,
		&e.TotalAmount,
		&e.OrderType,
		&e.Status,
		&e.CreatedAt,
	)
}

const listEntriesByUserQuery = `
SELECT stock_entry_id, user_id, symbol, kind, quantity, price, total_amount, order_type, status, created_at
FROM stock_entries
WHERE user_id = $1
ORDER BY created_at DESC, stock_entry_id DESC
LIMIT $2
`

// ListEntriesByUser returns the user's trade history, newest first.
func (r *RepoPGS) ListEntriesByUser(ctx context.Context, userID int64, limit int32) ([]domain.StockEntry, error) {
	return r.listEntries(ctx, listEntriesByUserQuery, userID, limit)
}

const listEntriesQuery = `
SELECT stock_entry_id, user_id, symbol, kind, quantity, price, total_amount, order_type, status, created_at
FROM stock_entries
ORDER BY created_at DESC, stock_entry_id DESC
LIMIT $1
`

// ListEntries returns trade records across all users, newest first.
func (r *RepoPGS) ListEntries(ctx context.Context, limit int32) ([]domain.StockEntry, error) {
	return r.listEntries(ctx, listEntriesQuery, limit)
}

func (r *RepoPGS) listEntries(ctx context.Context, query string, args ...interface{}) ([]domain.StockEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.StockEntry{}

	for rows.Next() {
		var e domain.StockEntry

		if err := scanEntry(rows, &e); err != nil {
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
