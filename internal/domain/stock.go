package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrStockNotFound indicates that the stock is not found.
	ErrStockNotFound = errors.New("stock not found")
	// ErrStockExists indicates that the stock symbol is already listed.
	ErrStockExists = errors.New("stock already exists")
	// ErrPositionNotFound indicates that the user holds no shares of the symbol.
	ErrPositionNotFound = errors.New("no shares of this symbol are held")
	// ErrInsufficientShares indicates a sell of more shares than held.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrInvalidQuantity indicates a malformed or non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidPrice indicates a malformed or non-positive price.
	ErrInvalidPrice = errors.New("price must be positive")
	// ErrTradeTooSmall indicates an order below the minimum trade amount.
	ErrTradeTooSmall = errors.New("minimum trade amount is $10.00")
)

// MinimumTradeAmount is the smallest allowed order total.
var MinimumTradeAmount = decimal.NewFromInt(10)

// Stock entry kinds, order classifications and statuses.
const (
	StockBuy  = "buy"
	StockSell = "sell"

	OrderMarket = "market"

	OrderCompleted = "completed"
)

// Stock is a tradable equity listing.
type Stock struct {
	ID                 int64           `json:"stock_id"`
	Symbol             string          `json:"symbol"`
	CompanyName        string          `json:"company_name"`
	CurrentPrice       decimal.Decimal `json:"current_price"`
	DailyChange        decimal.Decimal `json:"daily_change"`
	DailyChangePercent decimal.Decimal `json:"daily_change_percent"`
	LastUpdated        time.Time       `json:"last_updated"`
}

// Position tracks a user's holding of one symbol at weighted average cost.
// A position with zero quantity is deleted, never persisted.
type Position struct {
	ID            int64           `json:"portfolio_id"`
	UserID        int64           `json:"user_id"`
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	AveragePrice  decimal.Decimal `json:"average_price"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	UnrealizedPnL decimal.Decimal `json:"unrealized_pnl"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockTradeParams is the input for a buy or sell unit of work. Price
// is the quote the order executes at.
type StockTradeParams struct {
	UserID      int64
	Symbol      string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	AccountType string
}

// StockTradeResult is the result of a trade unit of work. Position has
// zero quantity when a sell closed out the holding.
type StockTradeResult struct {
	Account     Account         `json:"account"`
	Position    Position        `json:"position"`
	Entry       StockEntry      `json:"entry"`
	BankEntry   Entry           `json:"bank_entry"`
	RealizedPnL decimal.Decimal `json:"realized_pnl"`
}

// StockEntry is the immutable audit record of a buy or sell.
type StockEntry struct {
	ID          int64           `json:"transaction_id"`
	UserID      int64           `json:"user_id"`
	Symbol      string          `json:"symbol"`
	Kind        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OrderType   string          `json:"order_type"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ApplyBuy folds a purchase into the position, recomputing the
// weighted average cost: new_avg = (old_invested + cost) / new_quantity.
func (p Position) ApplyBuy(quantity, price decimal.Decimal) Position {
	cost := quantity.Mul(price)

	p.Quantity = p.Quantity.Add(quantity)
	p.TotalInvested = p.TotalInvested.Add(cost)
	p.AveragePrice = p.TotalInvested.Div(p.Quantity)
	p.CurrentValue = p.Quantity.Mul(price)
	p.UnrealizedPnL = p.CurrentValue.Sub(p.TotalInvested)

	return p
}

// ApplySell removes the sold quantity from the position and returns the
// realized profit or loss against the proportional cost basis. The
// returned position has zero quantity when the holding is closed out.
func (p Position) ApplySell(quantity, price decimal.Decimal) (Position, decimal.Decimal, error) {
	if p.Quantity.LessThan(quantity) {
		return p, decimal.Zero, ErrInsufficientShares
	}

	costBasis := p.TotalInvested.Div(p.Quantity).Mul(quantity)
	proceeds := quantity.Mul(price)
	realized := proceeds.Sub(costBasis)

	p.Quantity = p.Quantity.Sub(quantity)
	p.TotalInvested = p.TotalInvested.Sub(costBasis)

	if p.Quantity.IsZero() {
		p.AveragePrice = decimal.Zero
		p.TotalInvested = decimal.Zero
		p.CurrentValue = decimal.Zero
		p.UnrealizedPnL = decimal.Zero

		return p, realized, nil
	}

	p.AveragePrice = p.TotalInvested.Div(p.Quantity)
	p.CurrentValue = p.Quantity.Mul(price)
	p.UnrealizedPnL = p.CurrentValue.Sub(p.TotalInvested)

	return p, realized, nil
}
