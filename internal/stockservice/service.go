// Package stockservice manages business logic layer of stock trading.
package stockservice

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/rates"
)

// Repo provides data access layer interface needed by stock service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package stockservice
type Repo interface {
	CreateStock(ctx context.Context, symbol, companyName string, price decimal.Decimal) (domain.Stock, error)
	GetStock(ctx context.Context, symbol string) (domain.Stock, error)
	ListStocks(ctx context.Context) ([]domain.Stock, error)
	UpdatePrice(ctx context.Context, symbol string, price, change, changePercent decimal.Decimal) (domain.Stock, error)
	GetPosition(ctx context.Context, userID int64, symbol string) (domain.Position, error)
	ListPositions(ctx context.Context, userID int64) ([]domain.Position, error)
	ListEntriesByUser(ctx context.Context, userID int64, limit int32) ([]domain.StockEntry, error)
	ListEntries(ctx context.Context, limit int32) ([]domain.StockEntry, error)
	BuyTx(ctx context.Context, arg domain.StockTradeParams) (domain.StockTradeResult, error)
	SellTx(ctx context.Context, arg domain.StockTradeParams) (domain.StockTradeResult, error)
}

// Oracle provides stock quotes needed by stock service layer.
type Oracle interface {
	StockQuote(ctx context.Context, symbol string) rates.Quote
}

// Service facilitates stock service layer logic.
type Service struct {
	repo   Repo
	oracle Oracle
}

// New returns stock service struct to manage stock business logic.
func New(r Repo, o Oracle) *Service {
	return &Service{repo: r, oracle: o}
}

// Catalog returns all listed stocks with their cached quotes refreshed
// from the oracle.
func (s *Service) Catalog(ctx context.Context) ([]domain.Stock, error) {
	stocks, err := s.repo.ListStocks(ctx)
	if err != nil {
		return nil, err
	}

	for i := range stocks {
		quote := s.oracle.StockQuote(ctx, stocks[i].Symbol)

		stock, err := s.repo.UpdatePrice(ctx, stocks[i].Symbol, quote.Price, quote.Change, quote.ChangePercent)
		if err != nil {
			return nil, err
		}

		stocks[i] = stock
	}

	return stocks, nil
}

// Quote returns the live quote for a listed symbol.
func (s *Service) Quote(ctx context.Context, symbol string) (domain.Stock, error) {
	symbol = strings.ToUpper(symbol)

	if _, err := s.repo.GetStock(ctx, symbol); err != nil {
		return domain.Stock{}, err
	}

	quote := s.oracle.StockQuote(ctx, symbol)

	return s.repo.UpdatePrice(ctx, symbol, quote.Price, quote.Change, quote.ChangePercent)
}

func (s *Service) tradeParams(ctx context.Context, userID int64, symbol, accountType string, quantity decimal.Decimal) (domain.StockTradeParams, error) {
	var arg domain.StockTradeParams

	symbol = strings.ToUpper(symbol)

	if !quantity.IsPositive() {
		return arg, domain.ErrInvalidQuantity
	}

	if !domain.IsValidAccountType(accountType) {
		return arg, domain.ErrInvalidAccountType
	}

	if _, err := s.repo.GetStock(ctx, symbol); err != nil {
		return arg, err
	}

	price := s.oracle.StockQuote(ctx, symbol).Price
	if !price.IsPositive() {
		return arg, domain.ErrInvalidPrice
	}

	if quantity.Mul(price).LessThan(domain.MinimumTradeAmount) {
		return arg, domain.ErrTradeTooSmall
	}

	return domain.StockTradeParams{
		UserID:      userID,
		Symbol:      symbol,
		Quantity:    quantity,
		Price:       price,
		AccountType: accountType,
	}, nil
}

// Buy executes a market buy at the oracle's current price, funding the
// order from the named fiat account.
func (s *Service) Buy(ctx context.Context, userID int64, symbol, accountType string, quantity decimal.Decimal) (domain.StockTradeResult, error) {
	arg, err := s.tradeParams(ctx, userID, symbol, accountType, quantity)
	if err != nil {
		return domain.StockTradeResult{}, err
	}

	return s.repo.BuyTx(ctx, arg)
}

// Sell executes a market sell at the oracle's current price, crediting
// the proceeds to the named fiat account.
func (s *Service) Sell(ctx context.Context, userID int64, symbol, accountType string, quantity decimal.Decimal) (domain.StockTradeResult, error) {
	arg, err := s.tradeParams(ctx, userID, symbol, accountType, quantity)
	if err != nil {
		return domain.StockTradeResult{}, err
	}

	return s.repo.SellTx(ctx, arg)
}

// PositionView is a holding valued at the current quote.
type PositionView struct {
	domain.Position
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// Portfolio returns the user's holdings valued at current quotes,
// with the aggregate invested amount, value and unrealized P&L.
type Portfolio struct {
	Positions     []PositionView  `json:"positions"`
	TotalInvested decimal.Decimal `json:"total_invested"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalPnL      decimal.Decimal `json:"total_unrealized_pnl"`
}

// Portfolio values every holding of the user at the current quote.
func (s *Service) Portfolio(ctx context.Context, userID int64) (Portfolio, error) {
	positions, err := s.repo.ListPositions(ctx, userID)
	if err != nil {
		return Portfolio{}, err
	}

	portfolio := Portfolio{
		Positions:     make([]PositionView, 0, len(positions)),
		TotalInvested: decimal.Zero,
		TotalValue:    decimal.Zero,
		TotalPnL:      decimal.Zero,
	}

	for _, p := range positions {
		price := s.oracle.StockQuote(ctx, p.Symbol).Price

		p.CurrentValue = p.Quantity.Mul(price)
		p.UnrealizedPnL = p.CurrentValue.Sub(p.TotalInvested)

		portfolio.TotalInvested = portfolio.TotalInvested.Add(p.TotalInvested)
		portfolio.TotalValue = portfolio.TotalValue.Add(p.CurrentValue)
		portfolio.TotalPnL = portfolio.TotalPnL.Add(p.UnrealizedPnL)

		portfolio.Positions = append(portfolio.Positions, PositionView{
			Position:     p,
			CurrentPrice: price,
		})
	}

	return portfolio, nil
}

// History returns the user's trade records, newest first.
func (s *Service) History(ctx context.Context, userID int64, limit int32) ([]domain.StockEntry, error) {
	return s.repo.ListEntriesByUser(ctx, userID, limit)
}

// List adds a symbol to the catalog at the oracle's current price.
func (s *Service) List(ctx context.Context, symbol, companyName string) (domain.Stock, error) {
	symbol = strings.ToUpper(symbol)

	quote := s.oracle.StockQuote(ctx, symbol)

	return s.repo.CreateStock(ctx, symbol, companyName, quote.Price)
}

// Stocks returns the catalog with cached quotes, without touching the
// oracle.
func (s *Service) Stocks(ctx context.Context) ([]domain.Stock, error) {
	return s.repo.ListStocks(ctx)
}

// SetPrice overrides a symbol's quote. The daily movement is recomputed
// against the cached price being replaced.
func (s *Service) SetPrice(ctx context.Context, symbol string, price decimal.Decimal) (domain.Stock, error) {
	symbol = strings.ToUpper(symbol)

	if !price.IsPositive() {
		return domain.Stock{}, domain.ErrInvalidPrice
	}

	stock, err := s.repo.GetStock(ctx, symbol)
	if err != nil {
		return domain.Stock{}, err
	}

	change := price.Sub(stock.CurrentPrice)

	changePercent := decimal.Zero
	if stock.CurrentPrice.IsPositive() {
		changePercent = change.Div(stock.CurrentPrice).Mul(decimal.NewFromInt(100))
	}

	return s.repo.UpdatePrice(ctx, symbol, price, change, changePercent)
}

// Transactions returns the newest trade records across all users.
func (s *Service) Transactions(ctx context.Context, limit int32) ([]domain.StockEntry, error) {
	return s.repo.ListEntries(ctx, limit)
}
