// Package rates fetches USD quotes for crypto currencies and stocks
// from external oracles. Every lookup degrades to a fixed fallback
// quote when the oracle is unreachable, so money operations never fail
// on oracle downtime.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/pkg/currencypkg"
)

// Quote is a point-in-time price with its daily movement.
type Quote struct {
	Price         decimal.Decimal
	Change        decimal.Decimal
	ChangePercent decimal.Decimal
}

// ids maps supported currencies to the crypto oracle's asset ids.
var ids = map[string]string{
	currencypkg.BTC:  "bitcoin",
	currencypkg.ETH:  "ethereum",
	currencypkg.USDT: "tether",
}

// fallbackStockPrices backs the stock oracle for the seeded catalog.
var fallbackStockPrices = map[string]decimal.Decimal{
	"AAPL":  decimal.RequireFromString("185.50"),
	"MSFT":  decimal.RequireFromString("375.85"),
	"GOOGL": decimal.RequireFromString("138.20"),
	"AMZN":  decimal.RequireFromString("155.75"),
	"TSLA":  decimal.RequireFromString("245.60"),
	"META":  decimal.RequireFromString("350.40"),
	"NVDA":  decimal.RequireFromString("475.25"),
	"NFLX":  decimal.RequireFromString("485.90"),
	"JPM":  decimal.RequireFromString("170.35"),
	"V":    decimal.RequireFromString("250.80"),
	"MA":   decimal.RequireFromString("385.45"),
	"WMT":  decimal.RequireFromString("165.20"),
	"KO":   decimal.RequireFromString("59.85"),
	"MCD":  decimal.RequireFromString("285.70"),
	"SPY":  decimal.RequireFromString("455.30"),
	"QQQ":  decimal.RequireFromString("380.45"),
	"VOO":  decimal.RequireFromString("420.15"),
	"BABA": decimal.RequireFromString("85.60"),
	"TSM":  decimal.RequireFromString("95.40"),
}

var defaultStockPrice = decimal.NewFromInt(100)

// Client queries the crypto and stock price oracles over HTTP.
type Client struct {
	httpClient  *http.Client
	cryptoURL   string
	stockURL    string
	stockAPIKey string
}

// NewClient returns a rates Client with the given oracle endpoints.
func NewClient(cryptoURL, stockURL, stockAPIKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		cryptoURL:   cryptoURL,
		stockURL:    stockURL,
		stockAPIKey: stockAPIKey,
	}
}

// CryptoPrices returns USD rates for all supported currencies. Each
// currency the oracle omits falls back to its fixed rate.
func (c *Client) CryptoPrices(ctx context.Context) map[string]decimal.Decimal {
	l := zerolog.Ctx(ctx)

	prices := make(map[string]decimal.Decimal, len(currencypkg.SupportedCurrencies))
	for _, cur := range currencypkg.SupportedCurrencies {
		prices[cur] = currencypkg.FallbackRates[cur]
	}

	assetIDs := make([]string, 0, len(currencypkg.SupportedCurrencies))
	for _, cur := range currencypkg.SupportedCurrencies {
		assetIDs = append(assetIDs, ids[cur])
	}

	reqURL := fmt.Sprintf("%s?ids=%s&vs_currencies=usd", c.cryptoURL, strings.Join(assetIDs, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		l.Error().Err(err).Msg("crypto oracle request")
		return prices
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		l.Warn().Err(err).Msg("crypto oracle unreachable, using fallback rates")
		return prices
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.Warn().Int("status", resp.StatusCode).Msg("crypto oracle error, using fallback rates")
		return prices
	}

	var payload map[string]map[string]json.Number

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		l.Warn().Err(err).Msg("crypto oracle response malformed, using fallback rates")
		return prices
	}

	for _, cur := range currencypkg.SupportedCurrencies {
		quote, ok := payload[ids[cur]]
		if !ok {
			continue
		}

		usd, ok := quote["usd"]
		if !ok {
			continue
		}

		price, err := decimal.NewFromString(usd.String())
		if err != nil || !price.IsPositive() {
			continue
		}

		prices[cur] = price
	}

	return prices
}

// CryptoPrice returns the USD rate for one currency.
func (c *Client) CryptoPrice(ctx context.Context, currency string) decimal.Decimal {
	return c.CryptoPrices(ctx)[currency]
}

// stockQuoteResponse mirrors the stock oracle's GLOBAL_QUOTE shape.
type stockQuoteResponse struct {
	GlobalQuote struct {
		Price         string `json:"05. price"`
		Change        string `json:"09. change"`
		ChangePercent string `json:"10. change percent"`
	} `json:"Global Quote"`
}

// StockQuote returns the quote for the symbol, falling back to the
// fixed demo price when the oracle fails or does not know the symbol.
func (c *Client) StockQuote(ctx context.Context, symbol string) Quote {
	l := zerolog.Ctx(ctx)
	symbol = strings.ToUpper(symbol)

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.stockAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.stockURL+"?"+q.Encode(), nil)
	if err != nil {
		l.Error().Err(err).Msg("stock oracle request")
		return fallbackStockQuote(symbol)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		l.Warn().Err(err).Str("symbol", symbol).Msg("stock oracle unreachable, using fallback quote")
		return fallbackStockQuote(symbol)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		l.Warn().Int("status", resp.StatusCode).Str("symbol", symbol).Msg("stock oracle error, using fallback quote")
		return fallbackStockQuote(symbol)
	}

	var payload stockQuoteResponse

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		l.Warn().Err(err).Str("symbol", symbol).Msg("stock oracle response malformed, using fallback quote")
		return fallbackStockQuote(symbol)
	}

	price, err := decimal.NewFromString(payload.GlobalQuote.Price)
	if err != nil || !price.IsPositive() {
		return fallbackStockQuote(symbol)
	}

	change, err := decimal.NewFromString(payload.GlobalQuote.Change)
	if err != nil {
		change = decimal.Zero
	}

	changePercent, err := decimal.NewFromString(strings.TrimSuffix(payload.GlobalQuote.ChangePercent, "%"))
	if err != nil {
		changePercent = decimal.Zero
	}

	return Quote{Price: price, Change: change, ChangePercent: changePercent}
}

func fallbackStockQuote(symbol string) Quote {
	price, ok := fallbackStockPrices[symbol]
	if !ok {
		price = defaultStockPrice
	}

	return Quote{Price: price}
}
