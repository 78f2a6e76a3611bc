// Package seed populates a fresh database with demo users and the
// initial stock catalog. Running it twice is a no-op.
package seed

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/go-petr/nexa-bank/pkg/passpkg"
)

const demoPassword = "password123"

var demoUsers = []struct {
	Email    string
	FullName string
	IsAdmin  bool
}{
	{"admin@nexabank.com", "NexaBank Admin", true},
	{"alice@nexabank.com", "Alice Anderson", false},
	{"bob@nexabank.com", "Bob Brown", false},
}

// catalog lists the symbols available for trading on a fresh install,
// priced at their demo quotes until the oracle refreshes them.
var catalog = []struct {
	Symbol      string
	CompanyName string
	Price       string
}{
	{"AAPL", "Apple Inc.", "185.50"},
	{"MSFT", "Microsoft Corporation", "375.85"},
	{"GOOGL", "Alphabet Inc.", "138.20"},
	{"AMZN", "Amazon.com Inc.", "155.75"},
	{"TSLA", "Tesla Inc.", "245.60"},
	{"META", "Meta Platforms Inc.", "350.40"},
	{"NVDA", "NVIDIA Corporation", "475.25"},
	{"NFLX", "Netflix Inc.", "485.90"},
	{"JPM", "JPMorgan Chase & Co.", "170.35"},
	{"V", "Visa Inc.", "250.80"},
	{"MA", "Mastercard Incorporated", "385.45"},
	{"WMT", "Walmart Inc.", "165.20"},
	{"KO", "The Coca-Cola Company", "59.85"},
	{"MCD", "McDonald's Corporation", "285.70"},
	{"SPY", "SPDR S&P 500 ETF Trust", "455.30"},
	{"QQQ", "Invesco QQQ Trust", "380.45"},
	{"VOO", "Vanguard S&P 500 ETF", "420.15"},
	{"BABA", "Alibaba Group Holding Limited", "85.60"},
	{"TSM", "Taiwan Semiconductor Manufacturing Company Limited", "95.40"},
}

const insertUserQuery = `
INSERT INTO users (email, full_name, password_hash, is_admin)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO NOTHING
`

const insertStockQuery = `
INSERT INTO stocks (symbol, company_name, current_price)
VALUES (upper($1), $2, $3)
ON CONFLICT (symbol) DO NOTHING
`

// Run inserts the demo users and the stock catalog.
func Run(ctx context.Context, conn *sql.DB) error {
	l := zerolog.Ctx(ctx)

	hash, err := passpkg.Hash(demoPassword)
	if err != nil {
		return err
	}

	for _, u := range demoUsers {
		if _, err := conn.ExecContext(ctx, insertUserQuery, u.Email, u.FullName, hash, u.IsAdmin); err != nil {
			l.Error().Err(err).Str("email", u.Email).Msg("seed user")
			return err
		}
	}

	for _, s := range catalog {
		if _, err := conn.ExecContext(ctx, insertStockQuery, s.Symbol, s.CompanyName, s.Price); err != nil {
			l.Error().Err(err).Str("symbol", s.Symbol).Msg("seed stock")
			return err
		}
	}

	l.Info().Int("users", len(demoUsers)).Int("stocks", len(catalog)).Msg("database seeded")

	return nil
}
