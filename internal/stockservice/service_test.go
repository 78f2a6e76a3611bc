package stockservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/rates"
)

func TestBuy(t *testing.T) {
	t.Parallel()

	userID := int64(1)
	aapl := domain.Stock{ID: 1, Symbol: "AAPL", CompanyName: "Apple Inc."}
	quote := rates.Quote{Price: decimal.NewFromFloat(185.50)}

	testCases := []struct {
		name        string
		symbol      string
		accountType string
		quantity    decimal.Decimal
		buildStubs  func(repo *MockRepo, oracle *MockOracle)
		wantErr     error
	}{
		{
			name:        "OK",
			symbol:      "aapl",
			accountType: domain.Checking,
			quantity:    decimal.NewFromInt(2),
			buildStubs: func(repo *MockRepo, oracle *MockOracle) {
				repo.EXPECT().
					GetStock(gomock.Any(), "AAPL").
					Return(aapl, nil)

				oracle.EXPECT().
					StockQuote(gomock.Any(), "AAPL").
					Return(quote)

				repo.EXPECT().
					BuyTx(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg domain.StockTradeParams) (domain.StockTradeResult, error) {
						require.Equal(t, userID, arg.UserID)
						require.Equal(t, "AAPL", arg.Symbol)
						require.Equal(t, domain.Checking, arg.AccountType)
						require.True(t, arg.Quantity.Equal(decimal.NewFromInt(2)))
						require.True(t, arg.Price.Equal(quote.Price))

						return domain.StockTradeResult{}, nil
					})
			},
		},
		{
			name:        "NonPositiveQuantity",
			symbol:      "AAPL",
			accountType: domain.Checking,
			quantity:    decimal.Zero,
			buildStubs:  func(repo *MockRepo, oracle *MockOracle) {},
			wantErr:     domain.ErrInvalidQuantity,
		},
		{
			name:        "UnknownAccountType",
			symbol:      "AAPL",
			accountType: "premium",
			quantity:    decimal.NewFromInt(2),
			buildStubs:  func(repo *MockRepo, oracle *MockOracle) {},
			wantErr:     domain.ErrInvalidAccountType,
		},
		{
			name:        "UnlistedSymbol",
			symbol:      "ZZZZ",
			accountType: domain.Checking,
			quantity:    decimal.NewFromInt(2),
			buildStubs: func(repo *MockRepo, oracle *MockOracle) {
				repo.EXPECT().
					GetStock(gomock.Any(), "ZZZZ").
					Return(domain.Stock{}, domain.ErrStockNotFound)
			},
			wantErr: domain.ErrStockNotFound,
		},
		{
			name:        "ZeroOraclePrice",
			symbol:      "AAPL",
			accountType: domain.Checking,
			quantity:    decimal.NewFromInt(2),
			buildStubs: func(repo *MockRepo, oracle *MockOracle) {
				repo.EXPECT().
					GetStock(gomock.Any(), "AAPL").
					Return(aapl, nil)

				oracle.EXPECT().
					StockQuote(gomock.Any(), "AAPL").
					Return(rates.Quote{})
			},
			wantErr: domain.ErrInvalidPrice,
		},
		{
			name:        "OrderBelowMinimum",
			symbol:      "AAPL",
			accountType: domain.Checking,
			quantity:    decimal.NewFromFloat(0.01),
			buildStubs: func(repo *MockRepo, oracle *MockOracle) {
				repo.EXPECT().
					GetStock(gomock.Any(), "AAPL").
					Return(aapl, nil)

				oracle.EXPECT().
					StockQuote(gomock.Any(), "AAPL").
					Return(quote)
			},
			wantErr: domain.ErrTradeTooSmall,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			oracle := NewMockOracle(ctrl)
			tc.buildStubs(repo, oracle)

			s := New(repo, oracle)

			_, err := s.Buy(context.Background(), userID, tc.symbol, tc.accountType, tc.quantity)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSell(t *testing.T) {
	t.Parallel()

	userID := int64(1)
	quote := rates.Quote{Price: decimal.NewFromInt(200)}

	testCases := []struct {
		name       string
		buildStubs func(repo *MockRepo, oracle *MockOracle)
		wantErr    error
	}{
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, oracle *MockOracle) {
				repo.EXPECT().
					GetStock(gomock.Any(), "TSLA").
					Return(domain.Stock{Symbol: "TSLA"}, nil)

				oracle.EXPECT().
					StockQuote(gomock.Any(), "TSLA").
					Return(quote)

				repo.EXPECT().
					SellTx(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg domain.StockTradeParams) (domain.StockTradeResult, error) {
						require.True(t, arg.Price.Equal(quote.Price))

						return domain.StockTradeResult{
							RealizedPnL: decimal.NewFromInt(50),
						}, nil
					})
			},
		},
		{
			name: "InsufficientSharesSurfaced",
			buildStubs: func(repo *MockRepo, oracle *MockOracle) {
				repo.EXPECT().
					GetStock(gomock.Any(), "TSLA").
					Return(domain.Stock{Symbol: "TSLA"}, nil)

				oracle.EXPECT().
					StockQuote(gomock.Any(), "TSLA").
					Return(quote)

				repo.EXPECT().
					SellTx(gomock.Any(), gomock.Any()).
					Return(domain.StockTradeResult{}, domain.ErrInsufficientShares)
			},
			wantErr: domain.ErrInsufficientShares,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			oracle := NewMockOracle(ctrl)
			tc.buildStubs(repo, oracle)

			s := New(repo, oracle)

			_, err := s.Sell(context.Background(), userID, "tsla", domain.Checking, decimal.NewFromInt(1))
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPortfolio(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	oracle := NewMockOracle(ctrl)

	userID := int64(1)

	repo.EXPECT().
		ListPositions(gomock.Any(), userID).
		Return([]domain.Position{
			{
				UserID:        userID,
				Symbol:        "AAPL",
				Quantity:      decimal.NewFromInt(10),
				AveragePrice:  decimal.NewFromInt(150),
				TotalInvested: decimal.NewFromInt(1500),
			},
			{
				UserID:        userID,
				Symbol:        "MSFT",
				Quantity:      decimal.NewFromInt(2),
				AveragePrice:  decimal.NewFromInt(400),
				TotalInvested: decimal.NewFromInt(800),
			},
		}, nil)

	oracle.EXPECT().
		StockQuote(gomock.Any(), "AAPL").
		Return(rates.Quote{Price: decimal.NewFromInt(200)})

	oracle.EXPECT().
		StockQuote(gomock.Any(), "MSFT").
		Return(rates.Quote{Price: decimal.NewFromInt(350)})

	s := New(repo, oracle)

	got, err := s.Portfolio(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, got.Positions, 2)
	require.True(t, got.Positions[0].CurrentValue.Equal(decimal.NewFromInt(2000)))
	require.True(t, got.Positions[0].UnrealizedPnL.Equal(decimal.NewFromInt(500)))
	require.True(t, got.Positions[1].CurrentValue.Equal(decimal.NewFromInt(700)))
	require.True(t, got.Positions[1].UnrealizedPnL.Equal(decimal.NewFromInt(-100)))

	require.True(t, got.TotalInvested.Equal(decimal.NewFromInt(2300)))
	require.True(t, got.TotalValue.Equal(decimal.NewFromInt(2700)))
	require.True(t, got.TotalPnL.Equal(decimal.NewFromInt(400)))
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	oracle := NewMockOracle(ctrl)

	quote := rates.Quote{
		Price:         decimal.NewFromFloat(185.50),
		Change:        decimal.NewFromFloat(1.25),
		ChangePercent: decimal.NewFromFloat(0.68),
	}

	repo.EXPECT().
		ListStocks(gomock.Any()).
		Return([]domain.Stock{{Symbol: "AAPL", CompanyName: "Apple Inc."}}, nil)

	oracle.EXPECT().
		StockQuote(gomock.Any(), "AAPL").
		Return(quote)

	repo.EXPECT().
		UpdatePrice(gomock.Any(), "AAPL", quote.Price, quote.Change, quote.ChangePercent).
		Return(domain.Stock{Symbol: "AAPL", CurrentPrice: quote.Price}, nil)

	s := New(repo, oracle)

	got, err := s.Catalog(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].CurrentPrice.Equal(quote.Price))
}

func TestSetPrice(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		symbol     string
		price      decimal.Decimal
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name:   "OK",
			symbol: "aapl",
			price:  decimal.NewFromInt(200),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetStock(gomock.Any(), "AAPL").
					Return(domain.Stock{Symbol: "AAPL", CurrentPrice: decimal.NewFromInt(160)}, nil)

				repo.EXPECT().
					UpdatePrice(gomock.Any(), "AAPL", gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, price, change, changePercent decimal.Decimal) (domain.Stock, error) {
						require.True(t, price.Equal(decimal.NewFromInt(200)))
						require.True(t, change.Equal(decimal.NewFromInt(40)))
						require.True(t, changePercent.Equal(decimal.NewFromInt(25)))
						return domain.Stock{Symbol: "AAPL", CurrentPrice: price}, nil
					})
			},
		},
		{
			name:       "NonPositivePrice",
			symbol:     "AAPL",
			price:      decimal.Zero,
			buildStubs: func(repo *MockRepo) {},
			wantErr:    domain.ErrInvalidPrice,
		},
		{
			name:   "UnlistedSymbol",
			symbol: "ZZZZ",
			price:  decimal.NewFromInt(10),
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					GetStock(gomock.Any(), "ZZZZ").
					Return(domain.Stock{}, domain.ErrStockNotFound)
			},
			wantErr: domain.ErrStockNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			oracle := NewMockOracle(ctrl)
			tc.buildStubs(repo)

			s := New(repo, oracle)

			got, err := s.SetPrice(context.Background(), tc.symbol, tc.price)
			require.ErrorIs(t, err, tc.wantErr)

			if tc.wantErr == nil {
				require.True(t, got.CurrentPrice.Equal(tc.price))
			}
		})
	}
}

func TestTransactions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	oracle := NewMockOracle(ctrl)

	repo.EXPECT().
		ListEntries(gomock.Any(), int32(100)).
		Return([]domain.StockEntry{{ID: 2, Symbol: "MSFT", Kind: domain.StockSell}}, nil)

	s := New(repo, oracle)

	got, err := s.Transactions(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, domain.StockSell, got[0].Kind)
}
