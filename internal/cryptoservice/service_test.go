package cryptoservice

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/currencypkg"
)

func fallbackPrices() map[string]decimal.Decimal {
	return currencypkg.FallbackRates
}

func testWallet(id, userID int64, currency string, balance decimal.Decimal) domain.Wallet {
	return domain.Wallet{
		ID:       id,
		UserID:   userID,
		Currency: currency,
		Address:  currencypkg.AddressPrefix(currency) + "00112233445566778899aabbccddeeff00",
		Balance:  balance,
	}
}

func TestWallets(t *testing.T) {
	t.Parallel()

	userID := int64(1)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletRepo(ctrl)
	oracle := NewMockOracle(ctrl)

	oracle.EXPECT().CryptoPrices(gomock.Any()).Return(fallbackPrices())

	btc := testWallet(1, userID, currencypkg.BTC, decimal.RequireFromString("0.5"))

	wallets.EXPECT().
		GetByUserAndCurrency(gomock.Any(), userID, currencypkg.BTC).
		Return(btc, nil)

	// ETH wallet is missing and gets created lazily.
	wallets.EXPECT().
		GetByUserAndCurrency(gomock.Any(), userID, currencypkg.ETH).
		Return(domain.Wallet{}, domain.ErrWalletNotFound)

	wallets.EXPECT().
		Create(gomock.Any(), userID, currencypkg.ETH, gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, currency, address string) (domain.Wallet, error) {
			require.True(t, strings.HasPrefix(address, "0x"))

			return testWallet(2, userID, currency, decimal.Zero), nil
		})

	wallets.EXPECT().
		GetByUserAndCurrency(gomock.Any(), userID, currencypkg.USDT).
		Return(testWallet(3, userID, currencypkg.USDT, decimal.NewFromInt(100)), nil)

	s := New(wallets, NewMockAccountRepo(ctrl), NewMockTxRepo(ctrl), oracle)

	views, err := s.Wallets(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, views, 3)

	require.Equal(t, currencypkg.BTC, views[0].Currency)
	require.True(t, views[0].USDValue.Equal(decimal.NewFromInt(22_500)))
	require.True(t, views[1].USDValue.IsZero())
	require.True(t, views[2].USDValue.Equal(decimal.NewFromInt(100)))
}

func TestWithdraw(t *testing.T) {
	t.Parallel()

	userID := int64(1)
	btc := testWallet(1, userID, currencypkg.BTC, decimal.RequireFromString("0.5"))
	toAddress := "bc1qexternal"

	testCases := []struct {
		name       string
		currency   string
		amount     decimal.Decimal
		buildStubs func(wallets *MockWalletRepo, tx *MockTxRepo, oracle *MockOracle)
		wantErr    error
	}{
		{
			name:     "OK",
			currency: "btc",
			amount:   decimal.RequireFromString("0.1"),
			buildStubs: func(wallets *MockWalletRepo, tx *MockTxRepo, oracle *MockOracle) {
				wallets.EXPECT().
					GetByUserAndCurrency(gomock.Any(), userID, currencypkg.BTC).
					Return(btc, nil)

				oracle.EXPECT().CryptoPrices(gomock.Any()).Return(fallbackPrices())

				tx.EXPECT().
					WithdrawTx(gomock.Any(), btc.ID, gomock.Any(), gomock.Any(), gomock.Any(), toAddress).
					DoAndReturn(func(_ context.Context, _ int64, amount, fee, usdValue decimal.Decimal, _ string) (domain.CryptoTxResult, error) {
						require.True(t, amount.Equal(decimal.RequireFromString("0.1")))
						require.True(t, fee.Equal(currencypkg.NetworkFees[currencypkg.BTC]))
						require.True(t, usdValue.Equal(decimal.NewFromInt(4_500)))

						return domain.CryptoTxResult{Wallet: btc}, nil
					})
			},
		},
		{
			name:       "UnsupportedCurrency",
			currency:   "DOGE",
			amount:     decimal.NewFromInt(1),
			buildStubs: func(wallets *MockWalletRepo, tx *MockTxRepo, oracle *MockOracle) {},
			wantErr:    domain.ErrUnsupportedCurrency,
		},
		{
			name:       "BelowMinimum",
			currency:   currencypkg.BTC,
			amount:     decimal.RequireFromString("0.0001"),
			buildStubs: func(wallets *MockWalletRepo, tx *MockTxRepo, oracle *MockOracle) {},
			wantErr:    domain.ErrBelowMinWithdrawal,
		},
		{
			name:     "FeeMakesBalanceInsufficient",
			currency: currencypkg.BTC,
			amount:   decimal.RequireFromString("0.5"),
			buildStubs: func(wallets *MockWalletRepo, tx *MockTxRepo, oracle *MockOracle) {
				wallets.EXPECT().
					GetByUserAndCurrency(gomock.Any(), userID, currencypkg.BTC).
					Return(btc, nil)
			},
			wantErr: domain.ErrInsufficientCryptoFunds,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wallets := NewMockWalletRepo(ctrl)
			tx := NewMockTxRepo(ctrl)
			oracle := NewMockOracle(ctrl)
			tc.buildStubs(wallets, tx, oracle)

			s := New(wallets, NewMockAccountRepo(ctrl), tx, oracle)

			details, err := s.Withdraw(context.Background(), userID, tc.currency, tc.amount, toAddress)
			require.ErrorIs(t, err, tc.wantErr)

			if tc.wantErr == nil {
				require.True(t, details.Total.Equal(tc.amount.Add(currencypkg.NetworkFees[currencypkg.BTC])))
			}
		})
	}
}

func TestSell(t *testing.T) {
	t.Parallel()

	userID := int64(1)
	eth := testWallet(2, userID, currencypkg.ETH, decimal.NewFromInt(2))
	primary := domain.Account{ID: 10, UserID: userID, Number: "NBS111111111", Type: domain.Savings}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletRepo(ctrl)
	accounts := NewMockAccountRepo(ctrl)
	tx := NewMockTxRepo(ctrl)
	oracle := NewMockOracle(ctrl)

	wallets.EXPECT().
		GetByUserAndCurrency(gomock.Any(), userID, currencypkg.ETH).
		Return(eth, nil).
		Times(2)

	accounts.EXPECT().
		List(gomock.Any(), userID).
		Return([]domain.Account{primary}, nil)

	oracle.EXPECT().CryptoPrices(gomock.Any()).Return(fallbackPrices())

	tx.EXPECT().
		SellTx(gomock.Any(), eth.ID, primary.ID, decimal.NewFromInt(1), decimal.NewFromInt(3_000)).
		Return(domain.CryptoTxResult{Wallet: eth, Account: primary}, nil)

	s := New(wallets, accounts, tx, oracle)

	_, err := s.Sell(context.Background(), userID, currencypkg.ETH, decimal.NewFromInt(1))
	require.NoError(t, err)

	// Selling more than held fails before any unit of work starts.
	_, err = s.Sell(context.Background(), userID, currencypkg.ETH, decimal.NewFromInt(3))
	require.ErrorIs(t, err, domain.ErrInsufficientCryptoFunds)
}

func TestFundingQuote(t *testing.T) {
	t.Parallel()

	userID := int64(1)
	btc := testWallet(1, userID, currencypkg.BTC, decimal.Zero)
	checking := domain.Account{ID: 11, UserID: userID, Number: "NBC222222222", Type: domain.Checking}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletRepo(ctrl)
	accounts := NewMockAccountRepo(ctrl)
	oracle := NewMockOracle(ctrl)

	wallets.EXPECT().
		GetByUserAndCurrency(gomock.Any(), userID, currencypkg.BTC).
		Return(btc, nil)

	accounts.EXPECT().
		GetByUserAndType(gomock.Any(), userID, domain.Checking).
		Return(checking, nil)

	oracle.EXPECT().CryptoPrices(gomock.Any()).Return(fallbackPrices())

	s := New(wallets, accounts, NewMockTxRepo(ctrl), oracle)

	quote, err := s.FundingQuote(context.Background(), userID, currencypkg.BTC, domain.Checking, decimal.NewFromInt(450))
	require.NoError(t, err)
	require.Equal(t, btc.Address, quote.DepositAddress)
	require.Equal(t, checking.Number, quote.AccountNumber)
	require.True(t, quote.CryptoAmount.Equal(decimal.RequireFromString("0.01")))

	// Below the checking opening floor.
	_, err = s.FundingQuote(context.Background(), userID, currencypkg.BTC, domain.Checking, decimal.NewFromInt(49))
	require.ErrorIs(t, err, domain.ErrFirstDepositTooSmall)
}
