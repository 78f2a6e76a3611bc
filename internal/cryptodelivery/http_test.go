package cryptodelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/nexa-bank/internal/cryptoservice"
	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/middleware"
	"github.com/go-petr/nexa-bank/pkg/currencypkg"
	"github.com/go-petr/nexa-bank/pkg/randompkg"
	"github.com/go-petr/nexa-bank/pkg/tokenpkg"
	"github.com/go-petr/nexa-bank/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("cryptocurrency", currencypkg.ValidCurrency); err != nil {
			os.Exit(1)
		}

		if err := v.RegisterValidation("accounttype", web.ValidAccountType); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func newTestServer(t *testing.T, service Service, tokenMaker tokenpkg.Maker) *gin.Engine {
	t.Helper()

	handler := NewHandler(service)

	server := gin.New()
	authRoutes := server.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/crypto/wallets", handler.Wallets)
	authRoutes.GET("/crypto/rates", handler.Rates)
	authRoutes.POST("/crypto/deposit", handler.Deposit)
	authRoutes.POST("/crypto/withdraw", handler.Withdraw)
	authRoutes.POST("/crypto/sell", handler.Sell)
	authRoutes.POST("/crypto/purchase", handler.Purchase)
	authRoutes.POST("/crypto/simulate-deposit", handler.SimulateDeposit)
	authRoutes.POST("/crypto/funding-quote", handler.FundingQuote)
	authRoutes.GET("/crypto/history", handler.History)

	return server
}

func TestWallets(t *testing.T) {
	userID := int64(1)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Wallets(gomock.Any(), userID).
		Return([]cryptoservice.WalletView{
			{
				Wallet:   domain.Wallet{ID: 1, UserID: userID, Currency: currencypkg.BTC},
				Rate:     decimal.NewFromInt(45_000),
				USDValue: decimal.NewFromInt(22_500),
			},
		}, nil)

	server := newTestServer(t, service, tokenMaker)

	request, err := http.NewRequest(http.MethodGet, "/crypto/wallets", nil)
	require.NoError(t, err)
	require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, userID, "user", false, time.Minute))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got responseWallets
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Len(t, got.Data.Wallets, 1)
	require.Equal(t, currencypkg.BTC, got.Data.Wallets[0].Currency)
	require.True(t, got.Data.Wallets[0].USDValue.Equal(decimal.NewFromInt(22_500)))
}

func TestWithdraw(t *testing.T) {
	userID := int64(1)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	toAddress := "bc1" + randompkg.HexString(34)

	testCases := []struct {
		name           string
		body           gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: gin.H{"currency": "BTC", "amount": "0.5", "to_address": toAddress},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Withdraw(gomock.Any(), userID, "BTC", gomock.Any(), toAddress).
					DoAndReturn(func(_ interface{}, _ int64, _ string, amount decimal.Decimal, _ string) (cryptoservice.WithdrawDetails, error) {
						require.True(t, amount.Equal(decimal.RequireFromString("0.5")))
						return cryptoservice.WithdrawDetails{}, nil
					})
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "UnsupportedCurrency",
			body:           gin.H{"currency": "DOGE", "amount": "0.5", "to_address": toAddress},
			buildStubs:     func(service *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Currency is not a supported currency",
		},
		{
			name: "BelowMinimum",
			body: gin.H{"currency": "BTC", "amount": "0.0001", "to_address": toAddress},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Withdraw(gomock.Any(), userID, "BTC", gomock.Any(), toAddress).
					Return(cryptoservice.WithdrawDetails{}, domain.ErrBelowMinWithdrawal)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrBelowMinWithdrawal.Error(),
		},
		{
			name: "InsufficientBalance",
			body: gin.H{"currency": "BTC", "amount": "5", "to_address": toAddress},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Withdraw(gomock.Any(), userID, "BTC", gomock.Any(), toAddress).
					Return(cryptoservice.WithdrawDetails{}, domain.ErrInsufficientCryptoFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientCryptoFunds.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(t, service, tokenMaker)

			raw, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/crypto/withdraw", bytes.NewReader(raw))
			require.NoError(t, err)
			require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, userID, "user", false, time.Minute))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			got := web.Response{}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, tc.wantError, got.Error)
		})
	}
}

func TestPurchase(t *testing.T) {
	userID := int64(1)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name           string
		body           gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			body: gin.H{"currency": "ETH", "account_type": domain.Checking, "usd_amount": "300"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purchase(gomock.Any(), userID, "ETH", domain.Checking, gomock.Any()).
					Return(domain.CryptoTxResult{}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "InsufficientFunds",
			body: gin.H{"currency": "ETH", "account_type": domain.Checking, "usd_amount": "300"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Purchase(gomock.Any(), userID, "ETH", domain.Checking, gomock.Any()).
					Return(domain.CryptoTxResult{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
		{
			name:           "MalformedAmount",
			body:           gin.H{"currency": "ETH", "account_type": domain.Checking, "usd_amount": "3OO"},
			buildStubs:     func(service *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newTestServer(t, service, tokenMaker)

			raw, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/crypto/purchase", bytes.NewReader(raw))
			require.NoError(t, err)
			require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, userID, "user", false, time.Minute))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			got := web.Response{}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, tc.wantError, got.Error)
		})
	}
}

func TestRates(t *testing.T) {
	userID := int64(1)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Rates(gomock.Any()).
		Return(currencypkg.FallbackRates)

	server := newTestServer(t, service, tokenMaker)

	request, err := http.NewRequest(http.MethodGet, "/crypto/rates", nil)
	require.NoError(t, err)
	require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, userID, "user", false, time.Minute))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got responseRates
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.True(t, got.Data.Rates[currencypkg.BTC].Equal(decimal.NewFromInt(45_000)))
}
