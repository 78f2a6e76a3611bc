package admindelivery

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

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/middleware"
	"github.com/go-petr/nexa-bank/pkg/randompkg"
	"github.com/go-petr/nexa-bank/pkg/tokenpkg"
	"github.com/go-petr/nexa-bank/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("accounttype", web.ValidAccountType); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

type mocks struct {
	users    *MockUserService
	accounts *MockAccountService
	funding  *MockFundingService
	stocks   *MockStockService
}

func newTestServer(t *testing.T, m mocks, tokenMaker tokenpkg.Maker) *gin.Engine {
	t.Helper()

	handler := NewHandler(m.users, m.accounts, m.funding, m.stocks)

	server := gin.New()
	adminRoutes := server.Group("/admin").
		Use(middleware.AuthMiddleware(tokenMaker)).
		Use(middleware.AdminMiddleware())

	adminRoutes.GET("/users", handler.Users)
	adminRoutes.GET("/users/:id/accounts", handler.UserAccounts)
	adminRoutes.POST("/users/:id/adjust", handler.Adjust)
	adminRoutes.GET("/funding-requests", handler.ReviewQueue)
	adminRoutes.POST("/funding-requests/:id/approve", handler.Approve)
	adminRoutes.POST("/funding-requests/:id/reject", handler.Reject)
	adminRoutes.GET("/stocks", handler.Stocks)
	adminRoutes.POST("/stocks", handler.AddStock)
	adminRoutes.GET("/stocks/transactions", handler.Transactions)
	adminRoutes.POST("/stocks/:symbol/price", handler.SetPrice)

	return server
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		users:    NewMockUserService(ctrl),
		accounts: NewMockAccountService(ctrl),
		funding:  NewMockFundingService(ctrl),
		stocks:   NewMockStockService(ctrl),
	}
}

func TestAdminGate(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.users.EXPECT().List(gomock.Any()).Times(0)

	server := newTestServer(t, m, tokenMaker)

	request, err := http.NewRequest(http.MethodGet, "/admin/users", nil)
	require.NoError(t, err)
	require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 2, "user", false, time.Minute))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusForbidden, recorder.Code)

	got := web.Response{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Equal(t, middleware.ErrAdminRequired.Error(), got.Error)
}

func TestUsers(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.users.EXPECT().
		List(gomock.Any()).
		Return([]domain.User{{ID: 1, Email: "admin@nexabank.com", IsAdmin: true}}, nil)

	server := newTestServer(t, m, tokenMaker)

	request, err := http.NewRequest(http.MethodGet, "/admin/users", nil)
	require.NoError(t, err)
	require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 1, "admin", true, time.Minute))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got responseUsers
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Len(t, got.Data.Users, 1)
}

func TestUserAccounts(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name           string
		userID         string
		buildStubs     func(m mocks)
		wantStatusCode int
		checkData      func(t *testing.T, got responseUserAccounts)
	}{
		{
			name:   "OK",
			userID: "2",
			buildStubs: func(m mocks) {
				m.users.EXPECT().
					Get(gomock.Any(), int64(2)).
					Return(domain.User{ID: 2, Email: "alice@nexabank.com"}, nil)

				m.accounts.EXPECT().
					List(gomock.Any(), int64(2)).
					Return([]domain.Account{
						{ID: 1, Balance: decimal.RequireFromString("150.25")},
						{ID: 2, Balance: decimal.RequireFromString("49.75")},
					}, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(t *testing.T, got responseUserAccounts) {
				require.Len(t, got.Data.Accounts, 2)
				require.True(t, got.Data.TotalBalance.Equal(decimal.NewFromInt(200)))
			},
		},
		{
			name:   "UserNotFound",
			userID: "77",
			buildStubs: func(m mocks) {
				m.users.EXPECT().
					Get(gomock.Any(), int64(77)).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.buildStubs(m)

			server := newTestServer(t, m, tokenMaker)

			request, err := http.NewRequest(http.MethodGet, "/admin/users/"+tc.userID+"/accounts", nil)
			require.NoError(t, err)
			require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 1, "admin", true, time.Minute))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.checkData != nil {
				var got responseUserAccounts
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
				tc.checkData(t, got)
			}
		})
	}
}

func TestAdjust(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name           string
		userID         string
		body           gin.H
		buildStubs     func(m mocks)
		wantStatusCode int
		wantError      string
	}{
		{
			name:   "OK",
			userID: "7",
			body:   gin.H{"account_type": domain.Checking, "amount": "-25.50", "reason": "fee reversal"},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().
					Adjust(gomock.Any(), int64(7), domain.Checking, gomock.Any(), "fee reversal").
					DoAndReturn(func(_ interface{}, _ int64, _ string, delta decimal.Decimal, _ string) (domain.Account, domain.Entry, error) {
						require.True(t, delta.Equal(decimal.RequireFromString("-25.50")))
						return domain.Account{ID: 7}, domain.Entry{}, nil
					})
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "MalformedAmount",
			userID:         "7",
			body:           gin.H{"account_type": domain.Checking, "amount": "oops"},
			buildStubs:     func(m mocks) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
		{
			name:           "UnknownAccountType",
			userID:         "7",
			body:           gin.H{"account_type": "premium", "amount": "10"},
			buildStubs:     func(m mocks) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "AccountType must be either savings or checking",
		},
		{
			name:   "AccountNotFound",
			userID: "99",
			body:   gin.H{"account_type": domain.Savings, "amount": "10"},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().
					Adjust(gomock.Any(), int64(99), domain.Savings, gomock.Any(), "").
					Return(domain.Account{}, domain.Entry{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrAccountNotFound.Error(),
		},
		{
			name:   "WouldOverdraw",
			userID: "7",
			body:   gin.H{"account_type": domain.Checking, "amount": "-1000"},
			buildStubs: func(m mocks) {
				m.accounts.EXPECT().
					Adjust(gomock.Any(), int64(7), domain.Checking, gomock.Any(), "").
					Return(domain.Account{}, domain.Entry{}, domain.ErrInsufficientFunds)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInsufficientFunds.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.buildStubs(m)

			server := newTestServer(t, m, tokenMaker)

			raw, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/admin/users/"+tc.userID+"/adjust", bytes.NewReader(raw))
			require.NoError(t, err)
			require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 1, "admin", true, time.Minute))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			got := web.Response{}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, tc.wantError, got.Error)
		})
	}
}

func TestApprove(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name           string
		buildStubs     func(m mocks)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			buildStubs: func(m mocks) {
				m.funding.EXPECT().
					Approve(gomock.Any(), int64(3), "looks good").
					Return(domain.FundingApproveResult{
						Request: domain.FundingRequest{ID: 3, Status: domain.FundingApproved},
					}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "AlreadyReviewed",
			buildStubs: func(m mocks) {
				m.funding.EXPECT().
					Approve(gomock.Any(), int64(3), "looks good").
					Return(domain.FundingApproveResult{}, domain.ErrRequestNotPending)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrRequestNotPending.Error(),
		},
		{
			name: "NotFound",
			buildStubs: func(m mocks) {
				m.funding.EXPECT().
					Approve(gomock.Any(), int64(3), "looks good").
					Return(domain.FundingApproveResult{}, domain.ErrRequestNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrRequestNotFound.Error(),
		},
		{
			name: "WalletNeverOpened",
			buildStubs: func(m mocks) {
				m.funding.EXPECT().
					Approve(gomock.Any(), int64(3), "looks good").
					Return(domain.FundingApproveResult{}, domain.ErrWalletNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrWalletNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.buildStubs(m)

			server := newTestServer(t, m, tokenMaker)

			raw, err := json.Marshal(gin.H{"notes": "looks good"})
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/admin/funding-requests/3/approve", bytes.NewReader(raw))
			require.NoError(t, err)
			require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 1, "admin", true, time.Minute))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			got := web.Response{}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, tc.wantError, got.Error)
		})
	}
}

func TestSetPrice(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	testCases := []struct {
		name           string
		symbol         string
		body           gin.H
		buildStubs     func(m mocks)
		wantStatusCode int
		wantError      string
	}{
		{
			name:   "OK",
			symbol: "AAPL",
			body:   gin.H{"new_price": "190.00"},
			buildStubs: func(m mocks) {
				m.stocks.EXPECT().
					SetPrice(gomock.Any(), "AAPL", gomock.Any()).
					DoAndReturn(func(_ interface{}, _ string, price decimal.Decimal) (domain.Stock, error) {
						require.True(t, price.Equal(decimal.NewFromInt(190)))
						return domain.Stock{Symbol: "AAPL", CurrentPrice: price}, nil
					})
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "MalformedPrice",
			symbol:         "AAPL",
			body:           gin.H{"new_price": "1.9O"},
			buildStubs:     func(m mocks) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidPrice.Error(),
		},
		{
			name:   "UnlistedSymbol",
			symbol: "ZZZZ",
			body:   gin.H{"new_price": "10"},
			buildStubs: func(m mocks) {
				m.stocks.EXPECT().
					SetPrice(gomock.Any(), "ZZZZ", gomock.Any()).
					Return(domain.Stock{}, domain.ErrStockNotFound)
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      domain.ErrStockNotFound.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newMocks(ctrl)
			tc.buildStubs(m)

			server := newTestServer(t, m, tokenMaker)

			raw, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/admin/stocks/"+tc.symbol+"/price", bytes.NewReader(raw))
			require.NoError(t, err)
			require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 1, "admin", true, time.Minute))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatusCode, recorder.Code)

			got := web.Response{}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
			require.Equal(t, tc.wantError, got.Error)
		})
	}
}

func TestStockTransactions(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.stocks.EXPECT().
		Transactions(gomock.Any(), int32(100)).
		Return([]domain.StockEntry{{ID: 1, Symbol: "AAPL", Kind: domain.StockBuy}}, nil)

	server := newTestServer(t, m, tokenMaker)

	request, err := http.NewRequest(http.MethodGet, "/admin/stocks/transactions", nil)
	require.NoError(t, err)
	require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 1, "admin", true, time.Minute))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got responseTransactions
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Len(t, got.Data.Transactions, 1)
}

func TestAddStock(t *testing.T) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newMocks(ctrl)
	m.stocks.EXPECT().
		List(gomock.Any(), "NVDA", "NVIDIA Corporation").
		Return(domain.Stock{Symbol: "NVDA", CompanyName: "NVIDIA Corporation"}, nil)

	server := newTestServer(t, m, tokenMaker)

	raw, err := json.Marshal(gin.H{"symbol": "NVDA", "company_name": "NVIDIA Corporation"})
	require.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/admin/stocks", bytes.NewReader(raw))
	require.NoError(t, err)
	require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, 1, "admin", true, time.Minute))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got responseStock
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Equal(t, "NVDA", got.Data.Stock.Symbol)
}
