package fundingdelivery

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

	authRoutes.POST("/funding-requests", handler.Create)
	authRoutes.GET("/funding-requests/pending", handler.Pending)

	return server
}

func TestCreate(t *testing.T) {
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
			body: gin.H{"currency": "BTC", "account_type": domain.Savings, "amount": "0.01"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Request(gomock.Any(), userID, "BTC", domain.Savings, gomock.Any()).
					DoAndReturn(func(_ interface{}, _ int64, _, _ string, amount decimal.Decimal) (domain.FundingRequest, error) {
						require.True(t, amount.Equal(decimal.RequireFromString("0.01")))

						return domain.FundingRequest{
							ID:     1,
							Status: domain.FundingPending,
						}, nil
					})
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "UnsupportedCurrency",
			body:           gin.H{"currency": "DOGE", "account_type": domain.Savings, "amount": "0.01"},
			buildStubs:     func(service *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Currency is not a supported currency",
		},
		{
			name:           "MalformedAmount",
			body:           gin.H{"currency": "BTC", "account_type": domain.Savings, "amount": "x"},
			buildStubs:     func(service *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidAmount.Error(),
		},
		{
			name: "NonPositiveAmount",
			body: gin.H{"currency": "BTC", "account_type": domain.Savings, "amount": "0"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Request(gomock.Any(), userID, "BTC", domain.Savings, gomock.Any()).
					Return(domain.FundingRequest{}, domain.ErrInvalidAmount)
			},
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

			request, err := http.NewRequest(http.MethodPost, "/funding-requests", bytes.NewReader(raw))
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

func TestPending(t *testing.T) {
	userID := int64(1)

	tokenMaker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewMockService(ctrl)
	service.EXPECT().
		Pending(gomock.Any(), userID).
		Return([]domain.FundingRequest{{ID: 2, Status: domain.FundingPending}}, nil)

	server := newTestServer(t, service, tokenMaker)

	request, err := http.NewRequest(http.MethodGet, "/funding-requests/pending", nil)
	require.NoError(t, err)
	require.NoError(t, middleware.AddAuthorization(request, tokenMaker, middleware.AuthTypeBearer, userID, "user", false, time.Minute))

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var got responseRequests
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
	require.Len(t, got.Data.Requests, 1)
	require.Equal(t, domain.FundingPending, got.Data.Requests[0].Status)
}
