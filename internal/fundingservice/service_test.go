package fundingservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/currencypkg"
)

func TestRequest(t *testing.T) {
	t.Parallel()

	userID := int64(1)

	testCases := []struct {
		name        string
		currency    string
		accountType string
		amount      decimal.Decimal
		buildStubs  func(repo *MockRepo, oracle *MockOracle)
		wantErr     error
	}{
		{
			name:        "LocksUSDAmountAtCurrentRate",
			currency:    "btc",
			accountType: domain.Checking,
			amount:      decimal.RequireFromString("0.01"),
			buildStubs: func(repo *MockRepo, oracle *MockOracle) {
				oracle.EXPECT().
					CryptoPrices(gomock.Any()).
					Return(currencypkg.FallbackRates)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg domain.CreateFundingRequestParams) (domain.FundingRequest, error) {
						require.Equal(t, currencypkg.BTC, arg.Currency)
						require.Equal(t, domain.Checking, arg.AccountType)
						require.True(t, arg.USDAmount.Equal(decimal.NewFromInt(450)))

						return domain.FundingRequest{ID: 1, Status: domain.FundingPending}, nil
					})
			},
		},
		{
			name:        "UnsupportedCurrency",
			currency:    "DOGE",
			accountType: domain.Checking,
			amount:      decimal.NewFromInt(1),
			buildStubs:  func(repo *MockRepo, oracle *MockOracle) {},
			wantErr:     domain.ErrUnsupportedCurrency,
		},
		{
			name:        "NonPositiveAmount",
			currency:    currencypkg.ETH,
			accountType: domain.Savings,
			amount:      decimal.Zero,
			buildStubs:  func(repo *MockRepo, oracle *MockOracle) {},
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name:        "UnknownAccountType",
			currency:    currencypkg.ETH,
			accountType: "premium",
			amount:      decimal.NewFromInt(1),
			buildStubs:  func(repo *MockRepo, oracle *MockOracle) {},
			wantErr:     domain.ErrInvalidAccountType,
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

			request, err := s.Request(context.Background(), userID, tc.currency, tc.accountType, tc.amount)
			require.ErrorIs(t, err, tc.wantErr)

			if tc.wantErr == nil {
				require.Equal(t, domain.FundingPending, request.Status)
			}
		})
	}
}

func TestApproveAndReject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)

	repo.EXPECT().
		ApproveTx(gomock.Any(), int64(7), "verified on chain").
		Return(domain.FundingApproveResult{
			Request: domain.FundingRequest{ID: 7, Status: domain.FundingApproved},
		}, nil)

	repo.EXPECT().
		ApproveTx(gomock.Any(), int64(7), "").
		Return(domain.FundingApproveResult{}, domain.ErrRequestNotPending)

	repo.EXPECT().
		Reject(gomock.Any(), int64(8), "no deposit received").
		Return(domain.FundingRequest{ID: 8, Status: domain.FundingRejected}, nil)

	s := New(repo, NewMockOracle(ctrl))

	res, err := s.Approve(context.Background(), 7, "verified on chain")
	require.NoError(t, err)
	require.Equal(t, domain.FundingApproved, res.Request.Status)

	// Second settlement attempt hits the terminal state.
	_, err = s.Approve(context.Background(), 7, "")
	require.ErrorIs(t, err, domain.ErrRequestNotPending)

	request, err := s.Reject(context.Background(), 8, "no deposit received")
	require.NoError(t, err)
	require.Equal(t, domain.FundingRejected, request.Status)
}
