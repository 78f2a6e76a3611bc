package transferservice

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/nexa-bank/internal/domain"
)

func TestInternal(t *testing.T) {
	t.Parallel()

	userID := int64(1)

	testCases := []struct {
		name       string
		arg        domain.InternalTransferParams
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name: "OK",
			arg: domain.InternalTransferParams{
				UserID:   userID,
				FromType: domain.Savings,
				ToType:   domain.Checking,
				Amount:   decimal.NewFromInt(30),
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					InternalTransferTx(gomock.Any(), gomock.Any()).
					Return(domain.TransferTxResult{}, nil)
			},
		},
		{
			name: "NonPositiveAmount",
			arg: domain.InternalTransferParams{
				UserID:   userID,
				FromType: domain.Savings,
				ToType:   domain.Checking,
				Amount:   decimal.Zero,
			},
			buildStubs: func(repo *MockRepo) {},
			wantErr:    domain.ErrInvalidAmount,
		},
		{
			name: "UnknownAccountType",
			arg: domain.InternalTransferParams{
				UserID:   userID,
				FromType: "premium",
				ToType:   domain.Checking,
				Amount:   decimal.NewFromInt(30),
			},
			buildStubs: func(repo *MockRepo) {},
			wantErr:    domain.ErrInvalidAccountType,
		},
		{
			name: "SameType",
			arg: domain.InternalTransferParams{
				UserID:   userID,
				FromType: domain.Savings,
				ToType:   domain.Savings,
				Amount:   decimal.NewFromInt(30),
			},
			buildStubs: func(repo *MockRepo) {},
			wantErr:    domain.ErrSameAccount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo, NewMockBeneficiaryRepo(ctrl), NewMockAccountRepo(ctrl))

			_, err := s.Internal(context.Background(), tc.arg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestExternal(t *testing.T) {
	t.Parallel()

	arg := domain.ExternalTransferParams{
		SenderUserID: 1,
		FromNumber:   "NBC000000001",
		ToNumber:     "nbc000000002",
		Amount:       decimal.NewFromInt(30),
		Description:  "rent",
	}

	testCases := []struct {
		name       string
		arg        domain.ExternalTransferParams
		buildStubs func(repo *MockRepo)
		wantErr    error
	}{
		{
			name: "OK",
			arg:  arg,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					ExternalTransferTx(gomock.Any(), arg).
					Return(domain.TransferTxResult{}, nil)
			},
		},
		{
			name: "NonPositiveAmount",
			arg: domain.ExternalTransferParams{
				SenderUserID: 1,
				FromNumber:   arg.FromNumber,
				ToNumber:     arg.ToNumber,
				Amount:       decimal.NewFromInt(-5),
			},
			buildStubs: func(repo *MockRepo) {},
			wantErr:    domain.ErrInvalidAmount,
		},
		{
			name: "AtLimit",
			arg: domain.ExternalTransferParams{
				SenderUserID: 1,
				FromNumber:   arg.FromNumber,
				ToNumber:     arg.ToNumber,
				Amount:       domain.ExternalTransferLimit,
			},
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					ExternalTransferTx(gomock.Any(), gomock.Any()).
					Return(domain.TransferTxResult{}, nil)
			},
		},
		{
			name: "AboveLimit",
			arg: domain.ExternalTransferParams{
				SenderUserID: 1,
				FromNumber:   arg.FromNumber,
				ToNumber:     arg.ToNumber,
				Amount:       domain.ExternalTransferLimit.Add(decimal.New(1, -2)),
			},
			buildStubs: func(repo *MockRepo) {},
			wantErr:    domain.ErrTransferLimitExceeded,
		},
		{
			name: "SelfTransferSurfaced",
			arg:  arg,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().
					ExternalTransferTx(gomock.Any(), arg).
					Return(domain.TransferTxResult{}, domain.ErrSelfTransfer)
			},
			wantErr: domain.ErrSelfTransfer,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			tc.buildStubs(repo)

			s := New(repo, NewMockBeneficiaryRepo(ctrl), NewMockAccountRepo(ctrl))

			_, err := s.External(context.Background(), tc.arg)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestBeneficiaries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	beneficiaries := NewMockBeneficiaryRepo(ctrl)
	accounts := NewMockAccountRepo(ctrl)

	accounts.EXPECT().
		GetByNumber(gomock.Any(), "NBC000000002").
		Return(domain.Account{ID: 2, Number: "NBC000000002"}, nil)

	beneficiaries.EXPECT().
		Create(gomock.Any(), int64(1), "NBC000000002", "Jordan Reed", "NexaBank").
		Return(domain.Beneficiary{ID: 1}, nil)

	beneficiaries.EXPECT().
		List(gomock.Any(), int64(1)).
		Return([]domain.Beneficiary{{ID: 1}}, nil)

	s := New(NewMockRepo(ctrl), beneficiaries, accounts)

	_, err := s.AddBeneficiary(context.Background(), 1, "NBC000000002", "Jordan Reed", "NexaBank")
	require.NoError(t, err)

	items, err := s.Beneficiaries(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestAddBeneficiaryUnknownTarget(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	beneficiaries := NewMockBeneficiaryRepo(ctrl)
	accounts := NewMockAccountRepo(ctrl)

	accounts.EXPECT().
		GetByNumber(gomock.Any(), "NBC999999999").
		Return(domain.Account{}, domain.ErrAccountNotFound)

	beneficiaries.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	s := New(NewMockRepo(ctrl), beneficiaries, accounts)

	_, err := s.AddBeneficiary(context.Background(), 1, "NBC999999999", "Jordan Reed", "NexaBank")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}
