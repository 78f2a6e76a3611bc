// Package cryptoservice manages business logic layer of crypto
// wallets, conversions and withdrawals.
package cryptoservice

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/currencypkg"
	"github.com/go-petr/nexa-bank/pkg/randompkg"
)

// addressRandLen is the random hex tail length of generated addresses.
const addressRandLen = 34

// WalletRepo provides wallet data access needed by crypto service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package cryptoservice
type WalletRepo interface {
	Create(ctx context.Context, userID int64, currency, address string) (domain.Wallet, error)
	GetByUserAndCurrency(ctx context.Context, userID int64, currency string) (domain.Wallet, error)
	ListEntriesByUser(ctx context.Context, userID int64, limit int32) ([]domain.CryptoEntry, error)
}

// AccountRepo provides fiat account access needed by crypto service layer.
type AccountRepo interface {
	GetByUserAndType(ctx context.Context, userID int64, accountType string) (domain.Account, error)
	List(ctx context.Context, userID int64) ([]domain.Account, error)
}

// TxRepo provides the crypto units of work needed by crypto service layer.
type TxRepo interface {
	SellTx(ctx context.Context, walletID, accountID int64, cryptoAmount, usdAmount decimal.Decimal) (domain.CryptoTxResult, error)
	PurchaseTx(ctx context.Context, walletID, accountID int64, cryptoAmount, usdAmount decimal.Decimal) (domain.CryptoTxResult, error)
	WithdrawTx(ctx context.Context, walletID int64, amount, fee, usdValue decimal.Decimal, toAddress string) (domain.CryptoTxResult, error)
	SimulateFundingTx(ctx context.Context, walletID, accountID int64, cryptoAmount, usdAmount decimal.Decimal) (domain.CryptoTxResult, error)
}

// Oracle provides USD rates needed by crypto service layer.
type Oracle interface {
	CryptoPrices(ctx context.Context) map[string]decimal.Decimal
}

// Service facilitates crypto service layer logic.
type Service struct {
	wallets  WalletRepo
	accounts AccountRepo
	tx       TxRepo
	oracle   Oracle
}

// New returns crypto service struct to manage crypto business logic.
func New(wr WalletRepo, ar AccountRepo, tr TxRepo, o Oracle) *Service {
	return &Service{wallets: wr, accounts: ar, tx: tr, oracle: o}
}

// WalletView is a wallet with its USD valuation at the current rate.
type WalletView struct {
	domain.Wallet
	Rate     decimal.Decimal `json:"rate"`
	USDValue decimal.Decimal `json:"usd_value"`
}

// DepositInstructions tells the user where to send crypto and how much
// of it covers the requested USD amount. Nothing is credited.
type DepositInstructions struct {
	Currency       string          `json:"currency"`
	DepositAddress string          `json:"deposit_address"`
	ExpectedAmount decimal.Decimal `json:"expected_amount"`
	USDAmount      decimal.Decimal `json:"usd_amount"`
	Rate           decimal.Decimal `json:"exchange_rate"`
}

// FundingInstructions tells the user how much crypto to send to fund a
// fiat account with the requested USD amount.
type FundingInstructions struct {
	USDAmount      decimal.Decimal `json:"fund_usd_amount"`
	CryptoAmount   decimal.Decimal `json:"send_crypto_amount"`
	Currency       string          `json:"crypto_currency"`
	DepositAddress string          `json:"to_crypto_address"`
	AccountNumber  string          `json:"to_bank_account"`
	AccountType    string          `json:"bank_account_type"`
	Rate           decimal.Decimal `json:"exchange_rate"`
}

// WithdrawDetails reports an executed external withdrawal.
type WithdrawDetails struct {
	domain.CryptoTxResult
	Amount     decimal.Decimal `json:"amount"`
	NetworkFee decimal.Decimal `json:"network_fee"`
	Total      decimal.Decimal `json:"total_deducted"`
	ToAddress  string          `json:"to_address"`
}

func normalize(currency string) (string, error) {
	currency = strings.ToUpper(currency)
	if !currencypkg.IsSupportedCurrency(currency) {
		return "", domain.ErrUnsupportedCurrency
	}

	return currency, nil
}

// generateAddress returns a fresh deposit address with the currency's
// prefix. USDT reuses the ERC-20 format.
func generateAddress(currency string) string {
	return currencypkg.AddressPrefix(currency) + randompkg.HexString(addressRandLen)
}

func (s *Service) ensureWallet(ctx context.Context, userID int64, currency string) (domain.Wallet, error) {
	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err == domain.ErrWalletNotFound {
		return s.wallets.Create(ctx, userID, currency, generateAddress(currency))
	}

	return wallet, err
}

// Wallets returns the user's wallets for every supported currency,
// creating missing ones with a zero balance, valued at current rates.
func (s *Service) Wallets(ctx context.Context, userID int64) ([]WalletView, error) {
	prices := s.oracle.CryptoPrices(ctx)

	views := make([]WalletView, 0, len(currencypkg.SupportedCurrencies))

	for _, currency := range currencypkg.SupportedCurrencies {
		wallet, err := s.ensureWallet(ctx, userID, currency)
		if err != nil {
			return nil, err
		}

		rate := prices[currency]

		views = append(views, WalletView{
			Wallet:   wallet,
			Rate:     rate,
			USDValue: wallet.Balance.Mul(rate),
		})
	}

	return views, nil
}

// Deposit quotes how much crypto to send to the wallet's address to
// match the requested USD amount.
func (s *Service) Deposit(ctx context.Context, userID int64, currency string, usdAmount decimal.Decimal) (DepositInstructions, error) {
	currency, err := normalize(currency)
	if err != nil {
		return DepositInstructions{}, err
	}

	if !usdAmount.IsPositive() {
		return DepositInstructions{}, domain.ErrInvalidAmount
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return DepositInstructions{}, err
	}

	rate := s.oracle.CryptoPrices(ctx)[currency]

	return DepositInstructions{
		Currency:       currency,
		DepositAddress: wallet.Address,
		ExpectedAmount: usdAmount.Div(rate),
		USDAmount:      usdAmount,
		Rate:           rate,
	}, nil
}

// Withdraw sends crypto to an external address. The currency's network
// fee is added on top of the requested amount and the entry stays
// pending until confirmed.
func (s *Service) Withdraw(ctx context.Context, userID int64, currency string, amount decimal.Decimal, toAddress string) (WithdrawDetails, error) {
	currency, err := normalize(currency)
	if err != nil {
		return WithdrawDetails{}, err
	}

	if !amount.IsPositive() {
		return WithdrawDetails{}, domain.ErrInvalidAmount
	}

	if amount.LessThan(currencypkg.MinWithdrawals[currency]) {
		return WithdrawDetails{}, domain.ErrBelowMinWithdrawal
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return WithdrawDetails{}, err
	}

	fee := currencypkg.NetworkFees[currency]
	total := amount.Add(fee)

	if wallet.Balance.LessThan(total) {
		return WithdrawDetails{}, domain.ErrInsufficientCryptoFunds
	}

	rate := s.oracle.CryptoPrices(ctx)[currency]

	res, err := s.tx.WithdrawTx(ctx, wallet.ID, amount, fee, amount.Mul(rate), toAddress)
	if err != nil {
		return WithdrawDetails{}, err
	}

	return WithdrawDetails{
		CryptoTxResult: res,
		Amount:         amount,
		NetworkFee:     fee,
		Total:          total,
		ToAddress:      toAddress,
	}, nil
}

// Sell converts crypto to USD and credits the user's oldest fiat
// account.
func (s *Service) Sell(ctx context.Context, userID int64, currency string, amount decimal.Decimal) (domain.CryptoTxResult, error) {
	currency, err := normalize(currency)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	if !amount.IsPositive() {
		return domain.CryptoTxResult{}, domain.ErrInvalidAmount
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	if wallet.Balance.LessThan(amount) {
		return domain.CryptoTxResult{}, domain.ErrInsufficientCryptoFunds
	}

	accounts, err := s.accounts.List(ctx, userID)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	if len(accounts) == 0 {
		return domain.CryptoTxResult{}, domain.ErrAccountNotFound
	}

	rate := s.oracle.CryptoPrices(ctx)[currency]

	return s.tx.SellTx(ctx, wallet.ID, accounts[0].ID, amount, amount.Mul(rate))
}

// Purchase converts USD from the named fiat account into crypto.
func (s *Service) Purchase(ctx context.Context, userID int64, currency, accountType string, usdAmount decimal.Decimal) (domain.CryptoTxResult, error) {
	currency, err := normalize(currency)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	if !domain.IsValidAccountType(accountType) {
		return domain.CryptoTxResult{}, domain.ErrInvalidAccountType
	}

	if !usdAmount.IsPositive() {
		return domain.CryptoTxResult{}, domain.ErrInvalidAmount
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	account, err := s.accounts.GetByUserAndType(ctx, userID, accountType)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	rate := s.oracle.CryptoPrices(ctx)[currency]

	return s.tx.PurchaseTx(ctx, wallet.ID, account.ID, usdAmount.Div(rate), usdAmount)
}

// SimulateDeposit credits the wallet and the named fiat account as if
// a chain deposit confirmed. Demo helper.
func (s *Service) SimulateDeposit(ctx context.Context, userID int64, currency, accountType string, cryptoAmount decimal.Decimal) (domain.CryptoTxResult, error) {
	currency, err := normalize(currency)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	if !domain.IsValidAccountType(accountType) {
		return domain.CryptoTxResult{}, domain.ErrInvalidAccountType
	}

	if !cryptoAmount.IsPositive() {
		return domain.CryptoTxResult{}, domain.ErrInvalidAmount
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	account, err := s.accounts.GetByUserAndType(ctx, userID, accountType)
	if err != nil {
		return domain.CryptoTxResult{}, err
	}

	rate := s.oracle.CryptoPrices(ctx)[currency]

	return s.tx.SimulateFundingTx(ctx, wallet.ID, account.ID, cryptoAmount, cryptoAmount.Mul(rate))
}

// FundingQuote tells the user how much crypto to send to fund the
// named fiat account with the requested USD amount. The opening floor
// of the account type applies.
func (s *Service) FundingQuote(ctx context.Context, userID int64, currency, accountType string, usdAmount decimal.Decimal) (FundingInstructions, error) {
	currency, err := normalize(currency)
	if err != nil {
		return FundingInstructions{}, err
	}

	if !domain.IsValidAccountType(accountType) {
		return FundingInstructions{}, domain.ErrInvalidAccountType
	}

	if !usdAmount.IsPositive() {
		return FundingInstructions{}, domain.ErrInvalidAmount
	}

	if usdAmount.LessThan(domain.InitialDepositFloor(accountType)) {
		return FundingInstructions{}, domain.ErrFirstDepositTooSmall
	}

	wallet, err := s.wallets.GetByUserAndCurrency(ctx, userID, currency)
	if err != nil {
		return FundingInstructions{}, err
	}

	account, err := s.accounts.GetByUserAndType(ctx, userID, accountType)
	if err != nil {
		return FundingInstructions{}, err
	}

	rate := s.oracle.CryptoPrices(ctx)[currency]

	return FundingInstructions{
		USDAmount:      usdAmount,
		CryptoAmount:   usdAmount.Div(rate),
		Currency:       currency,
		DepositAddress: wallet.Address,
		AccountNumber:  account.Number,
		AccountType:    accountType,
		Rate:           rate,
	}, nil
}

// History returns the user's crypto ledger entries, newest first.
func (s *Service) History(ctx context.Context, userID int64, limit int32) ([]domain.CryptoEntry, error) {
	return s.wallets.ListEntriesByUser(ctx, userID, limit)
}

// Rates returns current USD rates for every supported currency.
func (s *Service) Rates(ctx context.Context) map[string]decimal.Decimal {
	return s.oracle.CryptoPrices(ctx)
}
