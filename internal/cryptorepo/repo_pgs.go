// Package cryptorepo owns the crypto money movement units of work.
// Dual-ledger operations mutate the wallet and the paired fiat account
// in one database transaction, each side through the mutation engine.
package cryptorepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/accountrepo"
	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/mutation"
	"github.com/go-petr/nexa-bank/internal/walletrepo"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
)

// RepoPGS facilitates crypto repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns crypto RepoPGS.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{conn: conn}
}

func (r *RepoPGS) beginTx(ctx context.Context) (*sql.Tx, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return tx, nil
}

func commit(ctx context.Context, tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

// SellTx converts crypto to fiat: debits the wallet and credits the
// checking account with the quoted USD amount.
func (r *RepoPGS) SellTx(ctx context.Context, walletID, accountID int64, cryptoAmount, usdAmount decimal.Decimal) (domain.CryptoTxResult, error) {
	var res domain.CryptoTxResult

	tx, err := r.beginTx(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	wallets := walletrepo.NewRepoPGS(tx)
	accounts := accountrepo.NewRepoPGS(tx)

	wallet, err := wallets.Get(ctx, walletID)
	if err != nil {
		return res, err
	}

	account, err := accounts.Get(ctx, accountID)
	if err != nil {
		return res, err
	}

	walletTarget := wallets.LedgerTarget(wallet, usdAmount, "", domain.CryptoConfirmed)
	accountTarget := accounts.LedgerTarget(account)

	desc := fmt.Sprintf("Crypto sale: %s %s", cryptoAmount, wallet.Currency)

	// Every dual-ledger operation locks the account row before the
	// wallet row, so opposite conversions cannot deadlock.
	if _, err := mutation.Apply(ctx, accountTarget, usdAmount, desc, mutation.Policy{}); err != nil {
		return res, err
	}

	if _, err := mutation.Apply(ctx, walletTarget, cryptoAmount.Neg(), "", mutation.Policy{}); err != nil {
		return res, err
	}

	if err := commit(ctx, tx); err != nil {
		return res, err
	}

	res.Account = accountTarget.Account
	res.Wallet = walletTarget.Wallet
	res.BankEntry = accountTarget.Entry
	res.CryptoEntry = walletTarget.Entry

	return res, nil
}

// PurchaseTx converts fiat to crypto: debits the account, honoring its
// minimum balance, and credits the wallet.
func (r *RepoPGS) PurchaseTx(ctx context.Context, walletID, accountID int64, cryptoAmount, usdAmount decimal.Decimal) (domain.CryptoTxResult, error) {
	var res domain.CryptoTxResult

	tx, err := r.beginTx(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	wallets := walletrepo.NewRepoPGS(tx)
	accounts := accountrepo.NewRepoPGS(tx)

	wallet, err := wallets.Get(ctx, walletID)
	if err != nil {
		return res, err
	}

	account, err := accounts.Get(ctx, accountID)
	if err != nil {
		return res, err
	}

	walletTarget := wallets.LedgerTarget(wallet, usdAmount, "", domain.CryptoConfirmed)
	accountTarget := accounts.LedgerTarget(account)

	desc := fmt.Sprintf("Crypto purchase: %s %s", cryptoAmount, wallet.Currency)

	_, err = mutation.Apply(ctx, accountTarget, usdAmount.Neg(), desc, mutation.MinimumFor(account.Type))
	if err != nil {
		return res, err
	}

	if _, err := mutation.Apply(ctx, walletTarget, cryptoAmount, "", mutation.Policy{}); err != nil {
		return res, err
	}

	if err := commit(ctx, tx); err != nil {
		return res, err
	}

	res.Account = accountTarget.Account
	res.Wallet = walletTarget.Wallet
	res.BankEntry = accountTarget.Entry
	res.CryptoEntry = walletTarget.Entry

	return res, nil
}

// WithdrawTx sends crypto to an external address. The network fee is
// deducted on top of the requested amount and the entry stays pending
// until the chain confirms it.
func (r *RepoPGS) WithdrawTx(ctx context.Context, walletID int64, amount, fee, usdValue decimal.Decimal, toAddress string) (domain.CryptoTxResult, error) {
	var res domain.CryptoTxResult

	tx, err := r.beginTx(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	wallets := walletrepo.NewRepoPGS(tx)

	wallet, err := wallets.Get(ctx, walletID)
	if err != nil {
		return res, err
	}

	target := wallets.LedgerTarget(wallet, usdValue, toAddress, domain.CryptoPending)

	if _, err := mutation.Apply(ctx, target, amount.Add(fee).Neg(), "", mutation.Policy{}); err != nil {
		return res, err
	}

	if err := commit(ctx, tx); err != nil {
		return res, err
	}

	res.Wallet = target.Wallet
	res.CryptoEntry = target.Entry

	return res, nil
}

// SimulateFundingTx credits the wallet as if a chain deposit to its
// own address confirmed and credits the paired fiat account with the
// USD value in the same transaction.
func (r *RepoPGS) SimulateFundingTx(ctx context.Context, walletID, accountID int64, cryptoAmount, usdAmount decimal.Decimal) (domain.CryptoTxResult, error) {
	var res domain.CryptoTxResult

	tx, err := r.beginTx(ctx)
	if err != nil {
		return res, err
	}
	defer tx.Rollback()

	wallets := walletrepo.NewRepoPGS(tx)
	accounts := accountrepo.NewRepoPGS(tx)

	wallet, err := wallets.Get(ctx, walletID)
	if err != nil {
		return res, err
	}

	account, err := accounts.Get(ctx, accountID)
	if err != nil {
		return res, err
	}

	walletTarget := wallets.LedgerTarget(wallet, usdAmount, wallet.Address, domain.CryptoConfirmed)
	accountTarget := accounts.LedgerTarget(account)

	desc := fmt.Sprintf("Crypto funding: %s %s", cryptoAmount, wallet.Currency)

	if _, err := mutation.Apply(ctx, accountTarget, usdAmount, desc, mutation.Policy{}); err != nil {
		return res, err
	}

	if _, err := mutation.Apply(ctx, walletTarget, cryptoAmount, "", mutation.Policy{}); err != nil {
		return res, err
	}

	if err := commit(ctx, tx); err != nil {
		return res, err
	}

	res.Account = accountTarget.Account
	res.Wallet = walletTarget.Wallet
	res.BankEntry = accountTarget.Entry
	res.CryptoEntry = walletTarget.Entry

	return res, nil
}
