// Package mutation provides the shared balance mutation primitive used
// by every money moving operation. It is asset agnostic: fiat accounts
// and crypto wallets expose the same Target surface.
package mutation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
)

// Target is a balance-bearing row scoped to one unit of work. SetBalance
// must be a conditional write that fails if the row changed since it was
// read, so concurrent mutations of the same row cannot both commit.
type Target interface {
	Balance() decimal.Decimal
	SetBalance(ctx context.Context, balance decimal.Decimal) error
	AppendEntry(ctx context.Context, kind string, amount, balanceAfter decimal.Decimal, description string) error
}

// Policy holds the minimum balance the mutated record must preserve.
// The zero value enforces non-negativity only.
type Policy struct {
	Minimum decimal.Decimal
}

// MinimumFor returns the policy bound to a fiat account type.
func MinimumFor(accountType string) Policy {
	return Policy{Minimum: domain.MinimumBalance(accountType)}
}

// Leg is one side of a paired mutation.
type Leg struct {
	// LockOrder fixes the execution order of paired legs. Callers pass
	// the row's primary key so every transaction takes its row locks
	// in the same order.
	LockOrder   int64
	Target      Target
	Delta       decimal.Decimal
	Description string
	Policy      Policy
}

// ApplyPair applies two legs in ascending LockOrder. To avoid
// deadlocks, transactions touching the same two rows must lock them
// in a consistent order.
func ApplyPair(ctx context.Context, a, b Leg) error {
	if b.LockOrder < a.LockOrder {
		a, b = b, a
	}

	if _, err := Apply(ctx, a.Target, a.Delta, a.Description, a.Policy); err != nil {
		return err
	}

	_, err := Apply(ctx, b.Target, b.Delta, b.Description, b.Policy)

	return err
}

// Result reports the balances before and after the mutation.
type Result struct {
	Previous decimal.Decimal
	Current  decimal.Decimal
}

// Apply validates and applies a signed delta to the target and appends
// exactly one audit entry whose resulting balance equals the new
// balance. Both writes happen on the target's unit of work, so the
// caller's transaction makes them atomic.
func Apply(ctx context.Context, t Target, delta decimal.Decimal, description string, p Policy) (Result, error) {
	var res Result

	if delta.IsZero() {
		return res, domain.ErrInvalidAmount
	}

	previous := t.Balance()
	current := previous.Add(delta)

	if current.IsNegative() {
		return res, domain.ErrInsufficientFunds
	}

	if current.LessThan(p.Minimum) {
		return res, domain.ErrBelowMinimum
	}

	kind := domain.EntryDeposit
	if delta.IsNegative() {
		kind = domain.EntryWithdraw
	}

	if err := t.SetBalance(ctx, current); err != nil {
		return res, err
	}

	if err := t.AppendEntry(ctx, kind, delta.Abs(), current, description); err != nil {
		return res, err
	}

	res.Previous = previous
	res.Current = current

	return res, nil
}
