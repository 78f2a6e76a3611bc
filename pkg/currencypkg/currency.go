// Package currencypkg provides common crypto currency related functionality for apps.
package currencypkg

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Constants for all supported crypto currencies.
const (
	BTC  = "BTC"
	ETH  = "ETH"
	USDT = "USDT"
)

// SupportedCurrencies holds all the supported crypto currencies.
var SupportedCurrencies = []string{
	BTC,
	ETH,
	USDT,
}

// IsSupportedCurrency returns true if the currency is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// ValidCurrency validates a request field as a supported crypto currency.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if currency, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(strings.ToUpper(currency))
	}

	return false
}

// FallbackRates holds fixed USD exchange rates used when the rate oracle is unavailable.
var FallbackRates = map[string]decimal.Decimal{
	BTC:  decimal.NewFromInt(45_000),
	ETH:  decimal.NewFromInt(3_000),
	USDT: decimal.NewFromInt(1),
}

// NetworkFees holds the approximate network fee charged on external withdrawals.
var NetworkFees = map[string]decimal.Decimal{
	BTC:  decimal.RequireFromString("0.0005"),
	ETH:  decimal.RequireFromString("0.003"),
	USDT: decimal.NewFromInt(1),
}

// MinWithdrawals holds the minimum external withdrawal amount per currency.
var MinWithdrawals = map[string]decimal.Decimal{
	BTC:  decimal.RequireFromString("0.001"),
	ETH:  decimal.RequireFromString("0.01"),
	USDT: decimal.NewFromInt(10),
}

// AddressPrefix returns the wallet address prefix for the currency.
// USDT uses ERC-20 style addresses.
func AddressPrefix(currency string) string {
	if currency == BTC {
		return "bc1"
	}

	return "0x"
}
