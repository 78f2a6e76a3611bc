// Package cryptodelivery manages delivery layer of crypto wallets.
package cryptodelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/cryptoservice"
	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/middleware"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
	"github.com/go-petr/nexa-bank/pkg/tokenpkg"
	"github.com/go-petr/nexa-bank/pkg/web"
)

// Service provides service layer interface needed by crypto delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package cryptodelivery
type Service interface {
	Wallets(ctx context.Context, userID int64) ([]cryptoservice.WalletView, error)
	Deposit(ctx context.Context, userID int64, currency string, usdAmount decimal.Decimal) (cryptoservice.DepositInstructions, error)
	Withdraw(ctx context.Context, userID int64, currency string, amount decimal.Decimal, toAddress string) (cryptoservice.WithdrawDetails, error)
	Sell(ctx context.Context, userID int64, currency string, amount decimal.Decimal) (domain.CryptoTxResult, error)
	Purchase(ctx context.Context, userID int64, currency, accountType string, usdAmount decimal.Decimal) (domain.CryptoTxResult, error)
	SimulateDeposit(ctx context.Context, userID int64, currency, accountType string, cryptoAmount decimal.Decimal) (domain.CryptoTxResult, error)
	FundingQuote(ctx context.Context, userID int64, currency, accountType string, usdAmount decimal.Decimal) (cryptoservice.FundingInstructions, error)
	History(ctx context.Context, userID int64, limit int32) ([]domain.CryptoEntry, error)
	Rates(ctx context.Context) map[string]decimal.Decimal
}

// Handler facilitates crypto delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns crypto handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

func bindError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())
	l.Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		gctx.JSON(http.StatusBadRequest, web.Response{Error: field.Field() + web.GetErrorMsg(field)})

		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}

func authPayload(gctx *gin.Context) *tokenpkg.Payload {
	return gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)
}

func cryptoError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrAccountNotFound, domain.ErrWalletNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	case
		domain.ErrUnsupportedCurrency,
		domain.ErrInvalidAccountType,
		domain.ErrInvalidAmount,
		domain.ErrBelowMinWithdrawal,
		domain.ErrInsufficientCryptoFunds,
		domain.ErrInsufficientFunds,
		domain.ErrBelowMinimum,
		domain.ErrFirstDepositTooSmall:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	case errorspkg.ErrConflict:
		gctx.JSON(http.StatusConflict, web.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

type dataWallets struct {
	Wallets []cryptoservice.WalletView `json:"wallets"`
}
type responseWallets struct {
	Data dataWallets `json:"data,omitempty"`
}

// Wallets handles http request to list the caller's wallets with USD values.
func (h *Handler) Wallets(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	payload := authPayload(gctx)

	wallets, err := h.service.Wallets(ctx, payload.UserID)
	if err != nil {
		cryptoError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseWallets{Data: dataWallets{wallets}})
}

type dataRates struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}
type responseRates struct {
	Data dataRates `json:"data,omitempty"`
}

// Rates handles http request to view current USD exchange rates.
func (h *Handler) Rates(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	gctx.JSON(http.StatusOK, responseRates{Data: dataRates{h.service.Rates(ctx)}})
}

type depositRequest struct {
	Currency  string `json:"currency" binding:"required,cryptocurrency"`
	USDAmount string `json:"usd_amount" binding:"required"`
}

type dataDeposit struct {
	Instructions cryptoservice.DepositInstructions `json:"instructions"`
}
type responseDeposit struct {
	Data dataDeposit `json:"data,omitempty"`
}

// Deposit handles http request for crypto deposit instructions.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	usdAmount, err := decimal.NewFromString(req.USDAmount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	payload := authPayload(gctx)

	instructions, err := h.service.Deposit(ctx, payload.UserID, req.Currency, usdAmount)
	if err != nil {
		cryptoError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseDeposit{Data: dataDeposit{instructions}})
}

type withdrawRequest struct {
	Currency  string `json:"currency" binding:"required,cryptocurrency"`
	Amount    string `json:"amount" binding:"required"`
	ToAddress string `json:"to_address" binding:"required"`
}

type dataWithdraw struct {
	Withdrawal cryptoservice.WithdrawDetails `json:"withdrawal"`
}
type responseWithdraw struct {
	Data dataWithdraw `json:"data,omitempty"`
}

// Withdraw handles http request to send crypto to an external address.
func (h *Handler) Withdraw(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req withdrawRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	payload := authPayload(gctx)

	details, err := h.service.Withdraw(ctx, payload.UserID, req.Currency, amount, req.ToAddress)
	if err != nil {
		cryptoError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseWithdraw{Data: dataWithdraw{details}})
}

type sellRequest struct {
	Currency string `json:"currency" binding:"required,cryptocurrency"`
	Amount   string `json:"amount" binding:"required"`
}

type dataTx struct {
	Result domain.CryptoTxResult `json:"result"`
}
type responseTx struct {
	Data dataTx `json:"data,omitempty"`
}

// Sell handles http request to convert crypto into fiat.
func (h *Handler) Sell(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req sellRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	payload := authPayload(gctx)

	result, err := h.service.Sell(ctx, payload.UserID, req.Currency, amount)
	if err != nil {
		cryptoError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTx{Data: dataTx{result}})
}

type purchaseRequest struct {
	Currency    string `json:"currency" binding:"required,cryptocurrency"`
	AccountType string `json:"account_type" binding:"required,accounttype"`
	USDAmount   string `json:"usd_amount" binding:"required"`
}

// Purchase handles http request to buy crypto with fiat.
func (h *Handler) Purchase(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req purchaseRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	usdAmount, err := decimal.NewFromString(req.USDAmount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	payload := authPayload(gctx)

	result, err := h.service.Purchase(ctx, payload.UserID, req.Currency, req.AccountType, usdAmount)
	if err != nil {
		cryptoError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTx{Data: dataTx{result}})
}

type simulateRequest struct {
	Currency    string `json:"currency" binding:"required,cryptocurrency"`
	AccountType string `json:"account_type" binding:"required,accounttype"`
	Amount      string `json:"amount" binding:"required"`
}

// SimulateDeposit handles http request to simulate an inbound crypto
// transfer that funds both the wallet and the fiat account.
func (h *Handler) SimulateDeposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req simulateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	payload := authPayload(gctx)

	result, err := h.service.SimulateDeposit(ctx, payload.UserID, req.Currency, req.AccountType, amount)
	if err != nil {
		cryptoError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTx{Data: dataTx{result}})
}

type fundingQuoteRequest struct {
	Currency    string `json:"currency" binding:"required,cryptocurrency"`
	AccountType string `json:"account_type" binding:"required,accounttype"`
	USDAmount   string `json:"usd_amount" binding:"required"`
}

type dataFundingQuote struct {
	Instructions cryptoservice.FundingInstructions `json:"instructions"`
}
type responseFundingQuote struct {
	Data dataFundingQuote `json:"data,omitempty"`
}

// FundingQuote handles http request for instructions to fund a fiat
// account with crypto.
func (h *Handler) FundingQuote(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req fundingQuoteRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	usdAmount, err := decimal.NewFromString(req.USDAmount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	payload := authPayload(gctx)

	instructions, err := h.service.FundingQuote(ctx, payload.UserID, req.Currency, req.AccountType, usdAmount)
	if err != nil {
		cryptoError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseFundingQuote{Data: dataFundingQuote{instructions}})
}

type historyRequest struct {
	Limit int32 `form:"limit,default=50" binding:"min=1,max=200"`
}

type dataHistory struct {
	Entries []domain.CryptoEntry `json:"transactions"`
}
type responseHistory struct {
	Data dataHistory `json:"data,omitempty"`
}

// History handles http request to list the caller's crypto activity.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req historyRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindError(gctx, err)
		return
	}

	payload := authPayload(gctx)

	entries, err := h.service.History(ctx, payload.UserID, req.Limit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseHistory{Data: dataHistory{entries}})
}
