// Package stockdelivery manages delivery layer of stock trading.
package stockdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/internal/middleware"
	"github.com/go-petr/nexa-bank/internal/stockservice"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
	"github.com/go-petr/nexa-bank/pkg/tokenpkg"
	"github.com/go-petr/nexa-bank/pkg/web"
)

// Service provides service layer interface needed by stock delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package stockdelivery
type Service interface {
	Catalog(ctx context.Context) ([]domain.Stock, error)
	Quote(ctx context.Context, symbol string) (domain.Stock, error)
	Buy(ctx context.Context, userID int64, symbol, accountType string, quantity decimal.Decimal) (domain.StockTradeResult, error)
	Sell(ctx context.Context, userID int64, symbol, accountType string, quantity decimal.Decimal) (domain.StockTradeResult, error)
	Portfolio(ctx context.Context, userID int64) (stockservice.Portfolio, error)
	History(ctx context.Context, userID int64, limit int32) ([]domain.StockEntry, error)
}

// Handler facilitates stock delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns stock handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
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

func tradeError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrStockNotFound, domain.ErrAccountNotFound, domain.ErrPositionNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	case
		domain.ErrInvalidQuantity,
		domain.ErrInvalidPrice,
		domain.ErrInvalidAccountType,
		domain.ErrTradeTooSmall,
		domain.ErrInsufficientShares,
		domain.ErrInsufficientFunds,
		domain.ErrBelowMinimum:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	case errorspkg.ErrConflict:
		gctx.JSON(http.StatusConflict, web.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

type dataStocks struct {
	Stocks []domain.Stock `json:"stocks"`
}
type responseStocks struct {
	Data dataStocks `json:"data,omitempty"`
}

// Catalog handles http request to list all tradable stocks.
func (h *Handler) Catalog(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	stocks, err := h.service.Catalog(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseStocks{Data: dataStocks{stocks}})
}

type quoteRequest struct {
	Symbol string `uri:"symbol" binding:"required"`
}

type dataStock struct {
	Stock domain.Stock `json:"stock"`
}
type responseStock struct {
	Data dataStock `json:"data,omitempty"`
}

// Quote handles http request to view a live quote for one symbol.
func (h *Handler) Quote(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req quoteRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	stock, err := h.service.Quote(ctx, req.Symbol)
	if err != nil {
		tradeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseStock{Data: dataStock{stock}})
}

type tradeRequest struct {
	Symbol      string `json:"symbol" binding:"required"`
	AccountType string `json:"account_type" binding:"required,accounttype"`
	Quantity    string `json:"quantity" binding:"required"`
}

type dataTrade struct {
	Trade domain.StockTradeResult `json:"trade"`
}
type responseTrade struct {
	Data dataTrade `json:"data,omitempty"`
}

// Buy handles http request to execute a market buy.
func (h *Handler) Buy(gctx *gin.Context) {
	h.trade(gctx, h.service.Buy)
}

// Sell handles http request to execute a market sell.
func (h *Handler) Sell(gctx *gin.Context) {
	h.trade(gctx, h.service.Sell)
}

func (h *Handler) trade(
	gctx *gin.Context,
	op func(ctx context.Context, userID int64, symbol, accountType string, quantity decimal.Decimal) (domain.StockTradeResult, error),
) {
	ctx := gctx.Request.Context()

	var req tradeRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidQuantity))
		return
	}

	payload := authPayload(gctx)

	result, err := op(ctx, payload.UserID, req.Symbol, req.AccountType, quantity)
	if err != nil {
		tradeError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseTrade{Data: dataTrade{result}})
}

type dataPortfolio struct {
	Portfolio stockservice.Portfolio `json:"portfolio"`
}
type responsePortfolio struct {
	Data dataPortfolio `json:"data,omitempty"`
}

// Portfolio handles http request to view the caller's holdings.
func (h *Handler) Portfolio(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	payload := authPayload(gctx)

	portfolio, err := h.service.Portfolio(ctx, payload.UserID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responsePortfolio{Data: dataPortfolio{portfolio}})
}

type historyRequest struct {
	Limit int32 `form:"limit,default=50" binding:"min=1,max=200"`
}

type dataHistory struct {
	Entries []domain.StockEntry `json:"transactions"`
}
type responseHistory struct {
	Data dataHistory `json:"data,omitempty"`
}

// History handles http request to list the caller's trades.
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
