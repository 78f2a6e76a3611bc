// Package admindelivery manages delivery layer of administrative operations.
// Every route in this package sits behind the admin gate.
package admindelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/nexa-bank/internal/domain"
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
	"github.com/go-petr/nexa-bank/pkg/web"
)

// UserService provides user listing needed by admin delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package admindelivery
type UserService interface {
	Get(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

// AccountService provides account access needed by admin delivery layer.
type AccountService interface {
	List(ctx context.Context, userID int64) ([]domain.Account, error)
	Adjust(ctx context.Context, userID int64, accountType string, delta decimal.Decimal, reason string) (domain.Account, domain.Entry, error)
}

// FundingService provides funding review operations needed by admin delivery layer.
type FundingService interface {
	ReviewQueue(ctx context.Context) ([]domain.FundingRequest, error)
	Approve(ctx context.Context, requestID int64, notes string) (domain.FundingApproveResult, error)
	Reject(ctx context.Context, requestID int64, notes string) (domain.FundingRequest, error)
}

// StockService provides catalog management needed by admin delivery layer.
type StockService interface {
	List(ctx context.Context, symbol, companyName string) (domain.Stock, error)
	Stocks(ctx context.Context) ([]domain.Stock, error)
	SetPrice(ctx context.Context, symbol string, price decimal.Decimal) (domain.Stock, error)
	Transactions(ctx context.Context, limit int32) ([]domain.StockEntry, error)
}

// Handler facilitates admin delivery layer logic.
type Handler struct {
	users    UserService
	accounts AccountService
	funding  FundingService
	stocks   StockService
}

// NewHandler returns admin handler.
func NewHandler(us UserService, as AccountService, fs FundingService, ss StockService) Handler {
	return Handler{users: us, accounts: as, funding: fs, stocks: ss}
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

type dataUsers struct {
	Users []domain.User `json:"users"`
}
type responseUsers struct {
	Data dataUsers `json:"data,omitempty"`
}

// Users handles http request to list all registered users.
func (h *Handler) Users(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	users, err := h.users.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseUsers{Data: dataUsers{users}})
}

type userAccountsURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type dataUserAccounts struct {
	User         domain.User      `json:"user"`
	Accounts     []domain.Account `json:"accounts"`
	TotalBalance decimal.Decimal  `json:"total_balance"`
}
type responseUserAccounts struct {
	Data dataUserAccounts `json:"data,omitempty"`
}

// UserAccounts handles http request to list any user's fiat accounts
// with their combined balance.
func (h *Handler) UserAccounts(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri userAccountsURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	user, err := h.users.Get(ctx, uri.ID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	accounts, err := h.accounts.List(ctx, uri.ID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	total := decimal.Zero
	for i := range accounts {
		total = total.Add(accounts[i].Balance)
	}

	gctx.JSON(http.StatusOK, responseUserAccounts{Data: dataUserAccounts{user, accounts, total}})
}

type adjustURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type adjustRequest struct {
	AccountType string `json:"account_type" binding:"required,accounttype"`
	Amount      string `json:"amount" binding:"required"`
	Reason      string `json:"reason"`
}

type dataAdjust struct {
	Account domain.Account `json:"account"`
	Entry   domain.Entry   `json:"transaction"`
}
type responseAdjust struct {
	Data dataAdjust `json:"data,omitempty"`
}

// Adjust handles http request to apply a signed balance correction to
// a user's account, addressed by user id and account type.
func (h *Handler) Adjust(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri adjustURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req adjustRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	delta, err := decimal.NewFromString(req.Amount)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))
		return
	}

	account, entry, err := h.accounts.Adjust(ctx, uri.ID, req.AccountType, delta, req.Reason)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidAmount, domain.ErrInvalidAccountType, domain.ErrInsufficientFunds:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case errorspkg.ErrConflict:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseAdjust{Data: dataAdjust{account, entry}})
}

type dataRequests struct {
	Requests []domain.FundingRequest `json:"funding_requests"`
}
type responseRequests struct {
	Data dataRequests `json:"data,omitempty"`
}

// ReviewQueue handles http request to list all pending funding requests.
func (h *Handler) ReviewQueue(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	requests, err := h.funding.ReviewQueue(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseRequests{Data: dataRequests{requests}})
}

type reviewURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type reviewRequest struct {
	Notes string `json:"notes"`
}

func reviewError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrRequestNotFound, domain.ErrAccountNotFound, domain.ErrWalletNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	case domain.ErrRequestNotPending:
		gctx.JSON(http.StatusConflict, web.Error(err))
		return
	case errorspkg.ErrConflict:
		gctx.JSON(http.StatusConflict, web.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

type dataApprove struct {
	Result domain.FundingApproveResult `json:"result"`
}
type responseApprove struct {
	Data dataApprove `json:"data,omitempty"`
}

// Approve handles http request to approve a pending funding request and
// credit both ledgers.
func (h *Handler) Approve(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri reviewURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req reviewRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	result, err := h.funding.Approve(ctx, uri.ID, req.Notes)
	if err != nil {
		reviewError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseApprove{Data: dataApprove{result}})
}

type dataReject struct {
	Request domain.FundingRequest `json:"funding_request"`
}
type responseReject struct {
	Data dataReject `json:"data,omitempty"`
}

// Reject handles http request to reject a pending funding request.
func (h *Handler) Reject(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri reviewURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req reviewRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	request, err := h.funding.Reject(ctx, uri.ID, req.Notes)
	if err != nil {
		reviewError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseReject{Data: dataReject{request}})
}

type addStockRequest struct {
	Symbol      string `json:"symbol" binding:"required,max=10"`
	CompanyName string `json:"company_name" binding:"required"`
}

type dataStock struct {
	Stock domain.Stock `json:"stock"`
}
type responseStock struct {
	Data dataStock `json:"data,omitempty"`
}

// AddStock handles http request to list a new symbol in the catalog.
func (h *Handler) AddStock(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req addStockRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	stock, err := h.stocks.List(ctx, req.Symbol, req.CompanyName)
	if err != nil {
		if err == domain.ErrStockExists {
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseStock{Data: dataStock{stock}})
}

type dataStocks struct {
	Stocks []domain.Stock `json:"stocks"`
}
type responseStocks struct {
	Data dataStocks `json:"data,omitempty"`
}

// Stocks handles http request to list the whole catalog with cached
// quotes.
func (h *Handler) Stocks(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	stocks, err := h.stocks.Stocks(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseStocks{Data: dataStocks{stocks}})
}

type setPriceURI struct {
	Symbol string `uri:"symbol" binding:"required,max=10"`
}

type setPriceRequest struct {
	Price string `json:"new_price" binding:"required"`
}

// SetPrice handles http request to override a symbol's quote.
func (h *Handler) SetPrice(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var uri setPriceURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindError(gctx, err)
		return
	}

	var req setPriceRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidPrice))
		return
	}

	stock, err := h.stocks.SetPrice(ctx, uri.Symbol, price)
	if err != nil {
		switch err {
		case domain.ErrStockNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrInvalidPrice:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseStock{Data: dataStock{stock}})
}

type transactionsRequest struct {
	Limit int32 `form:"limit,default=100" binding:"min=1,max=200"`
}

type dataTransactions struct {
	Transactions []domain.StockEntry `json:"transactions"`
}
type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

// Transactions handles http request to list trade records across all
// users.
func (h *Handler) Transactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req transactionsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindError(gctx, err)
		return
	}

	entries, err := h.stocks.Transactions(ctx, req.Limit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseTransactions{Data: dataTransactions{entries}})
}
