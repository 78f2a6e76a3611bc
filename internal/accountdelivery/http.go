// Package accountdelivery manages delivery layer of fiat accounts.
package accountdelivery

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
	"github.com/go-petr/nexa-bank/pkg/errorspkg"
	"github.com/go-petr/nexa-bank/pkg/tokenpkg"
	"github.com/go-petr/nexa-bank/pkg/web"
)

const defaultEntryLimit = 20

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, userID int64, accountType string) (domain.Account, error)
	List(ctx context.Context, userID int64) ([]domain.Account, error)
	Get(ctx context.Context, userID int64, number string, entryLimit int32) (domain.Account, []domain.Entry, error)
	Deposit(ctx context.Context, userID int64, number string, amount decimal.Decimal) (domain.Account, domain.Entry, error)
	Withdraw(ctx context.Context, userID int64, number string, amount decimal.Decimal) (domain.Account, domain.Entry, error)
	Transactions(ctx context.Context, userID int64, limit, offset int32) ([]domain.Entry, error)
	Transaction(ctx context.Context, userID, entryID int64) (domain.Entry, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
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

type data struct {
	Account domain.Account `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	AccountType string `json:"account_type" binding:"required,accounttype"`
}

// Create handles http request to open a fiat account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	payload := authPayload(gctx)

	createdAccount, err := h.service.Create(ctx, payload.UserID, req.AccountType)
	if err != nil {
		switch err {
		case domain.ErrInvalidAccountType, domain.ErrOwnerNotFound:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrAccountTypeExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{createdAccount}})
}

type dataAccounts struct {
	Accounts []domain.Account `json:"accounts"`
}
type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// List handles http request to list the caller's fiat accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	payload := authPayload(gctx)

	accounts, err := h.service.List(ctx, payload.UserID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}

type getRequest struct {
	Number string `uri:"number" binding:"required"`
}

type dataAccountDetail struct {
	Account domain.Account `json:"account"`
	Entries []domain.Entry `json:"recent_transactions"`
}
type responseAccountDetail struct {
	Data dataAccountDetail `json:"data,omitempty"`
}

// Get handles http request to view one account with recent activity.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	payload := authPayload(gctx)

	acc, entries, err := h.service.Get(ctx, payload.UserID, req.Number, defaultEntryLimit)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseAccountDetail{Data: dataAccountDetail{acc, entries}})
}

type mutationRequest struct {
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount" binding:"required"`
}

type dataMutation struct {
	Account domain.Account `json:"account"`
	Entry   domain.Entry   `json:"transaction"`
}
type responseMutation struct {
	Data dataMutation `json:"data,omitempty"`
}

// Deposit handles http request to deposit cash into an account.
func (h *Handler) Deposit(gctx *gin.Context) {
	h.mutate(gctx, h.service.Deposit)
}

// Withdraw handles http request to withdraw cash from an account.
func (h *Handler) Withdraw(gctx *gin.Context) {
	h.mutate(gctx, h.service.Withdraw)
}

func (h *Handler) mutate(
	gctx *gin.Context,
	op func(ctx context.Context, userID int64, number string, amount decimal.Decimal) (domain.Account, domain.Entry, error),
) {
	ctx := gctx.Request.Context()

	var req mutationRequest
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

	acc, entry, err := op(ctx, payload.UserID, req.AccountNumber, amount)
	if err != nil {
		switch err {
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case
			domain.ErrInvalidAmount,
			domain.ErrFirstDepositTooSmall,
			domain.ErrInsufficientFunds,
			domain.ErrBelowMinimum:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case errorspkg.ErrConflict:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseMutation{Data: dataMutation{acc, entry}})
}

type transactionsRequest struct {
	Limit  int32 `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int32 `form:"offset" binding:"min=0"`
}

type dataEntries struct {
	Entries []domain.Entry `json:"transactions"`
}
type responseEntries struct {
	Data dataEntries `json:"data,omitempty"`
}

// Transactions handles http request to list the caller's account activity.
func (h *Handler) Transactions(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req transactionsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindError(gctx, err)
		return
	}

	payload := authPayload(gctx)

	entries, err := h.service.Transactions(ctx, payload.UserID, req.Limit, req.Offset)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseEntries{Data: dataEntries{entries}})
}

type transactionRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type dataEntry struct {
	Entry domain.Entry `json:"transaction"`
}
type responseEntry struct {
	Data dataEntry `json:"data,omitempty"`
}

// Transaction handles http request to view a single ledger entry.
func (h *Handler) Transaction(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req transactionRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindError(gctx, err)
		return
	}

	payload := authPayload(gctx)

	entry, err := h.service.Transaction(ctx, payload.UserID, req.ID)
	if err != nil {
		if err == domain.ErrEntryNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseEntry{Data: dataEntry{entry}})
}
