// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

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

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Internal(ctx context.Context, arg domain.InternalTransferParams) (domain.TransferTxResult, error)
	External(ctx context.Context, arg domain.ExternalTransferParams) (domain.TransferTxResult, error)
	AddBeneficiary(ctx context.Context, userID int64, accountNumber, name, bankName string) (domain.Beneficiary, error)
	Beneficiaries(ctx context.Context, userID int64) ([]domain.Beneficiary, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
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

func transferError(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrAccountNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	case
		domain.ErrInvalidAmount,
		domain.ErrInvalidAccountType,
		domain.ErrSameAccount,
		domain.ErrSelfTransfer,
		domain.ErrTransferLimitExceeded,
		domain.ErrInsufficientFunds,
		domain.ErrBelowMinimum:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	case domain.ErrDuplicateRequest, errorspkg.ErrConflict:
		gctx.JSON(http.StatusConflict, web.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

type data struct {
	Transfer domain.TransferTxResult `json:"transfer"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type internalRequest struct {
	FromType       string `json:"from_type" binding:"required,accounttype"`
	ToType         string `json:"to_type" binding:"required,accounttype"`
	Amount         string `json:"amount" binding:"required"`
	Description    string `json:"description"`
	IdempotencyKey string `json:"idempotency_key" binding:"max=64"`
}

// Internal handles http request to move money between the caller's accounts.
func (h *Handler) Internal(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req internalRequest
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

	result, err := h.service.Internal(ctx, domain.InternalTransferParams{
		UserID:         payload.UserID,
		FromType:       req.FromType,
		ToType:         req.ToType,
		Amount:         amount,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		transferError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type externalRequest struct {
	FromAccountNumber string `json:"from_account_number" binding:"required"`
	ToAccountNumber   string `json:"to_account_number" binding:"required"`
	Amount            string `json:"amount" binding:"required"`
	Description       string `json:"description"`
	IdempotencyKey    string `json:"idempotency_key" binding:"max=64"`
}

// External handles http request to transfer money to another user.
func (h *Handler) External(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req externalRequest
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

	result, err := h.service.External(ctx, domain.ExternalTransferParams{
		SenderUserID:   payload.UserID,
		FromNumber:     req.FromAccountNumber,
		ToNumber:       req.ToAccountNumber,
		Amount:         amount,
		Description:    req.Description,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		transferError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{result}})
}

type addBeneficiaryRequest struct {
	AccountNumber string `json:"account_number" binding:"required"`
	Name          string `json:"name" binding:"required"`
	BankName      string `json:"bank_name"`
}

type dataBeneficiary struct {
	Beneficiary domain.Beneficiary `json:"beneficiary"`
}
type responseBeneficiary struct {
	Data dataBeneficiary `json:"data,omitempty"`
}

// AddBeneficiary handles http request to save an external transfer target.
func (h *Handler) AddBeneficiary(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req addBeneficiaryRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindError(gctx, err)
		return
	}

	payload := authPayload(gctx)

	beneficiary, err := h.service.AddBeneficiary(ctx, payload.UserID, req.AccountNumber, req.Name, req.BankName)
	if err != nil {
		switch err {
		case domain.ErrBeneficiaryExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	gctx.JSON(http.StatusOK, responseBeneficiary{Data: dataBeneficiary{beneficiary}})
}

type dataBeneficiaries struct {
	Beneficiaries []domain.Beneficiary `json:"beneficiaries"`
}
type responseBeneficiaries struct {
	Data dataBeneficiaries `json:"data,omitempty"`
}

// Beneficiaries handles http request to list saved transfer targets.
func (h *Handler) Beneficiaries(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	payload := authPayload(gctx)

	beneficiaries, err := h.service.Beneficiaries(ctx, payload.UserID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseBeneficiaries{Data: dataBeneficiaries{beneficiaries}})
}
