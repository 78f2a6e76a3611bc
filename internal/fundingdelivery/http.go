// Package fundingdelivery manages delivery layer of crypto funding requests.
package fundingdelivery

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

// Service provides service layer interface needed by funding delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package fundingdelivery
type Service interface {
	Request(ctx context.Context, userID int64, currency, accountType string, cryptoAmount decimal.Decimal) (domain.FundingRequest, error)
	Pending(ctx context.Context, userID int64) ([]domain.FundingRequest, error)
}

// Handler facilitates funding delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns funding handler.
func NewHandler(fs Service) Handler {
	return Handler{service: fs}
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

type createRequest struct {
	Currency    string `json:"currency" binding:"required,cryptocurrency"`
	AccountType string `json:"account_type" binding:"required,accounttype"`
	Amount      string `json:"amount" binding:"required"`
}

type data struct {
	Request domain.FundingRequest `json:"funding_request"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

// Create handles http request to submit a crypto funding request.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
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

	request, err := h.service.Request(ctx, payload.UserID, req.Currency, req.AccountType, amount)
	if err != nil {
		switch err {
		case
			domain.ErrUnsupportedCurrency,
			domain.ErrInvalidAccountType,
			domain.ErrInvalidAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{request}})
}

type dataRequests struct {
	Requests []domain.FundingRequest `json:"funding_requests"`
}
type responseRequests struct {
	Data dataRequests `json:"data,omitempty"`
}

// Pending handles http request to list the caller's pending funding requests.
func (h *Handler) Pending(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	payload := authPayload(gctx)

	requests, err := h.service.Pending(ctx, payload.UserID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, responseRequests{Data: dataRequests{requests}})
}
