package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "cobranca_campo/internal/adapter/http/dto/request"
	response "cobranca_campo/internal/adapter/http/dto/response"
	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase"
	"cobranca_campo/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChargePayload = pkg.NewDomainErrorSimple("INVALID_CHARGE_INPUT", "Invalid charge payload", http.StatusBadRequest)

// ChargeHandler handles the collector-facing charge lifecycle.

type ChargeHandler struct {
	charges      usecase.IChargeUseCase
	cancellation usecase.ICancellationUseCase
}

func NewChargeHandler(charges usecase.IChargeUseCase, cancellation usecase.ICancellationUseCase) *ChargeHandler {
	return &ChargeHandler{charges: charges, cancellation: cancellation}
}

// CreateCharge godoc
// @Summary      Create a charge
// @Description  Resolves the payer, mirrors the charge to the payment gateway and stores it locally.
// @Tags         charges
// @Accept       json
// @Produce      json
// @Param        charge  body      request.CreateChargeRequest  true  "Charge payload"
// @Success      201     {object}  response.CreateChargeResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      502     {object}  pkg.HTTPError
// @Router       /charges [post]
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	var payload request.CreateChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChargePayload.HTTPStatus, errInvalidChargePayload.ToHTTPError())
		return
	}

	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DUE_DATE", "Due date must be YYYY-MM-DD", http.StatusBadRequest).ToHTTPError())
		return
	}

	result, err := h.charges.CreateCharge(c.Request.Context(), usecase.CreateChargeInput{
		TenantID:      principal.TenantID,
		CollectorID:   principal.UserID,
		PayerName:     payload.PayerName,
		Document:      payload.Document,
		Amount:        payload.Amount,
		Description:   payload.Description,
		DueDate:       dueDate,
		PaymentMethod: entities.PaymentMethod(payload.PaymentMethod),
		Installments:  payload.Installments,
	})
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChargeResult(result))
}

// ListCharges godoc
// @Summary      List the tenant's charges
// @Tags         charges
// @Produce      json
// @Success      200  {array}   response.ChargeResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /charges [get]
func (h *ChargeHandler) ListCharges(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	charges, err := h.charges.ListByTenant(c.Request.Context(), principal.TenantID)
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharges(charges))
}

// GetCharge godoc
// @Summary      Get one charge
// @Tags         charges
// @Produce      json
// @Param        id   path      string  true  "Charge ID"
// @Success      200  {object}  response.ChargeResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /charges/{id} [get]
func (h *ChargeHandler) GetCharge(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	charge, err := h.charges.GetByID(c.Request.Context(), principal.TenantID, c.Param("id"))
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

// CancelCharge godoc
// @Summary      Cancel a charge
// @Description  Cancels on the gateway and removes the local charge. Managers and company admins only; `force=true` skips gateway failures.
// @Tags         charges
// @Produce      json
// @Param        id     path      string  true   "Charge ID"
// @Param        force  query     bool    false  "Force local removal on gateway failure"
// @Success      204
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /charges/{id} [delete]
func (h *ChargeHandler) CancelCharge(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	force, _ := strconv.ParseBool(c.Query("force"))
	if err := h.cancellation.Cancel(c.Request.Context(), principal, c.Param("id"), force); err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapChargeError(err error) *pkg.AppError {
	var gerr *entities.GatewayError
	switch {
	case errors.Is(err, usecase.ErrMissingTenant),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidDescription),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPayerName),
		errors.Is(err, usecase.ErrInvalidDocument):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIGURED", "Payment gateway is not configured for this company", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPayerUnrestorable):
		return pkg.NewDomainError("PAYER_UNRESTORABLE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRoleNotAllowed), errors.Is(err, usecase.ErrBranchScope):
		return pkg.NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)
	case errors.As(err, &gerr):
		return pkg.NewDomainError("GATEWAY_ERROR", "Payment gateway rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
