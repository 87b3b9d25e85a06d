package handlers

import (
	"net/http"

	request "cobranca_campo/internal/adapter/http/dto/request"
	response "cobranca_campo/internal/adapter/http/dto/response"
	"cobranca_campo/internal/usecase"
	"cobranca_campo/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCardPayload = pkg.NewDomainErrorSimple("INVALID_CARD_INPUT", "Invalid card payload", http.StatusBadRequest)

// PaymentHandler exposes the payer-facing payment endpoints, addressed by
// the gateway payment id printed on the invoice link.

type PaymentHandler struct {
	payments usecase.IPaymentUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// GetStatus godoc
// @Summary      Get a payment's current gateway status
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Gateway payment ID"
// @Success      200         {object}  response.PaymentStatusResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/status [get]
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	payment, err := h.payments.GetStatus(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayPayment(payment))
}

// PayWithCreditCard godoc
// @Summary      Pay a charge with a credit card
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment_id  path      string                            true  "Gateway payment ID"
// @Param        card        body      request.CreditCardPaymentRequest  true  "Card payload"
// @Success      200         {object}  response.PaymentStatusResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      502         {object}  pkg.HTTPError
// @Router       /payments/{payment_id}/credit-card [post]
func (h *PaymentHandler) PayWithCreditCard(c *gin.Context) {
	var payload request.CreditCardPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCardPayload.HTTPStatus, errInvalidCardPayload.ToHTTPError())
		return
	}

	payment, err := h.payments.ChargeCreditCard(c.Request.Context(), c.Param("payment_id"), payload.ToCardInput())
	if err != nil {
		appErr := mapChargeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGatewayPayment(payment))
}
