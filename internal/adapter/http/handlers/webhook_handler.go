package handlers

import (
	"io"
	"log"
	"net/http"

	"cobranca_campo/internal/usecase"
	"cobranca_campo/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives gateway notifications.
//
// The gateway retries on any non-2xx, so the handler answers 200 even when
// dispatch failed downstream; only a failure to record the event at all gets
// a 500 and therefore a retry.

type WebhookHandler struct {
	webhooks usecase.IWebhookUseCase
}

func NewWebhookHandler(webhooks usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks}
}

// Receive godoc
// @Summary      Receive a payment gateway webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhooks/asaas [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("[webhook][handler] body read failed: %v", err)
		appErr := pkg.NewDomainError("WEBHOOK_READ_FAILED", "Could not read webhook body", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.webhooks.Process(c.Request.Context(), raw); err != nil {
		appErr := pkg.NewDomainError("WEBHOOK_NOT_RECORDED", "Could not record webhook event", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
