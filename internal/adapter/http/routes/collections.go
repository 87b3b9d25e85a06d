package routes

import (
	"cobranca_campo/internal/adapter/http/handlers"
	"cobranca_campo/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges  = "/charges"
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
	PathReports  = "/reports"
)

func addCollectionRoutes(
	rg *gin.RouterGroup,
	limiter usecase.IRateLimiter,
	chargeHandler *handlers.ChargeHandler,
	webhookHandler *handlers.WebhookHandler,
	paymentHandler *handlers.PaymentHandler,
	reportHandler *handlers.ReportHandler,
) {
	charges := rg.Group(PathCharges, principalMiddleware())
	{
		charges.POST("", chargeHandler.CreateCharge)
		charges.GET("", chargeHandler.ListCharges)
		charges.GET("/:id", chargeHandler.GetCharge)
		charges.DELETE("/:id", chargeHandler.CancelCharge)
	}

	reports := rg.Group(PathReports, principalMiddleware())
	{
		reports.GET("/daily", reportHandler.DailySummary)
	}

	// Payer-facing endpoints carry no identity headers and get the
	// sliding-window limiter instead.
	payments := rg.Group(PathPayments, rateLimitMiddleware(limiter))
	{
		payments.GET("/:payment_id/status", paymentHandler.GetStatus)
		payments.POST("/:payment_id/credit-card", paymentHandler.PayWithCreditCard)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/asaas", webhookHandler.Receive)
	}
}
