package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "cobranca_campo/docs" // This will be auto-generated
	"cobranca_campo/internal/adapter/http/handlers"
	repository2 "cobranca_campo/internal/adapter/persistence/repository"
	"cobranca_campo/internal/infrastructure/database"
	"cobranca_campo/internal/infrastructure/payments"
	"cobranca_campo/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := PORT
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}
	err := router.Run(":" + strconv.Itoa(port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	// Local endpoints get their tables created on boot; in AWS the tables
	// are provisioned out of band.
	if os.Getenv("DYNAMODB_ENDPOINT") != "" {
		if err := database.EnsureTables(context.Background(), ddb); err != nil {
			log.Fatalf("Failed to ensure DynamoDB tables: %v", err)
		}
	}

	tenantRepo := repository2.NewTenantDynamoRepository(ddb)
	payerRepo := repository2.NewPayerDynamoRepository(ddb)
	chargeRepo := repository2.NewChargeDynamoRepository(ddb)
	collectorRepo := repository2.NewCollectorDynamoRepository(ddb)
	webhookRepo := repository2.NewWebhookEventDynamoRepository(ddb)
	summaryRepo := repository2.NewDailySummaryDynamoRepository(ddb)
	rateLimitRepo := repository2.NewRateLimitDynamoRepository(ddb)
	notifier := repository2.NewDynamoNotifier(ddb, collectorRepo)

	gatewayFactory := payments.NewAsaasClientFactory()
	credentials := usecase.NewCredentialResolver(tenantRepo)
	payerResolver := usecase.NewPayerIdentityUseCase(payerRepo)

	chargeUseCase := usecase.NewChargeUseCase(chargeRepo, credentials, payerResolver, gatewayFactory)
	cancellationUseCase := usecase.NewCancellationUseCase(chargeRepo, collectorRepo, credentials, gatewayFactory)
	webhookUseCase := usecase.NewWebhookUseCase(webhookRepo, chargeRepo, collectorRepo, summaryRepo, notifier)
	paymentUseCase := usecase.NewPaymentUseCase(chargeRepo, credentials, gatewayFactory)
	reportUseCase := usecase.NewReportUseCase(summaryRepo)
	rateLimiter := usecase.NewRateLimitUseCase(rateLimitRepo)

	chargeHandler := handlers.NewChargeHandler(chargeUseCase, cancellationUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCollectionRoutes(v1, rateLimiter, chargeHandler, webhookHandler, paymentHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
