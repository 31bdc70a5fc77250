package routes

import (
	"log"
	"os"
	"strconv"

	_ "atelier_noiva/docs" // This will be auto-generated
	"atelier_noiva/internal/adapter/http/handlers"
	repository2 "atelier_noiva/internal/adapter/persistence/repository"
	"atelier_noiva/internal/infrastructure/database"
	"atelier_noiva/internal/infrastructure/document"
	"atelier_noiva/internal/infrastructure/payments"
	"atelier_noiva/internal/usecase"
	"atelier_noiva/internal/usecase/interfaces"

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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	paymentRepo := repository2.NewQuotePaymentDynamoRepository(ddb)
	draftStore := repository2.NewDraftMemoryStore()

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	draftUseCase := usecase.NewDraftUseCase(draftStore, catalogRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, draftStore, catalogRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewQuotePaymentUseCase(paymentRepo, quoteRepo, paymentGateway)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	draftHandler := handlers.NewDraftHandler(draftUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, document.NewQuotePDFRenderer())
	paymentHandler := handlers.NewQuotePaymentHandler(paymentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, catalogHandler, draftHandler, quoteHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
