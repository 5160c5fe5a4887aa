package routes

import (
	"log"
	"strconv"

	_ "atelier_prints/docs" // Generated swagger docs
	"atelier_prints/internal/adapter/http/handlers"
	repository2 "atelier_prints/internal/adapter/persistence/repository"
	"atelier_prints/internal/adapter/ws"
	"atelier_prints/internal/infrastructure/database"
	"atelier_prints/internal/infrastructure/events"
	"atelier_prints/internal/infrastructure/payments"
	"atelier_prints/internal/usecase"

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

	cartRepo := repository2.NewCartDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	bus := events.NewBus()
	hub := ws.NewHub(bus)
	gateway := payments.NewSimulatedGateway()

	cartUseCase := usecase.NewCartUseCase(cartRepo, bus)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	configuratorUseCase := usecase.NewConfiguratorUseCase(catalogUseCase, cartUseCase)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartUseCase, orderRepo, gateway)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase, configuratorUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase, configuratorUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, catalogHandler, cartHandler, checkoutHandler)
	addCartFeedRoutes(v1, hub)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
