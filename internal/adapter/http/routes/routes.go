package routes

import (
	"log"
	"os"
	"strconv"

	_ "bistro_core/docs" // This will be auto-generated
	"bistro_core/internal/adapter/http/handlers"
	repository2 "bistro_core/internal/adapter/persistence/repository"
	"bistro_core/internal/infrastructure/database"
	"bistro_core/internal/infrastructure/messaging"
	"bistro_core/internal/infrastructure/monitoring"
	"bistro_core/internal/usecase"
	"bistro_core/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
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
	cfg := usecase.CapacityConfigFromEnv()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	slotRepo := repository2.NewSlotDynamoRepository(ddb)

	var publisher interfaces.IStatusPublisher
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		mq, err := messaging.NewRabbitMQStatusPublisher(url)
		if err != nil {
			log.Printf("RabbitMQ publisher not configured: %v", err)
		} else {
			publisher = mq
		}
	} else {
		log.Printf("RabbitMQ publisher not configured: RABBITMQ_URL is empty")
	}

	monitor := usecase.NewKitchenLoadMonitor(cfg, monitoring.SetKitchenLoad)
	slotUseCase := usecase.NewSlotUseCase(slotRepo, cfg)
	admissionUseCase := usecase.NewAdmissionUseCase(orderRepo, slotUseCase, monitor, publisher, cfg)
	lifecycleUseCase := usecase.NewLifecycleUseCase(orderRepo, slotUseCase, monitor, publisher,
		func(orderID, slotKey string) {
			monitoring.ObserveReconciliationRequired()
		})
	kitchenStatusUseCase := usecase.NewKitchenStatusUseCase(monitor, slotUseCase)
	reconcileUseCase := usecase.NewReconcileUseCase(orderRepo, slotRepo, monitor, cfg)

	orderHandler := handlers.NewOrderHandler(admissionUseCase, lifecycleUseCase)
	kitchenHandler := handlers.NewKitchenHandler(kitchenStatusUseCase, reconcileUseCase)
	slotHandler := handlers.NewSlotHandler(slotUseCase)

	// Rotas publicas
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addKitchenRoutes(v1, kitchenHandler)
	addSlotRoutes(v1, slotHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
