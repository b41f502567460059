package routes

import (
	"log"
	"os"
	"strconv"

	_ "condo_gestao/docs" // This will be auto-generated
	"condo_gestao/internal/adapter/http/handlers"
	repository2 "condo_gestao/internal/adapter/persistence/repository"
	"condo_gestao/internal/infrastructure/database"
	"condo_gestao/internal/infrastructure/payments"
	"condo_gestao/internal/usecase"
	"condo_gestao/internal/usecase/interfaces"

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

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	residentRepo := repository2.NewResidentDynamoRepository(ddb)
	configRepo := repository2.NewBillingConfigDynamoRepository(ddb)
	complaintRepo := repository2.NewComplaintDynamoRepository(ddb)
	maintenanceRepo := repository2.NewMaintenanceDynamoRepository(ddb)

	var chargeGateway interfaces.IChargeGateway
	pixGateway, err := payments.NewPixGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Pix charge gateway not configured: %v", err)
	} else {
		chargeGateway = pixGateway
	}

	cycleUseCase := usecase.NewBillingCycleUseCase(paymentRepo, residentRepo, configRepo)
	sweepUseCase := usecase.NewOverdueSweepUseCase(paymentRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, residentRepo, configRepo)
	chargeUseCase := usecase.NewChargeUseCase(paymentRepo, residentRepo, configRepo, chargeGateway)
	configUseCase := usecase.NewBillingConfigUseCase(configRepo)
	complaintUseCase := usecase.NewComplaintUseCase(complaintRepo)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(maintenanceRepo)

	billingHandler := handlers.NewBillingHandler(cycleUseCase, sweepUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, chargeUseCase)
	configHandler := handlers.NewBillingConfigHandler(configUseCase)
	complaintHandler := handlers.NewComplaintHandler(complaintUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceUseCase)
	residentHandler := handlers.NewResidentHandler(residentRepo)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCondoRoutes(v1, billingHandler, paymentHandler, configHandler, complaintHandler, maintenanceHandler, residentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
