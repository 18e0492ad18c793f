package routes

import (
	_ "inspection_estimator/docs"
	"inspection_estimator/internal/adapter/http/handlers"
	"inspection_estimator/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathAPI            = "/api"
	PathPing           = "/ping"
	PathCheckout       = "/create-stripe-checkout"
	PathProcessReport  = "/process-report"
	PathSwaggerHandler = "/swagger/*any"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Report   *handlers.ReportHandler
	Checkout *handlers.CheckoutHandler
}

// NewRouter builds the gin engine with middleware, docs and API routes.
func NewRouter(logger *zap.Logger, h Handlers) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))

	router.GET(PathSwaggerHandler, ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addReportRoutes(api, h)
	return router
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addReportRoutes(rg *gin.RouterGroup, h Handlers) {
	if h.Checkout != nil {
		rg.POST(PathCheckout, h.Checkout.CreateCheckoutSession)
	}
	if h.Report != nil {
		rg.POST(PathProcessReport, h.Report.ProcessReport)
	}
}
