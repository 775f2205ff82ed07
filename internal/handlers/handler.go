package handlers

import (
	"battery_dashboard/internal/logger"
	"battery_dashboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Dashboard page
	router.GET("/", h.index)

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	// WebSocket stream of wizard state and toasts (HTTP upgrade, same port)
	r.GET("/api/v1/ws", h.wsUserIdMiddleware, h.wsConnect)

	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerWizardRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerWizardRoutes(api *gin.RouterGroup) {
	wizard := api.Group("/wizard")
	{
		wizard.GET("", h.getWizard)
		// Body example: {"text":"0.05"} or {"value":0.05} or {"abandon":true}
		wizard.PATCH("/fields/:name", h.editField)
		wizard.POST("/predict", h.predict)
		wizard.POST("/lifespan", h.estimateLifespan)
		wizard.POST("/back", h.back)
		wizard.POST("/reset", h.reset)
		wizard.GET("/chart", h.getChart)
		wizard.GET("/chart.png", h.getChartPNG)
		wizard.GET("/health-curve", h.getHealthCurve)
		wizard.GET("/config", h.getConfig)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
