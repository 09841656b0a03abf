package handlers

import (
	"embed"
	"html/template"

	"solartherm/internal/logger"
	"solartherm/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

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
	router.Use(gin.Recovery(), h.requestLog)

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Human-readable report
	router.GET("/", h.report)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Live status over WebSocket — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/status", h.getStatus)
	}
}
