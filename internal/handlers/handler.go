package handlers

import (
	"spacex_dashboard/internal/logger"
	"spacex_dashboard/internal/render"
	"spacex_dashboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DefaultChartSize is used when no size is configured.
var DefaultChartSize = render.Size{Width: 640, Height: 420}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	size     render.Size
}

// NewHandler constructs the HTTP handler. A nil logger discards output and a
// zero size falls back to DefaultChartSize.
func NewHandler(services *service.Service, log *logger.Logger, size render.Size) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultChartSize
	}
	return &Handler{services: services, log: log, size: size}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)
	router.SetHTMLTemplate(pageTemplate)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	// Dashboard page and its live channel
	router.GET("/", h.index)
	router.GET("/ws", h.wsConnect)

	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/layout", h.getLayout)
		api.POST("/update", h.update)
		h.registerChartRoutes(api)
	}
}

func (h *Handler) registerChartRoutes(api *gin.RouterGroup) {
	charts := api.Group("/charts")
	{
		charts.GET("/pie", h.getPieChart)
		charts.GET("/scatter", h.getScatterChart)
		charts.GET("/pie.svg", h.getPieSVG)
		charts.GET("/scatter.svg", h.getScatterSVG)
	}
}
