package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/voll-fit/voll-api/internal/handler"
	"github.com/voll-fit/voll-api/internal/middleware"
	"github.com/voll-fit/voll-api/internal/service"
	"github.com/voll-fit/voll-api/pkg/config"
	"github.com/voll-fit/voll-api/pkg/logger"
	corsmiddleware "github.com/voll-fit/voll-api/pkg/middleware/cors"
	reqidmiddleware "github.com/voll-fit/voll-api/pkg/middleware/requestid"
	"github.com/voll-fit/voll-api/pkg/response"
)

// Handlers groups everything the router mounts. Summary may be nil when the
// summary endpoint is disabled.
type Handlers struct {
	Students  *handler.StudentHandler
	Schedules *handler.ScheduleHandler
	Financial *handler.FinancialHandler
	Summary   *handler.SummaryHandler
	Metrics   *handler.MetricsHandler
}

// Allowed methods per resource, used for 405 responses.
var allowedMethods = map[string]string{
	"students":  "GET, POST, DELETE",
	"schedules": "GET, POST, PATCH, DELETE",
	"financial": "GET, POST, PATCH, DELETE",
}

// New assembles the gin engine with the full middleware chain and routes.
func New(cfg *config.Config, logr *zap.Logger, h Handlers, metricsSvc *service.MetricsService) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(recovery(logr))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed(cfg.APIPrefix))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		students := api.Group("/students")
		students.GET("", h.Students.List)
		students.POST("", h.Students.Create)
		students.DELETE("/:id", h.Students.Delete)

		schedules := api.Group("/schedules")
		schedules.GET("", h.Schedules.List)
		schedules.POST("", h.Schedules.Create)
		schedules.PATCH("/:id", h.Schedules.UpdateStatus)
		schedules.DELETE("/:id", h.Schedules.Delete)

		financial := api.Group("/financial")
		financial.GET("", h.Financial.List)
		if cfg.Exports.Enabled {
			financial.GET("/export", h.Financial.Export)
		}
		financial.POST("", h.Financial.Create)
		financial.PATCH("/:id", h.Financial.UpdateStatus)
		financial.DELETE("/:id", h.Financial.Delete)

		if h.Summary != nil {
			api.GET("/summary", h.Summary.Overview)
		}
	}

	return r
}

// recovery converts any panic into the fixed generic error body so internal
// details never leak to the caller.
func recovery(logr *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logr.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorBody{Message: "Erro inesperado"})
	})
}

// methodNotAllowed answers 405 with the Allow set of the matched resource.
func methodNotAllowed(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rest := strings.TrimPrefix(c.Request.URL.Path, prefix)
		rest = strings.TrimPrefix(rest, "/")
		resource := rest
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			resource = rest[:idx]
		}
		if methods, ok := allowedMethods[resource]; ok {
			c.Header("Allow", methods)
		}
		c.JSON(http.StatusMethodNotAllowed, response.ErrorBody{Message: "Método não permitido"})
	}
}
