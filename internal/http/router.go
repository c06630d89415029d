package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/civic-innovation-backend/internal/http/handlers"
	httpMW "github.com/yungbote/civic-innovation-backend/internal/http/middleware"
	"github.com/yungbote/civic-innovation-backend/internal/observability"
	"github.com/yungbote/civic-innovation-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	ServiceName string
	CORSOrigins []string

	HealthHandler *httpH.HealthHandler
	PromptHandler *httpH.PromptHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins...))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Prompts
		if cfg.PromptHandler != nil {
			prompts := api.Group("/prompts")
			prompts.GET("/categories", cfg.PromptHandler.ListCategories)
			prompts.GET("/categories/:category", cfg.PromptHandler.GetCategory)
			prompts.GET("/search", cfg.PromptHandler.Search)
			prompts.GET("/stats", cfg.PromptHandler.Stats)
			prompts.GET("/recommend", cfg.PromptHandler.Recommend)
			prompts.GET("/modules", cfg.PromptHandler.ListModules)
			prompts.POST("/validate", cfg.PromptHandler.Validate)
			prompts.POST("/preview", cfg.PromptHandler.Preview)
			prompts.POST("/invoke", cfg.PromptHandler.Invoke)
		}
	}

	return r
}
