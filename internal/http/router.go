package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/bakery-api/internal/http/handlers"
	httpMW "github.com/yungbote/bakery-api/internal/http/middleware"
	"github.com/yungbote/bakery-api/internal/observability"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	IndexHandler     *httpH.IndexHandler
	HealthHandler    *httpH.HealthHandler
	BakeryHandler    *httpH.BakeryHandler
	BakedGoodHandler *httpH.BakedGoodHandler

	ServiceName      string
	TracingEnabled   bool
	PrettyJSON       bool
	CORSAllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS(cfg.CORSAllowOrigins))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.JSONFormat(cfg.PrettyJSON))

	if cfg.IndexHandler != nil {
		r.GET("/", cfg.IndexHandler.Index)
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	// Bakeries
	if cfg.BakeryHandler != nil {
		r.GET("/bakeries", cfg.BakeryHandler.ListBakeries)
		r.GET("/bakeries/:id", cfg.BakeryHandler.GetBakery)
	}

	// Baked goods
	if cfg.BakedGoodHandler != nil {
		bg := r.Group("/baked_goods")
		bg.GET("/by_price", cfg.BakedGoodHandler.ListByPrice)
		bg.GET("/most_expensive", cfg.BakedGoodHandler.MostExpensive)
	}

	return r
}
