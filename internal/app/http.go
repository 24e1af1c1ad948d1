package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/bakery-api/internal/data/db"
	"github.com/yungbote/bakery-api/internal/http"
	httpH "github.com/yungbote/bakery-api/internal/http/handlers"
	"github.com/yungbote/bakery-api/internal/observability"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

type Handlers struct {
	Index     *httpH.IndexHandler
	Health    *httpH.HealthHandler
	Bakery    *httpH.BakeryHandler
	BakedGood *httpH.BakedGoodHandler
}

func wireHandlers(log *logger.Logger, gdb *gorm.DB, r Repos) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Index: httpH.NewIndexHandler(),
		Health: httpH.NewHealthHandler(log, func(ctx context.Context) error {
			return db.Ping(ctx, gdb)
		}),
		Bakery:    httpH.NewBakeryHandler(log, r.Bakery),
		BakedGood: httpH.NewBakedGoodHandler(log, r.BakedGood),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return http.NewRouter(http.RouterConfig{
		Log:              log,
		Metrics:          metrics,
		IndexHandler:     handlers.Index,
		HealthHandler:    handlers.Health,
		BakeryHandler:    handlers.Bakery,
		BakedGoodHandler: handlers.BakedGood,
		ServiceName:      cfg.Otel.ServiceName,
		TracingEnabled:   cfg.Otel.Enabled,
		PrettyJSON:       cfg.PrettyJSON,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})
}
