package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/bakery-api/internal/data/db"
	"github.com/yungbote/bakery-api/internal/http"
	"github.com/yungbote/bakery-api/internal/observability"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Handlers Handlers
	Metrics  *observability.Metrics

	server       *http.Server
	shutdownOtel func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	envErr := LoadDotEnv()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if envErr != nil {
		log.Warn("Could not load .env", "error", envErr)
	}

	cfg := LoadConfig(log)

	theDB, err := db.Open(cfg.DB, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(theDB, log); err != nil {
			_ = db.Close(theDB)
			log.Sync()
			return nil, fmt.Errorf("database migrate: %w", err)
		}
	}

	a := build(log, cfg, theDB)
	a.shutdownOtel = observability.InitOTel(ctx, log, cfg.Otel)
	return a, nil
}

// build wires everything above the database handle.
func build(log *logger.Logger, cfg Config, theDB *gorm.DB) *App {
	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	reposet := wireRepos(theDB, log)
	handlerset := wireHandlers(log, theDB, reposet)
	router := wireRouter(log, cfg, handlerset, metrics)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Handlers: handlerset,
		Metrics:  metrics,
		server: http.NewServer(http.ServerConfig{
			Addr:              cfg.Addr(),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   cfg.ShutdownTimeout,
		}, router),
	}
}

// Run blocks until ctx is cancelled or a listener fails.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("Server listening", "addr", a.server.Addr())
		if err := a.server.Run(gctx); err != nil {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})

	if a.Metrics != nil {
		a.Metrics.StartDBCollector(gctx, a.Log, a.DB, 15*time.Second)
		msrv := http.NewMetricsServer(a.Cfg.MetricsAddr, a.Metrics)
		g.Go(func() error {
			a.Log.Info("Metrics listening", "addr", msrv.Addr)
			if err := http.ServeMetrics(gctx, msrv); err != nil {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.shutdownOtel != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.shutdownOtel(ctx); err != nil && a.Log != nil {
			a.Log.Warn("OTel shutdown failed", "error", err)
		}
		cancel()
		a.shutdownOtel = nil
	}
	if a.DB != nil {
		if err := db.Close(a.DB); err != nil && a.Log != nil {
			a.Log.Warn("Database close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
