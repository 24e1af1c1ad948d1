package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yungbote/bakery-api/internal/data/db"
	httpMW "github.com/yungbote/bakery-api/internal/http/middleware"
	"github.com/yungbote/bakery-api/internal/observability"
	"github.com/yungbote/bakery-api/internal/platform/envutil"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

const serviceName = "bakery-api"

type Config struct {
	Port    string
	GinMode string

	DB          db.Config
	AutoMigrate bool

	PrettyJSON       bool
	CORSAllowOrigins []string

	Otel observability.OtelConfig

	MetricsEnabled bool
	MetricsAddr    string

	ShutdownTimeout time.Duration
}

// LoadDotEnv reads .env files when present. Values already set in the
// environment win. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

func LoadConfig(log *logger.Logger) Config {
	log.Info("Loading environment variables...")

	cfg := Config{
		Port:    envutil.String("PORT", "5555"),
		GinMode: ginMode(),
		DB: db.Config{
			Driver:      envutil.String("DB_DRIVER", db.DriverSQLite),
			SQLitePath:  envutil.String("SQLITE_PATH", "app.db"),
			DatabaseURL: envutil.String("DATABASE_URL", ""),
			Postgres: db.PostgresConfig{
				Host:     envutil.String("POSTGRES_HOST", "localhost"),
				Port:     envutil.String("POSTGRES_PORT", "5432"),
				User:     envutil.String("POSTGRES_USER", "postgres"),
				Password: envutil.String("POSTGRES_PASSWORD", ""),
				Name:     envutil.String("POSTGRES_NAME", "bakery"),
				SSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
			},
			MaxOpenConns:  envutil.Int("DB_MAX_OPEN_CONNS", 0),
			MaxIdleConns:  envutil.Int("DB_MAX_IDLE_CONNS", 0),
			SlowThreshold: envutil.Duration("DB_SLOW_THRESHOLD", 200*time.Millisecond),
		},
		AutoMigrate:      envutil.Bool("DB_AUTO_MIGRATE", true),
		PrettyJSON:       envutil.Bool("JSON_PRETTY", true),
		CORSAllowOrigins: envutil.List("CORS_ALLOW_ORIGINS", httpMW.DefaultAllowOrigins),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", serviceName),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development"),
			Version:     envutil.String("OTEL_SERVICE_VERSION", "dev"),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", true),
			SampleRatio: envutil.Float("OTEL_SAMPLE_RATIO", 1),
		},
		MetricsEnabled:  envutil.Bool("METRICS_ENABLED", false),
		MetricsAddr:     envutil.String("METRICS_ADDR", ":9090"),
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	log.Info("Config loaded",
		"port", cfg.Port,
		"gin_mode", cfg.GinMode,
		"db_driver", cfg.DB.Driver,
		"auto_migrate", cfg.AutoMigrate,
		"otel_enabled", cfg.Otel.Enabled,
		"metrics_enabled", cfg.MetricsEnabled,
	)
	return cfg
}

func (c Config) Addr() string {
	port := strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if port == "" {
		port = "5555"
	}
	return ":" + port
}

// ginMode honors GIN_MODE first, then falls back to DEBUG as a boolean switch.
func ginMode() string {
	switch mode := strings.ToLower(envutil.String("GIN_MODE", "")); mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return mode
	}
	if envutil.Bool("DEBUG", true) {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}
