package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/data/db"
	"github.com/yungbote/bakery-api/internal/data/repos/testutil"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "DEBUG", "DB_DRIVER", "SQLITE_PATH", "JSON_PRETTY", "CORS_ALLOW_ORIGINS", "OTEL_ENABLED", "METRICS_ENABLED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
	cfg := LoadConfig(testutil.Logger(t))

	if cfg.Addr() != ":5555" {
		t.Fatalf("addr=%q", cfg.Addr())
	}
	if cfg.GinMode != gin.DebugMode {
		t.Fatalf("gin mode=%q", cfg.GinMode)
	}
	if cfg.DB.Driver != db.DriverSQLite || cfg.DB.SQLitePath != "app.db" {
		t.Fatalf("db=%+v", cfg.DB)
	}
	if !cfg.PrettyJSON || !cfg.AutoMigrate {
		t.Fatalf("expected pretty json and auto migrate on by default")
	}
	if cfg.Otel.Enabled || cfg.MetricsEnabled {
		t.Fatalf("expected otel and metrics off by default")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown timeout=%s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", ":8080")
	t.Setenv("GIN_MODE", "")
	t.Setenv("DEBUG", "false")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("JSON_PRETTY", "0")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://bakery.example, https://admin.bakery.example")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api-key=abc")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")

	cfg := LoadConfig(testutil.Logger(t))
	if cfg.Addr() != ":8080" {
		t.Fatalf("addr=%q", cfg.Addr())
	}
	if cfg.GinMode != gin.ReleaseMode {
		t.Fatalf("gin mode=%q", cfg.GinMode)
	}
	if cfg.DB.Driver != db.DriverPostgres || cfg.DB.Postgres.Host != "db" {
		t.Fatalf("db=%+v", cfg.DB)
	}
	if cfg.PrettyJSON {
		t.Fatalf("expected compact json")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://admin.bakery.example" {
		t.Fatalf("origins=%v", cfg.CORSAllowOrigins)
	}
	if cfg.Otel.Headers["x-api-key"] != "abc" {
		t.Fatalf("headers=%v", cfg.Otel.Headers)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("shutdown timeout=%s", cfg.ShutdownTimeout)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("BAKERY_DOTENV_A=from-file\nBAKERY_DOTENV_B=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("BAKERY_DOTENV_A", "from-env")
	t.Setenv("BAKERY_DOTENV_B", "")
	os.Unsetenv("BAKERY_DOTENV_B")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("BAKERY_DOTENV_A"); got != "from-env" {
		t.Fatalf("A=%q", got)
	}
	if got := os.Getenv("BAKERY_DOTENV_B"); got != "from-file" {
		t.Fatalf("B=%q", got)
	}
}
