package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/bakery-api/internal/platform/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Driver      string
	SQLitePath  string
	DatabaseURL string
	Postgres    PostgresConfig

	MaxOpenConns  int
	MaxIdleConns  int
	SlowThreshold time.Duration
}

// Open connects to the configured driver and applies pool limits.
func Open(cfg Config, logg *logger.Logger) (*gorm.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = DriverSQLite
	}

	slow := cfg.SlowThreshold
	if slow <= 0 {
		slow = time.Second
	}
	gormCfg := &gorm.Config{
		Logger: gormLogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormLogger.Config{
				SlowThreshold:             slow,
				LogLevel:                  gormLogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch driver {
	case DriverSQLite:
		gdb, err = openSQLite(cfg, gormCfg)
	case DriverPostgres:
		gdb, err = openPostgres(cfg, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.Driver, DriverSQLite, DriverPostgres)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	if logg != nil {
		logg.Info("Database connected", "driver", driver)
	}
	return gdb, nil
}

func Ping(ctx context.Context, gdb *gorm.DB) error {
	if gdb == nil {
		return fmt.Errorf("database not configured")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(gdb *gorm.DB) error {
	if gdb == nil {
		return nil
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
