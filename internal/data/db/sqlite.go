package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultSQLitePath = "app.db"

func openSQLite(cfg Config, gormCfg *gorm.Config) (*gorm.DB, error) {
	path := strings.TrimSpace(cfg.SQLitePath)
	if path == "" {
		path = defaultSQLitePath
	}
	db, err := gorm.Open(sqlite.Open(withForeignKeys(path)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}
	return db, nil
}

// sqlite enforces foreign keys per connection, so the flag rides on the DSN
// and every pooled connection picks it up.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}
