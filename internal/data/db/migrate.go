package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/bakery-api/internal/domain"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

// EnsureIndexes adds the composite index backing the price listing order.
func EnsureIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_baked_goods_price_id
		ON baked_goods (price DESC, id ASC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_baked_goods_price_id: %w", err)
	}
	return nil
}

func Migrate(db *gorm.DB, log *logger.Logger) error {
	if log != nil {
		log.Info("Auto migrating tables...")
	}
	if err := AutoMigrateAll(db); err != nil {
		if log != nil {
			log.Error("Auto migration failed", "error", err)
		}
		return err
	}
	if err := EnsureIndexes(db); err != nil {
		if log != nil {
			log.Error("Index migration failed", "error", err)
		}
		return err
	}
	return nil
}
