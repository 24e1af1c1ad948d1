package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/bakery-api/internal/data/repos/inventory"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

type BakeryRepo = inventory.BakeryRepo
type BakedGoodRepo = inventory.BakedGoodRepo

var ErrNotFound = inventory.ErrNotFound

func NewBakeryRepo(db *gorm.DB, log *logger.Logger) BakeryRepo {
	return inventory.NewBakeryRepo(db, log)
}

func NewBakedGoodRepo(db *gorm.DB, log *logger.Logger) BakedGoodRepo {
	return inventory.NewBakedGoodRepo(db, log)
}
