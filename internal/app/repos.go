package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/bakery-api/internal/data/repos"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

type Repos struct {
	Bakery    repos.BakeryRepo
	BakedGood repos.BakedGoodRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Bakery:    repos.NewBakeryRepo(db, log),
		BakedGood: repos.NewBakedGoodRepo(db, log),
	}
}
