package inventory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/bakery-api/internal/domain"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

type BakedGoodRepo interface {
	Create(ctx context.Context, tx *gorm.DB, goods []*types.BakedGood) ([]*types.BakedGood, error)
	ListByPriceDesc(ctx context.Context, tx *gorm.DB) ([]*types.BakedGood, error)
	MostExpensive(ctx context.Context, tx *gorm.DB) (*types.BakedGood, error)
}

type bakedGoodRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBakedGoodRepo(db *gorm.DB, baseLog *logger.Logger) BakedGoodRepo {
	repoLog := baseLog.With("repo", "BakedGoodRepo")
	return &bakedGoodRepo{db: db, log: repoLog}
}

func (gr *bakedGoodRepo) Create(ctx context.Context, tx *gorm.DB, goods []*types.BakedGood) ([]*types.BakedGood, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	if len(goods) == 0 {
		return []*types.BakedGood{}, nil
	}

	if err := transaction.WithContext(ctx).Omit("Bakery").Create(&goods).Error; err != nil {
		return nil, err
	}
	return goods, nil
}

// ListByPriceDesc orders by price, highest first. Equal prices fall back to id
// so repeated calls return the same sequence.
func (gr *bakedGoodRepo) ListByPriceDesc(ctx context.Context, tx *gorm.DB) ([]*types.BakedGood, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	results := []*types.BakedGood{}
	if err := transaction.WithContext(ctx).
		Scopes(byPriceDesc).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// MostExpensive returns the first row of the price ordering: the lowest id among
// the goods sharing the maximum price.
func (gr *bakedGoodRepo) MostExpensive(ctx context.Context, tx *gorm.DB) (*types.BakedGood, error) {
	transaction := tx
	if transaction == nil {
		transaction = gr.db
	}

	var good types.BakedGood
	err := transaction.WithContext(ctx).
		Scopes(byPriceDesc).
		Limit(1).
		Take(&good).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &good, nil
}

func byPriceDesc(db *gorm.DB) *gorm.DB {
	return db.Order("price DESC").Order("id ASC")
}
