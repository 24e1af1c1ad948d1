package inventory

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/bakery-api/internal/domain"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type BakeryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, bakeries []*types.Bakery) ([]*types.Bakery, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Bakery, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Bakery, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type bakeryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBakeryRepo(db *gorm.DB, baseLog *logger.Logger) BakeryRepo {
	repoLog := baseLog.With("repo", "BakeryRepo")
	return &bakeryRepo{db: db, log: repoLog}
}

func (br *bakeryRepo) Create(ctx context.Context, tx *gorm.DB, bakeries []*types.Bakery) ([]*types.Bakery, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	if len(bakeries) == 0 {
		return []*types.Bakery{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&bakeries).Error; err != nil {
		return nil, err
	}
	return bakeries, nil
}

func (br *bakeryRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Bakery, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	results := []*types.Bakery{}
	if err := transaction.WithContext(ctx).
		Preload("BakedGoods", orderByID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *bakeryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Bakery, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var bakery types.Bakery
	err := transaction.WithContext(ctx).
		Preload("BakedGoods", orderByID).
		Where("id = ?", id).
		First(&bakery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bakery, nil
}

func (br *bakeryRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Bakery{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// orderByID keeps nested baked goods in insertion order.
func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
