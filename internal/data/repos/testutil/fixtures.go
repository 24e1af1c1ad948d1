package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	types "github.com/yungbote/bakery-api/internal/domain"
)

func SeedBakery(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Bakery {
	tb.Helper()
	b := &types.Bakery{Name: name}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed bakery: %v", err)
	}
	return b
}

// SeedBakedGood inserts a good priced from its decimal string form, e.g. "3.50".
func SeedBakedGood(tb testing.TB, ctx context.Context, tx *gorm.DB, bakeryID *uint, name, price string) *types.BakedGood {
	tb.Helper()
	g := &types.BakedGood{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		BakeryID: bakeryID,
	}
	if err := tx.WithContext(ctx).Omit("Bakery").Create(g).Error; err != nil {
		tb.Fatalf("seed baked good: %v", err)
	}
	return g
}

func PtrUint(v uint) *uint { return &v }
