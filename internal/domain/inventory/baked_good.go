package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// BakedGood is a priced item. BakeryID is nil for goods with no owning bakery.
type BakedGood struct {
	ID       uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string          `gorm:"not null;column:name" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0;index" json:"price"`
	BakeryID *uint           `gorm:"index;column:bakery_id" json:"bakery_id"`
	Bakery   *Bakery         `gorm:"foreignKey:BakeryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (BakedGood) TableName() string { return "baked_goods" }
