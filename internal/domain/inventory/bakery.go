package inventory

import "time"

type Bakery struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string      `gorm:"not null;column:name" json:"name"`
	BakedGoods []BakedGood `gorm:"foreignKey:BakeryID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Bakery) TableName() string { return "bakeries" }
