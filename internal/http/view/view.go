// Package view renders stored records into their JSON response shapes.
//
// A bakery embeds its baked goods. A baked good never embeds its bakery, so
// neither shape can expand recursively.
package view

import (
	types "github.com/yungbote/bakery-api/internal/domain"
)

type BakedGoodView struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BakeryID *uint   `json:"bakery_id"`
}

type BakeryView struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	BakedGoods []BakedGoodView `json:"baked_goods"`
}

func BakedGood(g *types.BakedGood) BakedGoodView {
	return BakedGoodView{
		ID:       g.ID,
		Name:     g.Name,
		Price:    g.Price.InexactFloat64(),
		BakeryID: g.BakeryID,
	}
}

func BakedGoods(goods []*types.BakedGood) []BakedGoodView {
	out := make([]BakedGoodView, 0, len(goods))
	for _, g := range goods {
		if g == nil {
			continue
		}
		out = append(out, BakedGood(g))
	}
	return out
}

func Bakery(b *types.Bakery) BakeryView {
	goods := make([]BakedGoodView, 0, len(b.BakedGoods))
	for i := range b.BakedGoods {
		goods = append(goods, BakedGood(&b.BakedGoods[i]))
	}
	return BakeryView{
		ID:         b.ID,
		Name:       b.Name,
		BakedGoods: goods,
	}
}

func Bakeries(bakeries []*types.Bakery) []BakeryView {
	out := make([]BakeryView, 0, len(bakeries))
	for _, b := range bakeries {
		if b == nil {
			continue
		}
		out = append(out, Bakery(b))
	}
	return out
}
