package view

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	types "github.com/yungbote/bakery-api/internal/domain"
)

func ptr(v uint) *uint { return &v }

func TestBakeryEmbedsGoodsWithoutBackReference(t *testing.T) {
	owner := &types.Bakery{ID: 1, Name: "Sweet Tooth"}
	owner.BakedGoods = []types.BakedGood{
		{ID: 1, Name: "Cupcake", Price: decimal.RequireFromString("3.50"), BakeryID: ptr(1), Bakery: owner},
		{ID: 2, Name: "Muffin", Price: decimal.RequireFromString("2.00"), BakeryID: ptr(1), Bakery: owner},
	}

	raw, err := json.Marshal(Bakery(owner))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"name":"Sweet Tooth","baked_goods":[` +
		`{"id":1,"name":"Cupcake","price":3.5,"bakery_id":1},` +
		`{"id":2,"name":"Muffin","price":2,"bakery_id":1}]}`
	if string(raw) != want {
		t.Fatalf("unexpected json:\n got=%s\nwant=%s", raw, want)
	}
}

func TestBakedGoodStandaloneShape(t *testing.T) {
	raw, err := json.Marshal(BakedGood(&types.BakedGood{
		ID:     7,
		Name:   "Scone",
		Price:  decimal.RequireFromString("1.25"),
		Bakery: &types.Bakery{ID: 9, Name: "hidden"},
	}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":7,"name":"Scone","price":1.25,"bakery_id":null}`
	if string(raw) != want {
		t.Fatalf("got=%s want=%s", raw, want)
	}
}

func TestCollectionsNeverNull(t *testing.T) {
	for name, v := range map[string]interface{}{
		"bakeries":    Bakeries(nil),
		"baked_goods": BakedGoods(nil),
		"nested":      Bakery(&types.Bakery{ID: 3, Name: "Empty Oven"}).BakedGoods,
	} {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%s: marshal: %v", name, err)
		}
		if string(raw) != "[]" {
			t.Fatalf("%s: got=%s want=[]", name, raw)
		}
	}
}
