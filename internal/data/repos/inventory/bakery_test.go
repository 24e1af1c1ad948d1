package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/bakery-api/internal/data/repos/testutil"
	types "github.com/yungbote/bakery-api/internal/domain"
)

func TestBakeryRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBakeryRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.Bakery{
		{Name: "Sweet Tooth"},
		{Name: "Empty Oven"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 || created[0].ID == 0 || created[1].ID == 0 {
		t.Fatalf("Create: ids not assigned: %+v", created)
	}
	sweet := created[0]
	testutil.SeedBakedGood(t, ctx, tx, testutil.PtrUint(sweet.ID), "Cupcake", "3.50")
	testutil.SeedBakedGood(t, ctx, tx, testutil.PtrUint(sweet.ID), "Muffin", "2.00")
	testutil.SeedBakedGood(t, ctx, tx, nil, "Stray Scone", "1.25")

	got, err := repo.GetByID(ctx, tx, sweet.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Sweet Tooth" {
		t.Fatalf("GetByID: name=%q", got.Name)
	}
	if len(got.BakedGoods) != 2 || got.BakedGoods[0].Name != "Cupcake" || got.BakedGoods[1].Name != "Muffin" {
		t.Fatalf("GetByID: unexpected baked goods: %+v", got.BakedGoods)
	}

	all, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List: expected 2 bakeries, got %d", len(all))
	}
	if all[0].ID != sweet.ID || len(all[0].BakedGoods) != 2 {
		t.Fatalf("List: unexpected first bakery: %+v", all[0])
	}
	if len(all[1].BakedGoods) != 0 {
		t.Fatalf("List: expected no goods for %q, got %d", all[1].Name, len(all[1].BakedGoods))
	}

	count, err := repo.Count(ctx, tx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Fatalf("Count: got %d", count)
	}
}

func TestBakeryRepoGetByIDMissing(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBakeryRepo(db, testutil.Logger(t))

	_, err := repo.GetByID(context.Background(), nil, 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
}

func TestBakeryRepoListEmpty(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBakeryRepo(db, testutil.Logger(t))

	all, err := repo.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if all == nil || len(all) != 0 {
		t.Fatalf("List: expected empty non-nil slice, got %#v", all)
	}
}
