// Package seed loads bakery fixtures from YAML into the database.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/bakery-api/internal/data/repos"
	types "github.com/yungbote/bakery-api/internal/domain"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

//go:embed seed.yaml
var defaultFixture []byte

type Fixture struct {
	Bakeries   []BakeryFixture    `yaml:"bakeries"`
	BakedGoods []BakedGoodFixture `yaml:"baked_goods"`
}

type BakeryFixture struct {
	Name string `yaml:"name"`
}

// BakedGoodFixture refers to its owner by bakery name. An empty Bakery leaves
// the good unowned.
type BakedGoodFixture struct {
	Name   string `yaml:"name"`
	Price  string `yaml:"price"`
	Bakery string `yaml:"bakery"`
}

type Options struct {
	// Reset deletes existing rows before inserting.
	Reset bool
}

type Result struct {
	Bakeries   int
	BakedGoods int
}

func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture, rejecting unknown keys.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) Validate() error {
	var errs []error
	names := make(map[string]bool, len(f.Bakeries))
	for i, b := range f.Bakeries {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("bakeries[%d]: name is required", i))
			continue
		}
		if names[name] {
			errs = append(errs, fmt.Errorf("bakeries[%d]: duplicate name %q", i, name))
		}
		names[name] = true
	}
	for i, g := range f.BakedGoods {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("baked_goods[%d]: name is required", i))
		}
		price, err := decimal.NewFromString(strings.TrimSpace(g.Price))
		if err != nil {
			errs = append(errs, fmt.Errorf("baked_goods[%d]: invalid price %q", i, g.Price))
		} else if price.IsNegative() {
			errs = append(errs, fmt.Errorf("baked_goods[%d]: price must be non-negative", i))
		}
		if owner := strings.TrimSpace(g.Bakery); owner != "" && !names[owner] {
			errs = append(errs, fmt.Errorf("baked_goods[%d]: unknown bakery %q", i, owner))
		}
	}
	return errors.Join(errs...)
}

// Apply inserts the fixture in a single transaction.
func Apply(ctx context.Context, db *gorm.DB, log *logger.Logger, f *Fixture, opts Options) (Result, error) {
	var res Result
	if f == nil {
		return res, errors.New("seed: nil fixture")
	}
	if err := f.Validate(); err != nil {
		return res, err
	}

	bakeryRepo := repos.NewBakeryRepo(db, log)
	goodRepo := repos.NewBakedGoodRepo(db, log)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Reset {
			if err := reset(tx); err != nil {
				return err
			}
		}

		bakeries := make([]*types.Bakery, 0, len(f.Bakeries))
		for _, b := range f.Bakeries {
			bakeries = append(bakeries, &types.Bakery{Name: strings.TrimSpace(b.Name)})
		}
		if len(bakeries) > 0 {
			if _, err := bakeryRepo.Create(ctx, tx, bakeries); err != nil {
				return fmt.Errorf("insert bakeries: %w", err)
			}
		}
		ids := make(map[string]uint, len(bakeries))
		for _, b := range bakeries {
			ids[b.Name] = b.ID
		}

		goods := make([]*types.BakedGood, 0, len(f.BakedGoods))
		for _, g := range f.BakedGoods {
			good := &types.BakedGood{
				Name:  strings.TrimSpace(g.Name),
				Price: decimal.RequireFromString(strings.TrimSpace(g.Price)),
			}
			if owner := strings.TrimSpace(g.Bakery); owner != "" {
				id := ids[owner]
				good.BakeryID = &id
			}
			goods = append(goods, good)
		}
		if len(goods) > 0 {
			if _, err := goodRepo.Create(ctx, tx, goods); err != nil {
				return fmt.Errorf("insert baked goods: %w", err)
			}
		}

		res = Result{Bakeries: len(bakeries), BakedGoods: len(goods)}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	log.Info("Seed applied", "bakeries", res.Bakeries, "baked_goods", res.BakedGoods, "reset", opts.Reset)
	return res, nil
}

func reset(tx *gorm.DB) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&types.BakedGood{}).Error; err != nil {
		return fmt.Errorf("reset baked_goods: %w", err)
	}
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&types.Bakery{}).Error; err != nil {
		return fmt.Errorf("reset bakeries: %w", err)
	}
	return nil
}
