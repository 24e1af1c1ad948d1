package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/yungbote/bakery-api/internal/app"
	"github.com/yungbote/bakery-api/internal/data/db"
	"github.com/yungbote/bakery-api/internal/data/seed"
)

func main() {
	var file string
	var reset bool
	var migrate bool
	flag.StringVar(&file, "file", "", "YAML fixture to load (defaults to the embedded fixture)")
	flag.BoolVar(&reset, "reset", false, "delete existing bakeries and baked goods first")
	flag.BoolVar(&migrate, "migrate", false, "run schema migration before seeding")
	flag.Parse()

	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if migrate {
		if err := db.Migrate(application.DB, application.Log); err != nil {
			fmt.Printf("migrate: %v\n", err)
			application.Close()
			os.Exit(1)
		}
	}

	var fixture *seed.Fixture
	if file != "" {
		fixture, err = seed.Load(file)
	} else {
		fixture, err = seed.Default()
	}
	if err != nil {
		fmt.Printf("load fixture: %v\n", err)
		application.Close()
		os.Exit(1)
	}

	res, err := seed.Apply(ctx, application.DB, application.Log, fixture, seed.Options{Reset: reset})
	if err != nil {
		fmt.Printf("seed: %v\n", err)
		application.Close()
		os.Exit(1)
	}
	fmt.Printf("seeded %d bakeries, %d baked goods\n", res.Bakeries, res.BakedGoods)
}
