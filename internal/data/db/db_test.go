package db

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/bakery-api/internal/platform/logger"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	log, _ := logger.New("test")
	gdb, err := Open(Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "bakery.db")}, log)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = Close(gdb) })

	if err := Migrate(gdb, log); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	for _, table := range []string{"bakeries", "baked_goods"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
	if err := Ping(context.Background(), gdb); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Config{Driver: "oracle"}, nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported DB_DRIVER") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPostgresDSN(t *testing.T) {
	got := PostgresConfig{Host: "db", Port: "5432", User: "baker", Password: "p@ss", Name: "bakery"}.DSN()
	want := "postgres://baker:p%40ss@db:5432/bakery?sslmode=disable"
	if got != want {
		t.Fatalf("got=%s want=%s", got, want)
	}
}

func TestWithForeignKeys(t *testing.T) {
	cases := map[string]string{
		"app.db":                          "app.db?_foreign_keys=on",
		"file:x?mode=memory&cache=shared": "file:x?mode=memory&cache=shared&_foreign_keys=on",
		"file:y?_fk=1":                    "file:y?_fk=1",
	}
	for in, want := range cases {
		if got := withForeignKeys(in); got != want {
			t.Fatalf("%s: got=%s want=%s", in, got, want)
		}
	}
}
