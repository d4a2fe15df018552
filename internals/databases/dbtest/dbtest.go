//go:build integration

// Package dbtest membuka Postgres sungguhan untuk test repository.
// Jalankan: TEST_DATABASE_URL=postgres://... go test -tags integration -p 1 ./...
package dbtest

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "schoolsite_backend/internals/databases"
)

const EnvURL = "TEST_DATABASE_URL"

// Open: skip kalau TEST_DATABASE_URL kosong; migrate lalu kosongkan tabel.
func Open(t *testing.T, tables ...string) *gorm.DB {
	t.Helper()
	dsn := os.Getenv(EnvURL)
	if dsn == "" {
		t.Skipf("%s not set", EnvURL)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := database.Migrate(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	truncate := func() {
		for _, tbl := range tables {
			if err := db.Exec("TRUNCATE TABLE " + tbl + " CASCADE").Error; err != nil {
				t.Fatalf("truncate %s: %v", tbl, err)
			}
		}
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		_ = database.Close(db)
	})
	return db
}
