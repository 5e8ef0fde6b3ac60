package testutil

import (
	"testing"
	"time"

	"github.com/darkademic/oraladder/pkg/database"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory SQLite ledger with the full schema.
// Returns the handle and a cleanup function.
func NewTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm connection: %v", err)
	}

	sqlDB, sqlErr := db.DB()
	if sqlErr != nil {
		t.Fatalf("Failed to get SQL DB: %v", sqlErr)
	}

	// A single connection keeps every query on the same in-memory
	// database instance.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.Migrate(db); err != nil {
		sqlDB.Close()
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	cleanup := func() {
		sqlDB.Close()
	}

	return db, cleanup
}

// NewTestRegistry wraps an already-open handle in a registry under the
// given variant and scope.
func NewTestRegistry(t *testing.T, db *gorm.DB, mod, scope string) *database.Registry {
	t.Helper()

	registry := database.NewRegistry(t.TempDir(), zerolog.Nop())
	registry.Register(mod, scope, db)

	return registry
}
