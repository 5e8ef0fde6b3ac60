package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/darkademic/oraladder/pkg/database/models"
	"github.com/darkademic/oraladder/pkg/messages"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The ladder keeps one SQLite snapshot per game variant and reporting
// scope, produced by the ingestion side. Scope identifiers double as
// the snapshot file name suffix.
const (
	ScopeAllTime = "all"
	ScopePeriod  = "2m"
)

// NormalizeScope maps any requested scope onto a supported one,
// defaulting to the all-time ladder.
func NormalizeScope(scope string) string {
	if scope == ScopePeriod {
		return ScopePeriod
	}
	return ScopeAllTime
}

// Registry resolves (mod, scope) pairs to open ledger handles. Files
// are opened lazily on first use and shared afterwards.
type Registry struct {
	dir    string
	logger zerolog.Logger

	mu      sync.Mutex
	handles map[string]*gorm.DB
}

// NewRegistry creates a registry over the given instance directory.
func NewRegistry(dir string, logger zerolog.Logger) *Registry {
	return &Registry{
		dir:     dir,
		logger:  logger,
		handles: make(map[string]*gorm.DB),
	}
}

// Resolve returns the ledger for the given variant and scope. A
// missing or unopenable snapshot surfaces as a store-unavailable
// error for the whole request, never as a partial result.
func (r *Registry) Resolve(mod, scope string) (*gorm.DB, error) {
	key := mod + "-" + NormalizeScope(scope)

	r.mu.Lock()
	defer r.mu.Unlock()

	if db, ok := r.handles[key]; ok {
		return db, nil
	}

	path := filepath.Join(r.dir, fmt.Sprintf("db-%s.sqlite3", key))
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", messages.ErrStoreUnavailable, key)
	}

	db, err := Open(path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", path).Msg("failed to open ladder snapshot")
		return nil, fmt.Errorf("%w: %s", messages.ErrStoreUnavailable, key)
	}

	r.logger.Info().Str("path", path).Msg("ladder snapshot opened")
	r.handles[key] = db
	return db, nil
}

// Register installs an already-open handle under a scope key. Used by
// tests and by tooling that builds snapshots in place.
func (r *Registry) Register(mod, scope string, db *gorm.DB) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles[mod+"-"+NormalizeScope(scope)] = db
}

// Close releases every open handle.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, db := range r.handles {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		delete(r.handles, key)
	}
}

// Open creates a gorm handle over a single SQLite ledger file.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %v", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get the sql connection: %v", err)
	}

	// Snapshots are read-mostly: a small shared pool is plenty and
	// keeps SQLite locking out of the picture.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(4)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates the ledger schema. The web service never migrates
// production snapshots; this exists for tests and local tooling.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Player{}, &models.Outcome{})
}
