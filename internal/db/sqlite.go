package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqliteDSNOptions enforces foreign keys and waits out writer locks
// instead of failing immediately; a single-binary deployment shares one
// file between the request handlers.
const sqliteDSNOptions = "_foreign_keys=on&_busy_timeout=5000"

const slowQueryThreshold = time.Second

// OpenSQLite opens (creating if needed) the database file at dbPath and
// brings its schema up to date from the embedded migrations. The
// returned handle is ready for the repositories.
func OpenSQLite(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	database, err := gorm.Open(sqlite.Open(dbPath+"?"+sqliteDSNOptions), &gorm.Config{
		Logger: newStorageLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dbPath, err)
	}

	if err := applyEmbeddedMigrations(database); err != nil {
		return nil, fmt.Errorf("migrate database %s: %w", dbPath, err)
	}

	return database, nil
}

// newStorageLogger keeps GORM quiet except for slow queries and real
// errors; record-not-found is an expected outcome for the Find-based
// lookups, not a loggable failure.
func newStorageLogger() gormlogger.Interface {
	return gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}
