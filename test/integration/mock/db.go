// Package mock provides the in-memory database fixture for the godog suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *Db
)

// Db wraps a shared in-memory sqlite connection holding the full schema. The
// models map keys are the table names the feature assertions refer to.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the singleton test database and migrates the schema once. The
// server goroutine and every scenario share the same connection, so the pool
// is pinned to a single conn to keep the shared memory database alive.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(fmt.Sprintf("failed to open test database: %v", err))
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to test database: %v", err))
	}

	d := &Db{DbConn: conn, models: models}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return d
}

// migrate drops and recreates every table, then verifies each one exists.
func (d *Db) migrate() error {
	list := make([]any, 0, len(d.models))
	for _, model := range d.models {
		if err := d.DbConn.Migrator().DropTable(model); err != nil {
			return err
		}
		list = append(list, model)
	}

	if err := d.DbConn.AutoMigrate(list...); err != nil {
		return err
	}

	for _, model := range list {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// ClearDB empties every table and resets autoincrement counters so each
// scenario starts from id 1. Retries a few times because the server goroutine
// may hold the single connection mid-request.
func (d *Db) ClearDB() error {
	var err error
	for attempt := 0; attempt < 5; attempt++ {
		if err = d.truncateAll(); err == nil {
			return nil
		}
		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}
	}
	return fmt.Errorf("failed to clear test database: %w", err)
}

func (d *Db) truncateAll() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(model).Error
		if err != nil {
			return err
		}
	}

	err := d.DbConn.Exec("DELETE FROM sqlite_sequence").Error
	if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
		return err
	}
	return nil
}

// GetModel returns the gorm model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
