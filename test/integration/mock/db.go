package mock

import (
	"database/sql"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Db struct {
	DbConn *gorm.DB
	models map[string]any
	sqlDB  *sql.DB
}

// NewDb opens a private in-memory SQLite database. Tables are left to the
// schema manager so every scenario exercises the real migration path.
func NewDb(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		panic(err)
	}

	// A second connection would see a different in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: models,
		sqlDB:  dbSQL,
	}
}

func (d *Db) Close() error {
	if err := d.sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
