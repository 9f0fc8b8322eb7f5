package db

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"tasklist/internal/config"
)

//go:embed migrations
var migrations embed.FS

var dialects = map[string]struct {
	goose string
	dir   string
}{
	config.DriverMySQL:    {goose: "mysql", dir: "migrations/mysql"},
	config.DriverPostgres: {goose: "postgres", dir: "migrations/postgres"},
	config.DriverSQLite:   {goose: "sqlite3", dir: "migrations/sqlite"},
}

// Migrate applies the embedded schema migrations matching the driver of db.
func Migrate(db *sqlx.DB) error {
	dialect, ok := dialects[db.DriverName()]
	if !ok {
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}

	goose.SetLogger(gooseLogger{zap.L().Sugar()})
	goose.SetBaseFS(migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect.goose); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(db.DB, dialect.dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

type gooseLogger struct {
	log *zap.SugaredLogger
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) { l.log.Fatalf(format, v...) }
func (l gooseLogger) Printf(format string, v ...interface{}) { l.log.Infof(format, v...) }
