package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"tasklist/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := conf.DSN()
	if err != nil {
		return nil, err
	}
	return Open(conf.DbDriver, dsn)
}

// Open connects with one of the supported driver names: mysql, pgx or sqlite.
func Open(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case config.DriverMySQL, config.DriverPostgres, config.DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		// One writer at a time, and every connection must see the same file.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}
