package db_test

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "tasklist/internal/adapter/db"
	"tasklist/internal/config"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tasklist.db")
	db, err := dbadapter.Open(config.DriverSQLite, "file:"+path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, dbadapter.Migrate(db))
	return db
}
