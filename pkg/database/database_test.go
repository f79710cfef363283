package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantDriver string
		wantDSN    string
		wantErr    bool
	}{
		{"postgres scheme", "postgres://u:p@db:5432/stock?sslmode=disable", DriverPostgres, "postgres://u:p@db:5432/stock?sslmode=disable", false},
		{"postgresql scheme", "postgresql://u:p@db/stock", DriverPostgres, "postgresql://u:p@db/stock", false},
		{"sqlite relative", "sqlite:///./stock_tracker.db", DriverSQLite, "./stock_tracker.db", false},
		{"sqlite two slashes", "sqlite://data/stock.db", DriverSQLite, "data/stock.db", false},
		{"file dsn", "file::memory:?cache=shared", DriverSQLite, "file::memory:?cache=shared", false},
		{"bare path", "./data/stock.db", DriverSQLite, "./data/stock.db", false},
		{"empty", "", "", "", true},
		{"mysql", "mysql://root@localhost/stock", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, dsn, err := Dialect(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestNewGormConnectionSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stock.db")

	db, err := NewGormConnection(Config{URL: "sqlite:///" + path})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.FileExists(t, path)
}
