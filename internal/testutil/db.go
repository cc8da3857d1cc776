// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/social-schema/config"
	"github.com/d60-Lab/social-schema/pkg/database"
)

// NewSQLite 在临时目录中创建带完整表结构的 sqlite 数据库
func NewSQLite(tb testing.TB) *gorm.DB {
	tb.Helper()
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      "file:" + filepath.Join(tb.TempDir(), "test.db") + "?_foreign_keys=on",
		LogLevel: "silent",
	}}
	db, err := database.InitDB(cfg)
	require.NoError(tb, err)
	require.NoError(tb, database.Migrate(db))
	tb.Cleanup(func() { _ = database.Close(db) })
	return db
}
