package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tour-insight/app/config"
	"tour-insight/app/logger"
	"tour-insight/app/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      filepath.Join(t.TempDir(), "nested", "test.db"),
		LogLevel: "silent",
	}
	db, err := Open(cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestOpen_CreatesDirectoryAndPings(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, Ping(context.Background(), db))
	assert.True(t, db.Migrator().HasTable("tb_tour"))
	assert.True(t, db.Migrator().HasTable("tb_user"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, logger.NewNop())
	assert.Error(t, err)
}

func TestSeedTours(t *testing.T) {
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "tours.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title":"故宫","city":"北京","comments":5000,"score":4.9},
		{"title":"外滩","city":"上海","comments":3000,"score":4.7}
	]`), 0644))

	n, err := SeedTours(context.Background(), db, path, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// 表非空时不重复导入
	n, err = SeedTours(context.Background(), db, path, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	var count int64
	require.NoError(t, db.Model(&model.Tour{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSeedTours_RejectsMissingTitle(t *testing.T) {
	db := openTestDB(t)
	path := filepath.Join(t.TempDir(), "tours.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"city":"北京"}]`), 0644))

	_, err := SeedTours(context.Background(), db, path, logger.NewNop())
	assert.Error(t, err)
}
