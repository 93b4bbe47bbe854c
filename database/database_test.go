package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pagebuilder/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		panic("failed to connect database")
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func stringPtr(s string) *string {
	return &s
}

func TestRunMigrations(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db, zerolog.Nop()))

	assert.True(t, db.Migrator().HasTable(&models.Page{}))
	assert.True(t, db.Migrator().HasTable(&models.Module{}))
	assert.True(t, db.Migrator().HasColumn(&models.Module{}, "content"))

	// running twice is harmless
	assert.NoError(t, RunMigrations(db, zerolog.Nop()))
}

type foreignKey struct {
	Table    string
	From     string
	To       string
	OnDelete string
}

func TestRunMigrations_ModuleForeignKey(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, RunMigrations(db, zerolog.Nop()))

	var keys []foreignKey
	require.NoError(t, db.Raw("PRAGMA foreign_key_list('modules')").Scan(&keys).Error)
	require.Len(t, keys, 1)
	assert.Equal(t, "pages", keys[0].Table)
	assert.Equal(t, "page_id", keys[0].From)
	assert.Equal(t, "page_id", keys[0].To)
	assert.Equal(t, "CASCADE", keys[0].OnDelete)

	keys = nil
	require.NoError(t, db.Raw("PRAGMA foreign_key_list('pages')").Scan(&keys).Error)
	assert.Empty(t, keys)
}

func TestPoolProvider_WithConn(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, RunMigrations(db, zerolog.Nop()))
	provider := NewPoolProvider(db)

	err := provider.WithConn(context.Background(), func(conn *gorm.DB) error {
		_, err := models.PageModel{}.Create(conn, &models.MutPage{Title: stringPtr("Hello world!")})
		return err
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.Page{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPoolProvider_ReleasesOnError(t *testing.T) {
	db := setupTestDB(t)
	provider := NewPoolProvider(db)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	boom := errors.New("boom")
	err = provider.WithConn(context.Background(), func(conn *gorm.DB) error {
		assert.Equal(t, 1, sqlDB.Stats().InUse)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, sqlDB.Stats().InUse)

	// with a single connection in the pool this would block if the first
	// one had not been returned
	assert.NoError(t, provider.Ping(context.Background()))
}

func TestPoolProvider_IgnoresCancellation(t *testing.T) {
	db := setupTestDB(t)
	provider := NewPoolProvider(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := provider.WithConn(ctx, func(conn *gorm.DB) error {
		return conn.Exec("SELECT 1").Error
	})
	assert.NoError(t, err)
}

func TestPoolProvider_StatementsDoNotLeak(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, RunMigrations(db, zerolog.Nop()))
	provider := NewPoolProvider(db)

	err := provider.WithConn(context.Background(), func(conn *gorm.DB) error {
		pages := models.PageModel{}
		if _, err := pages.Create(conn, &models.MutPage{Title: stringPtr("a")}); err != nil {
			return err
		}
		if _, err := pages.Create(conn, &models.MutPage{Title: stringPtr("b")}); err != nil {
			return err
		}
		// each call starts from a clean statement
		if _, err := pages.ReadOne(conn, 1); err != nil {
			return err
		}
		all, err := pages.ReadAll(conn)
		if err != nil {
			return err
		}
		assert.Len(t, all, 2)
		return nil
	})
	assert.NoError(t, err)
}
