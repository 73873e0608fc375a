package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupPostgres(t *testing.T, driver string) *sqlx.DB {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "kanso_user"),
		getEnv("DB_PASSWORD", "secret"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "kanso_db"),
	)

	db, err := OpenSQL(driver, dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	return db
}

func setupSQLite(t *testing.T) *sqlx.DB {
	db, err := OpenSQL(DriverSQLite, ":memory:")
	require.NoError(t, err)
	return db
}

func exerciseSQLStore(t *testing.T, db *sqlx.DB) {
	store := NewSQLStore(db)
	ctx := context.Background()

	require.NoError(t, store.EnsureSchema(ctx))
	require.NoError(t, store.EnsureSchema(ctx), "Schema creation must be idempotent")

	_, err := db.Exec("DELETE FROM kv_store")
	require.NoError(t, err)

	t.Run("Missing key", func(t *testing.T) {
		_, found, err := store.Get(ctx, domain.TasksKey)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Set and Get Value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.TasksKey, "[]"))

		val, found, err := store.Get(ctx, domain.TasksKey)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "[]", val)
	})

	t.Run("Upsert overwrites", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, domain.StreaksKey, `{"a":1}`))
		require.NoError(t, store.Set(ctx, domain.StreaksKey, `{"a":2}`))

		val, _, err := store.Get(ctx, domain.StreaksKey)
		assert.NoError(t, err)
		assert.Equal(t, `{"a":2}`, val)

		var count int
		require.NoError(t, db.Get(&count, db.Rebind("SELECT COUNT(*) FROM kv_store WHERE store_key = ?"), domain.StreaksKey))
		assert.Equal(t, 1, count)
	})

	t.Run("Snapshot repository on top", func(t *testing.T) {
		repo := NewSnapshotRepository(store)
		e, _ := domain.NewHabitEntry("Read 20 pages", time.Now())

		require.NoError(t, repo.SaveEntries(ctx, []*domain.HabitEntry{e}))
		entries, found, err := repo.LoadEntries(ctx)
		require.NoError(t, err)
		assert.True(t, found)
		require.Len(t, entries, 1)
		assert.Equal(t, e.ID, entries[0].ID)
	})
}

func TestSQLStore_SQLite(t *testing.T) {
	db := setupSQLite(t)
	defer db.Close()

	exerciseSQLStore(t, db)
}

func TestSQLStore_MissingTable(t *testing.T) {
	db := setupSQLite(t)
	defer db.Close()

	store := NewSQLStore(db)
	_, _, err := store.Get(context.Background(), domain.TasksKey)
	assert.Error(t, err)
}

func TestSQLStore_Postgres_Integration(t *testing.T) {
	for _, driver := range []string{DriverPgx, DriverPostgres} {
		t.Run(driver, func(t *testing.T) {
			db := setupPostgres(t, driver)
			defer db.Close()

			exerciseSQLStore(t, db)
		})
	}
}

func TestOpenSQL_UnsupportedDriver(t *testing.T) {
	_, err := OpenSQL("mysql", "dsn")
	assert.Error(t, err)
}
