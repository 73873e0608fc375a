package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-habits/internal/config"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/scheduler"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

type habitResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	IsChecked bool   `json:"isChecked"`
	Streak    int    `json:"streak"`
}

func testConfig(driver string, t *testing.T) *config.Config {
	return &config.Config{
		Env:         "test",
		StoreDriver: driver,
		SQLitePath:  filepath.Join(t.TempDir(), "kanso.db"),
		Tracker:     services.DefaultTrackerConfig(),
	}
}

func call(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_HabitLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	clock := scheduler.NewManual(time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC))

	a, err := newApp(ctx, testConfig(config.StoreMemory, t), zap.NewNop(), clock)
	require.NoError(t, err)
	defer a.Close()

	var habitID string

	t.Run("1. Create", func(t *testing.T) {
		w := call(t, a.router, "POST", "/api/v1/habits", `{"label": "Walk"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var res habitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		habitID = res.ID
		assert.NotEmpty(t, habitID)
	})

	t.Run("2. Check", func(t *testing.T) {
		w := call(t, a.router, "POST", "/api/v1/habits/"+habitID+"/toggle", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"streak":1`)
	})

	t.Run("3. Auto-uncheck", func(t *testing.T) {
		clock.Advance(3 * time.Second)

		w := call(t, a.router, "GET", "/api/v1/habits/"+habitID, "")
		assert.Contains(t, w.Body.String(), `"isChecked":false`)
		assert.Contains(t, w.Body.String(), `"streak":1`)
	})

	t.Run("4. Delete and undo", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, call(t, a.router, "DELETE", "/api/v1/habits/"+habitID, "").Code)
		require.Equal(t, http.StatusNotFound, call(t, a.router, "GET", "/api/v1/habits/"+habitID, "").Code)

		require.Equal(t, http.StatusOK, call(t, a.router, "POST", "/api/v1/habits/undo", "").Code)
		assert.Equal(t, http.StatusOK, call(t, a.router, "GET", "/api/v1/habits/"+habitID, "").Code)
	})

	t.Run("5. Social score follows completions", func(t *testing.T) {
		w := call(t, a.router, "GET", "/api/v1/social/me", "")
		assert.Contains(t, w.Body.String(), `"streakScore":1`)
	})
}

func TestEndToEnd_SQLitePersistsAcrossRestart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := testConfig(config.StoreSQLite, t)
	clock := scheduler.NewManual(time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC))

	first, err := newApp(ctx, cfg, zap.NewNop(), clock)
	require.NoError(t, err)

	w := call(t, first.router, "POST", "/api/v1/habits", `{"label": "Journal"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created habitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	require.Equal(t, http.StatusOK, call(t, first.router, "POST", "/api/v1/habits/"+created.ID+"/toggle", "").Code)
	require.NoError(t, first.Close())

	second, err := newApp(ctx, cfg, zap.NewNop(), clock)
	require.NoError(t, err)
	defer second.Close()

	w = call(t, second.router, "GET", "/api/v1/habits", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list []habitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Journal", list[0].Label)
	assert.True(t, list[0].IsChecked)
	assert.Equal(t, 1, list[0].Streak)
}

func TestOpenStore_UnsupportedDriver(t *testing.T) {
	cfg := testConfig("mongo", t)

	_, err := openStore(context.Background(), cfg, zap.NewNop())

	assert.Error(t, err)
}

func TestRedisHealth_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer rdb.Close()

	err := redisHealth(rdb)(context.Background())

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
