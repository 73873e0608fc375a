package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

func TestGetStats(t *testing.T) {
	t.Run("Success: Empty collection", func(t *testing.T) {
		app := setupRouter(t)

		w := app.do("GET", "/api/v1/stats", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_habits":0`)
	})

	t.Run("Success: Counts completions", func(t *testing.T) {
		app := setupRouter(t)
		a := app.create(t, "A")
		app.create(t, "B")
		app.do("POST", "/api/v1/habits/"+a.ID+"/toggle", "")

		w := app.do("GET", "/api/v1/stats", "")
		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.HabitStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 2, stats.TotalHabits)
		assert.Equal(t, 1, stats.CheckedNow)
		assert.Equal(t, 1, stats.TotalCompletions)
		require.Len(t, stats.Habits, 2)
		assert.Equal(t, 1, stats.Habits[0].CurrentRun)
	})
}
