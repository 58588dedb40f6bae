package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/service"
	"github.com/yourname/sleeplog/internal/storage"
)

type envelope struct {
	Data  json.RawMessage    `json:"data"`
	Meta  map[string]any     `json:"meta"`
	Error *internal.AppError `json:"error"`
}

func setupRouterAndStorage(t *testing.T, durations ...float64) (*gin.Engine, *storage.FileStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "sleep_log.json"), internal.NewNopLogger())
	require.NoError(t, err)

	if len(durations) > 0 {
		var log []internal.SleepEntry
		base := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
		for i, d := range durations {
			sleep := base.AddDate(0, 0, i)
			log, _ = service.RecordEntry(log, sleep, sleep.Add(time.Duration(d*float64(time.Hour))))
		}
		require.NoError(t, repo.Save(context.Background(), log))
	}

	r := NewRouter(NewApp(internal.NewNopLogger(), repo, service.DefaultWindow))
	return r, repo
}

func doGet(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	ts := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(ts, req)

	var body envelope
	require.NoError(t, json.Unmarshal(ts.Body.Bytes(), &body), ts.Body.String())
	return ts, body
}

func TestGetSleep(t *testing.T) {
	r, _ := setupRouterAndStorage(t, 8, 7)
	ts, body := doGet(t, r, "/sleep")
	assert.Equal(t, http.StatusOK, ts.Code)

	var entries []internal.SleepEntry
	require.NoError(t, json.Unmarshal(body.Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-01-01T23:00:00", entries[0].SleepTime.String())
	assert.Equal(t, 7.0, entries[1].DurationHours)
	assert.Equal(t, float64(2), body.Meta["total"])
}

func TestGetSleep_EmptyIsOK(t *testing.T) {
	r, _ := setupRouterAndStorage(t)
	ts, body := doGet(t, r, "/sleep")
	assert.Equal(t, http.StatusOK, ts.Code)
	assert.JSONEq(t, `[]`, string(body.Data))
}

func TestGetSleepStats(t *testing.T) {
	r, _ := setupRouterAndStorage(t, 12, 12, 5, 5, 5, 5, 5, 5, 5)
	ts, body := doGet(t, r, "/sleep/stats")
	assert.Equal(t, http.StatusOK, ts.Code)
	assert.InDelta(t, 5.0, body.Meta["average_hours"], 1e-9)
	assert.Equal(t, float64(7), body.Meta["count"])
	assert.Equal(t, float64(9), body.Meta["total"])
	assert.Equal(t, float64(7), body.Meta["window"])

	var entries []internal.SleepEntry
	require.NoError(t, json.Unmarshal(body.Data, &entries))
	assert.Len(t, entries, 7)
}

func TestGetSleepStats_WindowParam(t *testing.T) {
	r, _ := setupRouterAndStorage(t, 4, 8, 10)

	ts, body := doGet(t, r, "/sleep/stats?window=2")
	assert.Equal(t, http.StatusOK, ts.Code)
	assert.InDelta(t, 9.0, body.Meta["average_hours"], 1e-9)

	for _, bad := range []string{"abc", "0", "-3"} {
		ts, body = doGet(t, r, "/sleep/stats?window="+bad)
		assert.Equal(t, http.StatusBadRequest, ts.Code, bad)
		require.NotNil(t, body.Error)
		assert.Equal(t, 400, body.Error.Code)
	}
}

func TestGetSleepAdvice(t *testing.T) {
	tests := []struct {
		name      string
		durations []float64
		category  string
	}{
		{"too little", []float64{5, 5, 5, 5, 5, 5, 5}, "too_little"},
		{"healthy", []float64{7.5}, "healthy"},
		{"eight hours is mixed", []float64{8}, "mixed"},
		{"mixed", []float64{8.5, 8.5}, "mixed"},
		{"too much", []float64{9, 10}, "too_much"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupRouterAndStorage(t, tt.durations...)
			ts, body := doGet(t, r, "/sleep/advice")
			assert.Equal(t, http.StatusOK, ts.Code)
			assert.Equal(t, tt.category, body.Meta["category"])
			assert.NotEmpty(t, body.Meta["advice"])
		})
	}
}

func TestGetSleepAdvice_NoData(t *testing.T) {
	r, _ := setupRouterAndStorage(t)
	ts, body := doGet(t, r, "/sleep/advice")
	assert.Equal(t, http.StatusNotFound, ts.Code)
	require.NotNil(t, body.Error)
	assert.Contains(t, body.Error.Message, internal.ErrEmptyHistory.Error())
}

func TestCorruptStoreIs500(t *testing.T) {
	r, repo := setupRouterAndStorage(t)
	require.NoError(t, os.WriteFile(repo.Path(), []byte(`{"not": "an array"}`), 0o644))

	for _, path := range []string{"/sleep", "/sleep/stats", "/sleep/advice"} {
		ts, body := doGet(t, r, path)
		assert.Equal(t, http.StatusInternalServerError, ts.Code, path)
		require.NotNil(t, body.Error, path)
		assert.Equal(t, 500, body.Error.Code)
	}
}

func TestReadOnly(t *testing.T) {
	r, _ := setupRouterAndStorage(t, 8)
	ts := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/sleep", nil)
	r.ServeHTTP(ts, req)
	assert.Equal(t, http.StatusNotFound, ts.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	r, _ := setupRouterAndStorage(t, 8)

	ts := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/sleep", nil)
	r.ServeHTTP(ts, req)
	_, err := uuid.Parse(ts.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	id := uuid.NewString()
	ts = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/sleep", nil)
	req.Header.Set("X-Request-ID", id)
	r.ServeHTTP(ts, req)
	assert.Equal(t, id, ts.Header().Get("X-Request-ID"))

	ts = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/sleep", nil)
	req.Header.Set("X-Request-ID", "not-a-uuid")
	r.ServeHTTP(ts, req)
	assert.NotEqual(t, "not-a-uuid", ts.Header().Get("X-Request-ID"))
}
