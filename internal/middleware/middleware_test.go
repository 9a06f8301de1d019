package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func attr(r slog.Record, key string) slog.Value {
	var v slog.Value
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			v = a.Value
			return false
		}
		return true
	})
	return v
}

func newRouter(h *recordingHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger(slog.New(h)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/api/search", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/api/tags-list", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	return r
}

func TestRequestIDGeneratedAndPropagated(t *testing.T) {
	r := newRouter(&recordingHandler{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLoggerLevels(t *testing.T) {
	h := &recordingHandler{}
	r := newRouter(h)

	for _, path := range []string{"/ping", "/api/search?page=-1", "/api/tags-list"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, h.records, 2)
	assert.Equal(t, slog.LevelWarn, h.records[0].Level)
	assert.Equal(t, "/api/search", attr(h.records[0], "path").String())
	assert.Equal(t, "page=-1", attr(h.records[0], "query").String())
	assert.Equal(t, int64(http.StatusBadRequest), attr(h.records[0], "status").Int64())
	assert.Equal(t, slog.LevelError, h.records[1].Level)
}
