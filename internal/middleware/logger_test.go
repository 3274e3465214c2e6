package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/GregMSThompson/bonuses-backend/pkg/logger"
)

func TestLoggerMiddlewareInjectsRequestLogger(t *testing.T) {
	base := slog.New(logger.NewTestHandler(slog.LevelInfo))
	m := NewLoggerMiddleware(base)

	var got *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	chimiddleware.RequestID(m.LoggerMiddleware(next)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/bonuses", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotNil(t, got)
	assert.NotSame(t, base, got)
	assert.NotSame(t, slog.Default(), got)
}
