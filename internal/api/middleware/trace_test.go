package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), base))
	rec := httptest.NewRecorder()
	TraceMiddleware(next).ServeHTTP(rec, req)

	require.Len(t, traceID, 32)
	assert.Equal(t, traceID, rec.Header().Get(TraceIDHeader))
	assert.Contains(t, buf.String(), "request started")
	assert.Equal(t, 2, strings.Count(buf.String(), "trace_id="+traceID))
}
