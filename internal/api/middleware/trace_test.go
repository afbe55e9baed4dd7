package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nextstep/subway-api/internal/api/shared"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var seenTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		require.NotNil(t, logger.FromContext(r.Context()))
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	TraceMiddleware(base)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stations", nil))

	require.Len(t, seenTraceID, shared.TraceIDLength)
	assert.Equal(t, seenTraceID, rr.Header().Get(TraceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"`+seenTraceID+`"`)
	assert.Contains(t, buf.String(), "inside handler")
}
