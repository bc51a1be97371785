package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestGinMiddlewareRecordsServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/submissions/:id", func(c *gin.Context) {
		_, child := Tracer.Start(c.Request.Context(), "load")
		child.End()
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/submissions/42", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	child, server := spans[0], spans[1]
	assert.Equal(t, "load", child.Name())
	assert.Equal(t, "GET /api/submissions/:id", server.Name())
	assert.Equal(t, trace.SpanKindServer, server.SpanKind())
	assert.Equal(t, server.SpanContext().SpanID(), child.Parent().SpanID())
	assert.Contains(t, server.Attributes(), attribute.Int("http.status_code", http.StatusNotFound))
}
