package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotel/infras/otel"
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "checkout")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func TestScope_TraceError(t *testing.T) {
	t.Run("server error fails the span", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceError(errors.New("connection reset"))
		})

		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Equal(t, "connection reset", span.Status().Description)
	})

	t.Run("client failure is only an event", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceError(failure.Conflict("folio is locked"))
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		require.Len(t, span.Events(), 1)
		assert.Equal(t, "rejected", span.Events()[0].Name)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		span := record(t, func(scope otel.Scope) {
			scope.TraceIfError(nil)
		})

		assert.Equal(t, codes.Unset, span.Status().Code)
		assert.Empty(t, span.Events())
	})
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"booking.id": "b-1",
			"guests":     2,
			"archived":   false,
			"total":      decimal.RequireFromString("300.50"),
			"rooms":      []string{"r-1", "r-2"},
		})
	})

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "b-1", attrs["booking.id"].AsString())
	assert.Equal(t, int64(2), attrs["guests"].AsInt64())
	assert.False(t, attrs["archived"].AsBool())
	assert.Equal(t, "300.5", attrs["total"].AsString())
	assert.Equal(t, []string{"r-1", "r-2"}, attrs["rooms"].AsStringSlice())
}
