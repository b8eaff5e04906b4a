package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"arena/infras/otel"
	"arena/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   string
		wantStatus codes.Code
		wantEvent  string
	}{
		{
			name:       "rejection stays a client error",
			err:        failure.New(409, "overlap", "a confirmed reservation already holds this time"),
			wantKind:   "overlap",
			wantStatus: codes.Unset,
			wantEvent:  "request.rejected",
		},
		{
			name:       "storage outage fails the span",
			err:        failure.Transient(errors.New("dial tcp: timeout")),
			wantKind:   failure.KindTransient,
			wantStatus: codes.Error,
			wantEvent:  "exception",
		},
		{
			name:       "plain error is internal",
			err:        errors.New("boom"),
			wantKind:   failure.KindInternal,
			wantStatus: codes.Error,
			wantEvent:  "exception",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) { scope.TraceIfError(tt.err) })

			assert.Equal(t, tt.wantKind, attributes(span)["error.kind"].AsString())
			assert.Equal(t, tt.wantStatus, span.Status().Code)
			require.NotEmpty(t, span.Events())
			assert.Equal(t, tt.wantEvent, span.Events()[0].Name)
		})
	}
}

func TestScope_TraceIfErrorNil(t *testing.T) {
	span := record(t, func(scope otel.Scope) { scope.TraceIfError(nil) })

	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Empty(t, span.Events())
}

type hour int

func (h hour) String() string { return "10:00" }

func TestScope_SetAttributes(t *testing.T) {
	at := time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC)

	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"facility.active": true,
			"slots":           16,
			"price":           240.5,
			"hours":           []int{10, 11},
			"at":              at,
			"timeout":         5 * time.Second,
			"opening":         hour(600),
			"other":           struct{ A int }{A: 1},
		})
	})

	attrs := attributes(span)
	assert.True(t, attrs["facility.active"].AsBool())
	assert.Equal(t, int64(16), attrs["slots"].AsInt64())
	assert.InDelta(t, 240.5, attrs["price"].AsFloat64(), 0.0001)
	assert.Equal(t, []int64{10, 11}, attrs["hours"].AsInt64Slice())
	assert.Equal(t, "2025-06-06T10:00:00Z", attrs["at"].AsString())
	assert.Equal(t, "5s", attrs["timeout"].AsString())
	assert.Equal(t, "10:00", attrs["opening"].AsString())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}
