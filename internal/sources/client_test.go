package sources

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTracedClient(t *testing.T) (*http.Client, *tracetest.SpanRecorder, trace.TracerProvider) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	client := NewHTTPClient(5*time.Second,
		otelhttp.WithTracerProvider(tp),
		otelhttp.WithPropagators(propagation.TraceContext{}),
	)
	return client, recorder, tp
}

func TestHTTPClientRecordsClientSpanPerCall(t *testing.T) {
	client, recorder, _ := newTracedClient(t)

	identity := newUpstream(t, http.StatusOK, identityBody, nil)
	geo := newUpstream(t, http.StatusOK, `[{"name":{"common":"Japan"},"capital":["Tokyo"],"currencies":{"JPY":{}}}]`, nil)
	rates := newUpstream(t, http.StatusOK, `{"result":"success","conversion_rates":{"USD":0.0067,"KZT":3.31}}`, nil)
	news := newUpstream(t, http.StatusOK, `{"status":"ok","articles":[]}`, nil)

	ctx := context.Background()
	_, err := NewIdentityClient(client, identity.URL).RandomProfile(ctx)
	require.NoError(t, err)
	_, err = NewGeoClient(client, geo.URL).LookupCountry(ctx, "Japan")
	require.NoError(t, err)
	_, err = NewRatesClient(client, rates.URL, "k").LatestRates(ctx, "JPY")
	require.NoError(t, err)
	_, err = NewNewsClient(client, news.URL, "k").Search(ctx, "Japan")
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 4)
	for _, span := range spans {
		assert.Equal(t, trace.SpanKindClient, span.SpanKind())
	}
}

func TestHTTPClientPropagatesTraceContext(t *testing.T) {
	client, recorder, tp := newTracedClient(t)

	var last atomic.Pointer[http.Request]
	srv := newUpstream(t, http.StatusOK, `{"ok":true}`, &last)

	ctx, parent := tp.Tracer("test").Start(context.Background(), "aggregate")
	_, err := getJSON(ctx, client, "identity", srv.URL)
	parent.End()
	require.NoError(t, err)

	req := last.Load()
	require.NotNil(t, req)
	traceID := parent.SpanContext().TraceID().String()
	assert.Contains(t, req.Header.Get("traceparent"), traceID)

	var clientSpans []sdktrace.ReadOnlySpan
	for _, span := range recorder.Ended() {
		if span.SpanKind() == trace.SpanKindClient {
			clientSpans = append(clientSpans, span)
		}
	}
	require.Len(t, clientSpans, 1)
	assert.Equal(t, parent.SpanContext().SpanID(), clientSpans[0].Parent().SpanID())
}

func TestHTTPClientMarksServerErrorSpan(t *testing.T) {
	client, recorder, _ := newTracedClient(t)
	srv := newUpstream(t, http.StatusBadGateway, `down`, nil)

	_, err := getJSON(context.Background(), client, "rates", srv.URL)
	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
