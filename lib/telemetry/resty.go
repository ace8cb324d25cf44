package telemetry

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentResty attaches a span to every request a resty client
// makes. Response bodies are not captured; they can carry session
// cookies and auth headers that must not land in a trace store.
func InstrumentResty(client *resty.Client, tracerName string) {
	tracer := otel.Tracer(tracerName)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), req.Method)
		slog.DebugContext(ctx, "start request", "method", req.Method, "url", req.URL)
		req.SetContext(ctx)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		span := trace.SpanFromContext(res.Request.Context())
		defer span.End()

		// request attributes are set here since RawRequest is nil
		// before the request actually runs
		span.SetName(fmt.Sprintf("http %s", res.Request.Method))
		span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)
		span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)
		span.SetAttributes(headerNameAttrs(res.Request.Header)...)
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		span := trace.SpanFromContext(req.Context())
		defer span.End()

		span.SetName(fmt.Sprintf("http %s", req.Method))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if req.RawRequest != nil {
			span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
		}
	})
}

func headerNameAttrs(headers http.Header) []attribute.KeyValue {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	return []attribute.KeyValue{
		attribute.StringSlice("request/header_names", names),
	}
}
