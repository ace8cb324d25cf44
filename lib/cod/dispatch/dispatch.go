// Package dispatch executes endpoint requests against the right
// backend and classifies what comes back. One attempt per call: no
// retries, no caching, no internal timeout. A caller that stops
// waiting abandons the in-flight request, it does not cancel it.
package dispatch

import (
	"context"
	"encoding/json"
	"net/http/cookiejar"

	"codstats-backend/lib/cod/endpoints"
	"codstats-backend/lib/cod/errs"
	"codstats-backend/lib/cod/session"
	"codstats-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("cod/dispatch")

const (
	defaultLegacyBaseURL    = "https://my.callofduty.com/api/papi-client"
	defaultTelescopeBaseURL = "https://telescope.callofduty.com/api/ts-api"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	legacy    *resty.Client
	telescope *resty.Client
}

type Options struct {
	// base URL overrides, used by tests
	LegacyBaseURL    string
	TelescopeBaseURL string
}

func New(opts Options) (*Client, error) {
	legacyBase := opts.LegacyBaseURL
	if legacyBase == "" {
		legacyBase = defaultLegacyBaseURL
	}
	telescopeBase := opts.TelescopeBaseURL
	if telescopeBase == "" {
		telescopeBase = defaultTelescopeBaseURL
	}

	legacy := resty.New()
	legacy.SetBaseURL(legacyBase)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	legacy.SetCookieJar(jar)
	legacy.SetHeader("user-agent", browserUserAgent)
	legacy.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(legacy.GetClient().Transport)
	telemetry.InstrumentResty(legacy, "cod/dispatch/legacy")

	telescope := resty.New()
	telescope.SetBaseURL(telescopeBase)
	telescope.SetHeader("user-agent", browserUserAgent)
	telemetry.InstrumentResty(telescope, "cod/dispatch/telescope")

	return &Client{legacy: legacy, telescope: telescope}, nil
}

// Execute runs one endpoint request with the session's credentials
// attached. The relevant backend must already be authenticated;
// otherwise this fails before any network I/O happens.
func (c *Client) Execute(ctx context.Context, sess *session.Session, req endpoints.Request) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("backend", req.Backend.String()),
		attribute.String("path", req.Path),
	)

	var r *resty.Request
	switch req.Backend {
	case endpoints.Telescope:
		if !sess.TelescopeAuthenticated() {
			span.SetStatus(codes.Error, "not logged in")
			return nil, errs.AuthenticationError{Backend: "telescope", Reason: "not logged in"}
		}
		r = c.telescope.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+sess.BearerToken())
	default:
		if !sess.LegacyAuthenticated() {
			span.SetStatus(codes.Error, "not logged in")
			return nil, errs.AuthenticationError{Backend: "legacy", Reason: "not logged in"}
		}
		r = c.legacy.R().
			SetContext(ctx).
			SetHeaders(sess.LegacyHeaders())
	}

	var res *resty.Response
	var err error
	if req.Method == "POST" {
		res, err = r.SetBody(req.Body).Post(req.Path)
	} else {
		res, err = r.Get(req.Path)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, errs.TransportError{Cause: err}
	}

	if res.StatusCode() >= 500 {
		span.SetStatus(codes.Error, "upstream failure")
		return nil, errs.TransportError{StatusCode: res.StatusCode()}
	}

	body := res.Body()
	if !gjson.ValidBytes(body) {
		// the upstream answers stale tokens with an html login
		// page on a 200
		span.SetStatus(codes.Error, "response body is not json")
		return nil, errs.ParseError{}
	}
	if gjson.GetBytes(body, "status").String() == "error" {
		span.SetStatus(codes.Error, "upstream error payload")
		return nil, errs.UpstreamError{Payload: json.RawMessage(body)}
	}

	return json.RawMessage(body), nil
}
