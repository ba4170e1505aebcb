// Package api is the HTTP client for the bot backend's dashboard endpoints.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"botdash/internal/jsonutil"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Endpoint paths, relative to the backend base URL.
const (
	PathStats        = "/api/stats"
	PathUsers        = "/api/users"
	PathReferrals    = "/api/referrals"
	PathSetWebhook   = "/api/set-webhook"
	PathTestUsersbox = "/api/test-usersbox"
)

// Backend is the set of operations the dashboard consumes.
type Backend interface {
	Stats(ctx context.Context) (*StatsSnapshot, error)
	Users(ctx context.Context) (*UsersResponse, error)
	Referrals(ctx context.Context) (*ReferralsResponse, error)
	SetWebhook(ctx context.Context) (*WebhookResult, error)
	TestUsersbox(ctx context.Context) (*UsersboxResult, error)
}

var _ Backend = (*Client)(nil)

// ErrEmptyResponse is reported when a Backend call returns neither a value
// nor an error.
var ErrEmptyResponse = errors.New("empty response")

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Detail     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Client talks to the backend over HTTP/JSON. It sends no request bodies and
// no credentials, and it never times out or retries on its own.
type Client struct {
	http   *resty.Client
	tracer trace.Tracer
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient *http.Client
	tracer     trace.Tracer
	logger     *zap.SugaredLogger
	userAgent  string
}

// WithHTTPClient sets the underlying net/http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(o *clientOptions) { o.tracer = t }
}

// WithLogger routes resty's internal warnings to l instead of stderr.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	o := clientOptions{userAgent: "botdash"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer("botdash/api")
	}
	if o.logger == nil {
		o.logger = zap.S()
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", o.userAgent).
		SetLogger(o.logger)

	return &Client{http: rc, tracer: o.tracer}
}

// Stats fetches aggregate usage statistics.
func (c *Client) Stats(ctx context.Context) (*StatsSnapshot, error) {
	return do[StatsSnapshot](ctx, c, http.MethodGet, PathStats)
}

// Users fetches the user roster.
func (c *Client) Users(ctx context.Context) (*UsersResponse, error) {
	return do[UsersResponse](ctx, c, http.MethodGet, PathUsers)
}

// Referrals fetches referral activity.
func (c *Client) Referrals(ctx context.Context) (*ReferralsResponse, error) {
	return do[ReferralsResponse](ctx, c, http.MethodGet, PathReferrals)
}

// SetWebhook asks the backend to register its inbound webhook with the
// messaging provider.
func (c *Client) SetWebhook(ctx context.Context) (*WebhookResult, error) {
	return do[WebhookResult](ctx, c, http.MethodPost, PathSetWebhook)
}

// TestUsersbox asks the backend to check the lookup service and report the
// account balance.
func (c *Client) TestUsersbox(ctx context.Context) (*UsersboxResult, error) {
	return do[UsersboxResult](ctx, c, http.MethodPost, PathTestUsersbox)
}

func do[T any](ctx context.Context, c *Client, method, path string) (*T, error) {
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx, span := c.tracer.Start(ctx, "botdash.api "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
			attribute.String("botdash.request_id", requestID),
		),
	)
	defer span.End()

	resp, err := c.http.R().SetContext(ctx).Execute(method, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if resp.IsError() {
		serr := &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Detail:     errorDetail(resp.Body()),
		}
		span.SetStatus(codes.Error, serr.Error())
		return nil, serr
	}

	var out T
	if err := jsonutil.UnmarshalWithContext(resp.Body(), &out, "decode "+path); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return &out, nil
}

// errorDetail pulls a human-readable reason out of an error body. The backend
// uses {"detail": ...} for framework errors and {"message": ...} for its own.
func errorDetail(body []byte) string {
	var m map[string]interface{}
	if err := json.Unmarshal(body, &m); err != nil {
		return strings.TrimSpace(string(body))
	}
	for _, k := range []string{"detail", "message", "error"} {
		if v, ok := m[k]; ok {
			return jsonutil.ToString(v)
		}
	}
	return ""
}

type requestIDKey struct{}

// WithRequestID attaches a correlation id that is recorded on the request span.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the correlation id set by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
