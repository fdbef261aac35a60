package fitness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/five82/liftlog/internal/logging"
)

// API lists every backend operation. It is implemented by *Client and can be
// replaced by a test double.
type API interface {
	GetCalendarRange(ctx context.Context, start, end string) ([]CalendarEntry, error)
	GetCalendarEntry(ctx context.Context, id string) (CalendarEntry, error)
	CreateCalendarEntry(ctx context.Context, entry CalendarEntry) (CalendarEntry, error)
	UpdateCalendarEntry(ctx context.Context, id string, entry CalendarEntry) error
	DeleteCalendarEntry(ctx context.Context, id string) error

	GetExercises(ctx context.Context) ([]Exercise, error)
	CreateExercise(ctx context.Context, exercise Exercise) (Exercise, error)
	UpdateExercise(ctx context.Context, id string, exercise Exercise) error
	DeleteExercise(ctx context.Context, id string) error

	GetTemplates(ctx context.Context) ([]Template, error)
	GetTemplate(ctx context.Context, id string) (Template, error)
	CreateTemplate(ctx context.Context, template Template) (Template, error)
	UpdateTemplate(ctx context.Context, id string, template Template) error
	DeleteTemplate(ctx context.Context, id string) error

	GetProgress(ctx context.Context, exerciseID, start, end string) (ProgressReport, error)

	StartSession(ctx context.Context, userID, calendarEntryID string) (Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
	RecordSet(ctx context.Context, sessionID, exerciseID string, set SetRecord) error
	GetSessionsByUser(ctx context.Context, userID string) ([]Session, error)
	GetSessionsByDateRange(ctx context.Context, userID, startDate, endDate string) ([]Session, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Observer receives one RequestInfo per completed request.
type Observer interface {
	ObserveRequest(info RequestInfo)
}

// RequestInfo describes a finished request. Route is the templated path
// (for example /calendar/{id}); StatusCode is zero when the transport failed.
type RequestInfo struct {
	RequestID  string
	Method     string
	Route      string
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Client talks to the fitness backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	headers   http.Header
	logger    logging.Logger
	observer  Observer
}

// Option customises a Client.
type Option func(*Client)

const (
	defaultBaseURL   = "127.0.0.1:8080"
	defaultUserAgent = "liftlog/0.1"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 4 << 10
)

// WithHTTPClient uses a copy of hc for requests. Later options such as
// WithTimeout change the copy, never hc itself.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			cp := *hc
			c.http = &cp
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHeader adds a default header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if strings.TrimSpace(key) != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithHeaders adds several default headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for k, v := range headers {
			WithHeader(k, v)(c)
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a logger for per-request debug output.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver attaches a request observer, typically a metrics.Manager.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewClient builds a Client for baseURL, which may be a bare host:port or a
// full URL. A path on the base URL is kept as a prefix for every request.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		headers:   http.Header{},
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// call is one outbound request.
type call struct {
	method string
	route  string
	rel    *url.URL
	body   any
	dest   any
}

func (c *Client) do(ctx context.Context, cl call) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}

	var body io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	reqURL := c.resolve(cl.rel)
	req, err := http.NewRequestWithContext(ctx, cl.method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for k, values := range c.headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	info := RequestInfo{RequestID: requestID, Method: cl.method, Route: cl.route}
	start := time.Now()
	resp, err := c.http.Do(req)
	info.Duration = time.Since(start)
	if err != nil {
		info.Err = err
		c.finish(ctx, info)
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	info.StatusCode = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		statusErr := &StatusError{
			Method:     cl.method,
			Path:       cl.rel.String(),
			StatusCode: resp.StatusCode,
			Body:       snippet,
		}
		info.Err = statusErr
		c.finish(ctx, info)
		return statusErr
	}
	c.finish(ctx, info)

	if cl.dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	// 201 and 204 replies may carry no body; dest keeps its zero value.
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(cl.dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) finish(ctx context.Context, info RequestInfo) {
	fields := []logging.Field{
		logging.String("request_id", info.RequestID),
		logging.String("method", info.Method),
		logging.String("route", info.Route),
		logging.Int("status", info.StatusCode),
		logging.Duration("duration", info.Duration),
	}
	if info.Err != nil {
		c.logger.Warn(ctx, "api request failed", append(fields, logging.Err(info.Err))...)
	} else {
		c.logger.Debug(ctx, "api request", fields...)
	}
	if c.observer != nil {
		c.observer.ObserveRequest(info)
	}
}

// resolve joins rel onto the base URL without dot-segment resolution, so
// escaped identifiers such as ".." stay literal.
func (c *Client) resolve(rel *url.URL) *url.URL {
	u := *c.baseURL
	prefix := strings.TrimSuffix(c.baseURL.Path, "/")
	rawPrefix := strings.TrimSuffix(c.baseURL.EscapedPath(), "/")
	u.Path = prefix + rel.Path
	u.RawPath = rawPrefix + rel.EscapedPath()
	u.RawQuery = rel.RawQuery
	u.Fragment = ""
	return &u
}

// endpoint builds a path from segments, escaping each one so identifiers
// containing reserved characters stay within their segment.
func endpoint(segments ...string) *url.URL {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return &url.URL{
		Path:    "/" + strings.Join(segments, "/"),
		RawPath: "/" + strings.Join(escaped, "/"),
	}
}

func withQuery(u *url.URL, values url.Values) *url.URL {
	u.RawQuery = values.Encode()
	return u
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
