package incident

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"incidentdesk/internal/debug"
	appErrors "incidentdesk/internal/errors"
)

const (
	// DefaultBaseURL matches the backend's default listen address.
	DefaultBaseURL = "http://localhost:8080"
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 10 * time.Second

	incidentsPath = "/incidents"
	healthPath    = "/health"
)

type httpClient struct {
	rest    *resty.Client
	baseURL string
	prefix  string
	timeout time.Duration
}

type httpOptions struct {
	baseURL    string
	prefix     string
	timeout    time.Duration
	httpClient *http.Client
	userAgent  string
}

// Option configures the HTTP client implementation.
type Option func(*httpOptions)

// WithBaseURL overrides the scheme and host of the API.
func WithBaseURL(base string) Option {
	return func(o *httpOptions) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			o.baseURL = trimmed
		}
	}
}

// WithPrefix mounts the incidents collection below prefix (e.g. "/api/v1").
// The health probe is never prefixed.
func WithPrefix(prefix string) Option {
	return func(o *httpOptions) {
		prefix = strings.Trim(strings.TrimSpace(prefix), "/")
		if prefix == "" {
			o.prefix = ""
			return
		}
		o.prefix = "/" + prefix
	}
}

// WithTimeout bounds every request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(o *httpOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithHTTPClient supplies the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *httpOptions) {
		if hc != nil {
			o.httpClient = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(o *httpOptions) {
		o.userAgent = strings.TrimSpace(ua)
	}
}

// NewHTTPClient constructs a Client backed by go-resty.
func NewHTTPClient(opts ...Option) Client {
	o := httpOptions{baseURL: DefaultBaseURL, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(o.baseURL).
		SetTimeout(o.timeout).
		SetHeader("Accept", "application/json").
		SetLogger(debug.L().Sugar())
	if o.userAgent != "" {
		rc.SetHeader("User-Agent", o.userAgent)
	}

	return &httpClient{rest: rc, baseURL: o.baseURL, prefix: o.prefix, timeout: o.timeout}
}

func (c *httpClient) List(ctx context.Context) ([]Incident, error) {
	body, err := c.do(ctx, http.MethodGet, c.prefix+incidentsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	var incidents []Incident
	if err := decode(body, &incidents); err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	if incidents == nil {
		incidents = []Incident{}
	}
	debug.Logf("listed %d incidents from %s", len(incidents), c.baseURL+c.prefix+incidentsPath)
	return incidents, nil
}

func (c *httpClient) Create(ctx context.Context, req CreateRequest) (Incident, error) {
	req = req.Normalize()
	if err := ValidateStruct(req); err != nil {
		return Incident{}, fmt.Errorf("create incident: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, c.prefix+incidentsPath, req)
	if err != nil {
		return Incident{}, fmt.Errorf("create incident: %w", err)
	}
	var created Incident
	if err := decode(body, &created); err != nil {
		return Incident{}, fmt.Errorf("create incident: %w", err)
	}
	debug.Logf("created incident %s", created.ID)
	return created, nil
}

func (c *httpClient) Health(ctx context.Context) (Health, error) {
	body, err := c.do(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return Health{}, fmt.Errorf("health check: %w", err)
	}
	var h Health
	if err := decode(body, &h); err != nil {
		return Health{}, fmt.Errorf("health check: %w", err)
	}
	return h, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	r := c.rest.R().SetContext(ctx)
	if payload != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(payload)
	}
	resp, err := r.Execute(method, path)
	url := c.baseURL + path
	if err != nil {
		return nil, appErrors.Newf(appErrors.CodeRequestFailed, err, "%s %s: %v", method, url, err)
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, appErrors.Unexpected(method, url, resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > 200 {
			snippet = snippet[:200] + "..."
		}
		return appErrors.Newf(appErrors.CodeDecodeFailed, err, "decode response: %v (body: %s)", err, snippet)
	}
	return nil
}
