package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	errs "github.com/matzehuels/arcraiders/pkg/errors"
	"github.com/matzehuels/arcraiders/pkg/observability"
)

// DefaultTimeout bounds each individual request.
const DefaultTimeout = 10 * time.Second

// HTTPOptions configures an [HTTP] transport.
type HTTPOptions struct {
	// APIKey is sent as a bearer token when non-empty.
	APIKey string

	// Timeout bounds each request. Zero means [DefaultTimeout].
	Timeout time.Duration

	// Headers are added to every request and override the defaults.
	Headers map[string]string

	// Client replaces the underlying HTTP client. Its timeout is left alone.
	Client *http.Client
}

// HTTP is a [Transport] that issues direct HTTP GET requests.
// It is safe for concurrent use by multiple goroutines.
type HTTP struct {
	http    *http.Client
	baseURL string
	headers map[string]string
}

// NewHTTP creates an HTTP transport rooted at baseURL.
func NewHTTP(baseURL string, opts HTTPOptions) *HTTP {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	if opts.APIKey != "" {
		headers["Authorization"] = "Bearer " + opts.APIKey
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &HTTP{
		http:    client,
		baseURL: baseURL,
		headers: headers,
	}
}

// BaseURL returns the URL relative paths are resolved against.
func (t *HTTP) BaseURL() string { return t.baseURL }

// Fetch performs a GET request and JSON-decodes the response into v.
func (t *HTTP) Fetch(ctx context.Context, path string, params map[string]any, v any) error {
	u := ResolveURL(t.baseURL, path, params)
	body, err := t.doRequest(ctx, u)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return errs.Wrap(errs.ErrCodeParse, err, "decode response from %s", u)
	}
	return nil
}

func (t *HTTP) doRequest(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "build request for %s", u)
	}
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := t.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errs.Wrap(errs.ErrCodeTransport, err, "GET %s", u)
	}
	hooks.OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, errs.Status(resp.StatusCode, u)
	}
	return resp.Body, nil
}

// Ensure HTTP implements Transport.
var _ Transport = (*HTTP)(nil)
