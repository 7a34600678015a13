package transport

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	errs "github.com/matzehuels/arcraiders/pkg/errors"
	"github.com/matzehuels/arcraiders/pkg/observability"
)

const (
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	defaultSettle    = time.Second
	navigateTimeout  = 30 * time.Second
)

// BrowserOptions configures a [Browser] transport.
type BrowserOptions struct {
	// ShowWindow runs Chrome with a visible window instead of headless.
	ShowWindow bool

	// ExecPath points at a specific Chrome/Chromium binary.
	// Empty lets chromedp locate one.
	ExecPath string

	// UserAgent overrides the desktop Chrome user agent.
	UserAgent string

	// Timeout bounds each navigation. Zero means 30s.
	Timeout time.Duration

	// Settle is how long to wait after the page loads before reading it.
	// Zero means one second.
	Settle time.Duration
}

// Browser is a [Transport] that loads API URLs in a headless Chrome tab and
// reads the JSON the browser renders.
//
// The browser is launched lazily on the first Fetch and reused until
// [Browser.Close]. Requests share one tab and are serialized.
type Browser struct {
	baseURL string
	opts    BrowserOptions

	mu          sync.Mutex
	tab         context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
}

// NewBrowser creates a browser transport rooted at baseURL.
func NewBrowser(baseURL string, opts BrowserOptions) *Browser {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = navigateTimeout
	}
	if opts.Settle <= 0 {
		opts.Settle = defaultSettle
	}
	return &Browser{baseURL: baseURL, opts: opts}
}

// Fetch navigates to the resolved URL and decodes the page's JSON into v.
func (b *Browser) Fetch(ctx context.Context, path string, params map[string]any, v any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.start(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(b.tab, b.opts.Timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	u := ResolveURL(b.baseURL, path, params)
	host, reqPath := splitURL(u)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, "GET", host, reqPath)
	start := time.Now()

	resp, err := chromedp.RunResponse(runCtx, chromedp.Navigate(u))
	if err != nil {
		hooks.OnError(ctx, "GET", host, reqPath, err)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errs.Wrap(errs.ErrCodeTransport, err, "navigate %s", u)
	}
	if resp == nil {
		return errs.Status(0, u)
	}
	status := int(resp.Status)
	hooks.OnResponse(ctx, "GET", host, reqPath, status, time.Since(start))
	if status < 200 || status >= 300 {
		return errs.Status(status, u)
	}

	var content string
	if err := chromedp.Run(runCtx,
		chromedp.Sleep(b.opts.Settle),
		chromedp.OuterHTML("html", &content, chromedp.ByQuery),
	); err != nil {
		return errs.Wrap(errs.ErrCodeTransport, err, "read page %s", u)
	}

	data, ok := ExtractJSON(content)
	if !ok {
		var text string
		if err := chromedp.Run(runCtx, chromedp.Text("body", &text, chromedp.ByQuery)); err == nil {
			text = strings.TrimSpace(text)
			if text != "" && json.Valid([]byte(text)) {
				data, ok = []byte(text), true
			}
		}
	}
	if !ok {
		return errs.New(errs.ErrCodeParse, "could not parse response from %s as JSON", u)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errs.Wrap(errs.ErrCodeParse, err, "decode response from %s", u)
	}
	return nil
}

// start launches Chrome if it is not running. Callers hold b.mu.
func (b *Browser) start() error {
	if b.tab != nil {
		return nil
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", !b.opts.ShowWindow),
		chromedp.UserAgent(b.opts.UserAgent),
		chromedp.WindowSize(1920, 1080),
	)
	if b.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(b.opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	tab, tabCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(tab); err != nil {
		tabCancel()
		allocCancel()
		return errs.Wrap(errs.ErrCodeTransport, err, "launch browser")
	}

	b.tab, b.tabCancel, b.allocCancel = tab, tabCancel, allocCancel
	return nil
}

// Close shuts the browser down. It is safe to call more than once and on a
// browser that was never started.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tab == nil {
		return nil
	}
	b.tabCancel()
	b.allocCancel()
	b.tab, b.tabCancel, b.allocCancel = nil, nil, nil
	return nil
}

func splitURL(raw string) (host, path string) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", raw
	}
	return u.Host, u.Path
}

// Ensure Browser implements Transport.
var _ Transport = (*Browser)(nil)
