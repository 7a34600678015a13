package arcraiders

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/matzehuels/arcraiders/pkg/cache"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
)

// fakeTransport serves canned JSON per path and counts calls.
// Responses are keyed by path; list paths may be served page by page.
type fakeTransport struct {
	mu     sync.Mutex
	calls  int
	params []map[string]any
	paths  []string

	// pages maps a path to the JSON bodies for page 1..n.
	pages map[string][]string
	// bodies maps a path to a single JSON body.
	bodies map[string]string
	// failPage makes the given page of any list path fail.
	failPage int
	// failPaths lists paths that answer 500.
	failPaths map[string]bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		pages:     map[string][]string{},
		bodies:    map[string]string{},
		failPaths: map[string]bool{},
	}
}

func (f *fakeTransport) Fetch(ctx context.Context, path string, params map[string]any, v any) error {
	f.mu.Lock()
	f.calls++
	f.paths = append(f.paths, path)
	cp := make(map[string]any, len(params))
	for k, val := range params {
		cp[k] = val
	}
	f.params = append(f.params, cp)
	f.mu.Unlock()

	if f.failPaths[path] {
		return errs.Status(500, path)
	}
	if body, ok := f.bodies[path]; ok {
		return json.Unmarshal([]byte(body), v)
	}
	pages, ok := f.pages[path]
	if !ok {
		return errs.Status(404, path)
	}

	page, _ := params["page"].(int)
	if page == f.failPage {
		return errs.Status(503, path)
	}
	if page < 1 || page > len(pages) {
		return json.Unmarshal([]byte(`{"data":[]}`), v)
	}
	return json.Unmarshal([]byte(pages[page-1]), v)
}

func (f *fakeTransport) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// itemPages builds n pages of two items each; every page but the last
// reports hasNextPage.
func itemPages(prefix string, n int) []string {
	pages := make([]string, n)
	for p := 1; p <= n; p++ {
		var items []string
		for i := 0; i < 2; i++ {
			items = append(items, fmt.Sprintf(`{"id":"%s-%d-%d","name":"Item %d.%d","type":"weapon"}`, prefix, p, i, p, i))
		}
		pages[p-1] = fmt.Sprintf(`{"data":[%s],"pagination":{"page":%d,"limit":50,"total":%d,"totalPages":%d,"hasNextPage":%t,"hasPrevPage":%t}}`,
			strings.Join(items, ","), p, 2*n, n, p < n, p > 1)
	}
	return pages
}

func newTestClient(ft *fakeTransport, opts ...Option) *Client {
	return New(ft, append([]Option{WithCache(cache.NewMemory(DefaultCacheTTL))}, opts...)...)
}
