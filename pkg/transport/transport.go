package transport

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Transport fetches a single API path and decodes the JSON response into v.
//
// Implementations must be safe for concurrent use. Each call issues exactly
// one request; retries are never attempted.
type Transport interface {
	Fetch(ctx context.Context, path string, params map[string]any, v any) error
}

// Pagination is the paging block the API attaches to list responses.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Meta is the optional summary block some list responses carry.
type Meta struct {
	Total    *int  `json:"total,omitempty"`
	Page     *int  `json:"page,omitempty"`
	PageSize *int  `json:"pageSize,omitempty"`
	HasMore  *bool `json:"hasMore,omitempty"`
}

// Page is one page of a list endpoint.
// Pagination is nil when the server omitted it, which callers treat as the
// last page.
type Page[T any] struct {
	Data       []T         `json:"data"`
	Meta       *Meta       `json:"meta,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// HasNext reports whether the server signalled another page.
func (p *Page[T]) HasNext() bool {
	return p.Pagination != nil && p.Pagination.HasNextPage
}

// FetchPage fetches one page of a list endpoint through t.
func FetchPage[T any](ctx context.Context, t Transport, path string, params map[string]any) (*Page[T], error) {
	var page Page[T]
	if err := t.Fetch(ctx, path, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ResolveURL joins path onto baseURL and appends params as a query string.
// Absolute http(s) paths ignore baseURL. Query keys are emitted in sorted
// order.
func ResolveURL(baseURL, path string, params map[string]any) string {
	var u string
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		u = path
	} else {
		u = strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
	}
	if len(params) == 0 {
		return u
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, fmt.Sprint(v))
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + q.Encode()
}
