package arcraiders

import (
	"context"
	"fmt"
	"net/url"

	"github.com/matzehuels/arcraiders/pkg/cache"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
	"github.com/matzehuels/arcraiders/pkg/transport"
)

// pageSize is the page size requested while walking a list endpoint.
const pageSize = 50

// fetchAll returns every record of endpoint matching f, from cache when
// possible. Caller paging fields in f are ignored.
//
// On a miss it walks pages 1..n until the server stops reporting a next
// page and caches the accumulated slice under one key. There is no page
// cap; a server that always reports another page is only stopped by ctx.
func fetchAll[T any](ctx context.Context, c *Client, endpoint string, f *Filter) ([]T, error) {
	base := f.unpaged()
	key := cache.Key(endpoint, BuildParams(&base))

	if v, ok := c.lookup(ctx, endpoint, key); ok {
		if records, ok := v.([]T); ok {
			return records, nil
		}
	}

	w := c.join(ctx, key)
	defer c.leave(key, w)

	ch := c.flight.DoChan(key, func() (any, error) {
		// A run that finished between our lookup and DoChan already stored it.
		if v, ok := c.cache.Get(key); ok {
			if records, ok := v.([]T); ok {
				return records, nil
			}
		}
		records, err := paginate[T](w.ctx, c, endpoint, base)
		if err != nil {
			return nil, err
		}
		c.store(w.ctx, endpoint, key, records, len(records))
		return records, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.logger.Debug("joined in-flight fetch", "key", key)
		}
		return res.Val.([]T), nil
	}
}

// walk is the context shared by every caller waiting on one cache key. It
// outlives any single caller and is cancelled once the last one leaves.
type walk struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

func (c *Client) join(ctx context.Context, key string) *walk {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.walks[key]
	if !ok {
		wctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		w = &walk{ctx: wctx, cancel: cancel}
		c.walks[key] = w
	}
	w.waiters++
	return w
}

func (c *Client) leave(key string, w *walk) {
	c.mu.Lock()
	defer c.mu.Unlock()

	w.waiters--
	if w.waiters > 0 {
		return
	}
	w.cancel()
	if c.walks[key] == w {
		delete(c.walks, key)
		// Callers arriving after this start a fresh run instead of joining
		// the cancelled one.
		c.flight.Forget(key)
	}
}

// paginate walks every page of endpoint. Any page failure aborts the walk
// and discards what was accumulated.
func paginate[T any](ctx context.Context, c *Client, endpoint string, f Filter) ([]T, error) {
	records := make([]T, 0)
	size := pageSize

	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		f.Page, f.PageSize = &page, &size
		resp, err := transport.FetchPage[T](ctx, c.transport, endpoint, BuildParams(&f))
		if err != nil {
			return nil, fmt.Errorf("%s page %d: %w", endpoint, page, err)
		}

		records = append(records, resp.Data...)
		c.logger.Debug("fetched page", "endpoint", endpoint, "page", page, "records", len(resp.Data))

		if !resp.HasNext() {
			return records, nil
		}
	}
}

// fetchOne returns the record at resource/id, from cache when possible.
func fetchOne[T any](ctx context.Context, c *Client, resource, id string) (*T, error) {
	if err := errs.ValidateID(id); err != nil {
		return nil, err
	}

	path := resource + "/" + url.PathEscape(id)
	key := cache.Key(path, nil)
	if v, ok := c.lookup(ctx, resource, key); ok {
		if record, ok := v.(*T); ok {
			return record, nil
		}
	}

	record := new(T)
	if err := c.transport.Fetch(ctx, path, nil, record); err != nil {
		return nil, err
	}
	c.store(ctx, resource, key, record, 1)
	return record, nil
}
