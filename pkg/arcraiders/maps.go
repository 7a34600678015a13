package arcraiders

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MapData fetches one map by name. Display names are accepted
// ("Buried City"); see [NormalizeMapName]. Map data is not cached.
func (c *Client) MapData(ctx context.Context, name string) (*MapData, error) {
	var m MapData
	params := Params{"map": NormalizeMapName(name)}
	if err := c.transport.Fetch(ctx, c.mapsURL, params, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Maps fetches every map in [DefaultMaps] concurrently. Maps whose request
// fails are left out; the rest keep the order of DefaultMaps. The only
// error returned is ctx's.
func (c *Client) Maps(ctx context.Context) ([]MapData, error) {
	results := make([]*MapData, len(DefaultMaps))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range DefaultMaps {
		g.Go(func() error {
			m, err := c.MapData(gctx, name)
			if err != nil {
				// A failed map is dropped; only cancellation fails the group.
				c.logger.Debug("skipping map", "map", name, "err", err)
				return gctx.Err()
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maps := make([]MapData, 0, len(results))
	for _, m := range results {
		if m != nil {
			maps = append(maps, *m)
		}
	}
	return maps, nil
}
