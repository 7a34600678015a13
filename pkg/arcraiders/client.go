package arcraiders

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/arcraiders/pkg/cache"
	errs "github.com/matzehuels/arcraiders/pkg/errors"
	"github.com/matzehuels/arcraiders/pkg/observability"
	"github.com/matzehuels/arcraiders/pkg/transport"
)

const (
	// DefaultBaseURL is the root of the Arc Raiders API.
	DefaultBaseURL = "https://metaforge.app/api/arc-raiders"

	// DefaultMapsURL is the map data endpoint, which lives outside the
	// game's API root.
	DefaultMapsURL = "https://metaforge.app/api/game-map-data"

	// DefaultCacheTTL is how long results are cached.
	DefaultCacheTTL = 5 * time.Minute
)

// Resource endpoints.
const (
	endpointItems   = "/items"
	endpointQuests  = "/quests"
	endpointArcs    = "/arcs"
	endpointTraders = "/traders"
)

// DefaultMaps lists the maps fetched by [Client.Maps].
var DefaultMaps = []string{"dam", "spaceport", "buried-city", "blue-gate"}

// Client is the Arc Raiders API client.
// It is safe for concurrent use by multiple goroutines.
type Client struct {
	transport transport.Transport
	cache     cache.Store
	logger    *log.Logger
	mapsURL   string
	flight    singleflight.Group

	mu    sync.Mutex
	walks map[string]*walk
}

type options struct {
	ttl     time.Duration
	store   cache.Store
	noCache bool
	logger  *log.Logger
	mapsURL string
}

// Option configures a [Client].
type Option func(*options)

// WithCacheTTL sets the lifetime of cached results.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) { o.ttl = ttl }
}

// WithCache replaces the default in-memory store.
func WithCache(store cache.Store) Option {
	return func(o *options) { o.store = store }
}

// WithCacheDisabled turns caching off; every call reaches the transport.
func WithCacheDisabled() Option {
	return func(o *options) { o.noCache = true }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMapsURL overrides [DefaultMapsURL].
func WithMapsURL(u string) Option {
	return func(o *options) { o.mapsURL = u }
}

// New creates a Client that sends requests through t.
func New(t transport.Transport, opts ...Option) *Client {
	o := options{ttl: DefaultCacheTTL, mapsURL: DefaultMapsURL}
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	switch {
	case o.noCache:
		store = cache.NewNull()
	case store == nil:
		store = cache.NewMemory(o.ttl)
	}

	logger := o.logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		transport: t,
		cache:     store,
		logger:    logger,
		mapsURL:   o.mapsURL,
		walks:     make(map[string]*walk),
	}
}

// ClearCache drops every cached result.
func (c *Client) ClearCache() {
	c.cache.Clear()
}

// Close releases the transport if it holds resources (a browser process).
func (c *Client) Close() error {
	if closer, ok := c.transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Items returns every item matching f.
func (c *Client) Items(ctx context.Context, f *Filter) ([]Item, error) {
	return fetchAll[Item](ctx, c, endpointItems, f)
}

// Weapons returns every weapon matching f. Any type in f is replaced.
func (c *Client) Weapons(ctx context.Context, f *Filter) ([]Item, error) {
	return fetchAll[Item](ctx, c, endpointItems, f.withType(TypeWeapon))
}

// Armor returns every armor piece matching f. Any type in f is replaced.
func (c *Client) Armor(ctx context.Context, f *Filter) ([]Item, error) {
	return fetchAll[Item](ctx, c, endpointItems, f.withType(TypeArmor))
}

// Quests returns every quest matching f.
func (c *Client) Quests(ctx context.Context, f *Filter) ([]Quest, error) {
	return fetchAll[Quest](ctx, c, endpointQuests, f)
}

// Arcs returns every ARC mission matching f.
func (c *Client) Arcs(ctx context.Context, f *Filter) ([]ArcMission, error) {
	return fetchAll[ArcMission](ctx, c, endpointArcs, f)
}

// Item returns a single item by ID.
func (c *Client) Item(ctx context.Context, id string) (*Item, error) {
	return fetchOne[Item](ctx, c, endpointItems, id)
}

// Weapon returns a single item by ID and checks that it is a weapon.
func (c *Client) Weapon(ctx context.Context, id string) (*Item, error) {
	return c.typedItem(ctx, id, TypeWeapon)
}

// ArmorPiece returns a single item by ID and checks that it is armor.
func (c *Client) ArmorPiece(ctx context.Context, id string) (*Item, error) {
	return c.typedItem(ctx, id, TypeArmor)
}

func (c *Client) typedItem(ctx context.Context, id string, want ItemType) (*Item, error) {
	item, err := c.Item(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Type != want {
		return nil, errs.New(errs.ErrCodeNotFound, "item %s is %q, not %q", id, item.Type, want)
	}
	return item, nil
}

// Quest returns a single quest by ID.
func (c *Client) Quest(ctx context.Context, id string) (*Quest, error) {
	return fetchOne[Quest](ctx, c, endpointQuests, id)
}

// Arc returns a single ARC mission by ID.
func (c *Client) Arc(ctx context.Context, id string) (*ArcMission, error) {
	return fetchOne[ArcMission](ctx, c, endpointArcs, id)
}

// Trader returns a single trader by ID.
func (c *Client) Trader(ctx context.Context, id string) (*Trader, error) {
	return fetchOne[Trader](ctx, c, endpointTraders, id)
}

type tradersResponse struct {
	Success bool                    `json:"success"`
	Data    map[string][]TraderItem `json:"data"`
}

// Traders returns every trader's inventory keyed by trader name.
func (c *Client) Traders(ctx context.Context) (map[string][]TraderItem, error) {
	key := cache.Key(endpointTraders, nil)
	if v, ok := c.lookup(ctx, endpointTraders, key); ok {
		if traders, ok := v.(map[string][]TraderItem); ok {
			return traders, nil
		}
	}

	var resp tradersResponse
	if err := c.transport.Fetch(ctx, endpointTraders, nil, &resp); err != nil {
		return nil, err
	}
	data := resp.Data
	if data == nil {
		data = map[string][]TraderItem{}
	}

	c.store(ctx, endpointTraders, key, data, len(data))
	return data, nil
}

// Search returns items matching query, combined with the rest of f.
// Only the Items group of the result is populated.
func (c *Client) Search(ctx context.Context, query string, f *Filter) (*SearchResult, error) {
	sf := f.unpaged()
	sf.Search = query
	items, err := c.Items(ctx, &sf)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Items: items}, nil
}

// lookup consults the cache and reports the outcome to the cache hooks.
func (c *Client) lookup(ctx context.Context, endpoint, key string) (any, bool) {
	v, ok := c.cache.Get(key)
	if ok {
		observability.Cache().OnCacheHit(ctx, endpoint)
		c.logger.Debug("cache hit", "key", key)
	} else {
		observability.Cache().OnCacheMiss(ctx, endpoint)
	}
	return v, ok
}

func (c *Client) store(ctx context.Context, endpoint, key string, v any, count int) {
	c.cache.Set(key, v)
	observability.Cache().OnCacheSet(ctx, endpoint, count)
}
