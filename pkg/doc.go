// Package pkg provides the libraries behind the arcraiders client and CLI.
//
// # Overview
//
// arcraiders is a typed client for the MetaForge Arc Raiders API: items,
// weapons, armor, quests, ARCs, traders and map data. List endpoints are
// walked page by page and the accumulated result is cached in memory. The
// pkg directory is organized into these areas:
//
//  1. [arcraiders] - Domain types, filters and the API client
//  2. [transport] - How requests reach the API (HTTP or headless Chrome)
//  3. [cache] - TTL cache and cache key derivation
//  4. [analytics] - Descriptive statistics over fetched records
//  5. [export] - JSON and CSV output
//
// # Architecture
//
// The typical data flow:
//
//	arcraiders.Client (filter → params → cache key)
//	         ↓
//	    [cache] lookup (hit returns immediately)
//	         ↓
//	    [transport] page 1..n until the API reports no next page
//	         ↓
//	    cached []T → [analytics] / [export]
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/arcraiders/pkg/arcraiders"
//	    "github.com/matzehuels/arcraiders/pkg/transport"
//	)
//
//	t := transport.NewHTTP(arcraiders.DefaultBaseURL, transport.HTTPOptions{})
//	client := arcraiders.New(t)
//	defer client.Close()
//
//	weapons, err := client.Weapons(ctx, &arcraiders.Filter{
//	    Rarity: []arcraiders.Rarity{"legendary"},
//	})
//
// # Main Packages
//
// [arcraiders] - Item, Quest, ArcMission, Trader and MapData types, the
// [arcraiders.Filter] query builder and the [arcraiders.Client]. Weapons and
// armor are items distinguished by their type tag.
//
// [transport] - The [transport.Transport] interface with an HTTP
// implementation (bearer auth, request IDs) and a headless Chrome
// implementation for when plain HTTP is blocked.
//
// [cache] - In-memory TTL store with lazy expiry, a no-op store, and
// [cache.Key], which derives order-independent keys from request params.
//
// [analytics] - Count, average, min, max and sum over weapon and armor
// attributes; rarity distribution; best weapon by a chosen attribute.
//
// [export] - Indented JSON and flattened CSV, to writers or files.
//
// ## Infrastructure
//
// [errors] - Structured error codes (TRANSPORT_ERROR, NOT_FOUND, ...) and
// input validation.
//
// [observability] - Hooks for cache and HTTP events.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/arcraiders/...      # Specific package
//	go test -run Example ./pkg/...    # Examples only
//
// [arcraiders]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/arcraiders
// [transport]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/transport
// [cache]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/cache
// [analytics]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/analytics
// [export]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/export
// [errors]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/arcraiders/pkg/buildinfo
package pkg
