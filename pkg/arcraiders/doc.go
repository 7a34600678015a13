// Package arcraiders is a typed client for the MetaForge Arc Raiders API.
//
// # Overview
//
// [Client] exposes one method per resource family: items, weapons, armor,
// quests, ARC missions, traders and maps. List methods walk every page of
// the endpoint and return the complete result:
//
//	c := arcraiders.New(transport.NewHTTP(arcraiders.DefaultBaseURL, transport.HTTPOptions{}))
//	weapons, err := c.Weapons(ctx, &arcraiders.Filter{Rarity: []arcraiders.Rarity{"legendary"}})
//
// # Filters
//
// A [Filter] is normalized into query parameters by [BuildParams]. Rarity
// values are canonicalized ("legendary" becomes "Legendary"); multi-valued
// fields are comma-joined; unset fields are omitted.
//
// # Caching
//
// Results are cached in memory for five minutes by default. The cache key is
// the endpoint plus the canonical JSON of the normalized filter, so filters
// that differ only in field order share an entry. List methods cache only
// the fully accumulated result; a failure on any page caches nothing.
// Weapons and armor force a type filter on the items endpoint and therefore
// never share entries with plain item listings.
//
// Concurrent calls that miss on the same key share a single pagination run.
//
// # Transports
//
// The client is handed a [transport.Transport]. Use [transport.NewHTTP] for
// direct access and [transport.NewBrowser] where the API only answers real
// browsers.
package arcraiders
