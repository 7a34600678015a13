// Package transport moves requests between the arcraiders client and the
// MetaForge API.
//
// # Overview
//
// The client never talks to the network directly. It is handed a [Transport],
// a single capability that fetches one path with query parameters and decodes
// the JSON answer. Two implementations are provided:
//
//   - [HTTP]: direct requests with net/http, bearer token and timeout
//   - [Browser]: drives a headless Chrome through chromedp, for environments
//     where the API rejects non-browser clients
//
// Both are interchangeable; the client does not know which one it holds.
//
// # Paths
//
// Paths are resolved against the transport's base URL. A path that is
// already an absolute http(s) URL is used as-is, which is how the client
// reaches endpoints that live outside the game's API root (map data).
//
// # Errors
//
// Failures are reported with the codes from the errors package:
//   - TRANSPORT_ERROR for network failures and non-2xx answers, with the
//     status available through errors.StatusCode
//   - NOT_FOUND for 404 answers
//   - PARSE_ERROR when no JSON could be decoded
//
// Nothing is retried.
package transport
