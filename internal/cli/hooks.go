package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports cache and HTTP events as debug log lines, visible with
// --verbose.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCacheHit(_ context.Context, endpoint string) {
	h.logger.Debug("cache hit", "endpoint", endpoint)
}

func (h *logHooks) OnCacheMiss(_ context.Context, endpoint string) {
	h.logger.Debug("cache miss", "endpoint", endpoint)
}

func (h *logHooks) OnCacheSet(_ context.Context, endpoint string, count int) {
	h.logger.Debug("cached", "endpoint", endpoint, "records", count)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("request failed", "method", method, "host", host, "path", path, "err", err)
}
