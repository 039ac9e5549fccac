package powerdns

import (
	"context"
)

// Cache controls the packet and query caches of a server.
type Cache struct {
	t Transport
}

type flushParams struct {
	Domain string `url:"domain"`
}

// Flush removes domain and everything below it from the caches.
func (c *Cache) Flush(ctx context.Context, serverID, domain string) (*CacheFlushResult, error) {
	req, err := flushCache.at(serverID).with(flushParams{Domain: domain})
	if err != nil {
		return nil, err
	}

	return fetch[CacheFlushResult](ctx, c.t, req, nil)
}
