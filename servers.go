package powerdns

import (
	"context"
)

// Servers lists and describes server instances.
type Servers struct {
	t Transport
}

// List returns all servers.
func (s *Servers) List(ctx context.Context) ([]Server, error) {
	return list[Server](ctx, s.t, listServers.at())
}

// Get returns the server with the given ID.
func (s *Servers) Get(ctx context.Context, serverID string) (*Server, error) {
	return fetch[Server](ctx, s.t, getServer.at(serverID), nil)
}
