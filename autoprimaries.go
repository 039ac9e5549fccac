package powerdns

import (
	"context"
)

// Autoprimaries manages servers allowed to provision zones via NOTIFY.
type Autoprimaries struct {
	t Transport
}

func (a *Autoprimaries) List(ctx context.Context, serverID string) ([]Autoprimary, error) {
	return list[Autoprimary](ctx, a.t, listAutoprimaries.at(serverID))
}

func (a *Autoprimaries) Add(ctx context.Context, serverID string, autoprimary Autoprimary) error {
	return exec(ctx, a.t, addAutoprimary.at(serverID), autoprimary)
}

func (a *Autoprimaries) Delete(ctx context.Context, serverID, ip, nameserver string) error {
	return exec(ctx, a.t, deleteAutoprimary.at(serverID, ip, nameserver), nil)
}
