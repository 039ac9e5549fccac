package powerdns

import (
	"context"
)

// TSIGKeys manages TSIG keys of a server.
type TSIGKeys struct {
	t Transport
}

// List returns all keys without key material.
func (k *TSIGKeys) List(ctx context.Context, serverID string) ([]TSIGKey, error) {
	return list[TSIGKey](ctx, k.t, listTSIGKeys.at(serverID))
}

// Create adds a key. An empty Key makes the server generate one.
func (k *TSIGKeys) Create(ctx context.Context, serverID string, key TSIGKey) (*TSIGKey, error) {
	return fetch[TSIGKey](ctx, k.t, createTSIGKey.at(serverID), key)
}

func (k *TSIGKeys) Get(ctx context.Context, serverID, keyID string) (*TSIGKey, error) {
	return fetch[TSIGKey](ctx, k.t, getTSIGKey.at(serverID, keyID), nil)
}

// Update changes the name, algorithm or key material.
// Renaming changes the key ID, so use the ID of the returned key afterwards.
func (k *TSIGKeys) Update(ctx context.Context, serverID, keyID string, key TSIGKey) (*TSIGKey, error) {
	return fetch[TSIGKey](ctx, k.t, updateTSIGKey.at(serverID, keyID), key)
}

func (k *TSIGKeys) Delete(ctx context.Context, serverID, keyID string) error {
	return exec(ctx, k.t, deleteTSIGKey.at(serverID, keyID), nil)
}
