package powerdns

import (
	"context"
	"strconv"
)

// Cryptokeys manages DNSSEC keys of a zone.
type Cryptokeys struct {
	t Transport
}

// List returns all keys of the zone. Private key material is not included.
func (c *Cryptokeys) List(ctx context.Context, serverID, zoneID string) ([]Cryptokey, error) {
	return list[Cryptokey](ctx, c.t, listCryptokeys.at(serverID, zoneID))
}

// Create generates or imports a key. Set PrivateKey to import an existing one.
func (c *Cryptokeys) Create(ctx context.Context, serverID, zoneID string, key Cryptokey) (*Cryptokey, error) {
	return fetch[Cryptokey](ctx, c.t, createCryptokey.at(serverID, zoneID), key)
}

// Get returns a single key including its private key material.
func (c *Cryptokeys) Get(ctx context.Context, serverID, zoneID string, keyID int) (*Cryptokey, error) {
	return fetch[Cryptokey](ctx, c.t, getCryptokey.at(serverID, zoneID, strconv.Itoa(keyID)), nil)
}

// Update changes the active and published state of a key.
func (c *Cryptokeys) Update(ctx context.Context, serverID, zoneID string, keyID int, key Cryptokey) error {
	return exec(ctx, c.t, updateCryptokey.at(serverID, zoneID, strconv.Itoa(keyID)), key)
}

func (c *Cryptokeys) Delete(ctx context.Context, serverID, zoneID string, keyID int) error {
	return exec(ctx, c.t, deleteCryptokey.at(serverID, zoneID, strconv.Itoa(keyID)), nil)
}
