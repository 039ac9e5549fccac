package powerdns

import (
	"context"
)

// Zones manages zones and their RRSets.
// Zone IDs are used verbatim and keep their trailing dot, e.g. "example.org.".
type Zones struct {
	t Transport
}

// List returns all zones of the server, without RRSets.
func (z *Zones) List(ctx context.Context, serverID string) ([]Zone, error) {
	return list[Zone](ctx, z.t, listZones.at(serverID))
}

// Get returns the zone with its RRSets.
func (z *Zones) Get(ctx context.Context, serverID, zoneID string) (*Zone, error) {
	return fetch[Zone](ctx, z.t, getZone.at(serverID, zoneID), nil)
}

// Create creates a zone and returns it as stored by the server.
func (z *Zones) Create(ctx context.Context, serverID string, zone Zone) (*Zone, error) {
	return fetch[Zone](ctx, z.t, createZone.at(serverID), zone)
}

func (z *Zones) Delete(ctx context.Context, serverID, zoneID string) error {
	return exec(ctx, z.t, deleteZone.at(serverID, zoneID), nil)
}

// UpdateRRSets applies the change set. Each RRSet must carry a ChangeType.
func (z *Zones) UpdateRRSets(ctx context.Context, serverID, zoneID string, patch ZonePatch) error {
	return exec(ctx, z.t, patchZone.at(serverID, zoneID), patch)
}

// Modify changes zone fields other than RRSets. Only set fields are sent.
func (z *Zones) Modify(ctx context.Context, serverID, zoneID string, zone Zone) error {
	return exec(ctx, z.t, modifyZone.at(serverID, zoneID), zone)
}

// RetrieveSlave asks the server to retrieve a slave zone from its master.
// The body is sent as-is; nil sends no body.
func (z *Zones) RetrieveSlave(ctx context.Context, serverID, zoneID string, body any) (*Result, error) {
	return fetch[Result](ctx, z.t, axfrRetrieveZone.at(serverID, zoneID), body)
}

// Notify sends DNS NOTIFY to all slaves of the zone.
// The body is sent as-is; nil sends no body.
func (z *Zones) Notify(ctx context.Context, serverID, zoneID string, body any) (*Result, error) {
	return fetch[Result](ctx, z.t, notifyZone.at(serverID, zoneID), body)
}

// Export returns the zone in AXFR format.
func (z *Zones) Export(ctx context.Context, serverID, zoneID string) (string, error) {
	var text string
	if err := exportZone.at(serverID, zoneID).send(ctx, z.t, nil, &text); err != nil {
		return "", err
	}

	return text, nil
}

func (z *Zones) Rectify(ctx context.Context, serverID, zoneID string) (*Result, error) {
	return fetch[Result](ctx, z.t, rectifyZone.at(serverID, zoneID), nil)
}
