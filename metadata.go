package powerdns

import (
	"context"
)

// Metadata manages per-zone metadata such as ALLOW-AXFR-FROM or SOA-EDIT.
type Metadata struct {
	t Transport
}

func (m *Metadata) List(ctx context.Context, serverID, zoneID string) ([]MetadataEntry, error) {
	return list[MetadataEntry](ctx, m.t, listMetadata.at(serverID, zoneID))
}

func (m *Metadata) Get(ctx context.Context, serverID, zoneID, kind string) (*MetadataEntry, error) {
	return fetch[MetadataEntry](ctx, m.t, getMetadata.at(serverID, zoneID, kind), nil)
}

// Create adds values to the kind, keeping the existing ones.
func (m *Metadata) Create(ctx context.Context, serverID, zoneID string, entry MetadataEntry) (*MetadataEntry, error) {
	return fetch[MetadataEntry](ctx, m.t, createMetadata.at(serverID, zoneID), entry)
}

// Update replaces all values of the kind.
func (m *Metadata) Update(ctx context.Context, serverID, zoneID, kind string, values []string) (*MetadataEntry, error) {
	body := struct {
		Metadata []string `json:"metadata"`
	}{Metadata: values}

	return fetch[MetadataEntry](ctx, m.t, updateMetadata.at(serverID, zoneID, kind), body)
}

func (m *Metadata) Delete(ctx context.Context, serverID, zoneID, kind string) error {
	return exec(ctx, m.t, deleteMetadata.at(serverID, zoneID, kind), nil)
}
