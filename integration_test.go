//go:build integration

package powerdns

import (
	"context"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/davecgh/go-spew/spew"
	"github.com/joho/godotenv"
	"github.com/libdns/libdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationClient(t *testing.T) *Client {
	_ = godotenv.Load()

	var config struct {
		APIKey  string `env:"PDNS_API_KEY,required"`
		BaseURL string `env:"PDNS_URL" envDefault:"http://localhost:8081/api/v1/"`
	}

	err := env.Parse(&config)
	require.NoError(t, err)

	return NewClient(config.APIKey, config.BaseURL)
}

func TestIntegration_Zones(t *testing.T) {
	client := newIntegrationClient(t)
	ctx := context.Background()

	servers, err := client.Servers.List(ctx)
	require.NoError(t, err)
	spew.Dump(servers)

	zone, err := client.Zones.Create(ctx, "localhost", Zone{
		Name:        "integration.example.",
		Kind:        Native,
		Nameservers: []string{"ns1.integration.example."},
	})
	require.NoError(t, err)
	assert.Equal(t, "integration.example.", zone.ID)

	text, err := client.Zones.Export(ctx, "localhost", zone.ID)
	require.NoError(t, err)
	spew.Dump(text)

	_, err = client.Metadata.Update(ctx, "localhost", zone.ID, "ALLOW-AXFR-FROM", []string{"192.0.2.3"})
	require.NoError(t, err)

	results, err := client.Search.Search(ctx, "localhost", "nothing-matches-this-*", 5, ObjectTypeRecord)
	require.NoError(t, err)
	assert.Empty(t, results)

	err = client.Zones.Delete(ctx, "localhost", zone.ID)
	require.NoError(t, err)

	_, err = client.Zones.Get(ctx, "localhost", zone.ID)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestIntegration_Provider(t *testing.T) {
	client := newIntegrationClient(t)
	provider := NewProvider(client, "localhost")
	ctx := context.Background()

	zones, err := provider.ListZones(ctx)
	require.NoError(t, err)
	spew.Dump(zones)

	if len(zones) > 0 {
		records, err := provider.GetRecords(ctx, zones[0].Name)
		require.NoError(t, err)
		spew.Dump(records)

		records, err = provider.AppendRecords(ctx, zones[0].Name, []libdns.Record{
			libdns.TXT{Name: "libdns-integration-test", Text: `4"5"6`},
		})

		require.NoError(t, err)
		spew.Dump(records)

		records, err = provider.DeleteRecords(ctx, zones[0].Name, records)
		require.NoError(t, err)
		spew.Dump(records)
	}
}
