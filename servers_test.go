package powerdns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServers_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	servers := []Server{{
		Type:       "Server",
		ID:         "localhost",
		DaemonType: "authoritative",
		Version:    "4.9.0",
		URL:        "/api/v1/servers/localhost",
		ConfigURL:  "/api/v1/servers/localhost/config{/config_setting}",
		ZonesURL:   "/api/v1/servers/localhost/zones{/zone}",
	}}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(ctx, "/servers", gomock.Any()).DoAndReturn(respond(servers))

	result, err := New(transport).Servers.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, servers, result)
}

func TestServers_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	server := Server{ID: "localhost", DaemonType: "authoritative"}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(ctx, "/servers/localhost", gomock.Any()).DoAndReturn(respond(server))

	result, err := New(transport).Servers.Get(ctx, "localhost")
	require.NoError(t, err)
	assert.Equal(t, &server, result)
}
