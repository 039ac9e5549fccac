package powerdns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAutoprimaries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	autoprimaries := []Autoprimary{{IP: "192.0.2.53", Nameserver: "ns1.example.net.", Account: "ops"}}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(ctx, "/servers/localhost/autoprimaries", gomock.Any()).DoAndReturn(respond(autoprimaries))

	result, err := New(transport).Autoprimaries.List(ctx, "localhost")
	require.NoError(t, err)
	assert.Equal(t, autoprimaries, result)
}

func TestAutoprimaries_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	autoprimary := Autoprimary{IP: "192.0.2.53", Nameserver: "ns1.example.net."}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Post(ctx, "/servers/localhost/autoprimaries", autoprimary, nil).Return(nil)

	err := New(transport).Autoprimaries.Add(ctx, "localhost", autoprimary)
	require.NoError(t, err)
}

func TestAutoprimaries_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Delete(ctx, "/servers/localhost/autoprimaries/192.0.2.53/ns1.example.net.", nil).Return(nil)

	err := New(transport).Autoprimaries.Delete(ctx, "localhost", "192.0.2.53", "ns1.example.net.")
	require.NoError(t, err)
}
