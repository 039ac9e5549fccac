package powerdns

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMetadata_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entries := []MetadataEntry{
		{Type: "Metadata", Kind: "SOA-EDIT-API", Metadata: []string{"DEFAULT"}},
	}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(ctx, "/servers/localhost/zones/example.org./metadata", gomock.Any()).
		DoAndReturn(respond(entries))

	result, err := New(transport).Metadata.List(ctx, "localhost", "example.org.")
	require.NoError(t, err)
	assert.Equal(t, entries, result)
}

func TestMetadata_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entry := MetadataEntry{Kind: "ALLOW-AXFR-FROM", Metadata: []string{"192.0.2.3"}}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(ctx, "/servers/localhost/zones/example.org./metadata/ALLOW-AXFR-FROM", gomock.Any()).
		DoAndReturn(respond(entry))

	result, err := New(transport).Metadata.Get(ctx, "localhost", "example.org.", "ALLOW-AXFR-FROM")
	require.NoError(t, err)
	assert.Equal(t, &entry, result)
}

func TestMetadata_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entry := MetadataEntry{Kind: "X-CUSTOM", Metadata: []string{"a", "b"}}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Post(ctx, "/servers/localhost/zones/example.org./metadata", entry, gomock.Any()).
		DoAndReturn(respondTo(entry))

	result, err := New(transport).Metadata.Create(ctx, "localhost", "example.org.", entry)
	require.NoError(t, err)
	assert.Equal(t, &entry, result)
}

func TestMetadata_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entry := MetadataEntry{Kind: "ALLOW-AXFR-FROM", Metadata: []string{"192.0.2.3"}}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Put(ctx, "/servers/localhost/zones/example.org./metadata/ALLOW-AXFR-FROM", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"metadata": ["192.0.2.3"]}`, string(data))

			*out.(*MetadataEntry) = entry
			return nil
		})

	result, err := New(transport).Metadata.Update(ctx, "localhost", "example.org.", "ALLOW-AXFR-FROM", []string{"192.0.2.3"})
	require.NoError(t, err)
	assert.Equal(t, &entry, result)
}

func TestMetadata_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Delete(ctx, "/servers/localhost/zones/example.org./metadata/X-CUSTOM", nil).Return(nil)

	err := New(transport).Metadata.Delete(ctx, "localhost", "example.org.", "X-CUSTOM")
	require.NoError(t, err)
}
