package powerdns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCache_Flush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	flushed := CacheFlushResult{Count: 3, Result: "Flushed cache."}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Put(ctx, "/servers/localhost/cache/flush?domain=example.com", nil, gomock.Any()).
		DoAndReturn(respondTo(flushed))

	result, err := New(transport).Cache.Flush(ctx, "localhost", "example.com")
	require.NoError(t, err)
	assert.Equal(t, &flushed, result)
}

func TestCache_Flush_Encoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	transport := NewMockTransport(ctrl)
	transport.EXPECT().Put(ctx, "/servers/localhost/cache/flush?domain=%2A.example.com.", nil, gomock.Any()).Return(nil)

	_, err := New(transport).Cache.Flush(ctx, "localhost", "*.example.com.")
	require.NoError(t, err)
}
