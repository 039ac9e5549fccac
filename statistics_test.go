package powerdns

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatistics_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	stats := []StatisticItem{
		{Name: "uptime", Type: "StatisticItem", Value: json.RawMessage(`"42"`)},
		{Name: "response-by-qtype", Type: "MapStatisticItem", Value: json.RawMessage(`[{"name":"A","value":"7"}]`)},
	}

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(ctx, "/servers/localhost/statistics", gomock.Any()).DoAndReturn(respond(stats))

	result, err := New(transport).Statistics.Get(ctx, "localhost", StatisticsParams{})
	require.NoError(t, err)
	assert.Equal(t, stats, result)

	entries, err := result[1].Entries()
	require.NoError(t, err)
	assert.Equal(t, []SimpleStatisticItem{{Name: "A", Value: "7"}}, entries)
}

func TestStatistics_Get_Params(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	includeRings := false

	transport := NewMockTransport(ctrl)
	transport.EXPECT().Get(ctx, "/servers/localhost/statistics?statistic=uptime&includerings=false", gomock.Any()).Return(nil)

	result, err := New(transport).Statistics.Get(ctx, "localhost", StatisticsParams{
		Statistic:    "uptime",
		IncludeRings: &includeRings,
	})
	require.NoError(t, err)
	assert.Empty(t, result)
}
