package powerdns

import (
	"context"
)

// StatisticsParams narrows down the statistics returned by the server.
// Unset fields are not sent.
type StatisticsParams struct {
	// Statistic selects a single statistic by name.
	Statistic string `url:"statistic,omitempty"`
	// IncludeRings controls whether ring statistics are included.
	IncludeRings *bool `url:"includerings,omitempty"`
}

type Statistics struct {
	t Transport
}

func (s *Statistics) Get(ctx context.Context, serverID string, params StatisticsParams) ([]StatisticItem, error) {
	req, err := getStatistics.at(serverID).with(params)
	if err != nil {
		return nil, err
	}

	return list[StatisticItem](ctx, s.t, req)
}
