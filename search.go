package powerdns

import (
	"context"
)

const defaultSearchMax = 100

// Searching performs free-text search over zones, records and comments.
type Searching struct {
	t Transport
}

type searchParams struct {
	Query      string `url:"q"`
	Max        int    `url:"max"`
	ObjectType string `url:"object_type"`
}

// Search returns at most max results matching q, where q may contain
// "*" and "?" wildcards. Non-positive max means 100, empty objectType means "all".
func (s *Searching) Search(ctx context.Context, serverID, q string, max int, objectType string) ([]SearchResult, error) {
	if max <= 0 {
		max = defaultSearchMax
	}

	if objectType == "" {
		objectType = ObjectTypeAll
	}

	req, err := searchData.at(serverID).with(searchParams{
		Query:      q,
		Max:        max,
		ObjectType: objectType,
	})
	if err != nil {
		return nil, err
	}

	return list[SearchResult](ctx, s.t, req)
}
