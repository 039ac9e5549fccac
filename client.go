package powerdns

// Client groups the API resource families of a single PowerDNS Authoritative server.
// It is safe for concurrent use; independent clients may coexist in one process.
type Client struct {
	Servers       *Servers
	Zones         *Zones
	Cryptokeys    *Cryptokeys
	Metadata      *Metadata
	TSIGKeys      *TSIGKeys
	Autoprimaries *Autoprimaries
	Search        *Searching
	Statistics    *Statistics
	Cache         *Cache
}

// NewClient creates a PowerDNS HTTP API client.
// baseURL must include the API version segment, e.g. "http://localhost:8081/api/v1".
// apiKey is sent in the X-API-Key header of every request.
func NewClient(apiKey, baseURL string, options ...Option) *Client {
	return New(NewTransport(apiKey, baseURL, options...))
}

// New creates a client on top of the provided transport.
func New(transport Transport) *Client {
	return &Client{
		Servers:       &Servers{t: transport},
		Zones:         &Zones{t: transport},
		Cryptokeys:    &Cryptokeys{t: transport},
		Metadata:      &Metadata{t: transport},
		TSIGKeys:      &TSIGKeys{t: transport},
		Autoprimaries: &Autoprimaries{t: transport},
		Search:        &Searching{t: transport},
		Statistics:    &Statistics{t: transport},
		Cache:         &Cache{t: transport},
	}
}
