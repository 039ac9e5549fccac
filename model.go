package powerdns

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Zone kinds.
const (
	Native   = "Native"
	Master   = "Master"
	Slave    = "Slave"
	Producer = "Producer"
	Consumer = "Consumer"
)

// RRSet change types used in ZonePatch.
const (
	ChangeTypeReplace = "REPLACE"
	ChangeTypeDelete  = "DELETE"
)

// Object types for search.
const (
	ObjectTypeAll     = "all"
	ObjectTypeZone    = "zone"
	ObjectTypeRecord  = "record"
	ObjectTypeComment = "comment"
)

// Server describes a server instance, usually "localhost".
type Server struct {
	Type       string `json:"type,omitempty"`
	ID         string `json:"id"`
	DaemonType string `json:"daemon_type,omitempty"`
	Version    string `json:"version,omitempty"`
	URL        string `json:"url,omitempty"`
	ConfigURL  string `json:"config_url,omitempty"`
	ZonesURL   string `json:"zones_url,omitempty"`
}

// Zone is used both as a response and as a create/modify payload.
// Pointer fields are only sent when set.
type Zone struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name,omitempty"`
	Type             string   `json:"type,omitempty"`
	URL              string   `json:"url,omitempty"`
	Kind             string   `json:"kind,omitempty"`
	RRSets           []RRSet  `json:"rrsets,omitempty"`
	Serial           uint32   `json:"serial,omitempty"`
	NotifiedSerial   uint32   `json:"notified_serial,omitempty"`
	EditedSerial     uint32   `json:"edited_serial,omitempty"`
	Masters          []string `json:"masters,omitempty"`
	DNSSEC           *bool    `json:"dnssec,omitempty"`
	NSEC3Param       *string  `json:"nsec3param,omitempty"`
	NSEC3Narrow      *bool    `json:"nsec3narrow,omitempty"`
	Presigned        *bool    `json:"presigned,omitempty"`
	SOAEdit          *string  `json:"soa_edit,omitempty"`
	SOAEditAPI       *string  `json:"soa_edit_api,omitempty"`
	APIRectify       *bool    `json:"api_rectify,omitempty"`
	Zone             string   `json:"zone,omitempty"`
	Catalog          *string  `json:"catalog,omitempty"`
	Account          *string  `json:"account,omitempty"`
	Nameservers      []string `json:"nameservers,omitempty"`
	MasterTSIGKeyIDs []string `json:"master_tsig_key_ids,omitempty"`
	SlaveTSIGKeyIDs  []string `json:"slave_tsig_key_ids,omitempty"`
}

// RRSet is a set of records sharing a name and a type.
type RRSet struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	TTL        uint32    `json:"ttl,omitempty"`
	ChangeType string    `json:"changetype,omitempty"`
	Records    []Record  `json:"records"`
	Comments   []Comment `json:"comments,omitempty"`
}

// Record is a single record of an RRSet in presentation format.
type Record struct {
	Content  string `json:"content"`
	Disabled bool   `json:"disabled"`
}

type Comment struct {
	Content    string `json:"content"`
	Account    string `json:"account"`
	ModifiedAt int64  `json:"modified_at,omitempty"`
}

// ZonePatch is the body of a zone RRSet update.
type ZonePatch struct {
	RRSets []RRSet `json:"rrsets"`
}

// Cryptokey is a DNSSEC signing key.
// PrivateKey is only returned when retrieving a single key.
type Cryptokey struct {
	Type       string   `json:"type,omitempty"`
	ID         int      `json:"id,omitempty"`
	KeyType    string   `json:"keytype,omitempty"`
	Active     bool     `json:"active"`
	Published  *bool    `json:"published,omitempty"`
	DNSKey     string   `json:"dnskey,omitempty"`
	DS         []string `json:"ds,omitempty"`
	CDS        []string `json:"cds,omitempty"`
	PrivateKey string   `json:"privatekey,omitempty"`
	Algorithm  string   `json:"algorithm,omitempty"`
	Bits       int      `json:"bits,omitempty"`
}

// MetadataEntry holds all values of a single zone metadata kind.
type MetadataEntry struct {
	Type     string   `json:"type,omitempty"`
	Kind     string   `json:"kind"`
	Metadata []string `json:"metadata"`
}

// TSIGKey is a shared secret for authenticating transfers and updates.
// Key may be left empty on creation to let the server generate it.
type TSIGKey struct {
	Type      string `json:"type,omitempty"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Algorithm string `json:"algorithm,omitempty"`
	Key       string `json:"key,omitempty"`
}

// Autoprimary is an upstream server allowed to provision zones on this server.
type Autoprimary struct {
	IP         string `json:"ip"`
	Nameserver string `json:"nameserver"`
	Account    string `json:"account,omitempty"`
}

type SearchResult struct {
	Content    string `json:"content,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`
	Name       string `json:"name"`
	ObjectType string `json:"object_type"`
	ZoneID     string `json:"zone_id,omitempty"`
	Zone       string `json:"zone,omitempty"`
	Type       string `json:"type,omitempty"`
	TTL        uint32 `json:"ttl,omitempty"`
}

// StatisticItem is one of StatisticItem, MapStatisticItem or RingStatisticItem,
// as told by Type. Value is a string for the first one and an array of
// SimpleStatisticItem for the others.
type StatisticItem struct {
	Name  string          `json:"name"`
	Type  string          `json:"type"`
	Size  int             `json:"size,omitempty"`
	Value json.RawMessage `json:"value"`
}

type SimpleStatisticItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Entries decodes Value of map and ring statistics.
func (s StatisticItem) Entries() ([]SimpleStatisticItem, error) {
	var entries []SimpleStatisticItem
	if err := json.Unmarshal(s.Value, &entries); err != nil {
		return nil, errors.Wrapf(err, "decode %s entries", s.Name)
	}

	return entries, nil
}

// Result is the body returned by zone actions such as notify or rectify.
type Result struct {
	Result string `json:"result"`
}

type CacheFlushResult struct {
	Count  int    `json:"count"`
	Result string `json:"result"`
}

// Duration returns the RRSet TTL as a time.Duration.
func (s RRSet) Duration() time.Duration {
	return time.Duration(s.TTL) * time.Second
}
