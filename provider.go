package powerdns

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/libdns/libdns"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

type RRSetKey struct {
	Name string
	Type string
}

// Provider implements libdns interfaces on top of the Zones API of a single server.
type Provider struct {
	zones    *Zones
	serverID string
}

// NewProvider creates a libdns provider for the server with the given ID, usually "localhost".
func NewProvider(client *Client, serverID string) *Provider {
	return &Provider{
		zones:    client.Zones,
		serverID: serverID,
	}
}

func (p *Provider) ListZones(ctx context.Context) ([]libdns.Zone, error) {
	zones, err := p.zones.List(ctx, p.serverID)
	if err != nil {
		return nil, errors.Wrap(err, "list zones")
	}

	result := make([]libdns.Zone, len(zones))
	for i, zone := range zones {
		result[i] = libdns.Zone{Name: zone.Name}
	}

	return result, nil
}

// GetRecords returns enabled records of the zone.
// Records which cannot be parsed are returned as libdns.RR alongside the aggregated parse error.
func (p *Provider) GetRecords(ctx context.Context, zone string) (result []libdns.Record, errs error) {
	sets, err := p.getRRSets(ctx, zone)
	if err != nil {
		return nil, err
	}

	for _, set := range sets {
		for _, rr := range toRRs(set, zone) {
			record, err := rr.Parse()
			if multierr.AppendInto(&errs, errors.Wrapf(err, "parse %s %s", rr.Type, rr.Name)) {
				result = append(result, rr)
				continue
			}

			result = append(result, record)
		}
	}

	return
}

// SetRecords replaces RR sets for every (name, type) pair present in recs.
func (p *Provider) SetRecords(ctx context.Context, zone string, recs []libdns.Record) ([]libdns.Record, error) {
	sets := fromRecords(recs, zone)
	patch := ZonePatch{RRSets: make([]RRSet, 0, len(sets))}
	for _, set := range sets {
		set.ChangeType = ChangeTypeReplace
		patch.RRSets = append(patch.RRSets, set)
	}

	if err := p.patch(ctx, zone, patch); err != nil {
		return nil, err
	}

	return recs, nil
}

// AppendRecords adds recs to the existing RR sets, keeping present records.
// Only records which were not present and enabled before are returned.
func (p *Provider) AppendRecords(ctx context.Context, zone string, recs []libdns.Record) ([]libdns.Record, error) {
	prev, err := p.getRRSets(ctx, zone)
	if err != nil {
		return nil, err
	}

	var (
		added []libdns.Record
		patch ZonePatch
	)

	for key, next := range fromRecords(recs, zone) {
		set, ok := prev[key]
		if !ok {
			set = RRSet{Name: key.Name, Type: key.Type}
		}

		set.TTL = next.TTL
		set.ChangeType = ChangeTypeReplace
		set.Comments = nil

		for _, nrr := range next.Records {
			idx := slices.IndexFunc(set.Records, func(rr Record) bool { return rr.Content == nrr.Content })
			switch {
			case idx < 0:
				set.Records = append(set.Records, nrr)
			case set.Records[idx].Disabled:
				set.Records[idx].Disabled = false
			default:
				continue
			}

			added = append(added, libdns.RR{
				Name: libdns.RelativeName(key.Name, zoneName(zone)),
				TTL:  set.Duration(),
				Type: key.Type,
				Data: fromContent(key.Type, nrr.Content),
			})
		}

		patch.RRSets = append(patch.RRSets, set)
	}

	if len(added) == 0 {
		return nil, nil
	}

	if err := p.patch(ctx, zone, patch); err != nil {
		return nil, err
	}

	return added, nil
}

// DeleteRecords removes matching records. Empty type, TTL and data in recs act as wildcards.
func (p *Provider) DeleteRecords(ctx context.Context, zone string, recs []libdns.Record) ([]libdns.Record, error) {
	prev, err := p.getRRSets(ctx, zone)
	if err != nil {
		return nil, err
	}

	var deleted []libdns.Record
	changed := make(map[RRSetKey]RRSet)
	for _, rec := range recs {
		rr := rec.RR()
		name := libdns.AbsoluteName(rr.Name, zoneName(zone))
		for key, set := range prev {
			if key.Name != name || (rr.Type != "" && rr.Type != key.Type) || (rr.TTL != 0 && rr.TTL != set.Duration()) {
				continue
			}

			if next, ok := changed[key]; ok {
				set = next
			}

			size := len(set.Records)
			content := toContent(key.Type, rr.Data)
			set.Records = slices.DeleteFunc(slices.Clone(set.Records), func(r Record) bool {
				if rr.Data != "" && r.Content != content {
					return false
				}

				deleted = append(deleted, libdns.RR{
					Name: libdns.RelativeName(key.Name, zoneName(zone)),
					TTL:  set.Duration(),
					Type: key.Type,
					Data: fromContent(key.Type, r.Content),
				})

				return true
			})

			if len(set.Records) < size {
				changed[key] = set
			}
		}
	}

	if len(deleted) == 0 {
		return nil, nil
	}

	patch := ZonePatch{RRSets: make([]RRSet, 0, len(changed))}
	for _, set := range changed {
		set.Comments = nil
		if len(set.Records) == 0 {
			set.ChangeType = ChangeTypeDelete
			set.Records = nil
		} else {
			set.ChangeType = ChangeTypeReplace
		}

		patch.RRSets = append(patch.RRSets, set)
	}

	if err := p.patch(ctx, zone, patch); err != nil {
		return nil, err
	}

	return deleted, nil
}

func (p *Provider) getRRSets(ctx context.Context, zone string) (map[RRSetKey]RRSet, error) {
	z, err := p.zones.Get(ctx, p.serverID, zoneName(zone))
	if err != nil {
		return nil, errors.Wrap(err, "get zone")
	}

	sets := make(map[RRSetKey]RRSet, len(z.RRSets))
	for _, set := range z.RRSets {
		sets[RRSetKey{Name: set.Name, Type: set.Type}] = set
	}

	return sets, nil
}

func (p *Provider) patch(ctx context.Context, zone string, patch ZonePatch) error {
	if len(patch.RRSets) == 0 {
		return nil
	}

	slices.SortFunc(patch.RRSets, func(a, b RRSet) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Type, b.Type))
	})

	return errors.Wrap(p.zones.UpdateRRSets(ctx, p.serverID, zoneName(zone), patch), "update RR sets")
}

func zoneName(zone string) string {
	return strings.TrimSuffix(zone, ".") + "."
}

func toRRs(set RRSet, zone string) []libdns.RR {
	rrs := make([]libdns.RR, 0, len(set.Records))
	for _, record := range set.Records {
		if record.Disabled {
			continue
		}

		rrs = append(rrs, libdns.RR{
			Name: libdns.RelativeName(set.Name, zoneName(zone)),
			TTL:  set.Duration(),
			Type: set.Type,
			Data: fromContent(set.Type, record.Content),
		})
	}

	return rrs
}

func fromRecords(recs []libdns.Record, zone string) map[RRSetKey]RRSet {
	sets := make(map[RRSetKey]RRSet)
	seen := make(map[RRSetKey]Set[string])
	for _, rec := range recs {
		rr := rec.RR()
		key := RRSetKey{
			Name: libdns.AbsoluteName(rr.Name, zoneName(zone)),
			Type: rr.Type,
		}

		set, ok := sets[key]
		if !ok {
			set = RRSet{Name: key.Name, Type: key.Type, TTL: ttlSeconds(rr.TTL)}
			seen[key] = SetOf[string]()
		}

		content := toContent(rr.Type, rr.Data)
		if !seen[key][content] {
			seen[key][content] = true
			set.Records = append(set.Records, Record{Content: content})
		}

		sets[key] = set
	}

	return sets
}

var (
	_ libdns.RecordGetter   = (*Provider)(nil)
	_ libdns.RecordSetter   = (*Provider)(nil)
	_ libdns.RecordAppender = (*Provider)(nil)
	_ libdns.RecordDeleter  = (*Provider)(nil)
	_ libdns.ZoneLister     = (*Provider)(nil)
)
