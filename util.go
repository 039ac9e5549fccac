package powerdns

import (
	"strings"
	"time"
)

const defaultTTL = time.Hour

func ttlSeconds(ttl time.Duration) uint32 {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return uint32(ttl / time.Second)
}

type Set[T comparable] map[T]bool

func SetOf[T comparable](values ...T) Set[T] {
	set := make(map[T]bool)
	for _, value := range values {
		set[value] = true
	}

	return set
}

var (
	txtQuoter   = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	txtUnquoter = strings.NewReplacer(`\\`, `\`, `\"`, `"`)
)

// toContent converts libdns record data into server presentation format.
func toContent(rrtype, data string) string {
	if rrtype != "TXT" || strings.HasPrefix(data, `"`) {
		return data
	}

	return `"` + txtQuoter.Replace(data) + `"`
}

// fromContent converts server presentation format into libdns record data.
// Multi-string TXT contents are joined.
func fromContent(rrtype, content string) string {
	if rrtype != "TXT" || len(content) < 2 || !strings.HasPrefix(content, `"`) || !strings.HasSuffix(content, `"`) {
		return content
	}

	parts := strings.Split(content[1:len(content)-1], `" "`)
	for i, part := range parts {
		parts[i] = txtUnquoter.Replace(part)
	}

	return strings.Join(parts, "")
}
