package powerdns

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

// endpoint is one row of the API table: an HTTP verb and a path template.
// Template arguments are inserted verbatim, so zone IDs keep their trailing dot.
type endpoint struct {
	method string
	path   string
}

const (
	serverPath     = "/servers/%s"
	zonePath       = serverPath + "/zones/%s"
	cryptokeysPath = zonePath + "/cryptokeys"
	metadataPath   = zonePath + "/metadata"
	tsigkeysPath   = serverPath + "/tsigkeys"
)

var (
	listServers = endpoint{http.MethodGet, "/servers"}
	getServer   = endpoint{http.MethodGet, serverPath}

	listZones        = endpoint{http.MethodGet, serverPath + "/zones"}
	createZone       = endpoint{http.MethodPost, serverPath + "/zones"}
	getZone          = endpoint{http.MethodGet, zonePath}
	deleteZone       = endpoint{http.MethodDelete, zonePath}
	patchZone        = endpoint{http.MethodPatch, zonePath}
	modifyZone       = endpoint{http.MethodPut, zonePath}
	axfrRetrieveZone = endpoint{http.MethodPut, zonePath + "/axfr-retrieve"}
	notifyZone       = endpoint{http.MethodPut, zonePath + "/notify"}
	exportZone       = endpoint{http.MethodGet, zonePath + "/export"}
	rectifyZone      = endpoint{http.MethodPut, zonePath + "/rectify"}

	listCryptokeys  = endpoint{http.MethodGet, cryptokeysPath}
	createCryptokey = endpoint{http.MethodPost, cryptokeysPath}
	getCryptokey    = endpoint{http.MethodGet, cryptokeysPath + "/%s"}
	updateCryptokey = endpoint{http.MethodPut, cryptokeysPath + "/%s"}
	deleteCryptokey = endpoint{http.MethodDelete, cryptokeysPath + "/%s"}

	listMetadata   = endpoint{http.MethodGet, metadataPath}
	getMetadata    = endpoint{http.MethodGet, metadataPath + "/%s"}
	createMetadata = endpoint{http.MethodPost, metadataPath}
	updateMetadata = endpoint{http.MethodPut, metadataPath + "/%s"}
	deleteMetadata = endpoint{http.MethodDelete, metadataPath + "/%s"}

	listTSIGKeys  = endpoint{http.MethodGet, tsigkeysPath}
	createTSIGKey = endpoint{http.MethodPost, tsigkeysPath}
	getTSIGKey    = endpoint{http.MethodGet, tsigkeysPath + "/%s"}
	updateTSIGKey = endpoint{http.MethodPut, tsigkeysPath + "/%s"}
	deleteTSIGKey = endpoint{http.MethodDelete, tsigkeysPath + "/%s"}

	listAutoprimaries = endpoint{http.MethodGet, serverPath + "/autoprimaries"}
	addAutoprimary    = endpoint{http.MethodPost, serverPath + "/autoprimaries"}
	deleteAutoprimary = endpoint{http.MethodDelete, serverPath + "/autoprimaries/%s/%s"}

	searchData    = endpoint{http.MethodGet, serverPath + "/search-data"}
	getStatistics = endpoint{http.MethodGet, serverPath + "/statistics"}
	flushCache    = endpoint{http.MethodPut, serverPath + "/cache/flush"}
)

type request struct {
	method string
	path   string
}

func (e endpoint) at(args ...any) request {
	return request{method: e.method, path: fmt.Sprintf(e.path, args...)}
}

// with appends params encoded from `url` struct tags as the query string.
// Keys keep the order of struct fields.
func (r request) with(params any) (request, error) {
	values, err := query.Values(params)
	if err != nil {
		return r, &Error{
			Kind:   TransportFailure,
			Method: r.method,
			Path:   r.path,
			Cause:  errors.Wrap(err, "encode query"),
		}
	}

	if len(values) > 0 {
		r.path += "?" + encode(values, queryKeys(params))
	}

	return r, nil
}

func queryKeys(params any) []string {
	typ := reflect.TypeOf(params)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	keys := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("url"), ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}

	return keys
}

func encode(values url.Values, keys []string) string {
	var b strings.Builder
	for _, key := range keys {
		for _, value := range values[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}

			b.WriteString(url.QueryEscape(key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(value))
		}
	}

	return b.String()
}

func (r request) send(ctx context.Context, t Transport, body, out any) error {
	switch r.method {
	case http.MethodGet:
		return t.Get(ctx, r.path, out)
	case http.MethodPost:
		return t.Post(ctx, r.path, body, out)
	case http.MethodPut:
		return t.Put(ctx, r.path, body, out)
	case http.MethodPatch:
		return t.Patch(ctx, r.path, body, out)
	case http.MethodDelete:
		return t.Delete(ctx, r.path, out)
	default:
		return &Error{
			Kind:   TransportFailure,
			Method: r.method,
			Path:   r.path,
			Cause:  errors.Errorf("unsupported method %s", r.method),
		}
	}
}

// fetch sends the request and returns the decoded single object.
func fetch[T any](ctx context.Context, t Transport, r request, body any) (*T, error) {
	var out T
	if err := r.send(ctx, t, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// list sends the request and returns the decoded array, never nil.
func list[T any](ctx context.Context, t Transport, r request) ([]T, error) {
	out := make([]T, 0)
	if err := r.send(ctx, t, nil, &out); err != nil {
		return nil, err
	}

	if out == nil {
		out = make([]T, 0)
	}

	return out, nil
}

// exec sends the request and discards the response body.
func exec(ctx context.Context, t Transport, r request, body any) error {
	return r.send(ctx, t, body, nil)
}
