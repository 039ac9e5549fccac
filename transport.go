package powerdns

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	apiKeyHeader     = "X-API-Key"
	defaultUserAgent = "libdns-powerdns"
)

// Option configures the HTTP transport created by NewClient and NewTransport.
type Option func(*httpTransport)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *httpTransport) {
		t.client = client
	}
}

// WithTimeout limits the duration of every request.
// There is no timeout by default.
func WithTimeout(timeout time.Duration) Option {
	return func(t *httpTransport) {
		t.timeout = timeout
	}
}

// WithLogger enables debug logging of requests.
// The API key is never logged.
func WithLogger(log *zap.Logger) Option {
	return func(t *httpTransport) {
		t.log = log
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(t *httpTransport) {
		t.userAgent = userAgent
	}
}

type httpTransport struct {
	baseURL   string
	apiKey    string
	client    *http.Client
	timeout   time.Duration
	userAgent string
	log       *zap.Logger
}

// NewTransport creates a Transport sending requests to baseURL
// (for example "http://localhost:8081/api/v1/") authenticated with apiKey.
func NewTransport(apiKey, baseURL string, options ...Option) Transport {
	t := &httpTransport{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		client:    new(http.Client),
		userAgent: defaultUserAgent,
		log:       zap.NewNop(),
	}

	for _, option := range options {
		option(t)
	}

	return t
}

func (t *httpTransport) Get(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodGet, path, nil, out)
}

func (t *httpTransport) Post(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPost, path, body, out)
}

func (t *httpTransport) Put(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPut, path, body, out)
}

func (t *httpTransport) Patch(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPatch, path, body, out)
}

func (t *httpTransport) Delete(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodDelete, path, nil, out)
}

func (t *httpTransport) url(path string) string {
	return t.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (t *httpTransport) do(ctx context.Context, method, path string, body, out any) error {
	fail := func(kind ErrorKind, err error) *Error {
		return &Error{Kind: kind, Method: method, Path: path, Cause: err}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fail(TransportFailure, errors.Wrap(err, "marshal body"))
		}

		reader = bytes.NewReader(data)
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, t.url(path), reader)
	if err != nil {
		return fail(TransportFailure, errors.Wrap(err, "create request"))
	}

	req.Header.Set(apiKeyHeader, t.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		t.log.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return fail(TransportFailure, err)
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	t.log.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("size", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	if err != nil {
		e := fail(TransportFailure, errors.Wrap(err, "read body"))
		e.StatusCode = resp.StatusCode
		return e
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := fail(HTTPFailure, nil)
		e.StatusCode = resp.StatusCode
		e.Body = string(data)
		e.Message = errorMessage(data)
		return e
	}

	if len(data) == 0 {
		return nil
	}

	if text, ok := out.(*string); ok {
		*text = string(data)
		return nil
	}

	var decodeErr error
	if out == nil {
		if !json.Valid(data) {
			decodeErr = errors.New("invalid JSON")
		}
	} else {
		decodeErr = json.Unmarshal(data, out)
	}

	if decodeErr != nil {
		e := fail(DecodeFailure, errors.Wrap(decodeErr, "decode body"))
		e.StatusCode = resp.StatusCode
		e.Body = string(data)
		return e
	}

	return nil
}

func errorMessage(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}

	return body.Error
}
