package quake

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	go_json "github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/garrettladley/safequake/internal/xhttp"
	"github.com/garrettladley/safequake/internal/xslog"
)

const DefaultBaseURL = "http://191.234.211.2:8080"

type Client struct {
	Auth        AuthService
	Earthquakes EarthquakeService

	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(tokenSource oauth2.TokenSource, opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL:     DefaultBaseURL,
		tokenSource: tokenSource,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = xhttp.NewHTTPClient(xhttp.WithTimeout(cfg.timeout))
	}
	base := httpClient.Transport
	if base == nil {
		base = xhttp.NewTransport()
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.baseURL, "/"),
		httpClient: &http.Client{
			Transport: &bearerTransport{base: base, tokenSource: cfg.tokenSource},
			Timeout:   httpClient.Timeout,
		},
		logger: cfg.logger,
	}

	c.Auth = &authService{client: c}
	c.Earthquakes = &earthquakeService{client: c}

	return c
}

type clientConfig struct {
	baseURL     string
	tokenSource oauth2.TokenSource
	logger      *slog.Logger
	timeout     time.Duration
	httpClient  *http.Client
}

type Option func(*clientConfig)

func WithBaseURL(baseURL string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = baseURL }
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

// WithHTTPClient supplies the underlying client; its transport still gets the bearer layer.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = c }
}

type request struct {
	method   string
	route    string
	body     any
	result   any
	public   bool
	expect   int // exact status required, 0 means any 2xx
	fallback string
}

func (c *Client) do(ctx context.Context, r request) error {
	var body io.Reader
	if r.body != nil {
		b, err := go_json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	if r.public {
		ctx = withPublic(ctx)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.route, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	xhttp.SetRequestHeaderJSON(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed",
			xslog.Method(r.method),
			xslog.Path(r.route),
			xslog.Error(err),
		)
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.DebugContext(ctx, "request completed",
		xslog.Method(r.method),
		xslog.Path(r.route),
		xslog.HTTPStatus(resp.StatusCode),
		xslog.Duration(time.Since(start)),
	)

	if !accepted(resp.StatusCode, r.expect) {
		return parseAPIError(resp, r.fallback)
	}

	if r.result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := go_json.Unmarshal(raw, r.result); err != nil {
		return fmt.Errorf("decoding response: %w\nbody: %s", err, string(raw))
	}
	return nil
}

func accepted(status, expect int) bool {
	if expect != 0 {
		return status == expect
	}
	return xhttp.IsSuccess(status)
}

type publicKey struct{}

func withPublic(ctx context.Context) context.Context {
	return context.WithValue(ctx, publicKey{}, true)
}

func isPublic(ctx context.Context) bool {
	public, _ := ctx.Value(publicKey{}).(bool)
	return public
}

type bearerTransport struct {
	base        http.RoundTripper
	tokenSource oauth2.TokenSource
}

var _ http.RoundTripper = (*bearerTransport)(nil)

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !isPublic(req.Context()) {
		if t.tokenSource == nil {
			return nil, fmt.Errorf("getting token: %w", errNoTokenSource)
		}
		token, err := t.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("getting token: %w", err)
		}
		req = req.Clone(req.Context())
		xhttp.SetRequestHeaderBearer(req, token.AccessToken)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return resp, nil
}
