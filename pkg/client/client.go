// Package client provides the core HTTP client for the game
// statistics API: endpoint families, request signing, response
// caching and typed error handling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mihoyo-tools/genshin-stats-client/pkg/cache"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/ds"
	"github.com/mihoyo-tools/genshin-stats-client/pkg/ratelimit"
)

// Prometheus metrics for client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gstats_requests_total",
		Help: "Total requests by endpoint family and outcome",
	}, []string{"family", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gstats_request_duration_seconds",
		Help:    "Request duration in seconds by endpoint family",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"family"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gstats_errors_total",
		Help: "Total request errors by class",
	}, []string{"class"})
)

// Endpoint family names used in logs and metrics.
const (
	familyRecord      = "record"
	familyReward      = "reward"
	familyGachaInfo   = "gacha_info"
	familyTransaction = "transaction"
	familyWebstatic   = "webstatic"
	familyRedeem      = "redeem"
)

// redeemInterval is the remote's rate limit for code redemption:
// one submission every five seconds, strictly sequential.
const redeemInterval = 5 * time.Second

// Config holds the client configuration.
type Config struct {
	// Cookies authenticate the record, reward and redeem families.
	// Use ParseCookies to build the map from a Cookie header line.
	Cookies map[string]string

	// AuthKey authenticates the gacha info and transaction families.
	AuthKey string

	// Lang is the response language tag (default "en-us").
	Lang string

	// Chinese selects the chinese region endpoints and signing salt.
	Chinese bool

	// Store is the cache backend. Nil means a private in-memory
	// store scoped to this client.
	Store cache.Store

	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client

	// UserAgent overrides the default browser user agent.
	UserAgent string

	// Logger overrides the global logger as the base for the
	// client's component logger.
	Logger *zerolog.Logger

	// Retry overrides the transport retry configuration.
	Retry RetryConfig
}

// Client is the API client. All methods are safe for concurrent use;
// paginators returned by the client are single-consumer.
type Client struct {
	httpClient *http.Client
	cache      *cache.Cache
	signer     *ds.Generator
	pacer      *ratelimit.Pacer
	routes     Routes
	cfg        Config
	logger     zerolog.Logger
}

// New creates a new API client.
func New(cfg Config) (*Client, error) {
	if cfg.Lang == "" {
		cfg.Lang = "en-us"
	}
	if !validLang(cfg.Lang) {
		return nil, fmt.Errorf("invalid language %q", cfg.Lang)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = DefaultRetryConfig()
	}

	routes := OverseasRoutes()
	if cfg.Chinese {
		routes = ChineseRoutes()
	}

	logger := log.With().Str("component", "gstats-client").Logger()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "gstats-client").Logger()
	}

	return &Client{
		httpClient: cfg.HTTPClient,
		cache:      cache.New(cfg.Store, logger),
		signer:     ds.NewGenerator(routes.DSSalt),
		pacer:      ratelimit.NewPacer(redeemInterval),
		routes:     routes,
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// ParseCookies parses a Cookie header line ("ltuid=123; ltoken=abc")
// into the map Config.Cookies expects.
func ParseCookies(header string) (map[string]string, error) {
	cookies, err := http.ParseCookie(header)
	if err != nil {
		return nil, fmt.Errorf("parse cookies: %w", err)
	}
	out := make(map[string]string, len(cookies))
	for _, c := range cookies {
		out[c.Name] = c.Value
	}
	return out, nil
}

// AccountID returns the community account id from the configured
// cookies, or 0 when no identity cookie is present.
func (c *Client) AccountID() int64 {
	for _, name := range []string{"ltuid", "account_id"} {
		if v, ok := c.cfg.Cookies[name]; ok {
			var id int64
			if _, err := fmt.Sscanf(v, "%d", &id); err == nil {
				return id
			}
		}
	}
	return 0
}

// Lang returns the client's configured language tag.
func (c *Client) Lang() string { return c.cfg.Lang }

// Cache returns the client's cache for administrative use.
func (c *Client) Cache() *cache.Cache { return c.cache }

// Close releases the client's idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// SetRoutes overrides the endpoint table (for testing).
func (c *Client) SetRoutes(routes Routes) {
	c.routes = routes
	c.signer = ds.NewGenerator(routes.DSSalt)
}

// SetPacerInterval overrides the redeem pacing interval (for testing).
func (c *Client) SetPacerInterval(d time.Duration) {
	c.pacer = ratelimit.NewPacer(d)
}

// envelope is the uniform response wrapper of every dynamic endpoint.
type envelope struct {
	Retcode int             `json:"retcode"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// request performs one API call against a family endpoint, retrying
// transport failures, and returns the envelope's data field.
func (c *Client) request(ctx context.Context, family, method, rawURL string, params url.Values, headers http.Header, body any) (json.RawMessage, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(family).Observe(time.Since(start).Seconds())
	}()

	c.logger.Debug().
		Str("family", family).
		Str("method", method).
		Str("url", u.String()).
		Msg("Executing API request")

	var data json.RawMessage
	err = retryWithBackoff(ctx, c.cfg.Retry, c.logger, func() error {
		var reader *bytes.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		var req *http.Request
		var reqErr error
		if reader != nil {
			req, reqErr = http.NewRequestWithContext(ctx, method, u.String(), reader)
		} else {
			req, reqErr = http.NewRequestWithContext(ctx, method, u.String(), nil)
		}
		if reqErr != nil {
			return fmt.Errorf("create request: %w", reqErr)
		}

		for key, values := range headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for name, value := range c.cfg.Cookies {
			req.AddCookie(&http.Cookie{Name: name, Value: value})
		}

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			errorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
			requestsTotal.WithLabelValues(family, "transport_error").Inc()
			return fmt.Errorf("http request: %w", doErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			statusErr := &StatusError{StatusCode: resp.StatusCode}
			errorsTotal.WithLabelValues(string(classifyError(statusErr))).Inc()
			requestsTotal.WithLabelValues(family, fmt.Sprintf("%d", resp.StatusCode)).Inc()
			return statusErr
		}

		var env envelope
		if decErr := json.NewDecoder(resp.Body).Decode(&env); decErr != nil {
			errorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
			requestsTotal.WithLabelValues(family, "transport_error").Inc()
			return fmt.Errorf("decode envelope: %w", decErr)
		}

		if env.Retcode != 0 {
			errorsTotal.WithLabelValues(string(ErrorClassAPI)).Inc()
			requestsTotal.WithLabelValues(family, "api_error").Inc()
			c.logger.Warn().
				Str("family", family).
				Int("retcode", env.Retcode).
				Str("message", env.Message).
				Msg("API request returned error retcode")
			return &APIError{Retcode: env.Retcode, Message: env.Message}
		}

		requestsTotal.WithLabelValues(family, "ok").Inc()
		data = env.Data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// requestRecord calls the signed game record family. The request
// carries a fresh DS token and the client identity headers. When a
// cache key is supplied the whole fetch is wrapped in the cache.
func (c *Client) requestRecord(ctx context.Context, endpoint string, params url.Values, body any, key cache.Key) (json.RawMessage, error) {
	if len(c.cfg.Cookies) == 0 {
		return nil, ErrNoCookies
	}

	fetch := func(ctx context.Context) (json.RawMessage, error) {
		method := http.MethodGet
		if body != nil {
			method = http.MethodPost
		}
		headers := http.Header{}
		headers.Set("x-rpc-app_version", c.routes.AppVersion)
		headers.Set("x-rpc-client_type", c.routes.ClientType)
		headers.Set("x-rpc-language", c.cfg.Lang)
		headers.Set("ds", c.signer.Generate())

		return c.request(ctx, familyRecord, method, c.routes.Record+endpoint, params, headers, body)
	}

	if key != nil {
		return c.cache.GetOrCompute(ctx, key, fetch)
	}
	return fetch(ctx)
}

// requestReward calls the daily reward family.
func (c *Client) requestReward(ctx context.Context, endpoint, method string, params url.Values) (json.RawMessage, error) {
	if len(c.cfg.Cookies) == 0 {
		return nil, ErrNoCookies
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("lang", c.cfg.Lang)
	params.Set("act_id", c.routes.ActID)

	return c.request(ctx, familyReward, method, c.routes.Reward+endpoint, params, nil, nil)
}

// authKey resolves the effective authkey, preferring a per-call
// override, and fails before any network I/O when none is available.
func (c *Client) authKey(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if c.cfg.AuthKey != "" {
		return c.cfg.AuthKey, nil
	}
	return "", ErrNoAuthKey
}

// requestGachaInfo calls the gacha info family.
func (c *Client) requestGachaInfo(ctx context.Context, endpoint string, params url.Values, authkeyOverride, langOverride string) (json.RawMessage, error) {
	authkey, err := c.authKey(authkeyOverride)
	if err != nil {
		return nil, err
	}

	lang := c.cfg.Lang
	if langOverride != "" {
		lang = langOverride
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("authkey_ver", "1")
	params.Set("authkey", authkey)
	params.Set("lang", shortLangCode(lang))

	return c.request(ctx, familyGachaInfo, http.MethodGet, c.routes.GachaInfo+endpoint, params, nil, nil)
}

// requestTransaction calls the transaction log family.
func (c *Client) requestTransaction(ctx context.Context, endpoint string, params url.Values, authkeyOverride, langOverride string) (json.RawMessage, error) {
	authkey, err := c.authKey(authkeyOverride)
	if err != nil {
		return nil, err
	}

	lang := c.cfg.Lang
	if langOverride != "" {
		lang = langOverride
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("authkey_ver", "1")
	params.Set("sign_type", "2")
	params.Set("authkey", authkey)
	params.Set("lang", shortLangCode(lang))

	return c.request(ctx, familyTransaction, http.MethodGet, c.routes.Transaction+endpoint, params, nil, nil)
}

// requestWebstatic fetches a static JSON document. Static files have
// no envelope; the raw body is returned as-is.
func (c *Client) requestWebstatic(ctx context.Context, rawURL string) (json.RawMessage, error) {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(familyWebstatic).Observe(time.Since(start).Seconds())
	}()

	var data json.RawMessage
	err := retryWithBackoff(ctx, c.cfg.Retry, c.logger, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			errorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
			requestsTotal.WithLabelValues(familyWebstatic, "transport_error").Inc()
			return fmt.Errorf("http request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			statusErr := &StatusError{StatusCode: resp.StatusCode}
			errorsTotal.WithLabelValues(string(classifyError(statusErr))).Inc()
			requestsTotal.WithLabelValues(familyWebstatic, fmt.Sprintf("%d", resp.StatusCode)).Inc()
			return statusErr
		}

		var body json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			errorsTotal.WithLabelValues(string(ErrorClassTransport)).Inc()
			requestsTotal.WithLabelValues(familyWebstatic, "transport_error").Inc()
			return fmt.Errorf("decode body: %w", err)
		}

		requestsTotal.WithLabelValues(familyWebstatic, "ok").Inc()
		data = body
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
