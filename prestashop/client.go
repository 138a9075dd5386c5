package prestashop

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// DefaultRoot is the webservice mount point under the shop URL.
const DefaultRoot = "/api"

// DefaultTimeout bounds a single webservice request.
const DefaultTimeout = 30 * time.Second

// Doer is the HTTP primitive the client runs on. *http.Client satisfies
// it; tests swap in their own transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client represents an authenticated PrestaShop webservice client. All
// methods are safe for concurrent use; identical in-flight GETs are
// collapsed into a single HTTP call.
type Client struct {
	scheme    string
	host      string
	root      string
	key       string
	userAgent string

	mu        sync.RWMutex
	language  string
	languages map[string]int

	httpClient Doer
	logger     zerolog.Logger
	funnel     singleflight.Group
}

// New creates a new webservice client. The shop URL carries scheme and
// host (a bare host defaults to http); the root path defaults to "/api".
// The language map defaults to {"en": 1} with "en" active.
func New(shopURL, key string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if shopURL == "" {
		return nil, fmt.Errorf("%w: shop URL is required", ErrInvalidConfig)
	}
	if key == "" {
		return nil, ErrMissingKey
	}

	if !strings.Contains(shopURL, "://") {
		shopURL = "http://" + shopURL
	}
	parsed, err := url.Parse(shopURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid shop URL %q: %v", ErrInvalidConfig, shopURL, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("%w: shop URL %q has no host", ErrInvalidConfig, shopURL)
	}

	options := &clientOptions{
		timeout:   DefaultTimeout,
		root:      DefaultRoot,
		language:  "en",
		languages: map[string]int{"en": 1},
	}
	for _, opt := range opts {
		opt(options)
	}
	if _, ok := options.languages[options.language]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, options.language)
	}

	// A shop installed in a subdirectory carries its prefix in the URL
	// path; the webservice root mounts below it.
	root := options.root
	if parsed.Path != "" && parsed.Path != "/" {
		root = path.Join(parsed.Path, root)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	client := &Client{
		scheme:     parsed.Scheme,
		host:       parsed.Host,
		root:       root,
		key:        key,
		userAgent:  options.userAgent,
		language:   options.language,
		languages:  options.languages,
		httpClient: httpClient,
		logger:     logger,
	}

	return client, nil
}

// URL resolves uri and query into a canonical absolute request URL. Query
// keys are encoded in sorted order so that logically identical requests
// map to one URL string regardless of map iteration order. An absolute
// uri passes through with only the query appended.
func (c *Client) URL(uri string, query map[string]string) string {
	qs := canonicalQuery(query)
	if strings.Contains(uri, "://") {
		return uri + qs
	}
	return c.scheme + "://" + c.host + path.Join("/", c.root, uri) + qs
}

// canonicalQuery encodes a query map deterministically. url.Values.Encode
// emits keys in sorted order.
func canonicalQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	params := url.Values{}
	for k, v := range query {
		params.Set(k, v)
	}
	return "?" + params.Encode()
}

// Response is the settled result of a webservice GET. Deduplicated
// callers share one Response value, so treat it as read-only.
type Response struct {
	StatusCode int
	Status     string
	URL        string
	Body       []byte
}

// Get issues an authenticated GET against the webservice. Identical
// requests, keyed by active language, method and canonical URL, that
// arrive while one is still in flight share that call's response and
// error. The key is dropped the moment the call settles; a later
// identical request hits the network again. The context of the first
// caller governs the shared call.
func (c *Client) Get(ctx context.Context, uri string, query map[string]string) (*Response, error) {
	requestURL := c.URL(uri, query)
	key := fmt.Sprintf("%d:%s:%s", c.LanguageID(), http.MethodGet, requestURL)

	result, err, shared := c.funnel.Do(key, func() (any, error) {
		return c.fetch(ctx, requestURL)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Trace().Str("url", requestURL).Msg("Joined in-flight webservice request")
	}
	return result.(*Response), nil
}

// fetch performs one real HTTP request and reads the body to completion
// so deduplicated callers can all consume it.
func (c *Client) fetch(ctx context.Context, requestURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &RequestError{URL: requestURL, Err: err}
	}

	req.Header.Set("Authorization", c.authorization())
	req.Header.Set("Accept", "application/xml")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	//c.logger.Debug().
	//	Str("method", http.MethodGet).
	//	Str("url", requestURL).
	//	Msg("Making webservice request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        requestURL,
			Body:       string(body),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        requestURL,
		Body:       body,
	}, nil
}

// authorization derives the Basic header from the webservice key. The
// shop expects the key as username with an empty password.
func (c *Client) authorization() string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.key+":"))
}

// Language returns the active language ISO code.
func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// LanguageID returns the shop language id of the active language.
func (c *Client) LanguageID() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.languages[c.language]
}

// Languages returns a copy of the ISO code to shop language id map.
func (c *Client) Languages() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	languages := make(map[string]int, len(c.languages))
	for iso, id := range c.languages {
		languages[iso] = id
	}
	return languages
}

// SetLanguage switches the active language. Unknown ISO codes fail with
// ErrUnknownLanguage and leave the current selection untouched.
func (c *Client) SetLanguage(iso string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.languages[iso]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, iso)
	}
	c.language = iso
	return nil
}

// Resource returns a typed accessor for one registered resource kind,
// addressed by its webservice name, e.g. "products" or
// "stock_availables". Unknown names fail with ErrUnknownResource.
func (c *Client) Resource(name string, opts ...ResourceOption) (*Resource, error) {
	desc, ok := kinds[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}

	resource := &Resource{
		client: c,
		logger: c.logger.With().Str("resource", desc.APIName).Logger(),
		desc:   desc,
	}
	for _, opt := range opts {
		opt(resource)
	}
	return resource, nil
}

// TestConnection verifies the webservice answers and accepts the key by
// requesting the API root.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.Get(ctx, "/", nil); err != nil {
		return fmt.Errorf("failed to connect to webservice: %w", err)
	}

	//c.logger.Debug().Msg("Successfully connected to webservice")
	return nil
}
