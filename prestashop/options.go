package prestashop

import "time"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	userAgent  string
	root       string
	language   string
	languages  map[string]int
	httpClient Doer
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithRoot overrides the webservice root path, "/api" by default.
func WithRoot(root string) Option {
	return func(o *clientOptions) {
		if root != "" {
			o.root = root
		}
	}
}

// WithLanguage selects the active language by ISO code. The code must be
// present in the language map or New fails.
func WithLanguage(iso string) Option {
	return func(o *clientOptions) {
		if iso != "" {
			o.language = iso
		}
	}
}

// WithLanguages replaces the ISO code to shop language id map.
func WithLanguages(languages map[string]int) Option {
	return func(o *clientOptions) {
		if len(languages) > 0 {
			o.languages = languages
		}
	}
}

// WithHTTPClient swaps the HTTP transport, for tests or custom TLS
// setups. A client set here takes precedence over WithTimeout.
func WithHTTPClient(httpClient Doer) Option {
	return func(o *clientOptions) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}
