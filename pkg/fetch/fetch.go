// Package fetch retrieves page documents over HTTP so they can be handed to
// the page renderer in place of the placeholder document.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// UserAgent is sent with every request.
const UserAgent = "squ1d/1.0 (compatible; Go)"

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 30 * time.Second

// MaxDocumentSize caps the number of bytes read from a response body.
const MaxDocumentSize = 8 << 20

var (
	// ErrUnsupportedScheme is returned for anything but http and https URLs.
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
	// ErrStatus is returned for non-2xx responses.
	ErrStatus = errors.New("unexpected http status")
)

// Client fetches documents.
type Client struct {
	http *http.Client
	log  zerolog.Logger
}

// New creates a client. A non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		log:  zerolog.Nop(),
	}
}

// SetLogger configures the request logger.
func (c *Client) SetLogger(l zerolog.Logger) {
	c.log = l
}

// Document fetches rawURL and returns its body decoded to UTF-8 according to
// the response's declared or sniffed charset. Bodies larger than
// MaxDocumentSize are truncated.
func (c *Client) Document(ctx context.Context, rawURL string) (string, error) {
	if !IsNetworkURL(rawURL) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("fetched document")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w %d fetching %s", ErrStatus, resp.StatusCode, rawURL)
	}

	r, err := charset.NewReader(io.LimitReader(resp.Body, MaxDocumentSize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", rawURL, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(body), nil
}

// ResolveURL resolves a possibly relative reference against base. ref is
// returned unchanged when either side fails to parse.
func ResolveURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// IsNetworkURL reports whether s is an http or https URL.
func IsNetworkURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
