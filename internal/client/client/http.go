package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/jokecli/internal/common"
	"github.com/dmitrijs2005/jokecli/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient implements Client over net/http. A single value is meant to be
// built at start-up and reused; calls are sequential in this program, but
// the underlying http.Client is safe for concurrent use anyway.
type HTTPClient struct {
	httpClient *http.Client
	userAgent  string
	logger     logging.Logger

	// newRequestID is a test seam for uuid.NewString.
	newRequestID func() string
}

// NewHTTPClient returns a client whose requests are bounded by timeout
// (zero disables the bound) and carry userAgent when it is non-empty.
func NewHTTPClient(timeout time.Duration, userAgent string, logger logging.Logger) *HTTPClient {
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTPClient{
		httpClient:   &http.Client{Timeout: timeout},
		userAgent:    userAgent,
		logger:       logger,
		newRequestID: uuid.NewString,
	}
}

func (c *HTTPClient) Fetch(ctx context.Context, rawURL string, accept string) (*Response, error) {
	if accept == "" {
		accept = common.ContentTypeJSON
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: new request: %v", common.ErrTransport, err)
	}
	if !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("%w: unsupported URL scheme: %q", common.ErrTransport, req.URL.Scheme)
	}

	id := c.newRequestID()
	req.Header.Set("Accept", accept)
	req.Header.Set(common.RequestIDHeaderName, id)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	log := c.logger.With("request_id", id)
	log.Debug(ctx, "sending request", "url", rawURL)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", common.ErrTransport, err)
	}

	log.Debug(ctx, "response received", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(started))

	return &Response{StatusCode: resp.StatusCode, Reason: reason(resp), Body: body}, nil
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// reason extracts "Not Found" from a "404 Not Found" status line, falling
// back to the standard text for the code.
func reason(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
