// Package apiclient is the HTTP client the MVC pages use to talk to the
// JSON data API.
//
// The caller's session cookie is forwarded on every call made on behalf of
// a signed-in user, so the API authorizes the browser's identity. The client
// keeps no cookie jar and never follows redirects; a 3xx from the API is
// reported as a failure.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/dalemusser/groupflight/internal/app/system/metrics"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader correlates an MVC request with the API calls it makes.
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 4 << 10

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// Client calls the data API at a fixed base URL.
type Client struct {
	base       *url.URL
	hc         *http.Client
	cookieName string
	metrics    *metrics.Metrics
	log        *zap.Logger
}

// New returns a client for the API rooted at baseURL (for example
// "http://localhost:8080/api/"). cookieName is the session cookie to
// forward. m may be nil.
func New(baseURL, cookieName string, m *metrics.Metrics, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("api base url %q must be an absolute http(s) URL", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base: u,
		hc: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		cookieName: cookieName,
		metrics:    m,
		log:        logger,
	}, nil
}

// GetJSON issues GET path and decodes a 2xx body into out (when non-nil).
// The returned status is zero when the request never got an answer.
func (c *Client) GetJSON(ctx context.Context, from *http.Request, path string, out any) (int, error) {
	return c.do(ctx, from, http.MethodGet, path, nil, out)
}

// PostJSON issues POST path with body encoded as JSON (no body when nil).
func (c *Client) PostJSON(ctx context.Context, from *http.Request, path string, body, out any) (int, error) {
	return c.do(ctx, from, http.MethodPost, path, body, out)
}

func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, err
	}
	return c.base.ResolveReference(ref), nil
}

func (c *Client) do(ctx context.Context, from *http.Request, method, path string, body, out any) (int, error) {
	target, err := c.resolve(path)
	if err != nil {
		return 0, fmt.Errorf("api path %q: %w", path, err)
	}

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode %s body: %w", path, err)
		}
		rdr = bytes.NewReader(buf)
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Upstream())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target.String(), rdr)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := requestID(from)
	req.Header.Set(RequestIDHeader, reqID)
	c.forwardSession(from, req)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(method, "transport_error")
		c.log.Warn("api call failed",
			zap.String("method", method), zap.String("path", path),
			zap.String("request_id", reqID), zap.Error(err))
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.metrics.ObserveUpstream(method, outcome(resp.StatusCode))
		se := &StatusError{Method: method, Path: path, Status: resp.StatusCode, Message: errorMessage(resp.Body)}
		c.log.Info("api call rejected",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("request_id", reqID),
			zap.String("message", se.Message))
		return resp.StatusCode, se
	}
	c.metrics.ObserveUpstream(method, "ok")

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return resp.StatusCode, nil
}

// forwardSession copies the caller's session cookie onto req. Anonymous
// callers' cookies are never forwarded.
func (c *Client) forwardSession(from, req *http.Request) {
	if from == nil || c.cookieName == "" {
		return
	}
	if _, ok := auth.CurrentUser(from); !ok {
		return
	}
	if ck, err := from.Cookie(c.cookieName); err == nil {
		req.AddCookie(&http.Cookie{Name: ck.Name, Value: ck.Value})
	}
}

func requestID(from *http.Request) string {
	if from != nil {
		if id := strings.TrimSpace(from.Header.Get(RequestIDHeader)); id != "" {
			return id
		}
	}
	return uuid.NewString()
}

func outcome(status int) string {
	switch {
	case status >= 500:
		return "server_error"
	case status >= 400:
		return "client_error"
	default:
		return "redirect"
	}
}

// errorMessage pulls "error" out of a JSON error body, falling back to the
// raw (truncated) text.
func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	var er struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &er) == nil && er.Error != "" {
		return er.Error
	}
	return strings.TrimSpace(string(raw))
}
