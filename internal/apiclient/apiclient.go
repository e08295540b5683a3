// Package apiclient is the HTTP facade in front of the admin panel backend:
// it turns structured action parameters into API requests, attaches CSRF
// protection to mutating calls and hands responses back untouched.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/panelgate-dev/panelgate/internal/cookies"
	"github.com/panelgate-dev/panelgate/internal/hostenv"
	"github.com/panelgate-dev/panelgate/internal/logger"
)

const (
	// DefaultTokenEndpoint hangs off the panel origin, not the root path.
	DefaultTokenEndpoint = "/csrf_token"
	// DefaultCookieName persists the CSRF token between calls.
	DefaultCookieName = "sk"
	// CsrfHeader carries the token on every mutating request.
	CsrfHeader = "X-Csrf-Token"
)

// Client handles all communication with the admin panel backend on behalf of
// a host environment. It keeps two HTTP clients, one for the API itself and
// one scoped to the token endpoint, mirroring the two base URLs they are
// built from.
type Client struct {
	env         hostenv.Env
	cookies     cookies.Store
	httpClient  *http.Client
	tokenClient *http.Client

	baseURL       string
	tokenEndpoint string
	cookieName    string
	loginPath     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the transport used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenClient sets the transport used for token endpoint calls.
func WithTokenClient(hc *http.Client) Option {
	return func(c *Client) { c.tokenClient = hc }
}

// WithTokenEndpoint overrides the token endpoint path on the origin.
func WithTokenEndpoint(path string) Option {
	return func(c *Client) { c.tokenEndpoint = path }
}

// WithCookieName overrides the cookie the CSRF token is cached under.
func WithCookieName(name string) Option {
	return func(c *Client) { c.cookieName = name }
}

func New(env hostenv.Env, store cookies.Store, opts ...Option) *Client {
	c := &Client{
		env:           env,
		cookies:       store,
		httpClient:    &http.Client{},
		tokenClient:   &http.Client{},
		baseURL:       resolveBaseURL(env),
		tokenEndpoint: DefaultTokenEndpoint,
		cookieName:    DefaultCookieName,
		loginPath:     strings.TrimSuffix(env.RootPath(), "/") + "/login",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// resolveBaseURL joins the panel origin with the admin root path. Headless
// hosts resolve to an empty base so network calls fail fast.
func resolveBaseURL(env hostenv.Env) string {
	if env.ServerContext() {
		return ""
	}
	return strings.TrimSuffix(env.Origin(), "/") + env.RootPath()
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do builds and sends one API request. withCsrf resolves the token first and
// attaches it as a header; every response is checked for a silent login
// redirect before being handed back as-is.
func (c *Client) do(method, path string, data any, opts *RequestOptions, withCsrf bool) (*http.Response, error) {
	if opts != nil && opts.Method != "" {
		method = opts.Method
	}

	var body io.Reader
	if data != nil {
		jsonBody, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal action payload: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if opts != nil {
		for key, values := range opts.Headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}

	if withCsrf {
		token, err := c.GetToken()
		if err != nil {
			return nil, err
		}
		req.Header.Set(CsrfHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("admin API unavailable: %w", err)
	}

	c.checkForSessionExpiry(resp)
	return resp, nil
}

// checkForSessionExpiry fires the host redirect when the transport silently
// followed a redirect chain that ended on the login page. The response is
// still returned to the caller, this is a side effect, not an error.
func (c *Client) checkForSessionExpiry(resp *http.Response) {
	if resp == nil || resp.Request == nil || resp.Request.URL == nil {
		return
	}
	if !strings.Contains(resp.Request.URL.String(), c.loginPath) {
		return
	}
	logger.Log.Warn("session expired, redirecting to login", "url", resp.Request.URL.String())
	c.env.Redirect(c.loginPath)
}
