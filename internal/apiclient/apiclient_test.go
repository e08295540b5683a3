package apiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelgate-dev/panelgate/internal/cookies"
	"github.com/panelgate-dev/panelgate/internal/hostenv"
)

// fakeEnv records redirects instead of navigating anywhere.
type fakeEnv struct {
	origin    string
	rootPath  string
	server    bool
	redirects []string
}

func (e *fakeEnv) Origin() string         { return e.origin }
func (e *fakeEnv) RootPath() string       { return e.rootPath }
func (e *fakeEnv) Redirect(target string) { e.redirects = append(e.redirects, target) }
func (e *fakeEnv) ServerContext() bool    { return e.server }

func newTestClient(env *fakeEnv, opts ...Option) *Client {
	return New(env, cookies.NewMemory(), opts...)
}

func tokenHandler(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Path != DefaultTokenEndpoint {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"sk":"test-token","max-age-seconds":3600}`))
	return true
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		env      hostenv.Env
		expected string
	}{
		{
			name:     "origin plus root path",
			env:      hostenv.New("https://example.com", "/admin", nil),
			expected: "https://example.com/admin",
		},
		{
			name:     "trailing slash on origin is trimmed",
			env:      hostenv.New("https://example.com/", "/admin", nil),
			expected: "https://example.com/admin",
		},
		{
			name:     "empty root path",
			env:      hostenv.New("https://example.com", "", nil),
			expected: "https://example.com",
		},
		{
			name:     "headless host resolves to empty string",
			env:      hostenv.Headless{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.env, cookies.NewMemory())
			assert.Equal(t, tt.expected, c.BaseURL())
		})
	}
}

func TestRequestOptionsForwarded(t *testing.T) {
	var gotMethod, gotHeader string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := newTestClient(&fakeEnv{origin: ts.URL})
	resp, err := c.GetPage("analytics", &RequestOptions{
		Method:  http.MethodHead,
		Headers: http.Header{"X-Request-Id": {"req-42"}},
	})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.MethodHead, gotMethod, "explicit method override should win")
	assert.Equal(t, "req-42", gotHeader, "extra headers should be merged in")
}

func TestSessionExpiryRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		// Backend bounces an expired session to the login page.
		http.Redirect(w, r, "/admin/login", http.StatusFound)
	})
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	env := &fakeEnv{origin: ts.URL, rootPath: "/admin"}
	c := newTestClient(env)

	resp, err := c.GetDashboard(nil)
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, env.redirects, 1, "exactly one host redirect expected")
	assert.Equal(t, "/admin/login", env.redirects[0])
}

func TestNoRedirectOnNormalResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	env := &fakeEnv{origin: ts.URL, rootPath: "/admin"}
	c := newTestClient(env)

	resp, err := c.GetDashboard(nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, env.redirects)
}

func TestTransportErrorPropagates(t *testing.T) {
	// Point at a closed server so the transport itself fails.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := ts.URL
	ts.Close()

	c := newTestClient(&fakeEnv{origin: addr})
	_, err := c.GetDashboard(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin API unavailable")
}

func TestNon2xxIsNotIntercepted(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := newTestClient(&fakeEnv{origin: ts.URL})
	resp, err := c.GetDashboard(nil)
	require.NoError(t, err, "non-2xx statuses pass through, they are not client errors")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}
