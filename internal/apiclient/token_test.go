package apiclient

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelgate-dev/panelgate/internal/cookies"
)

func TestGetTokenFetchesOnceAndCachesCookie(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, DefaultTokenEndpoint, r.URL.Path)
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sk":"abc","max-age-seconds":3600}`))
	}))
	defer ts.Close()

	store := cookies.NewMemory()
	c := New(&fakeEnv{origin: ts.URL}, store)

	token, err := c.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	// The cookie now holds the token under the endpoint's max-age.
	cached, ok := store.Get(DefaultCookieName)
	require.True(t, ok)
	assert.Equal(t, "abc", cached)

	// Subsequent calls are served from the cookie, not the network.
	token, err = c.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.Equal(t, int64(1), calls.Load(), "token endpoint should be hit exactly once")
}

func TestGetTokenTrustsExistingCookie(t *testing.T) {
	var calls atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer ts.Close()

	store := cookies.NewMemory()
	store.Set(DefaultCookieName, "preset", cookies.Options{MaxAge: 60})

	c := New(&fakeEnv{origin: ts.URL}, store)
	token, err := c.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "preset", token)
	assert.Equal(t, int64(0), calls.Load(), "cookie hit must not touch the network")
}

func TestGetTokenWrapsEndpointFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c := newTestClient(&fakeEnv{origin: ts.URL})
	_, err := c.GetToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch CSRF token")
	assert.Contains(t, err.Error(), "500", "wrapped error should carry the original cause")
}

func TestGetTokenRejectsMalformedResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"max-age-seconds":3600}`)) // sk missing
	}))
	defer ts.Close()

	c := newTestClient(&fakeEnv{origin: ts.URL})
	_, err := c.GetToken()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch CSRF token")
}

func TestGetTokenCustomEndpointAndCookie(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/token", r.URL.Path)
		w.Write([]byte(`{"sk":"xyz","max-age-seconds":60}`))
	}))
	defer ts.Close()

	store := cookies.NewMemory()
	c := New(&fakeEnv{origin: ts.URL}, store,
		WithTokenEndpoint("/auth/token"),
		WithCookieName("panel_sk"),
	)

	token, err := c.GetToken()
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)

	cached, ok := store.Get("panel_sk")
	require.True(t, ok)
	assert.Equal(t, "xyz", cached)
}

// The cookie store is page-wide shared state; concurrent GetToken calls race
// read-then-write and the design accepts last-write-wins.
func TestGetTokenConcurrentLastWriteWins(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sk":"shared","max-age-seconds":3600}`))
	}))
	defer ts.Close()

	store := cookies.NewMemory()
	c := New(&fakeEnv{origin: ts.URL}, store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := c.GetToken()
			assert.NoError(t, err)
			assert.Equal(t, "shared", token)
		}()
	}
	wg.Wait()

	cached, ok := store.Get(DefaultCookieName)
	require.True(t, ok)
	assert.Equal(t, "shared", cached)
}
