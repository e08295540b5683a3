// Package cookies holds the cookie store the panel client caches its CSRF
// token in. Expiry is the store's job: a value past its max-age must never
// come back from Get, so the client can trust a present cookie without
// re-validating it.
package cookies

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Options are the cookie attributes the client sets. Zero values mean
// "attribute absent"; MaxAge < 0 deletes the cookie.
type Options struct {
	Path     string
	Expires  time.Time
	MaxAge   int // seconds
	Secure   bool
	HttpOnly bool
}

// Store is read/write access to named cookies.
// Concurrent Set calls race as last-write-wins, same as a shared cookie jar.
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string, opts Options)
}

// Memory is a TTL-enforcing in-process Store.
type Memory struct {
	c *gocache.Cache
}

func NewMemory() *Memory {
	return &Memory{c: gocache.New(gocache.NoExpiration, time.Minute)}
}

func (m *Memory) Get(name string) (string, bool) {
	v, ok := m.c.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *Memory) Set(name, value string, opts Options) {
	if opts.MaxAge < 0 {
		m.c.Delete(name)
		return
	}
	m.c.Set(name, value, ttl(opts))
}

// ttl picks the cookie lifetime: max-age wins over an absolute expiry,
// neither means the cookie lives until the process does.
func ttl(opts Options) time.Duration {
	if opts.MaxAge > 0 {
		return time.Duration(opts.MaxAge) * time.Second
	}
	if !opts.Expires.IsZero() {
		return time.Until(opts.Expires)
	}
	return gocache.NoExpiration
}
