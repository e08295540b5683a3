// Package hostenv describes the capabilities the admin panel client needs
// from whatever hosts it, so the host is injected instead of probed through
// globals at call time.
package hostenv

// Env exposes where the panel is served from, the mount path of the admin
// app, a way to force a navigation when the backend bounces a request to the
// login page, and whether there is a live panel context at all.
type Env interface {
	Origin() string
	RootPath() string
	Redirect(target string)
	ServerContext() bool
}

// Panel is an Env bound to a live admin panel origin.
type Panel struct {
	origin   string
	rootPath string
	redirect func(target string)
}

func New(origin, rootPath string, redirect func(target string)) *Panel {
	if redirect == nil {
		redirect = func(string) {}
	}
	return &Panel{origin: origin, rootPath: rootPath, redirect: redirect}
}

func (p *Panel) Origin() string { return p.origin }

func (p *Panel) RootPath() string { return p.rootPath }

func (p *Panel) Redirect(target string) { p.redirect(target) }

func (p *Panel) ServerContext() bool { return false }

// Headless is the environment of code running with no panel attached.
// The base URL resolves to an empty string and redirects go nowhere.
type Headless struct{}

func (Headless) Origin() string { return "" }

func (Headless) RootPath() string { return "" }

func (Headless) Redirect(string) {}

func (Headless) ServerContext() bool { return true }
