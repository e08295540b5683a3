package setup

import (
	"strings"

	"github.com/panelgate-dev/panelgate/internal/apiclient"
	"github.com/panelgate-dev/panelgate/internal/config"
	"github.com/panelgate-dev/panelgate/internal/cookies"
	"github.com/panelgate-dev/panelgate/internal/handler"
	"github.com/panelgate-dev/panelgate/internal/hostenv"
	"github.com/panelgate-dev/panelgate/internal/logger"
	"github.com/panelgate-dev/panelgate/internal/middleware"
)

const defaultSessionCookie = "accessToken"

type Dependencies struct {
	Handler *handler.Handler
	Session *middleware.Session
	Public  config.Public
}

func SetupDependencies(cfg *config.Config) *Dependencies {
	// The gateway process is the panel host: the backend origin is fixed by
	// config and a forced login redirect only gets logged here, the per-user
	// bounce is the session middleware's job.
	env := hostenv.New(cfg.Public.API.Origin, cfg.Public.API.RootPath, func(target string) {
		logger.Log.Warn("backend forced a login redirect", "target", target)
	})

	var opts []apiclient.Option
	if cfg.Public.API.TokenEndpoint != "" {
		opts = append(opts, apiclient.WithTokenEndpoint(cfg.Public.API.TokenEndpoint))
	}
	if cfg.Public.API.CookieName != "" {
		opts = append(opts, apiclient.WithCookieName(cfg.Public.API.CookieName))
	}
	client := apiclient.New(env, cookies.NewMemory(), opts...)

	sessionCookie := cfg.Public.API.SessionCookie
	if sessionCookie == "" {
		sessionCookie = defaultSessionCookie
	}
	loginURL := strings.TrimSuffix(cfg.Public.API.Origin, "/") +
		strings.TrimSuffix(cfg.Public.API.RootPath, "/") + "/login"
	session := middleware.NewSession(cfg.SessionKey(), sessionCookie, loginURL, cfg.Public.SecureCookies)

	return &Dependencies{
		Handler: handler.New(client, cfg.Public),
		Session: session,
		Public:  cfg.Public,
	}
}
