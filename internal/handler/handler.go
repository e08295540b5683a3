package handler

import (
	"io"
	"net/http"

	"github.com/panelgate-dev/panelgate/internal/apiclient"
	"github.com/panelgate-dev/panelgate/internal/config"
	"github.com/panelgate-dev/panelgate/internal/logger"
	"github.com/panelgate-dev/panelgate/internal/middleware"
)

// Handler translates gateway routes into admin API client calls and streams
// the backend payload through untouched.
type Handler struct {
	Client *apiclient.Client
	Public config.Public
}

func New(client *apiclient.Client, publicCfg config.Public) *Handler {
	return &Handler{
		Client: client,
		Public: publicCfg,
	}
}

// Health reports gateway liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// options builds per-call transport options: the correlation id travels to
// the backend on every proxied call.
func (h *Handler) options(r *http.Request) *apiclient.RequestOptions {
	headers := http.Header{}
	if id := middleware.GetRequestID(r); id != "" {
		headers.Set(middleware.RequestIDHeader, id)
	}
	return &apiclient.RequestOptions{Headers: headers}
}

// relay copies status, content type and body of a backend response through
// to the panel user.
func relay(w http.ResponseWriter, resp *http.Response) {
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Log.Error("failed to relay backend response", "error", err)
	}
}
