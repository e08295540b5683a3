package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/panelgate-dev/panelgate/internal/utils"
)

// Dashboard proxies the backend dashboard payload.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Client.GetDashboard(h.options(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	relay(w, resp)
}

// Page proxies a custom page by name.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Client.GetPage(chi.URLParam(r, "page"), h.options(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	relay(w, resp)
}
