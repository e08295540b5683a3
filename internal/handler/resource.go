package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/panelgate-dev/panelgate/internal/apiclient"
	"github.com/panelgate-dev/panelgate/internal/domain"
	"github.com/panelgate-dev/panelgate/internal/utils"
)

// actionPayload decodes the request body into the generic payload the
// client forwards. GET-shaped requests carry none.
func actionPayload(r *http.Request) (any, error) {
	if r.Method == http.MethodGet || r.Body == nil || r.ContentLength == 0 {
		return nil, nil
	}
	var data map[string]any
	if err := utils.Decode(r.Body, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// ResourceAction invokes a named action on a resource type.
func (h *Handler) ResourceAction(w http.ResponseWriter, r *http.Request) {
	data, err := actionPayload(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	resp, err := h.Client.ResourceAction(apiclient.ResourceActionParams{
		ResourceID: chi.URLParam(r, "resource"),
		ActionName: chi.URLParam(r, "action"),
		Query:      r.URL.Query().Get("query"),
		Data:       data,
	}, h.options(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	relay(w, resp)
}

// RecordAction invokes an action on a single record.
func (h *Handler) RecordAction(w http.ResponseWriter, r *http.Request) {
	data, err := actionPayload(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	resp, err := h.Client.RecordAction(apiclient.RecordActionParams{
		ResourceID: chi.URLParam(r, "resource"),
		RecordID:   chi.URLParam(r, "record"),
		ActionName: chi.URLParam(r, "action"),
		Data:       data,
	}, h.options(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	relay(w, resp)
}

// BulkAction invokes an action on a comma-separated set of record ids.
func (h *Handler) BulkAction(w http.ResponseWriter, r *http.Request) {
	data, err := actionPayload(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	resp, err := h.Client.BulkAction(apiclient.BulkActionParams{
		ResourceID: chi.URLParam(r, "resource"),
		RecordIDs:  splitRecordIDs(r.URL.Query().Get("recordIds")),
		ActionName: chi.URLParam(r, "action"),
		Data:       data,
	}, h.options(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	relay(w, resp)
}

// Search runs the built-in search action and answers with the matched
// records.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	records, err := h.Client.SearchRecords(
		chi.URLParam(r, "resource"),
		r.URL.Query().Get("query"),
		r.URL.Query().Get("searchProperty"),
	)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(domain.SearchResponse{Records: records}); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
	}
}

func splitRecordIDs(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		result = append(result, strings.TrimSpace(part))
	}
	return result
}
