package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/bestreads/bestreads/internal/logger"
	"github.com/go-chi/chi/v5"
)

const (
	itemIDParam = "item_id"

	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

func (h *Handler) getDescription(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r, contentTypeText)
	if !ok {
		return
	}

	description, err := h.services.CatalogService.GetDescription(r.Context(), itemID)
	if err != nil {
		h.respondError(w, r, contentTypeText, itemID, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(description))
}

func (h *Handler) getInfo(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r, contentTypeJSON)
	if !ok {
		return
	}

	info, err := h.services.CatalogService.GetInfo(r.Context(), itemID)
	if err != nil {
		h.respondError(w, r, contentTypeJSON, itemID, err)
		return
	}

	respondJSON(w, r, http.StatusOK, info)
}

func (h *Handler) getReviews(w http.ResponseWriter, r *http.Request) {
	itemID, ok := h.itemID(w, r, contentTypeJSON)
	if !ok {
		return
	}

	reviews, err := h.services.CatalogService.GetReviews(r.Context(), itemID)
	if err != nil {
		h.respondError(w, r, contentTypeJSON, itemID, err)
		return
	}

	respondJSON(w, r, http.StatusOK, reviews)
}

// itemIDFromRequest returns the decoded item_id segment. chi matches against
// the escaped path whenever the request carries one, so the parameter may
// still hold percent-escapes.
func itemIDFromRequest(r *http.Request) (string, error) {
	itemID := chi.URLParam(r, itemIDParam)
	if r.URL.RawPath == "" {
		return itemID, nil
	}
	return url.PathUnescape(itemID)
}

func (h *Handler) itemID(w http.ResponseWriter, r *http.Request, contentType string) (string, bool) {
	itemID, err := itemIDFromRequest(r)
	if err != nil {
		raw := chi.URLParam(r, itemIDParam)
		logger.FromRequest(r).Debug().Err(err).Str("item_id", raw).Msg("malformed item id")
		writeMessage(w, contentType, http.StatusBadRequest, noResultsMessage(raw))
		return "", false
	}
	return itemID, true
}

// listCatalog writes {"<collection>": [{"title": ..., "<id field>": ...}]}.
// The keys come from configuration, so entries are rendered as maps.
func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.CatalogService.ListCatalog(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listCatalog").Msg("error listing catalog")
		writeMessage(w, contentTypeJSON, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	items := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		items = append(items, map[string]string{
			"title":           entry.Title,
			h.catalog.IDField: entry.ItemID,
		})
	}

	respondJSON(w, r, http.StatusOK, map[string][]map[string]string{
		h.catalog.Collection: items,
	})
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, contentType, itemID string, err error) {
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("item_id", itemID).Msg("server fault while reading item")
		writeMessage(w, contentType, status, msgInternalServerError)
		return
	}

	writeMessage(w, contentType, status, noResultsMessage(itemID))
}

// writeMessage writes msg with the route's own content type. http.Error is
// not used because it forces text/plain.
func writeMessage(w http.ResponseWriter, contentType string, status int, msg string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	w.Write([]byte(msg))
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "respondJSON").Msg("error encoding response")
		writeMessage(w, contentTypeJSON, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	w.Write(body)
}
