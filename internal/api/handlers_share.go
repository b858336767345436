package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/galleypress/galley/internal/paginator"
	"github.com/galleypress/galley/internal/sharelink"
)

func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title     string `json:"title"`
		Content   string `json:"content"`
		Format    string `json:"format"`
		SoftLimit int    `json:"soft_limit"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}

	format, limit, err := s.resolveLayout(req.Format, req.SoftLimit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := s.share.Encode(sharelink.Payload{
		Title:     req.Title,
		Content:   req.Content,
		Format:    string(format),
		SoftLimit: limit,
	})
	if err != nil {
		jsonError(w, "failed to encode share link: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"token": token,
		"url":   "/api/share/" + token,
	})
}

// handleResolveShare opens a shared draft straight into its paginated
// form. Every decode failure looks the same to the caller.
func (s *Server) handleResolveShare(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	payload, err := s.share.Decode(token)
	if err != nil {
		jsonError(w, "share link not found or invalid", http.StatusNotFound)
		return
	}

	format, limit, err := s.resolveLayout(payload.Format, payload.SoftLimit)
	if err != nil {
		// Token predates a format rename; fall back to defaults.
		format, limit, _ = s.resolveLayout("", 0)
	}

	start := time.Now()
	pages := paginator.Paginate(payload.Content, limit)
	s.paginateStats.Record(time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"title":      payload.Title,
		"content":    payload.Content,
		"format":     format,
		"soft_limit": limit,
		"page_count": len(pages),
		"pages":      pages,
	})
}
