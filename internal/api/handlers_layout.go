package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/galleypress/galley/internal/layout"
	"github.com/galleypress/galley/internal/paginator"
	"github.com/galleypress/galley/internal/preflight"
)

type layoutRequest struct {
	Content   string `json:"content"`
	Format    string `json:"format"`
	SoftLimit int    `json:"soft_limit"`
}

// decodeJSON reads a JSON request body, capped at the upload limit.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// resolveLayout picks the effective format and page budget for a request:
// an explicit soft_limit wins, then the named format's page target, then
// the server default.
func (s *Server) resolveLayout(formatName string, softLimit int) (layout.Format, int, error) {
	f, ok := layout.Parse(formatName)
	if !ok {
		return "", 0, fmt.Errorf("unknown format %q", formatName)
	}
	if softLimit > 0 {
		return f, softLimit, nil
	}
	if formatName != "" {
		if spec, ok := f.Spec(); ok {
			return f, spec.PageTarget, nil
		}
	}
	return f, s.cfg.DefaultSoftLimit, nil
}

func (s *Server) handlePaginate(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	format, limit, err := s.resolveLayout(req.Format, req.SoftLimit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	pages := paginator.Paginate(req.Content, limit)
	s.paginateStats.Record(time.Since(start))

	forced := 0
	for _, p := range pages {
		if p.Forced {
			forced++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"format":        format,
		"soft_limit":    limit,
		"page_count":    len(pages),
		"forced_breaks": forced,
		"pages":         pages,
	})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pages []paginator.Page `json:"pages"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"content": paginator.JoinPages(req.Pages),
	})
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	format, limit, err := s.resolveLayout(req.Format, req.SoftLimit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	report := preflight.NewAnalyzer(preflight.WithPageTarget(limit)).Analyze(req.Content)
	s.preflightStats.Record(time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"format":     format,
		"soft_limit": limit,
		"severity":   report.Severity,
		"issues":     report.Issues,
	})
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"default": s.cfg.DefaultFormat,
		"formats": layout.All(),
	})
}
