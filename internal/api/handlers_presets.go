package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/galleypress/galley/internal/layout"
	"github.com/galleypress/galley/internal/presets"
)

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	list, err := s.presets.Load()
	if err != nil {
		jsonError(w, "failed to load presets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"presets": list})
}

func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	var p presets.Preset
	if !s.decodeJSON(w, r, &p) {
		return
	}
	p.ID = "" // always minted server-side on create
	if err := normalizePreset(&p); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := s.presets.Load()
	if err != nil {
		jsonError(w, "failed to load presets: "+err.Error(), http.StatusInternalServerError)
		return
	}
	list = append(list, p)
	if err := s.presets.Save(list); err != nil {
		jsonError(w, "failed to save presets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// handleReplacePresets swaps the whole preset list in one call, the way
// the editor saves its settings panel.
func (s *Server) handleReplacePresets(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Presets []presets.Preset `json:"presets"`
	}
	if !s.decodeJSON(w, r, &req) {
		return
	}

	list := make([]presets.Preset, 0, len(req.Presets))
	for i := range req.Presets {
		p := req.Presets[i]
		if err := normalizePreset(&p); err != nil {
			jsonError(w, fmt.Sprintf("preset %d: %s", i, err), http.StatusBadRequest)
			return
		}
		list = append(list, p)
	}

	if err := s.presets.Save(list); err != nil {
		jsonError(w, "failed to save presets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"presets": list})
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	presetID := chi.URLParam(r, "presetID")

	list, err := s.presets.Load()
	if err != nil {
		jsonError(w, "failed to load presets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	kept := make([]presets.Preset, 0, len(list))
	for _, p := range list {
		if p.ID != presetID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(list) {
		jsonError(w, "preset not found", http.StatusNotFound)
		return
	}

	if err := s.presets.Save(kept); err != nil {
		jsonError(w, "failed to save presets: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": presetID})
}

// normalizePreset validates a preset and fills in generated fields. An
// empty format falls back to the default, a missing soft limit to the
// format's page target.
func normalizePreset(p *presets.Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset name is required")
	}
	f, ok := layout.Parse(p.Format)
	if !ok {
		return fmt.Errorf("unknown format %q", p.Format)
	}
	p.Format = string(f)
	if p.SoftLimit <= 0 {
		if spec, ok := f.Spec(); ok {
			p.SoftLimit = spec.PageTarget
		}
	}
	if p.ID == "" {
		p.ID = newPresetID(p.Name)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return nil
}

func newPresetID(name string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%d", name, time.Now().UnixNano())))
	return hex.EncodeToString(sum[:])[:16]
}
