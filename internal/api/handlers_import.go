package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/galleypress/galley/internal/assets"
	"github.com/galleypress/galley/internal/document"
	"github.com/galleypress/galley/internal/importer"
	"github.com/galleypress/galley/internal/paginator"
	"github.com/galleypress/galley/internal/preflight"
)

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !importer.IsSupported(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	doc, err := s.importFile(data, filename)
	if err != nil {
		jsonError(w, "import failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if title := r.FormValue("title"); title != "" {
		doc.Title = title
	}

	format, limit, err := s.resolveLayout(r.FormValue("format"), formInt(r, "soft_limit"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	pages := paginator.Paginate(doc.Content, limit)
	s.paginateStats.Record(time.Since(start))

	start = time.Now()
	report := preflight.NewAnalyzer(preflight.WithPageTarget(limit)).Analyze(doc.Content)
	s.preflightStats.Record(time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"asset":      assets.New(filename, int64(len(data))),
		"title":      doc.Title,
		"content":    doc.Content,
		"format":     format,
		"soft_limit": limit,
		"page_count": len(pages),
		"pages":      pages,
		"preflight":  report,
	})
}

func (s *Server) handleBatchImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	// Import files with bounded concurrency; each slot in results belongs
	// to the file at the same index.
	results := make([]map[string]any, len(files))
	sem := make(chan struct{}, s.cfg.ImportWorkers)
	var wg sync.WaitGroup

	for i, fh := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, fh *multipart.FileHeader) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = s.importOne(fh)
		}(i, fh)
	}
	wg.Wait()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": results})
}

// importOne converts a single uploaded file, reporting failure per file
// rather than failing the whole batch.
func (s *Server) importOne(fh *multipart.FileHeader) map[string]any {
	filename := sanitizeFilename(fh.Filename)
	if !importer.IsSupported(filename) {
		return map[string]any{
			"filename": filename,
			"error":    fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)),
		}
	}

	f, err := fh.Open()
	if err != nil {
		return map[string]any{"filename": filename, "error": "failed to open file"}
	}

	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	f.Close()
	if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
		return map[string]any{"filename": filename, "error": "file too large or read error"}
	}

	doc, err := s.importFile(data, filename)
	if err != nil {
		return map[string]any{"filename": filename, "error": "import failed: " + err.Error()}
	}

	return map[string]any{
		"filename": filename,
		"asset":    assets.New(filename, int64(len(data))),
		"title":    doc.Title,
		"content":  doc.Content,
	}
}

// importFile runs one uploaded file through the importer for its type.
func (s *Server) importFile(data []byte, filename string) (*document.Document, error) {
	imp, err := importer.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pdfImp, ok := imp.(*importer.PDFImporter); ok {
		pdfImp.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}
	return imp.Import(bytes.NewReader(data), filename)
}

func formInt(r *http.Request, key string) int {
	if v := r.FormValue(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return 0
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
