package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/texweave/texweave/pkg/buildinfo"
	"github.com/texweave/texweave/pkg/errors"
	"github.com/texweave/texweave/pkg/pipeline"
	"github.com/texweave/texweave/pkg/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Get(),
	})
}

// handleRender returns the LaTeX text for the request body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	res, ok := s.build(w, r, false)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/x-tex; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, res.TeX)
}

// handleOutline returns Graphviz DOT for the request body.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	res, ok := s.build(w, r, true)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, res.OutlineDOT)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	res, ok := s.build(w, r, false)
	if !ok {
		return
	}
	rec := storage.NewRecord(res.format, res.Title, res.SourceHash, res.TeX, res.Stats.Nodes)
	if err := s.store.Put(r.Context(), rec); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    rec.ID,
		"title": rec.Title,
		"nodes": rec.Nodes,
	})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, "limit must be a non-negative integer", http.StatusBadRequest)
			return
		}
		limit = n
	}
	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.fail(w, err)
		return
	}
	docs := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		docs = append(docs, map[string]any{
			"id":         rec.ID,
			"title":      rec.Title,
			"format":     rec.Format,
			"nodes":      rec.Nodes,
			"created_at": rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docID")
	if err := errors.ValidateDocumentID(id); err != nil {
		s.fail(w, err)
		return
	}
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/x-tex; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, rec.TeX)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docID")
	if err := errors.ValidateDocumentID(id); err != nil {
		s.fail(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// buildResult pairs a pipeline result with the format that produced it.
type buildResult struct {
	*pipeline.Result
	format string
}

// build reads the body and runs the pipeline. On failure it writes the
// error response and returns false.
func (s *Server) build(w http.ResponseWriter, r *http.Request, outline bool) (buildResult, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "request body too large or unreadable", http.StatusRequestEntityTooLarge)
		return buildResult{}, false
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Format:   q.Get("format"),
		Filename: q.Get("filename"),
		Source:   body,
		Class:    s.cfg.Class,
		Packages: s.cfg.Packages,
		Outline:  outline || q.Get("outline") == "true",
		Refresh:  q.Get("refresh") == "true",
	}
	if opts.Format == "" && opts.Filename == "" {
		opts.Format = pipeline.FormatTOML
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, err)
		return buildResult{}, false
	}
	w.Header().Set("X-Build-ID", res.ID.String())
	w.Header().Set("X-Cache", cacheHeader(res.CacheHit))

	format := opts.Format
	if format == "" {
		format, _ = pipeline.InferFormat(opts.Filename)
	}
	return buildResult{Result: res, format: format}, true
}

func cacheHeader(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	writeJSON(w, status, map[string]any{
		"error": errors.UserMessage(err),
		"code":  errors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
