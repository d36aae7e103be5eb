package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logging"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// TaxonomyResponse describes the taxonomy snapshot currently in use.
type TaxonomyResponse struct {
	Source  string           `json:"source"`
	Size    int              `json:"size"`
	Entries []taxonomy.Entry `json:"entries,omitempty"`
}

// validatable is implemented by every request type.
type validatable interface {
	Validate() error
}

// decodeRequest reads a JSON body into req and runs its validation.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, req validatable) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrPayloadTooLarge{Limit: tooLarge.Limit}
		}
		if errors.Is(err, io.EOF) {
			return &ErrValidation{Field: "body", Message: "request body is empty"}
		}
		return &ErrValidation{Field: "body", Message: "invalid request body: " + err.Error()}
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return nil
}

// document flattens an input to plain text and builds a document with the given role.
func document(field string, in *types.DocumentInput, role types.Role) (types.Document, error) {
	flat, err := ingestion.FlattenInput(in)
	if err != nil {
		return types.Document{}, &analysis.InvalidInputError{Field: field + ".raw_text", Message: "HTML could not be parsed", Cause: err}
	}
	return analysis.DocumentFromInput(field, flat, role)
}

// handleAnalyze scores a resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	resume, err := document("resume", req.Resume, types.RoleResume)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	job, err := document("job_description", req.JobDescription, types.RoleJobDescription)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	engine := s.engine
	if req.SuggestLimit > 0 {
		engine = engine.WithSuggestLimit(req.SuggestLimit)
	}

	report, err := engine.Analyze(r.Context(), resume, job)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleCompare compares two resumes, or builds a pairwise matrix for more than two.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req types.CompareRequest
	if err := s.decodeRequest(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	docs := make([]types.Document, len(req.Documents))
	for i, in := range req.Documents {
		doc, err := document(fmt.Sprintf("documents[%d]", i), in, types.RoleResume)
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		docs[i] = doc
	}

	if len(docs) == 2 {
		report, err := s.engine.Compare(r.Context(), docs[0], docs[1])
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, report)
		return
	}

	matrix, err := s.engine.CompareMany(r.Context(), docs)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, matrix)
}

// handleTaxonomy returns the current taxonomy snapshot.
// Entries are omitted unless ?entries=true is given.
func (s *Server) handleTaxonomy(w http.ResponseWriter, r *http.Request) {
	tax, err := s.engine.Store().Get()
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	resp := TaxonomyResponse{Source: tax.Source(), Size: tax.Len()}
	if r.URL.Query().Get("entries") == "true" {
		resp.Entries = tax.Entries()
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleTaxonomyReload rebuilds the taxonomy from its source and swaps it in.
// Analyses already running keep the snapshot they started with.
func (s *Server) handleTaxonomyReload(w http.ResponseWriter, r *http.Request) {
	tax, err := s.engine.Store().Reload(r.Context(), s.loader)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("source", tax.Source()).
		Int("size", tax.Len()).
		Msg("taxonomy reloaded")
	s.jsonResponse(w, http.StatusOK, TaxonomyResponse{Source: tax.Source(), Size: tax.Len()})
}

// handleError maps err to a status code and writes it. Internal errors are logged
// and replaced with a generic message.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logging.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("request failed")
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, ErrorMessage(err))
}
