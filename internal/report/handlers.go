package report

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/zombor/patrol-reports/internal/penalcode"
)

const (
	kindCitation = "citation"
	kindArrest   = "arrest"

	// maxBodySize bounds submissions; arrests may carry a base64 mugshot.
	maxBodySize = 16 << 20
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

type submitFailure struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// writeSubmitError maps a submission error to its response and returns the
// metrics outcome.
func writeSubmitError(w http.ResponseWriter, err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, submitFailure{
			Message: "Validation failed",
			Errors:  verr.Errors,
		})
		return outcomeInvalid
	}
	writeJSON(w, http.StatusInternalServerError, submitFailure{
		Message: "Internal server error",
	})
	return outcomeError
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.Warn("Error decoding request body", "path", r.URL.Path, "error", err)
		message := "Invalid request body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			message = "Request body is too large"
		}
		writeJSON(w, http.StatusBadRequest, submitFailure{Message: message})
		return false
	}
	return true
}

// handleSubmitCitation validates and stores a citation
func (s *Server) handleSubmitCitation(w http.ResponseWriter, r *http.Request) {
	var req CitationRequest
	if !decodeBody(w, r, &req) {
		s.metrics.observe(kindCitation, outcomeInvalid)
		return
	}

	citation, err := s.service.SubmitCitation(r.Context(), req)
	if err != nil {
		if !errors.As(err, new(*ValidationError)) {
			slog.Error("Error submitting citation", "error", err)
		}
		s.metrics.observe(kindCitation, writeSubmitError(w, err))
		return
	}

	s.metrics.observe(kindCitation, outcomeAccepted)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"citation": citation,
		"message":  "Citation submitted successfully",
	})
}

// handleListCitations returns a list of all citations
func (s *Server) handleListCitations(w http.ResponseWriter, r *http.Request) {
	citations, err := s.service.ListCitations()
	if err != nil {
		slog.Error("Error listing citations", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch citations"})
		return
	}
	writeJSON(w, http.StatusOK, citations)
}

// handleGetCitation returns a single citation
func (s *Server) handleGetCitation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid citation ID"})
		return
	}

	citation, err := s.service.GetCitation(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Citation not found"})
			return
		}
		slog.Error("Error getting citation", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch citation"})
		return
	}
	writeJSON(w, http.StatusOK, citation)
}

// handleSubmitArrest validates and publishes an arrest report
func (s *Server) handleSubmitArrest(w http.ResponseWriter, r *http.Request) {
	var req ArrestRequest
	if !decodeBody(w, r, &req) {
		s.metrics.observe(kindArrest, outcomeInvalid)
		return
	}

	arrest, err := s.service.SubmitArrest(r.Context(), req)
	if err != nil {
		if !errors.As(err, new(*ValidationError)) {
			slog.Error("Error submitting arrest report", "error", err)
		}
		s.metrics.observe(kindArrest, writeSubmitError(w, err))
		return
	}

	s.metrics.observe(kindArrest, outcomeAccepted)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"arrest":  arrest,
		"id":      arrest.ID,
		"message": "Arrest report submitted successfully",
	})
}

// handleListArrests returns an empty list; arrests are not stored
func (s *Server) handleListArrests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.ListArrests())
}

// handlePenalCodes lists a catalog so clients can render the code picker
func (s *Server) handlePenalCodes(w http.ResponseWriter, r *http.Request) {
	catalog, ok := penalcode.ByName(r.PathValue("catalog"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Unknown catalog"})
		return
	}

	body := map[string]any{
		"catalog": catalog.Name(),
		"codes":   catalog.Entries(),
	}
	if catalog == penalcode.Arrest {
		body["categories"] = penalcode.Categories
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
