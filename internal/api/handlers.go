package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	errs "github.com/matzehuels/mvnsearch/pkg/errors"
	"github.com/matzehuels/mvnsearch/pkg/integrations"
	"github.com/matzehuels/mvnsearch/pkg/integrations/maven"
	"github.com/matzehuels/mvnsearch/pkg/search"
)

type searchResponse struct {
	Dependencies []maven.Dependency `json:"dependencies"`
}

type versionsResponse struct {
	Versions []string `json:"versions"`
}

type formatResponse struct {
	Snippet string `json:"snippet"`
}

type errorResponse struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if err := errs.ValidateSearchTerm(term); err != nil {
		s.writeError(w, r, err)
		return
	}

	deps, err := s.fetcher.FetchSearch(r.Context(), term)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, searchResponse{Dependencies: deps})
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	groupID := strings.TrimSpace(q.Get("groupId"))
	artifactID := strings.TrimSpace(q.Get("artifactId"))
	if err := errs.ValidateCoordinate(groupID, artifactID); err != nil {
		s.writeError(w, r, err)
		return
	}

	versions, err := s.fetcher.FetchVersions(r.Context(), groupID, artifactID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, versionsResponse{Versions: versions})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	groupID := strings.TrimSpace(q.Get("groupId"))
	artifactID := strings.TrimSpace(q.Get("artifactId"))
	version := strings.TrimSpace(q.Get("version"))

	if err := errs.ValidateCoordinate(groupID, artifactID); err != nil {
		s.writeError(w, r, err)
		return
	}
	if version == "" {
		s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "version is required"))
		return
	}

	format := search.FormatMaven
	if name := q.Get("format"); name != "" {
		f, err := search.ParseFormat(name)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		format = f
	}

	dep := maven.Dependency{GroupID: groupID, ArtifactID: artifactID, Versions: []string{version}}
	s.writeJSON(w, http.StatusOK, formatResponse{Snippet: search.FormatDependency(dep, format)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps err onto a status code and a {"code", "message"} body.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("upstream lookup failed", "path", r.URL.Path, "err", err,
			"request_id", RequestIDFromContext(r.Context()))
	}
	s.writeJSON(w, status, body)
}

func classify(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		return http.StatusBadGateway, errorResponse{Code: errs.ErrCodeNotFound, Message: "upstream index returned not found"}
	case errors.Is(err, integrations.ErrNetwork):
		return http.StatusBadGateway, errorResponse{Code: errs.ErrCodeNetwork, Message: "upstream index unavailable"}
	}

	switch code := errs.GetCode(err); code {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidFormat:
		return http.StatusBadRequest, errorResponse{Code: code, Message: errs.UserMessage(err)}
	default:
		return http.StatusInternalServerError, errorResponse{Code: errs.ErrCodeInternal, Message: "internal error"}
	}
}
