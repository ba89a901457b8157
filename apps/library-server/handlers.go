package libraryserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"video-library/internal/models"
	"video-library/shared/ai"
	"video-library/shared/metrics"
)

const (
	maxBodyBytes = 1 << 20

	msgTopicRequired = "A topic is required."
	msgAINotConfig   = "AI service is not configured correctly."
	msgAIEmpty       = "AI service returned an empty response."
	msgAIMalformed   = "AI service returned a malformed response."
	msgAIFailed      = "Failed to generate ideas from AI service."
	msgInvalidBody   = "Request body must be a valid JSON object."
	msgNotFound      = "API endpoint not found"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, models.ErrorResponse{Message: msg})
}

// decodeBody decodes a JSON object body into dst. On failure it returns the
// JSON field whose type was wrong, if any.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (field string, err error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return typeErr.Field, err
		}
		return "", err
	}
	return "", nil
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleCreateVideo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateVideoRequest
	if field, err := decodeBody(w, r, &req); err != nil {
		switch {
		case field == "title":
			metrics.RecordValidationFailure("title")
			writeMessage(w, http.StatusBadRequest, msgTitleRequired)
		case strings.HasPrefix(field, "tags"):
			metrics.RecordValidationFailure("tags")
			writeMessage(w, http.StatusBadRequest, msgTags)
		default:
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
		}
		return
	}

	res := ValidateCreate(req)
	if !res.OK() {
		for _, e := range res.Errors {
			metrics.RecordValidationFailure(e.Field)
		}
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: res.Message(), Errors: res.Errors})
		return
	}

	video := s.store.Create(res.Video)
	metrics.RecordVideoCreated()
	metrics.SetVideoCount(s.store.Count())
	s.log.Info().Str("id", video.ID).Str("title", video.Title).Int("tags", len(video.Tags)).Msg("video created")

	writeJSON(w, http.StatusCreated, video)
}

func (s *Server) handleGenerateIdeas(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateIdeasRequest
	if _, err := decodeBody(w, r, &req); err != nil || strings.TrimSpace(req.Topic) == "" {
		metrics.RecordIdeaRequest("bad_request")
		writeMessage(w, http.StatusBadRequest, msgTopicRequired)
		return
	}

	ideas, err := s.ideas.GenerateIdeas(r.Context(), req.Topic)
	if err != nil {
		outcome, msg := classifyIdeaError(err)
		metrics.RecordIdeaRequest(outcome)
		s.log.Error().Err(err).Str("outcome", outcome).Msg("idea generation failed")
		writeMessage(w, http.StatusInternalServerError, msg)
		return
	}

	metrics.RecordIdeaRequest("success")
	writeJSON(w, http.StatusOK, ideas)
}

func classifyIdeaError(err error) (outcome, message string) {
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		return "not_configured", msgAINotConfig
	case errors.Is(err, ai.ErrEmptyResponse):
		return "empty", msgAIEmpty
	case errors.Is(err, ai.ErrMalformedResponse):
		return "malformed", msgAIMalformed
	default:
		return "upstream", msgAIFailed
	}
}

// handleFallback serves unmatched requests: JSON 404 under /api/, the
// application shell for other GETs.
func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeMessage(w, http.StatusNotFound, msgNotFound)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	s.shell.serve(w, r)
}
