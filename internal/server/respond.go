package server

import (
	"encoding/json"
	"net/http"

	"github.com/orgball2608/scenefeed/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), errorResponse{
		Error: errors.GetMessage(err),
		Code:  errors.GetCode(err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.IsLoadFailure(err):
		return http.StatusServiceUnavailable
	case errors.IsSaveFailure(err):
		return http.StatusBadGateway
	case errors.Is(err, errors.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.IsUnauthorized(err):
		return http.StatusUnauthorized
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
