package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/loans"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/storage"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/tools"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.logger.Error("internal error", zap.Error(err))
	s.writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (s *Server) clientError(w http.ResponseWriter, status int, err error) {
	s.writeError(w, status, err.Error())
}

// toolError maps a registry error onto an HTTP status
func (s *Server) toolError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tools.ErrUnknownTool), errors.Is(err, storage.ErrNotFound):
		s.clientError(w, http.StatusNotFound, err)
	case errors.Is(err, loans.ErrIncompleteLoan):
		s.writeError(w, http.StatusBadRequest, loans.IncompleteLoanMessage)
	case errors.Is(err, tools.ErrInvalidParams):
		s.clientError(w, http.StatusBadRequest, err)
	case errors.Is(err, loans.ErrInvalidTransition):
		s.clientError(w, http.StatusConflict, err)
	case errors.Is(err, loans.ErrSubmissionRejected):
		s.writeError(w, http.StatusUnprocessableEntity, loans.RejectionMessage)
	default:
		s.serverError(w, err)
	}
}
