package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/application"
	"github.com/ABHIJEETVINAYJHA07/Innotech-2025/internal/validators"
)

const maxToolBody = 1 << 20

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"tools":  len(s.registry.Names()),
	})
}

func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"tools": s.registry.Names()})
}

func (s *Server) callTool(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	params := map[string]interface{}{}
	body := http.MaxBytesReader(w, r.Body, maxToolBody)
	if err := json.NewDecoder(body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
		s.clientError(w, http.StatusBadRequest, fmt.Errorf("malformed JSON body: %w", err))
		return
	}

	result, err := s.registry.Call(r.Context(), name, params)
	if err != nil {
		s.toolError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

type proofResponse struct {
	Field application.FieldID  `json:"field"`
	File  *application.FileRef `json:"file,omitempty"`
	Error string               `json:"error,omitempty"`
}

// uploadProof inspects an uploaded document and returns the reference to
// store in the form. The content itself is discarded.
func (s *Server) uploadProof(w http.ResponseWriter, r *http.Request) {
	field := application.FieldID(mux.Vars(r)["field"])
	if field != application.FieldGovernmentIDProof && field != application.FieldBankProof {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("%s is not a proof field", field))
		return
	}

	limits := validators.ProofLimits(s.cfg)
	r.Body = http.MaxBytesReader(w, r.Body, 2*limits.MaxBytes+(1<<20))
	if err := r.ParseMultipartForm(limits.MaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			oversize := &application.FileRef{Name: "upload", Size: limits.MaxBytes + 1, ContentType: "application/pdf"}
			s.writeJSON(w, http.StatusRequestEntityTooLarge, proofResponse{
				Field: field,
				Error: application.CheckProof(field, oversize, limits),
			})
			return
		}
		s.clientError(w, http.StatusBadRequest, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		s.writeJSON(w, http.StatusUnprocessableEntity, proofResponse{
			Field: field,
			Error: application.CheckProof(field, nil, limits),
		})
		return
	}
	if err != nil {
		s.clientError(w, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		s.serverError(w, err)
		return
	}

	ref := &application.FileRef{
		Name:        header.Filename,
		ContentType: strings.ToLower(mtype.String()),
		Size:        header.Size,
	}
	if err := validators.CheckProofFile(s.cfg, field, ref); err != nil {
		s.logger.Info("proof rejected",
			zap.String("field", string(field)),
			zap.String("content_type", ref.ContentType),
			zap.Int64("size", ref.Size),
		)
		s.writeJSON(w, http.StatusUnprocessableEntity, proofResponse{Field: field, Error: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, proofResponse{Field: field, File: ref})
}
