package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"health-chat/pkg"
)

var errEmptyBody = errors.New("request body is empty")

// respondJSON writes payload as JSON with the given status code.
func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// The header is already written; nothing left but to log.
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}

// respondError writes {"error": message}.
func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, pkg.ErrorResponse{Error: message})
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := s.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid field %s: failed %q", verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	return nil
}
