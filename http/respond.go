package http

import (
	"encoding/json"
	"errors"
	"log"
	"mime"
	"net/http"

	"fincon/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// writeJSON encodes v before touching the response, so an unencodable value
// becomes a 500 instead of a status with an empty body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error encoding response: %v", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: "internal server error"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps engine and service errors onto status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalid.Error(), Field: invalid.Field})
	case errors.Is(err, domain.ErrRateLimitExceeded):
		writeError(w, http.StatusTooManyRequests, err.Error())
	default:
		log.Printf("Error handling request: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON body into v. It writes the error response itself
// and reports whether the handler should continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Printf("Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
