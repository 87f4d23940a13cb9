// Package response renders the JSON envelopes shared by the dashboard
// service and the portfolio backend.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error envelope. Details carries a free-form
// diagnostic for transport and lookup failures; Fields carries per-field
// validation messages keyed by JSON field name, so edit forms can surface
// them inline next to the offending input. A response sets one or the
// other, never both.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// RespondJSON writes data as JSON with the given status. A nil data writes
// the status line only, which is how 204 responses go out. Encoding
// failures are logged; by then the status line is already committed.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes the error envelope with a diagnostic string.
func RespondError(w http.ResponseWriter, status int, message, details string) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// RespondFieldErrors writes a 400 envelope carrying per-field validation
// messages.
func RespondFieldErrors(w http.ResponseWriter, fields map[string]string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}
