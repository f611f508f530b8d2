package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"devevents/internal/domain"
)

// MessageResponse is the body for responses that carry only a message.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body for failed requests. Error holds the underlying cause and
// Errors the per-field validation messages, when there are any.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string              `json:"message"`
	Error   string              `json:"error,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteMessage writes a MessageResponse.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteError writes an ErrorResponse. A *domain.ValidationError in err contributes its field messages.
func WriteError(w http.ResponseWriter, statusCode int, message string, err error) {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			resp.Errors = verr.Fields
		}
	}
	WriteJSON(w, statusCode, resp)
}
