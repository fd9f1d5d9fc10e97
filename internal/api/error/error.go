// Package error contains the API error envelope and its encoding helpers.
package error

import (
	"encoding/json"
	"net/http"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    ErrorCode `json:"code"`
	Status  int       `json:"status"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
}

func (e *Error) Error() string {
	return e.Message
}

// EncodeError writes the error envelope with the status mapped from the code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, requestID string) error {
	body := Error{
		Code:    code,
		Status:  code.StatusCode(),
		Message: message,
		ErrorID: requestID,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	return json.NewEncoder(w).Encode(body)
}

func EncodeInternalError(w http.ResponseWriter, requestID string) error {
	return EncodeError(w, InternalServerError, "internal server error", requestID)
}
