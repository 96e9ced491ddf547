package errors

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope returned on every non-2xx status. Error carries
// the numeric HTTP status so clients can branch without parsing messages.
type Response struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes the standard error envelope.
func Respond(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest signals a malformed request (required field absent).
func RespondBadRequest(w http.ResponseWriter) {
	Respond(w, http.StatusBadRequest, "bad request")
}

// RespondNotFound signals a missing resource, page, or route.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound, "not found")
}

// RespondUnprocessable signals semantically invalid input or a data-shape
// failure (unresolvable category, validation failure on insert).
func RespondUnprocessable(w http.ResponseWriter) {
	Respond(w, http.StatusUnprocessableEntity, "unprocessable")
}

// RespondInternalError signals an unexpected failure.
func RespondInternalError(w http.ResponseWriter) {
	Respond(w, http.StatusInternalServerError, "internal server error")
}
