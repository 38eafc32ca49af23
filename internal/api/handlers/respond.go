package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrEmptyBody is returned by DecodeJSON for a request without a body.
var ErrEmptyBody = errors.New("empty request body")

const msgInternalError = "Error interno del servidor"

// Response is the standard API envelope.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// RespondJSON writes a success envelope with the given payload.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

// RespondBadRequest writes a 400 with a user-facing message.
func RespondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: message})
}

// RespondValidationErrors writes a 400 carrying field-keyed messages.
func RespondValidationErrors(w http.ResponseWriter, message string, errs map[string]string) {
	writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: message, Errors: errs})
}

// RespondNotFound writes a 404 with a user-facing message.
func RespondNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Success: false, Message: message})
}

// RespondForbidden writes a 403 with a user-facing message.
func RespondForbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{Success: false, Message: message})
}

// RespondUnauthorized writes a 401 with a user-facing message.
func RespondUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Success: false, Message: message})
}

// RespondConflict writes a 409 with a user-facing message.
func RespondConflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, Response{Success: false, Message: message})
}

// RespondServiceUnavailable writes a 503 with a user-facing message.
func RespondServiceUnavailable(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusServiceUnavailable, Response{Success: false, Message: message})
}

// RespondInternalError writes a 500 with a generic message. Details stay
// in the logs.
func RespondInternalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, Response{Success: false, Message: msgInternalError})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
