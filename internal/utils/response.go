package utils

import (
	"encoding/json"
	"net/http"
)

type APIError struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the wire shape for every failure: a list of
// human-readable messages, so multiple validation failures travel in
// one response.
type ErrorResponse struct {
	Errors []APIError `json:"errors"`
}

// WriteJSON writes a JSON response to the HTTP response writer.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteError renders one or more messages in the error-list shape.
func WriteError(w http.ResponseWriter, status int, msgs ...string) {
	resp := ErrorResponse{Errors: make([]APIError, 0, len(msgs))}
	for _, m := range msgs {
		resp.Errors = append(resp.Errors, APIError{Msg: m})
	}
	WriteJSON(w, status, resp)
}
