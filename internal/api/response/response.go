// Package response writes the JSON bodies shared by handlers and middleware.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every rejected request.
type ErrorResponse struct {
	Mensagem string `json:"mensagem"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Mensagem: message})
}
