package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError mirrors the REST error body so clients see one shape
// regardless of which layer rejected the request.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg, "code": code})
}
