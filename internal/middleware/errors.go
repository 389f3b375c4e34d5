package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError emits the same {"error":{"code","message"}} body the handlers
// use, so clients see one error shape whichever layer rejected the request.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {"code": code, "message": message},
	})
}
