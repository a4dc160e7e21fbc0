package middleware

import (
	"encoding/json"
	"net/http"
)

// nonFieldErrors matches the key the REST handlers use for messages that
// belong to no field.
const nonFieldErrors = "__all__"

// writeError answers with the API error body {"errors":{"__all__":[msg]}}.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]map[string][]string{
		"errors": {nonFieldErrors: {msg}},
	})
}
