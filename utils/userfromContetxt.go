package utils

import (
	"net/http"

	"toolbase/globals"
)

// GetEmailFromRequest returns the authenticated email attached by
// middleware.Authenticate, or "" for anonymous requests.
func GetEmailFromRequest(r *http.Request) string {
	email, ok := r.Context().Value(globals.EmailKey).(string)
	if !ok {
		return ""
	}
	return email
}
