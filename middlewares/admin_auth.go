package middlewares

import (
	"crypto/subtle"
	"net/http"

	"api/utils"
)

// AdminAuth gates staff routes behind the shared static password carried in
// the X-Admin-Password header. This deliberately stands in for a real
// authentication system.
func AdminAuth(password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := r.Header.Get("X-Admin-Password")
			if given == "" {
				utils.SendError(w, http.StatusUnauthorized, "Admin password required", nil)
				return
			}

			if subtle.ConstantTimeCompare([]byte(given), []byte(password)) != 1 {
				utils.SendError(w, http.StatusUnauthorized, "Invalid admin password", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
