package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/attendash/attendance-backend-go/internal/handler/http/response"
)

// DeviceKeyRequired gates the scanner-facing endpoints behind the shared
// device key. The scanner firmware sends it in the X-API-Key header on every
// request; there is no per-device identity.
func DeviceKeyRequired(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("X-API-Key")
			if presented == "" {
				response.Unauthorized(w, "Missing device API key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				response.Unauthorized(w, "Invalid device API key")
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
