package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AuthenticationFilter runs once per request, before any authorization
// decision. It resolves the bearer token into a principal and always passes
// the request on; rejecting unauthenticated requests is the policy's job.
func (s *service) AuthenticationFilter() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			// The prefix check is case-sensitive with a single trailing
			// space; anything else leaves the request unauthenticated so
			// public endpoints keep working.
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := authHeader[len(bearerPrefix):]

			username, err := s.jwtManager.ExtractUsername(tokenString)
			if err != nil {
				// Malformed or unverifiable tokens must never abort request
				// processing; downstream authorization rejects them.
				log.Printf("Discarding unusable bearer token: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			// The principal transition is one-way: never override one that an
			// earlier stage already installed.
			if _, ok := PrincipalFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			existingUser, err := s.userService.GetUserByUsername(username)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			// Validate against the stored username rather than the one pulled
			// from the token. Redundant today, but it keeps holding if the
			// subject encoding ever changes.
			if !s.jwtManager.IsTokenValid(tokenString, existingUser.Username) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPrincipal(r.Context(), &Principal{
				User:      existingUser,
				Authority: existingUser.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeJSONError writes an error response in JSON format
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}
