package interfaces

import (
	"log"
	"net/http"
	"time"
)

// WithChangeLogging wraps a handler with before/after log lines. It replaces
// interception-style logging for the mutating expense operations: the wrap is
// applied explicitly at route registration.
func WithChangeLogging(operation string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Before executing %s: %s %s", operation, r.Method, r.URL.Path)

		next(w, r)

		log.Printf("After executing %s, took %v", operation, time.Since(start))
	}
}
