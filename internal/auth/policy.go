package auth

import (
	"net/http"
	"strings"
)

type AccessRule int

const (
	// Public endpoints are reachable without a principal.
	Public AccessRule = iota
	// RequiresAuthenticated endpoints reject requests without a principal.
	RequiresAuthenticated
)

// RouteRule binds a path pattern to an access rule. A pattern ending in "*"
// matches any path with that prefix; any other pattern matches exactly.
type RouteRule struct {
	Pattern string
	Rule    AccessRule
}

// Policy is an ordered access-rule table. Rules are evaluated in declaration
// order, first match wins; paths matching no rule require authentication.
type Policy struct {
	rules []RouteRule
}

func NewPolicy(rules ...RouteRule) *Policy {
	return &Policy{rules: rules}
}

func (p *Policy) RuleFor(path string) AccessRule {
	for _, rule := range p.rules {
		if matchesPattern(rule.Pattern, path) {
			return rule.Rule
		}
	}
	return RequiresAuthenticated
}

func matchesPattern(pattern, path string) bool {
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(path, strings.TrimSuffix(pattern, "*"))
	}
	return path == pattern
}

// Enforce rejects unauthenticated requests to protected paths with a JSON
// 401 before they reach business logic. It runs after the authentication
// filter has had its chance to install a principal.
func (p *Policy) Enforce() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p.RuleFor(r.URL.Path) == RequiresAuthenticated {
				if _, ok := PrincipalFromContext(r.Context()); !ok {
					writeJSONError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
