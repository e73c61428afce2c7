package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin is a parsed "scheme://*.suffix" origin pattern. Only a
// single leading wildcard over one subdomain label is supported.
type wildcardOrigin struct {
	scheme string // "https://" or "http://"
	suffix string // ".example.com", leading dot included
}

// parseWildcardOrigin parses an allowed-origin pattern containing a
// wildcard subdomain. Returns nil when the pattern is not a valid
// wildcard (exact origins are handled separately).
func parseWildcardOrigin(pattern string) *wildcardOrigin {
	var scheme string
	switch {
	case strings.HasPrefix(pattern, "https://"):
		scheme = "https://"
	case strings.HasPrefix(pattern, "http://"):
		scheme = "http://"
	default:
		return nil
	}

	rest := strings.TrimPrefix(pattern, scheme)
	if !strings.HasPrefix(rest, "*.") {
		return nil
	}

	suffix := rest[1:] // keep the dot, drop the star
	if strings.Contains(suffix, "*") {
		return nil
	}
	// The suffix must name at least a two-part domain; "*.com" would
	// match far too broadly.
	if strings.Count(suffix, ".") < 2 {
		return nil
	}

	return &wildcardOrigin{scheme: scheme, suffix: suffix}
}

// matches reports whether an origin is covered by this pattern. Exactly
// one subdomain label may stand in for the wildcard; nested subdomains
// and suffix-lookalike domains do not match.
func (w *wildcardOrigin) matches(origin string) bool {
	if !strings.HasPrefix(origin, w.scheme) {
		return false
	}
	host := strings.TrimPrefix(origin, w.scheme)
	if !strings.HasSuffix(host, w.suffix) {
		return false
	}
	label := strings.TrimSuffix(host, w.suffix)
	if label == "" || strings.ContainsAny(label, "./") {
		return false
	}
	return true
}

// CORS middleware to handle cross-origin requests
// Reads CORS_ALLOWED_ORIGINS environment variable to restrict origins;
// entries may be exact origins or wildcard patterns like
// "https://*.carelog-app.pages.dev". If not set, all origins are allowed.
func CORS() gin.HandlerFunc {
	allowedOriginsStr := os.Getenv("CORS_ALLOWED_ORIGINS")
	allowAll := allowedOriginsStr == ""

	var exactOrigins []string
	var wildcards []*wildcardOrigin
	if !allowAll {
		for _, entry := range strings.Split(allowedOriginsStr, ",") {
			entry = strings.TrimSpace(entry)
			if wildcard := parseWildcardOrigin(entry); wildcard != nil {
				wildcards = append(wildcards, wildcard)
				continue
			}
			exactOrigins = append(exactOrigins, entry)
		}
	}

	originAllowed := func(origin string) bool {
		for _, allowed := range exactOrigins {
			if origin == allowed {
				return true
			}
		}
		for _, wildcard := range wildcards {
			if wildcard.matches(origin) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowAll {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if originAllowed(origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		} else if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(403)
			return
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
