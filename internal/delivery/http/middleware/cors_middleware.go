package middleware

import (
	"os"
	"strings"

	"contact-relay-backend/config"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware adds CORS headers so the static site can call the relay
// cross-origin. The origin allow-list is strict:
// - Production: the configured frontend origin and the apex/www domains
// - Development: localhost (disabled in release mode)
// - Netlify deploy previews: only howapped-* prefixed subdomains
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	productionOrigins := map[string]bool{
		"https://www.howapped.com": true,
		"https://howapped.com":     true,
	}
	if cfg != nil && cfg.FrontendURL != "" {
		productionOrigins[cfg.FrontendURL] = true
	}

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool
		if productionOrigins[origin] {
			isAllowed = true
		}
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}

		// Netlify deploy previews, e.g. https://howapped-pr-12.netlify.app.
		// Prefix check prevents malicious-howapped.netlify.app lookalikes.
		if !isAllowed && strings.HasSuffix(origin, ".netlify.app") {
			subdomain := strings.TrimPrefix(origin, "https://")
			subdomain = strings.TrimSuffix(subdomain, ".netlify.app")
			if strings.HasPrefix(subdomain, "howapped") {
				isAllowed = true
			}
		}

		// Same-origin requests carry no Origin header
		if origin == "" {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
