package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"github.com/courtside/nba-stats/internal/config"
)

const stsSeconds = 31536000

// Secure returns a middleware that sets browser security headers. HTTPS
// redirect and HSTS are added only when the application terminates TLS itself.
func Secure(cfg config.WebConfig) gin.HandlerFunc {
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	if cfg.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = stsSeconds
		secureConfig.STSIncludeSubdomains = true
		secureConfig.SSLProxyHeaders = map[string]string{"X-Forwarded-Proto": "https"}
	}

	return secure.New(secureConfig)
}
