package middlewares

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

const defaultContentSecurityPolicy = "default-src 'self'; base-uri 'self'; font-src 'self' https: data:; " +
	"form-action 'self'; frame-ancestors 'self'; img-src 'self' data:; object-src 'none'; " +
	"script-src 'self'; script-src-attr 'none'; style-src 'self' https: 'unsafe-inline'; upgrade-insecure-requests"

// SecurityHeaders sets the usual protective headers on every response.
// TLS redirection is left to whatever terminates TLS in front of us.
func SecurityHeaders() gin.HandlerFunc {
	return secure.New(secure.Config{
		IsDevelopment:           false,
		SSLRedirect:             false,
		STSSeconds:              15552000,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		BrowserXssFilter:        true,
		IENoOpen:                true,
		ReferrerPolicy:          "no-referrer",
		ContentSecurityPolicy:   defaultContentSecurityPolicy,
		SSLProxyHeaders:         map[string]string{"X-Forwarded-Proto": "https"},
	})
}
