package middlewares

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

var excludedExtensions = []string{
	".png", ".gif", ".jpeg", ".jpg", ".webp", ".ico",
	".zip", ".tar", ".gz", ".bz2", ".rar", ".7z",
	".woff", ".woff2", ".ttf", ".otf",
	".mp4", ".mov", ".mp3", ".wav", ".pdf",
}

// Gzip compresses responses for clients that accept it. Already-compressed
// formats are passed through.
func Gzip() gin.HandlerFunc {
	return gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedExtensions(excludedExtensions),
	)
}
